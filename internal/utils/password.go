package utils

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns a submitted password into its stored form and
// checks a login attempt against it.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(stored, plain string) bool
}

// NewPasswordHasher returns the bcrypt hasher when mode is "bcrypt" and
// the plaintext one otherwise.
func NewPasswordHasher(mode string, cost int) PasswordHasher {
	if strings.EqualFold(mode, "bcrypt") {
		return BcryptPasswords{Cost: cost}
	}
	return PlainPasswords{}
}

// PlainPasswords stores passwords as submitted.  This is the historical
// behaviour of the storefront and remains the default.
type PlainPasswords struct{}

func (PlainPasswords) Hash(plain string) (string, error) { return plain, nil }

func (PlainPasswords) Verify(stored, plain string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}

// BcryptPasswords hashes with bcrypt at Cost.
type BcryptPasswords struct{ Cost int }

func (b BcryptPasswords) Hash(plain string) (string, error) { return HashPassword(plain, b.Cost) }

func (BcryptPasswords) Verify(stored, plain string) bool { return VerifyPassword(stored, plain) }

// HashPassword returns bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares bcrypt hash and plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
