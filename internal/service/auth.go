package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/repository"
	"github.com/abubasith456/React-white-label/internal/session"
	"github.com/abubasith456/React-white-label/internal/utils"
)

// ForgotPasswordMessage is returned by the password reset placeholder.
const ForgotPasswordMessage = "Password reset request received. Check your email for instructions."

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string        `json:"token"`
	User  model.Profile `json:"user"`
}

// AuthService registers users, checks credentials and issues sessions.
// It also answers the admin question for the authorization middleware.
type AuthService struct {
	tenants  *TenantService
	users    *repository.UserRepo
	sessions *session.Store
	hasher   utils.PasswordHasher
	log      *zap.Logger
}

func NewAuthService(tenants *TenantService, users *repository.UserRepo, sessions *session.Store, hasher utils.PasswordHasher, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{tenants: tenants, users: users, sessions: sessions, hasher: hasher, log: log}
}

// Register creates a user in the tenant and logs them in.
func (s *AuthService) Register(ctx context.Context, tenantID, name, email, password string) (*AuthResult, error) {
	t, err := s.tenants.Resolve(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	stored, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &model.User{
		ID:       utils.NewID(),
		TenantID: t.ID,
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: stored,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user registered", zap.String("tenant", t.ID), zap.String("user_id", u.ID))
	return s.issue(t, u)
}

// Login checks credentials.  Unknown email and wrong password fail the
// same way.
func (s *AuthService) Login(ctx context.Context, tenantID, email, password string) (*AuthResult, error) {
	t, err := s.tenants.Resolve(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.users.GetByEmail(ctx, t.ID, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !s.hasher.Verify(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(t, u)
}

func (s *AuthService) issue(t *model.Tenant, u *model.User) (*AuthResult, error) {
	token, err := s.sessions.Create(t.ID, u.ID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &AuthResult{Token: token, User: model.ProfileFor(t, u)}, nil
}

// Profile returns the user with a role computed from the live admin list.
func (s *AuthService) Profile(ctx context.Context, tenantID, userID string) (model.Profile, error) {
	t, err := s.tenants.Resolve(ctx, tenantID)
	if err != nil {
		return model.Profile{}, err
	}
	u, err := s.user(ctx, t.ID, userID)
	if err != nil {
		return model.Profile{}, err
	}
	return model.ProfileFor(t, u), nil
}

// ForgotPassword is a placeholder; no email is sent.
func (s *AuthService) ForgotPassword() string { return ForgotPasswordMessage }

// ListUsers returns every user of the tenant without credentials.
func (s *AuthService) ListUsers(ctx context.Context, tenantID string) ([]model.Summary, error) {
	t, err := s.tenants.Resolve(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListByTenant(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]model.Summary, 0, len(users))
	for _, u := range users {
		out = append(out, model.Summary{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out, nil
}

// IsAdmin resolves both the tenant and the user on every call; admin
// status is never cached.
func (s *AuthService) IsAdmin(ctx context.Context, tenantID, userID string) (bool, error) {
	t, err := s.tenants.Resolve(ctx, tenantID)
	if err != nil {
		return false, err
	}
	u, err := s.user(ctx, t.ID, userID)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return t.IsAdmin(u.Email), nil
}

func (s *AuthService) user(ctx context.Context, tenantID, userID string) (*model.User, error) {
	u, err := s.users.GetByID(ctx, tenantID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}
