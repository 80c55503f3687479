package utils

import (
	"regexp"

	"github.com/google/uuid"
)

var tenantIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidTenantID reports whether id is a URL-safe tenant identifier.
func ValidTenantID(id string) bool { return tenantIDPattern.MatchString(id) }

// NewID returns a fresh record id.  Version 7 UUIDs sort by creation
// time, so key order in the store follows insertion order.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
