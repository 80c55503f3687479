package model

import "strings"

// Tenant is a single white-label storefront.  Every other record is
// scoped by the tenant id, which appears as the first path segment of
// every API route.
//
// Fields:
//
//	ID          – URL-safe unique identifier, immutable after creation.
//	Name        – display name of the shop.
//	Branding    – theme colours and logo shown by the storefront.
//	Strings     – free-form UI strings (appTitle, tagline, ...).
//	AdminEmails – emails whose owners are treated as admins.
type Tenant struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Branding    Branding          `json:"branding"`
	Strings     map[string]string `json:"strings"`
	AdminEmails []string          `json:"adminEmails"`
}

// Branding holds the theme colours as space separated RGB triplets
// (e.g. "59 130 246") plus a logo URL.
type Branding struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	LogoURL   string `json:"logoUrl"`
}

// TenantConfig is the public view of a tenant returned by GET /config.
// The admin list is never exposed.
type TenantConfig struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Branding Branding          `json:"branding"`
	Strings  map[string]string `json:"strings"`
}

// Public strips the admin list.
func (t *Tenant) Public() TenantConfig {
	return TenantConfig{ID: t.ID, Name: t.Name, Branding: t.Branding, Strings: t.Strings}
}

// IsAdmin reports whether email is a member of the tenant's admin set.
// The comparison is case-insensitive because emails are stored lower-cased.
func (t *Tenant) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, e := range t.AdminEmails {
		if strings.ToLower(e) == email {
			return true
		}
	}
	return false
}

// AddAdmin inserts email into the admin set.  It returns false when the
// email was already present.
func (t *Tenant) AddAdmin(email string) bool {
	if t.IsAdmin(email) {
		return false
	}
	t.AdminEmails = append(t.AdminEmails, strings.ToLower(strings.TrimSpace(email)))
	return true
}

// RemoveAdmin filters email out of the admin set.
func (t *Tenant) RemoveAdmin(email string) {
	email = strings.ToLower(strings.TrimSpace(email))
	out := t.AdminEmails[:0]
	for _, e := range t.AdminEmails {
		if strings.ToLower(e) != email {
			out = append(out, e)
		}
	}
	t.AdminEmails = out
}
