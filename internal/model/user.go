package model

// Roles reported to clients.  The role is never stored; it is derived
// from Tenant.AdminEmails every time it is needed.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a shopper account.  Emails are unique per tenant, not
// globally, so the same address may register with several shops.
//
// Fields:
//
//	ID       – opaque identifier.
//	TenantID – owning tenant.
//	Name     – optional display name.
//	Email    – lower-cased login email.
//	Password – stored credential; plaintext unless bcrypt mode is enabled.
type User struct {
	ID       string `json:"id"`
	TenantID string `json:"tenantId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the client-facing view of a user with its computed role.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Summary is the admin listing view of a user (GET /users).
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileFor builds the profile of u as seen within tenant t.
func ProfileFor(t *Tenant, u *User) Profile {
	role := RoleUser
	if t.IsAdmin(u.Email) {
		role = RoleAdmin
	}
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Role: role}
}
