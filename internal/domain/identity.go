package domain

// Identity is a logged-in customer or admin record, sourced from a static
// credential list. The secret is plaintext and persisted verbatim in the
// session blob; the demo credential lists are built that way.
type Identity struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Secret string `json:"password"`
	Role   string `json:"role,omitempty"`
}

// Admin roles carried by seeded identities.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleSupport = "support"
)
