package domain

// Role controls access to the owner dashboard. Aggregate reads are gated
// on RoleOwner inside the core, not in the presentation layer.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
)

// User is the identity resolved by the authenticator.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
