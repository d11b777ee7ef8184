// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleBuyer indicates a regular buyer account.
	RoleBuyer Role = "buyer"
	// RoleVendor indicates a product vendor account.
	RoleVendor Role = "vendor"
	// RoleVet indicates a veterinarian account.
	RoleVet Role = "vet"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleVendor, RoleVet:
		return true
	default:
		return false
	}
}
