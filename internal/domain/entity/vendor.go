// Package entity contains the core business objects of the project.
package entity

// Vendor is the storefront profile of a vendor-role user. Its ID equals the
// owning user's ID; each vendor user has at most one profile, and re-creating
// it is idempotent.
type Vendor struct {
	ID       string  `json:"id"`       // Equals the owning User's identifier.
	Name     string  `json:"name"`     // Storefront display name.
	Location string  `json:"location"` // Free-text location description.
	Rating   float64 `json:"rating"`   // Aggregate rating, defaults to 0.
}
