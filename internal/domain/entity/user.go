// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity in the system, representing a single account.
// Role-specific data lives in the Vendor and Vet profile entities, keyed by
// the same identifier.
type User struct {
	ID           string    `json:"id"`        // Opaque prefixed identifier (usr_...).
	Name         string    `json:"name"`      // The user's display name.
	Email        string    `json:"email"`     // Login identifier, unique across the users collection.
	PasswordHash string    `json:"-"`         // Salted bcrypt hash; never serialized in responses.
	Role         Role      `json:"role"`      // buyer, vendor, or vet.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of account creation.
}
