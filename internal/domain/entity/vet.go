// Package entity contains the core business objects of the project.
package entity

// Vet is the clinic profile of a vet-role user. Its ID equals the owning
// user's ID. Posting the profile again fully replaces the prior record
// (upsert), unlike the vendor profile's idempotent create.
type Vet struct {
	ID        string   `json:"id"`        // Equals the owning User's identifier.
	Name      string   `json:"name"`      // The vet's display name.
	Clinic    string   `json:"clinic"`    // Clinic or practice name.
	License   string   `json:"license"`   // License string, stored verbatim.
	Latitude  *float64 `json:"latitude"`  // Clinic latitude in degrees; nil when unknown.
	Longitude *float64 `json:"longitude"` // Clinic longitude in degrees; nil when unknown.
	Specialty string   `json:"specialty"` // Free text, defaults to "General".
}

// DefaultSpecialty is applied when a vet profile is submitted without one.
const DefaultSpecialty = "General"

// HasCoordinates reports whether both latitude and longitude are set.
// Vets without coordinates cannot participate in proximity ranking.
func (v *Vet) HasCoordinates() bool {
	return v.Latitude != nil && v.Longitude != nil
}
