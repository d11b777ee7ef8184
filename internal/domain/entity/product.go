// Package entity contains the core business objects of the project.
package entity

import "time"

// Product is a listing created by a vendor-role user. Prices are stored in
// minor currency units (e.g. kobo, cents) to keep totals exact integers.
type Product struct {
	ID        string    `json:"id"`        // Opaque prefixed identifier (prd_...).
	Title     string    `json:"title"`     // Display title of the listing.
	Price     int64     `json:"price"`     // Non-negative price in minor currency units.
	Category  string    `json:"category"`  // Free-text category, used for filtering.
	Image     string    `json:"image"`     // URL or path to the listing image; may be empty.
	VendorID  string    `json:"vendorId"`  // Identifier of the owning vendor user.
	CreatedAt time.Time `json:"createdAt"` // Timestamp of listing creation.
}
