// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Identifier prefixes. Purely a debugging aid so an id read off a log line
// reveals which collection it belongs to; nothing parses them.
const (
	PrefixUser    = "usr"
	PrefixProduct = "prd"
	PrefixVendor  = "vnd"
	PrefixVet     = "vet"
	PrefixOrder   = "ord"
)

// NewID generates an opaque identifier with the given role prefix,
// e.g. "ord_2f4c...". Uniqueness comes from the embedded UUID.
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
