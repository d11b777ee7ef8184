// Package lifecycle holds shared constants for component start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery component.
const DefaultTimeout = 10 * time.Second
