// Package lifecycle holds values shared by components with start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of a single component.
const DefaultTimeout = 10 * time.Second
