// Package lifecycle holds shared start/stop bounds for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start-up probes and graceful shutdown.
const DefaultTimeout = 10 * time.Second
