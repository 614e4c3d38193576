// Package devserver hosts the in-memory marketplace backend used for
// local SDK development and integration tests.
package devserver

import (
	"context"
	"time"
)

// DefaultShutdownTimeout bounds graceful shutdown.
const DefaultShutdownTimeout = 10 * time.Second

// Delivery is a serving surface managed by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
