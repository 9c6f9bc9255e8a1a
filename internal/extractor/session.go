package extractor

import (
	"context"
	"time"
)

// Session is one isolated browser page used for a single extraction.
type Session interface {
	// Observe installs the traffic hooks. They stay active until Close.
	Observe(observer *TrafficObserver) error
	// Navigate loads pageURL and waits for the network to become almost idle,
	// failing once timeout elapses.
	Navigate(ctx context.Context, pageURL string, timeout time.Duration) error
	// Snapshot reads the page state inside the page's own context.
	Snapshot(ctx context.Context, opts SnapshotOptions) (*PageSnapshot, error)
	// Close releases the page, the browser and its process. It is safe to call twice.
	Close() error
}

// SessionLauncher starts browser sessions.
type SessionLauncher interface {
	Launch(ctx context.Context) (Session, error)
}
