// Package workers provides the application's background workers.
// It defines the Worker interface and a Workers aggregate that runs
// multiple workers in a unified way.
package workers

import "context"

// Worker is the interface implemented by every background worker. Run
// starts the worker's loop and blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
