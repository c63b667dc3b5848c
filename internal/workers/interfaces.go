// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers in a unified way, and [Periodic], a cancellable repeating
// task.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their goroutines and return.
// Stop cancels the work and blocks until every goroutine started by the
// worker has exited. Stop must be safe to call more than once and before
// Start.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go process(ctx)
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
