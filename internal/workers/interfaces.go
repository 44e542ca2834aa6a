// Package workers provides the background workers that run alongside the
// client UI: currently the connectivity watcher that retries synchronization
// once the remote store becomes reachable again.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; implementations spawn their
// goroutines internally and shut them down in Stop.
type Worker interface {
	Run()
	Stop()
}

// Prober reports whether the remote store is currently reachable.
type Prober interface {
	Reachable() bool
}

// syncTrigger is the slice of the sync session the watcher needs: a way to
// request an immediate sync attempt.
type syncTrigger interface {
	TriggerSync()
}
