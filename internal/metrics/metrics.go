// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Generation metrics
	IncGenerateRequested()
	IncGenerateFailed()
	ObserveGenerateDuration(duration time.Duration)

	// Idea management metrics
	IncIdeaCreated()
	IncIdeaUpdated()
	IncIdeaDeleted()
	IncIdeaShared()

	// Authentication metrics
	IncLoginSucceeded()
	IncLoginFailed()
	IncAccountRegistered()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
