package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncGenerateRequested is a no-op.
func (n *NoopRecorder) IncGenerateRequested() {}

// IncGenerateFailed is a no-op.
func (n *NoopRecorder) IncGenerateFailed() {}

// ObserveGenerateDuration is a no-op.
func (n *NoopRecorder) ObserveGenerateDuration(duration time.Duration) {}

// IncIdeaCreated is a no-op.
func (n *NoopRecorder) IncIdeaCreated() {}

// IncIdeaUpdated is a no-op.
func (n *NoopRecorder) IncIdeaUpdated() {}

// IncIdeaDeleted is a no-op.
func (n *NoopRecorder) IncIdeaDeleted() {}

// IncIdeaShared is a no-op.
func (n *NoopRecorder) IncIdeaShared() {}

// IncLoginSucceeded is a no-op.
func (n *NoopRecorder) IncLoginSucceeded() {}

// IncLoginFailed is a no-op.
func (n *NoopRecorder) IncLoginFailed() {}

// IncAccountRegistered is a no-op.
func (n *NoopRecorder) IncAccountRegistered() {}
