package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	GenerateRequested       uint64
	GenerateFailed          uint64
	GenerateDurationCount   uint64
	GenerateDurationTotalNs int64
	IdeasCreated            uint64
	IdeasUpdated            uint64
	IdeasDeleted            uint64
	IdeasShared             uint64
	LoginsSucceeded         uint64
	LoginsFailed            uint64
	AccountsRegistered      uint64
}

// InMemoryRecorder stores metrics in memory.
// Backs the debug metrics endpoint and tests.
type InMemoryRecorder struct {
	generateRequested       uint64
	generateFailed          uint64
	generateDurationCount   uint64
	generateDurationTotalNs int64
	ideasCreated            uint64
	ideasUpdated            uint64
	ideasDeleted            uint64
	ideasShared             uint64
	loginsSucceeded         uint64
	loginsFailed            uint64
	accountsRegistered      uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		GenerateRequested:       atomic.LoadUint64(&m.generateRequested),
		GenerateFailed:          atomic.LoadUint64(&m.generateFailed),
		GenerateDurationCount:   atomic.LoadUint64(&m.generateDurationCount),
		GenerateDurationTotalNs: atomic.LoadInt64(&m.generateDurationTotalNs),
		IdeasCreated:            atomic.LoadUint64(&m.ideasCreated),
		IdeasUpdated:            atomic.LoadUint64(&m.ideasUpdated),
		IdeasDeleted:            atomic.LoadUint64(&m.ideasDeleted),
		IdeasShared:             atomic.LoadUint64(&m.ideasShared),
		LoginsSucceeded:         atomic.LoadUint64(&m.loginsSucceeded),
		LoginsFailed:            atomic.LoadUint64(&m.loginsFailed),
		AccountsRegistered:      atomic.LoadUint64(&m.accountsRegistered),
	}
}

// IncGenerateRequested increments the generation request counter.
func (m *InMemoryRecorder) IncGenerateRequested() {
	atomic.AddUint64(&m.generateRequested, 1)
}

// IncGenerateFailed increments the generation failure counter.
func (m *InMemoryRecorder) IncGenerateFailed() {
	atomic.AddUint64(&m.generateFailed, 1)
}

// ObserveGenerateDuration records a generation call duration.
func (m *InMemoryRecorder) ObserveGenerateDuration(duration time.Duration) {
	atomic.AddUint64(&m.generateDurationCount, 1)
	atomic.AddInt64(&m.generateDurationTotalNs, duration.Nanoseconds())
}

// IncIdeaCreated increments the idea created counter.
func (m *InMemoryRecorder) IncIdeaCreated() {
	atomic.AddUint64(&m.ideasCreated, 1)
}

// IncIdeaUpdated increments the idea updated counter.
func (m *InMemoryRecorder) IncIdeaUpdated() {
	atomic.AddUint64(&m.ideasUpdated, 1)
}

// IncIdeaDeleted increments the idea deleted counter.
func (m *InMemoryRecorder) IncIdeaDeleted() {
	atomic.AddUint64(&m.ideasDeleted, 1)
}

// IncIdeaShared increments the idea shared counter.
func (m *InMemoryRecorder) IncIdeaShared() {
	atomic.AddUint64(&m.ideasShared, 1)
}

// IncLoginSucceeded increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSucceeded() {
	atomic.AddUint64(&m.loginsSucceeded, 1)
}

// IncLoginFailed increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailed() {
	atomic.AddUint64(&m.loginsFailed, 1)
}

// IncAccountRegistered increments the registration counter.
func (m *InMemoryRecorder) IncAccountRegistered() {
	atomic.AddUint64(&m.accountsRegistered, 1)
}
