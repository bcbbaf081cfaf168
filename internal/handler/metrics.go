package handler

import (
	"fmt"
	"net/http"

	"github.com/creativespark/creativespark/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "creativespark_generate_requests_total %d\n", snap.GenerateRequested)
	writeMetric(w, "creativespark_generate_failures_total %d\n", snap.GenerateFailed)
	writeMetric(w, "creativespark_generate_duration_seconds_count %d\n", snap.GenerateDurationCount)
	writeMetric(w, "creativespark_generate_duration_seconds_sum %.6f\n", float64(snap.GenerateDurationTotalNs)/1e9)

	writeMetric(w, "creativespark_ideas_created_total %d\n", snap.IdeasCreated)
	writeMetric(w, "creativespark_ideas_updated_total %d\n", snap.IdeasUpdated)
	writeMetric(w, "creativespark_ideas_deleted_total %d\n", snap.IdeasDeleted)
	writeMetric(w, "creativespark_ideas_shared_total %d\n", snap.IdeasShared)

	writeMetric(w, "creativespark_logins_succeeded_total %d\n", snap.LoginsSucceeded)
	writeMetric(w, "creativespark_logins_failed_total %d\n", snap.LoginsFailed)
	writeMetric(w, "creativespark_accounts_registered_total %d\n", snap.AccountsRegistered)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
