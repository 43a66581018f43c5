// Package observability records dispatch outcomes as Prometheus metrics
// using the textfile-collector convention: counters are flushed to a file
// under the configured directory after each dispatch, to be scraped by a
// node_exporter. The dispatcher never opens a network listener.
package observability

import (
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsFile is the textfile the recorder flushes into.
const MetricsFile = "kevm.prom"

// Recorder accumulates dispatch counters. A nil Recorder is valid and
// records nothing, so metrics stay strictly opt-in.
type Recorder struct {
	dir        string
	registry   *prometheus.Registry
	dispatches *prometheus.CounterVec
	toolExits  *prometheus.CounterVec
	logger     *slog.Logger
}

// NewRecorder creates a recorder flushing into dir. Returns nil when dir
// is empty (metrics disabled).
func NewRecorder(dir string, logger *slog.Logger) *Recorder {
	if dir == "" {
		return nil
	}
	registry := prometheus.NewRegistry()
	dispatches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kevm_dispatches_total",
		Help: "Dispatched invocations by subcommand and backend.",
	}, []string{"subcommand", "backend"})
	toolExits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kevm_tool_exits_total",
		Help: "External tool exits by tool and status.",
	}, []string{"tool", "status"})
	registry.MustRegister(dispatches, toolExits)
	return &Recorder{
		dir:        dir,
		registry:   registry,
		dispatches: dispatches,
		toolExits:  toolExits,
		logger:     logger,
	}
}

// Dispatch counts one routed invocation.
func (r *Recorder) Dispatch(subcommand, backend string) {
	if r == nil {
		return
	}
	r.dispatches.WithLabelValues(subcommand, backend).Inc()
}

// ToolExit counts one external tool exit.
func (r *Recorder) ToolExit(tool string, status int) {
	if r == nil {
		return
	}
	r.toolExits.WithLabelValues(tool, strconv.Itoa(status)).Inc()
}

// Flush writes the textfile. Failures are logged, never fatal: metrics
// must not change dispatch behavior.
func (r *Recorder) Flush() {
	if r == nil {
		return
	}
	path := filepath.Join(r.dir, MetricsFile)
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		r.logger.Warn("failed to write metrics textfile", "path", path, "err", err)
	}
}
