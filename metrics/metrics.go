//Package metrics collects run statistics of the command line tools. The tools are short lived batch programs,
//so instead of serving the metrics they can be exported as a node exporter textfile
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const namespace = "devotools"

type Metrics struct {
	registry *prometheus.Registry
	start    time.Time

	JobsTotal          prometheus.Counter
	FilesWritten       prometheus.Counter
	RowsExploded       prometheus.Counter
	PlotsWritten       prometheus.Counter
	ReplicateMismatch  prometheus.Counter
	RunDurationSeconds prometheus.Gauge
}

//New creates a Metrics instance with its own registry, so multiple instances do not collide
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		start:    time.Now(),
		JobsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gensub",
			Name:      "jobs_total",
			Help:      "Number of jobs (combinations times replicates) described by the written submission files",
		}),
		FilesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gensub",
			Name:      "files_written_total",
			Help:      "Number of submission files written",
		}),
		RowsExploded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "variability",
			Name:      "rows_exploded_total",
			Help:      "Number of (world, species) observations after exploding the list columns",
		}),
		PlotsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "variability",
			Name:      "plots_written_total",
			Help:      "Number of box plot images written",
		}),
		ReplicateMismatch: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "variability",
			Name:      "replicate_mismatches_total",
			Help:      "Number of species groups whose size differs from the expected replicate count",
		}),
		RunDurationSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall clock duration of the run",
		}),
	}
	m.registry.MustRegister(
		m.JobsTotal,
		m.FilesWritten,
		m.RowsExploded,
		m.PlotsWritten,
		m.ReplicateMismatch,
		m.RunDurationSeconds,
	)
	return m
}

//Gatherer exposes the underlying registry
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

//WriteTextfile sets the run duration and writes all metrics to path in the text exposition format
func (m *Metrics) WriteTextfile(path string) error {
	m.RunDurationSeconds.Set(time.Since(m.start).Seconds())
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %v : %w", path, err)
	}
	log.WithField("file", path).Debug("wrote metrics")
	return nil
}
