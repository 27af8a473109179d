package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rtcore"

// Recorder collects render metrics on its own registry.
type Recorder struct {
	registry       *prometheus.Registry
	rowsRendered   prometheus.Counter
	pixelsWritten  prometheus.Counter
	progressDraws  prometheus.Gauge
	writeErrors    *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

// NewRecorder creates a recorder with the Go runtime collector registered
// alongside the render metrics.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		rowsRendered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_rendered_total",
			Help:      "Number of image rows rendered.",
		}),
		pixelsWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pixels_written_total",
			Help:      "Number of pixels encoded to the output.",
		}),
		progressDraws: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "progress_redraws",
			Help:      "Number of times the progress bar was redrawn during the last render.",
		}),
		writeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_write_errors_total",
			Help:      "Number of failed image writes by output format.",
		}, []string{"format"}),
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Wall time spent filling the image.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"precision"}),
	}
}

// AddRows records n rendered rows.
func (r *Recorder) AddRows(n int) {
	if n > 0 {
		r.rowsRendered.Add(float64(n))
	}
}

// AddPixels records n encoded pixels.
func (r *Recorder) AddPixels(n int) {
	if n > 0 {
		r.pixelsWritten.Add(float64(n))
	}
}

// SetRedraws stores the redraw count reported by the progress bar.
func (r *Recorder) SetRedraws(n int) {
	r.progressDraws.Set(float64(n))
}

// IncWriteErrors counts a failed image write.
func (r *Recorder) IncWriteErrors(format string) {
	r.writeErrors.WithLabelValues(format).Inc()
}

// ObserveRender records the duration of one render at the given precision.
func (r *Recorder) ObserveRender(precision string, d time.Duration) {
	r.renderDuration.WithLabelValues(precision).Observe(d.Seconds())
}

// Gatherer returns the registry backing the recorder.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every collected family to path in the textfile
// collector format. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
