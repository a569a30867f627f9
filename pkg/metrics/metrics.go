// Package metrics counts what a stream reader sees and serves the counts
// over HTTP for prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ssargent/gostdf/pkg/record"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Collector holds all Prometheus metrics for record streams. It implements
// stream.Observer.
type Collector struct {
	// Record metrics
	recordsTotal  *prometheus.CounterVec
	corruptTotal  *prometheus.CounterVec
	unknownTotal  prometheus.Counter
	skippedTotal  prometheus.Counter
	bytesConsumed prometheus.Gauge

	// Catalog operation metrics
	catalogOperationsTotal   *prometheus.CounterVec
	catalogOperationDuration *prometheus.HistogramVec

	// HTTP request metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	mu      sync.Mutex
	summary Summary
}

// Summary is a point in time copy of the record counts
type Summary struct {
	Records map[string]uint64 `json:"records"`
	Corrupt map[string]uint64 `json:"corrupt,omitempty"`
	Unknown uint64            `json:"unknown"`
	Skipped uint64            `json:"skipped"`
	Bytes   uint64            `json:"bytes"`
}

// NewCollector creates the metrics and registers them with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		recordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stdf_records_total",
				Help: "Total number of decoded records by record type",
			},
			[]string{"record"},
		),

		corruptTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stdf_corrupt_records_total",
				Help: "Total number of records whose body failed to decode",
			},
			[]string{"record"},
		),

		unknownTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "stdf_unknown_records_total",
				Help: "Total number of records with an unmodeled type",
			},
		),

		skippedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "stdf_skipped_records_total",
				Help: "Total number of records skipped by the type filter",
			},
		),

		bytesConsumed: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "stdf_bytes_consumed",
				Help: "Bytes consumed from the current source",
			},
		),

		catalogOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stdf_catalog_operations_total",
				Help: "Total number of offset catalog operations",
			},
			[]string{"operation", "status"},
		),

		catalogOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stdf_catalog_operation_duration_seconds",
				Help:    "Offset catalog operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stdf_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stdf_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		summary: newSummary(),
	}
}

func newSummary() Summary {
	return Summary{Records: map[string]uint64{}, Corrupt: map[string]uint64{}}
}

// RecordDecoded counts a record that decoded cleanly
func (c *Collector) RecordDecoded(h record.Header) {
	name := h.Type().String()
	c.recordsTotal.WithLabelValues(name).Inc()

	c.mu.Lock()
	c.summary.Records[name]++
	c.mu.Unlock()
}

// RecordCorrupt counts a record whose body failed to decode
func (c *Collector) RecordCorrupt(h record.Header) {
	name := h.Type().String()
	c.corruptTotal.WithLabelValues(name).Inc()

	c.mu.Lock()
	c.summary.Corrupt[name]++
	c.mu.Unlock()
}

// RecordUnknown counts a record of an unmodeled type
func (c *Collector) RecordUnknown(record.Header) {
	c.unknownTotal.Inc()

	c.mu.Lock()
	c.summary.Unknown++
	c.mu.Unlock()
}

// RecordSkipped counts a record the filter dropped
func (c *Collector) RecordSkipped(record.Header) {
	c.skippedTotal.Inc()

	c.mu.Lock()
	c.summary.Skipped++
	c.mu.Unlock()
}

// BytesConsumed updates the source position
func (c *Collector) BytesConsumed(n uint64) {
	c.bytesConsumed.Set(float64(n))

	c.mu.Lock()
	c.summary.Bytes = n
	c.mu.Unlock()
}

// Snapshot returns a copy of the counts seen so far
func (c *Collector) Snapshot() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.summary
	out.Records = make(map[string]uint64, len(c.summary.Records))
	for k, v := range c.summary.Records {
		out.Records[k] = v
	}
	out.Corrupt = make(map[string]uint64, len(c.summary.Corrupt))
	for k, v := range c.summary.Corrupt {
		out.Corrupt[k] = v
	}
	return out
}

// RecordCatalogOperation records an offset catalog operation
func (c *Collector) RecordCatalogOperation(operation string, success bool, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}

	c.catalogOperationsTotal.WithLabelValues(operation, status).Inc()
	c.catalogOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordHTTPRequest records an HTTP request
func (c *Collector) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	statusCodeStr := strconv.Itoa(statusCode)

	c.httpRequestsTotal.WithLabelValues(method, endpoint, statusCodeStr).Inc()
	c.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// InstrumentHandler instruments an HTTP handler with metrics
func (c *Collector) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create response writer wrapper to capture status code
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		handler(rw, r)

		c.RecordHTTPRequest(method, endpoint, rw.statusCode, time.Since(start))
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
