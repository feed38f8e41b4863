package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// MetricsNamespace is the namespace for all sitegrab metrics
	MetricsNamespace = "sitegrab"

	// MetricsSubsystem is the subsystem for capture metrics
	MetricsSubsystem = "capture"
)

// Rejection reasons reported by the admission filter
const (
	RejectNotCapturing = "not_capturing"
	RejectDuplicate    = "duplicate"
	RejectOtherTab     = "other_tab"
	RejectResourceType = "resource_type"
	RejectScheme       = "scheme"
)

// Failure kinds for resources that were admitted but not archived
const (
	FailureNetwork      = "network"
	FailureStatus       = "status"
	FailureBodyTooLarge = "body_too_large"
	FailureInvalidPath  = "invalid_path"
	FailureArchive      = "archive"
)

// Session outcomes
const (
	OutcomeSaved          = "saved"
	OutcomeFinalizeFailed = "finalize_failed"
	OutcomeSaveFailed     = "save_failed"
)

// Metrics holds the Prometheus collectors for capture sessions.
// A nil *Metrics records nothing.
type Metrics struct {
	BytesCaptured    prometheus.Counter
	FetchFailures    *prometheus.CounterVec
	FilesCaptured    prometheus.Counter
	PendingFetches   prometheus.Gauge
	RequestsAdmitted prometheus.Counter
	RequestsRejected *prometheus.CounterVec
	Sessions         *prometheus.CounterVec
}

// NewMetrics creates and registers the capture metrics
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		BytesCaptured: factory.NewCounter(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystem,
			Name:      "bytes_captured_total",
			Help:      "Total number of response bytes written to archives",
		}),
		FetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystem,
			Name:      "fetch_failures_total",
			Help:      "Admitted resources that could not be archived",
		}, []string{"kind"}),
		FilesCaptured: factory.NewCounter(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystem,
			Name:      "files_captured_total",
			Help:      "Total number of files written to archives",
		}),
		PendingFetches: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystem,
			Name:      "pending_fetches",
			Help:      "Resources currently being fetched",
		}),
		RequestsAdmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystem,
			Name:      "requests_admitted_total",
			Help:      "Observed requests admitted for capture",
		}),
		RequestsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystem,
			Name:      "requests_rejected_total",
			Help:      "Observed requests rejected by the admission filter",
		}, []string{"reason"}),
		Sessions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystem,
			Name:      "sessions_total",
			Help:      "Finished capture sessions by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) admitted() {
	if m == nil {
		return
	}
	m.RequestsAdmitted.Inc()
	m.PendingFetches.Inc()
}

func (m *Metrics) rejected(reason string) {
	if m == nil {
		return
	}
	m.RequestsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) captured(size int) {
	if m == nil {
		return
	}
	m.PendingFetches.Dec()
	m.FilesCaptured.Inc()
	m.BytesCaptured.Add(float64(size))
}

func (m *Metrics) failed(kind string) {
	if m == nil {
		return
	}
	m.PendingFetches.Dec()
	m.FetchFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) sessionFinished(outcome string) {
	if m == nil {
		return
	}
	m.Sessions.WithLabelValues(outcome).Inc()
}
