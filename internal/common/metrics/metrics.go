package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests by route and status",
		},
		[]string{"route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "api_request_duration_seconds",
			Help: "Duration of request processing in seconds",
		},
		[]string{"route"},
	)

	ProfilesAnalyzed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profiles_analyzed_total",
			Help: "Total number of onboarding profiles analyzed by risk label",
		},
		[]string{"risk_label", "confidence"},
	)

	ProfileSaveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "profile_save_failures_total",
			Help: "Best-effort profile persistence failures (swallowed)",
		},
	)

	UploadsPreviewed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uploads_previewed_total",
			Help: "Total number of upload files previewed by file type",
		},
		[]string{"file_type"},
	)

	HoldingsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "holdings_imported_total",
			Help: "Total number of holdings rows imported",
		},
	)

	GuardrailTriggers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guardrail_triggers_total",
			Help: "Total number of guardrail triggers by guardrail and severity",
		},
		[]string{"guardrail", "severity"},
	)

	SanitizationsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sanitizations_applied_total",
			Help: "Total number of output sanitizations applied by kind",
		},
		[]string{"kind"},
	)
)
