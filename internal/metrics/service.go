package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service is the Prometheus-backed Metrics implementation.
type Service struct {
	CommandsHandled    prometheus.Counter
	CommandErrors      prometheus.Counter
	Lookups            prometheus.Counter
	LookupFailures     prometheus.Counter
	DuelsOpened        prometheus.Counter
	DuelsRejected      prometheus.Counter
	CommandDuration    prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		CommandsHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "khelile_commands_handled_total",
			Help: "The total number of slash commands handled.",
		}),
		CommandErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "khelile_command_errors_total",
			Help: "The total number of slash commands that ended in an unexpected error.",
		}),
		Lookups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "khelile_codeforces_lookups_total",
			Help: "The total number of Codeforces profile lookups performed.",
		}),
		LookupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "khelile_codeforces_lookup_failures_total",
			Help: "The total number of Codeforces profile lookups that failed.",
		}),
		DuelsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "khelile_duels_opened_total",
			Help: "The total number of duels opened.",
		}),
		DuelsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "khelile_duels_rejected_total",
			Help: "The total number of duel challenges rejected because one was pending.",
		}),
		CommandDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "khelile_command_duration_seconds",
			Help:    "The duration of individual slash command handling.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "khelile_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.CommandsHandled,
		s.CommandErrors,
		s.Lookups,
		s.LookupFailures,
		s.DuelsOpened,
		s.DuelsRejected,
		s.CommandDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncCommandsHandled() {
	s.CommandsHandled.Inc()
}

func (s *Service) IncCommandErrors() {
	s.CommandErrors.Inc()
}

func (s *Service) IncLookups() {
	s.Lookups.Inc()
}

func (s *Service) IncLookupFailures() {
	s.LookupFailures.Inc()
}

func (s *Service) IncDuelsOpened() {
	s.DuelsOpened.Inc()
}

func (s *Service) IncDuelsRejected() {
	s.DuelsRejected.Inc()
}

func (s *Service) ObserveCommandDuration(duration float64) {
	s.CommandDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
