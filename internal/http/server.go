package http

import (
	"net/http"

	"github.com/cuet-dev-corpse/khelile-ayyun/internal/config"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/duel"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/metrics"
)

func NewServer(duels duel.DuelStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Duels:          duels,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/duels", Chain(s.ListDuelsHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
