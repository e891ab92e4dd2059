package http

import (
	"net/http"

	"github.com/cuet-dev-corpse/khelile-ayyun/internal/config"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/duel"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/metrics"
)

// Server is the ops surface: health, metrics and moderation visibility.
type Server struct {
	Duels          duel.DuelStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
