package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ListDuelsHandler exposes the pending duels across guilds for
// moderation visibility.
func (s *Server) ListDuelsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		duels, err := s.Duels.Active()
		if err != nil {
			log.Error("Failed to list duels", "error", err)
			http.Error(w, "Failed to list duels", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(duels); err != nil {
			log.Error("Failed to encode duels", "error", err)
		}
	}
}
