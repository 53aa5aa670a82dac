package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/doodlesbykumbi/story-in-go/pkg/config"
	"github.com/doodlesbykumbi/story-in-go/pkg/server"
	"github.com/doodlesbykumbi/story-in-go/pkg/server/middleware"
	"github.com/doodlesbykumbi/story-in-go/pkg/server/store"
)

// StatusResponse represents the response from the status endpoint
type StatusResponse struct {
	Status string `json:"status"`
	Debug  bool   `json:"debug"`
}

// HealthResponse represents the response from the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// RegisterStatusEndpoints registers the status and health endpoints under the API prefix
func RegisterStatusEndpoints(s *server.Server) {
	s.API.HandleFunc("/status", handleStatus(s.Settings)).Methods("GET")
	s.API.HandleFunc("/health", handleHealth(s.HealthStore)).Methods("GET")
}

func handleStatus(settings *config.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, StatusResponse{
			Status: "ok",
			Debug:  settings.Debug(),
		})
	}
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(r.Context()); err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": middleware.GetRequestID(r.Context()),
				"error":      err,
			}).Warn("Health check failed")
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "error",
				Error:  "database connectivity check failed",
			})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
