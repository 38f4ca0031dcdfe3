package endpoints

import (
	"net/http"

	"smmhub/pkg/server"
)

// PingResponse represents the response from /api/ping
type PingResponse struct {
	Status string `json:"status"`
}

// RegisterStatusEndpoints registers the liveness endpoint
func RegisterStatusEndpoints(s *server.Server) {
	// GET /api/ping - liveness (no auth required)
	s.Router.HandleFunc("/api/ping", handlePing()).Methods("GET")
}

func handlePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, PingResponse{Status: "ok"})
	}
}
