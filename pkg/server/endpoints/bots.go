package endpoints

import (
	"encoding/json"
	"net/http"

	"smmhub/pkg/identity"
	"smmhub/pkg/server"
)

// AddBotRequest represents a bot creation body
type AddBotRequest struct {
	Token string `json:"token"`
}

// AddBotResponse carries the generated credential identifier
type AddBotResponse struct {
	ID string `json:"id"`
}

// BotResponse is the API shape of a bot credential. The token is never
// echoed back.
type BotResponse struct {
	ID             string `json:"id"`
	OrganizationID int64  `json:"organization_id"`
}

// BotsResponse lists an organization's bot credentials
type BotsResponse struct {
	Bots []BotResponse `json:"bots"`
}

// RegisterBotsEndpoints registers the bot credential endpoints
func RegisterBotsEndpoints(s *server.Server) {
	botsRouter := s.Router.PathPrefix("/api/organizations/{organization_id}/bots").Subrouter()
	botsRouter.Use(s.TokenMiddleware.Middleware)

	// POST /api/organizations/{organization_id}/bots - verify and attach
	botsRouter.HandleFunc("", handleAddBot(s)).Methods("POST")

	// GET /api/organizations/{organization_id}/bots - list credentials
	botsRouter.HandleFunc("", handleListBots(s)).Methods("GET")
}

func handleAddBot(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity.FromContext(r.Context())
		if !ok {
			respondWithReason(w, http.StatusUnauthorized, "user not found")
			return
		}

		orgID, err := organizationID(r)
		if err != nil {
			respondWithReason(w, http.StatusBadRequest, "invalid organization id")
			return
		}

		var body AddBotRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithReason(w, http.StatusBadRequest, "malformed request")
			return
		}
		if body.Token == "" {
			respondWithReason(w, http.StatusBadRequest, "invalid token")
			return
		}

		bot, err := s.Registry.AddBot(r.Context(), orgID, caller.ID, body.Token)
		if err != nil {
			respondWithError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, AddBotResponse{ID: bot.ID})
	}
}

func handleListBots(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity.FromContext(r.Context())
		if !ok {
			respondWithReason(w, http.StatusUnauthorized, "user not found")
			return
		}

		orgID, err := organizationID(r)
		if err != nil {
			respondWithReason(w, http.StatusBadRequest, "invalid organization id")
			return
		}

		bots, err := s.Registry.ListBots(orgID, caller.ID)
		if err != nil {
			respondWithError(w, err)
			return
		}

		out := make([]BotResponse, 0, len(bots))
		for _, bot := range bots {
			out = append(out, BotResponse{ID: bot.ID, OrganizationID: bot.OrganizationID})
		}
		respondWithJSON(w, http.StatusOK, BotsResponse{Bots: out})
	}
}
