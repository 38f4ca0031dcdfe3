package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"smmhub/pkg/identity"
	"smmhub/pkg/server"
	"smmhub/pkg/server/store"
)

const (
	maxOrgNameLength     = 50
	maxDescriptionLength = 150
)

// CreateOrganizationRequest represents an organization creation body
type CreateOrganizationRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// OrganizationResponse is the API shape of an organization
type OrganizationResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateOrganizationResponse wraps a created organization
type CreateOrganizationResponse struct {
	Organization OrganizationResponse `json:"organization"`
}

// OrganizationsResponse lists the caller's organizations
type OrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// UserRight is one granted permission tagged with its can-grant flag
type UserRight struct {
	Name     string `json:"name"`
	CanGrant bool   `json:"can_grant"`
}

// PublicProfile is the member-visible account shape
type PublicProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OrganizationUser is one merged member entry
type OrganizationUser struct {
	User   PublicProfile `json:"user"`
	Rights []UserRight   `json:"rights"`
}

// OrganizationUsersResponse lists an organization's members
type OrganizationUsersResponse struct {
	Users []OrganizationUser `json:"users"`
}

// RegisterOrganizationsEndpoints registers the organization endpoints
func RegisterOrganizationsEndpoints(s *server.Server) {
	orgRouter := s.Router.PathPrefix("/api/organizations").Subrouter()
	orgRouter.Use(s.TokenMiddleware.Middleware)

	// POST /api/organizations - create an organization
	orgRouter.HandleFunc("", handleCreateOrganization(s)).Methods("POST")

	// GET /api/organizations - the caller's organizations, deduplicated
	orgRouter.HandleFunc("", handleListOrganizations(s)).Methods("GET")

	// GET /api/organizations/{organization_id}/users - merged members view
	orgRouter.HandleFunc("/{organization_id}/users", handleListMembers(s)).Methods("GET")
}

func handleCreateOrganization(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity.FromContext(r.Context())
		if !ok {
			respondWithReason(w, http.StatusUnauthorized, "user not found")
			return
		}

		var body CreateOrganizationRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithReason(w, http.StatusBadRequest, "malformed request")
			return
		}

		if body.Name == "" || len(body.Name) > maxOrgNameLength {
			respondWithReason(w, http.StatusBadRequest, "invalid name")
			return
		}
		if body.Description != nil && len(*body.Description) > maxDescriptionLength {
			respondWithReason(w, http.StatusBadRequest, "invalid description")
			return
		}

		org, err := s.Registry.Create(caller.ID, body.Name, body.Description)
		if err != nil {
			respondWithError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, CreateOrganizationResponse{
			Organization: organizationOf(org),
		})
	}
}

func handleListOrganizations(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity.FromContext(r.Context())
		if !ok {
			respondWithReason(w, http.StatusUnauthorized, "user not found")
			return
		}

		orgs, err := s.Registry.ListForUser(caller.ID)
		if err != nil {
			respondWithError(w, err)
			return
		}

		out := make([]OrganizationResponse, 0, len(orgs))
		for i := range orgs {
			out = append(out, organizationOf(&orgs[i]))
		}
		respondWithJSON(w, http.StatusOK, OrganizationsResponse{Organizations: out})
	}
}

func handleListMembers(s *server.Server) http.HandlerFunc {
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

		members, err := s.Registry.ListMembers(orgID, caller.ID)
		if err != nil {
			respondWithError(w, err)
			return
		}

		users := make([]OrganizationUser, 0, len(members))
		for _, m := range members {
			rights := make([]UserRight, 0, len(m.Rights))
			for _, right := range m.Rights {
				rights = append(rights, UserRight{Name: right.Name, CanGrant: right.CanGrant})
			}
			users = append(users, OrganizationUser{
				User:   PublicProfile{ID: m.User.ID, Name: m.User.Name},
				Rights: rights,
			})
		}
		respondWithJSON(w, http.StatusOK, OrganizationUsersResponse{Users: users})
	}
}

// organizationOf maps a stored organization onto the response shape,
// preserving the nullable description.
func organizationOf(org *store.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
	}
}

func organizationID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["organization_id"], 10, 64)
}
