package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"smmhub/pkg/identity"
	"smmhub/pkg/server"
	"smmhub/pkg/server/store"
)

const (
	maxLoginLength = 50
	maxNameLength  = 50
)

// SignInRequest represents a sign-in request body
type SignInRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SignInResponse carries the issued identity token
type SignInResponse struct {
	Token string `json:"token"`
}

// RegisterRequest represents a registration request body
type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UserProfile is the caller-visible account shape
type UserProfile struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Login   string `json:"login"`
	IsAdmin bool   `json:"is_admin"`
}

// ProfileResponse wraps a profile
type ProfileResponse struct {
	Profile UserProfile `json:"profile"`
}

// RegisterAuthEndpoints registers registration, sign-in, and profile
// endpoints
func RegisterAuthEndpoints(s *server.Server) {
	router := s.Router

	// POST /api/auth/sign-in - exchange credentials for a token
	router.HandleFunc("/api/auth/sign-in", handleSignIn(s)).Methods("POST")

	// POST /api/auth/register - create an account
	router.HandleFunc("/api/auth/register", handleRegister(s)).Methods("POST")

	authRouter := router.PathPrefix("/api/auth").Subrouter()
	authRouter.Use(s.TokenMiddleware.Middleware)

	// GET /api/auth/check - authenticated liveness
	authRouter.HandleFunc("/check", handleAuthCheck()).Methods("GET")

	// GET /api/auth/profile - caller's profile
	authRouter.HandleFunc("/profile", handleProfile()).Methods("GET")
}

func handleSignIn(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body SignInRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithReason(w, http.StatusBadRequest, "malformed request")
			return
		}

		user, err := s.Users.UserByLogin(body.Login)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithReason(w, http.StatusUnauthorized, "user not found")
				return
			}
			respondWithError(w, err)
			return
		}

		if !s.Hasher.Verify(body.Password, user.Password) {
			respondWithReason(w, http.StatusUnauthorized, "user not found")
			return
		}

		token, err := s.Tokens.Issue(user.Login)
		if err != nil {
			respondWithError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, SignInResponse{Token: token})
	}
}

func handleRegister(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithReason(w, http.StatusBadRequest, "malformed request")
			return
		}

		if body.Login == "" || len(body.Login) > maxLoginLength {
			respondWithReason(w, http.StatusBadRequest, "invalid login")
			return
		}
		if body.Name == "" || len(body.Name) > maxNameLength {
			respondWithReason(w, http.StatusBadRequest, "invalid name")
			return
		}
		if body.Password == "" {
			respondWithReason(w, http.StatusBadRequest, "invalid password")
			return
		}

		hashed, err := s.Hasher.Hash(body.Password)
		if err != nil {
			respondWithError(w, err)
			return
		}

		user := &store.User{
			Name:     body.Name,
			Login:    body.Login,
			Password: hashed,
		}
		if err := s.Users.CreateUser(user); err != nil {
			respondWithError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, ProfileResponse{Profile: profileOf(user)})
	}
}

func handleAuthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, PingResponse{Status: "ok"})
	}
}

func handleProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := identity.FromContext(r.Context())
		if !ok {
			respondWithReason(w, http.StatusUnauthorized, "user not found")
			return
		}
		respondWithJSON(w, http.StatusOK, ProfileResponse{Profile: profileOf(user)})
	}
}

// profileOf maps a stored account onto the response shape, field by field.
func profileOf(user *store.User) UserProfile {
	return UserProfile{
		ID:      user.ID,
		Name:    user.Name,
		Login:   user.Login,
		IsAdmin: user.IsAdmin,
	}
}
