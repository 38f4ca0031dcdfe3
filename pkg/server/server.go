package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"smmhub/pkg/config"
	"smmhub/pkg/identity"
	"smmhub/pkg/registry"
	"smmhub/pkg/server/middleware"
	"smmhub/pkg/server/store"
)

type Server struct {
	Router          *mux.Router
	DB              *gorm.DB
	Config          *config.Config
	Users           store.UsersStore
	Registry        *registry.Registry
	Tokens          *identity.TokenService
	Hasher          identity.Hasher
	TokenMiddleware *middleware.TokenAuthenticator
	srv             *http.Server
}

func NewServer(
	db *gorm.DB,
	users store.UsersStore,
	reg *registry.Registry,
	tokens *identity.TokenService,
	hasher identity.Hasher,
	cfg *config.Config,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:          router,
		DB:              db,
		Config:          cfg,
		Users:           users,
		Registry:        reg,
		Tokens:          tokens,
		Hasher:          hasher,
		TokenMiddleware: middleware.NewTokenAuthenticator(tokens, users),
		srv:             srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
