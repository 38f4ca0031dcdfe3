package endpoints

import "smmhub/pkg/server"

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterAuthEndpoints(srv)
	RegisterOrganizationsEndpoints(srv)
	RegisterBotsEndpoints(srv)
}
