// Package server provides the HTTP server for the smmhub API.
//
// This package implements the core HTTP server that handles all smmhub
// REST API requests. It uses gorilla/mux for routing and provides
// middleware for token authentication.
//
// # Server Setup
//
//	srv := server.NewServer(db, users, reg, tokens, hasher, cfg, host, port)
//	endpoints.RegisterAll(srv)
//	log.Fatal(srv.Start())
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - /api/ping - liveness
//   - /api/auth/* - registration, sign-in, profile
//   - /api/organizations - create and list organizations
//   - /api/organizations/{id}/users - merged members view
//   - /api/organizations/{id}/bots - bot credential management
package server
