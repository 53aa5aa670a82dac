// Package server provides the HTTP server for the story API.
//
// The server uses gorilla/mux for routing. API endpoints live on a subrouter
// mounted at the API_PREFIX setting, and every request passes through request
// id tagging, access logging and CORS restricted to ALLOWED_ORIGINS.
//
// # Server Setup
//
//	srv := server.NewServer(settings, healthStore, "0.0.0.0", "8000")
//	endpoints.RegisterAll(srv)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - {prefix}/status - liveness and debug flag
//   - {prefix}/health - database connectivity
package server
