// Package store provides storage abstractions for the story API server.
//
// Endpoints depend on these interfaces rather than on a database handle, so
// they can be tested with in-memory fakes.
//
// # Available Stores
//
//   - HealthStore: database connectivity checks
package store
