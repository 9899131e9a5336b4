// Package service implements the business logic between the HTTP
// handlers and the repositories. Services depend on small consumer-side
// repository interfaces so tests can substitute in-memory fakes.
package service
