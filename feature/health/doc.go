// Package health exposes a liveness probe for the service's dependencies.
//
// # HTTP Endpoints
//
//   - GET /health : 200 when the document database answers a ping, 503 otherwise.
package health
