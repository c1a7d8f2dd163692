// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: assigns a request id (RayID) to every incoming request, storing it
//     in the Fiber locals and echoing it in the X-Ray-ID response header.
//
// Panic recovery comes from Fiber's own recover middleware and is installed by
// core/server.
package middleware
