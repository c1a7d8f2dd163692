// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger for either development (console) or production
// (json) output and integrates with the Fiber request context.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by the rayid middleware and attaches it to
// the log entry, so every line written while serving a request can be
// correlated with the X-Ray-ID response header.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
