// Package server holds the HTTP server configuration and the Fiber app factory.
//
// The main entry point (cmd/start.go) owns the listen/shutdown lifecycle; this
// package only decides how the app is built so that tests and the real server
// share the same codec, limits and error rendering.
//
// # Configuration
//
// The Config struct defines the HTTP port, read/write timeouts and the request
// body limit. Zero values fall back to sane defaults.
//
// # Usage
//
//	app := server.NewApp(cfg.Server)
//	app.Listen(cfg.Server.Address())
package server
