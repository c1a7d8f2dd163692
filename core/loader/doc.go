// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which names it, reports
// whether it is enabled and registers its routes.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of available features:
//   - Register() adds a feature
//   - LoadAll() loads every enabled feature in registration order
//
// Features such as 'asset' and 'health' are developed and tested in isolation
// and only meet at this registry.
package loader
