// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface: a name, an enabled flag, and a
// Load hook that registers its routes.
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
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features, in registration order, via LoadAll()
//
// Features such as 'parameters' and 'integrity' are developed and tested in isolation
// and wired together only in the start command.
package loader
