// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber app; this package only defines the settings it
// reads (port, API key, body limit) and validates them before listening.
package server
