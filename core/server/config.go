package server

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPort is returned by Validate for a port outside 1-65535.
var ErrInvalidPort = errors.New("invalid port")

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimit is the maximum accepted request body in bytes.
	BodyLimit int `mapstructure:"body_limit" default:"4194304"`
}

// Validate checks that the port is usable.
func (c Config) Validate() error {
	n, err := strconv.Atoi(c.Port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%w: %q", ErrInvalidPort, c.Port)
	}
	return nil
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}
