// Package utils provides common utility functions for the param-host application.
// It includes the value coercion helpers shared by plugs, parameter documents and
// the HTTP layer, where the same scalar may arrive as a JSON float, a TOML int64
// or a form string.
package utils
