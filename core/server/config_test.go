package server_test

import (
	"testing"

	"param-host/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		port string
		ok   bool
	}{
		{"Default", "8080", true},
		{"Low", "1", true},
		{"High", "65535", true},
		{"Zero", "0", false},
		{"TooHigh", "65536", false},
		{"NotANumber", "http", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := server.Config{Port: tt.port}.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, server.ErrInvalidPort)
			}
		})
	}
}

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, ":9090", server.Config{Port: "9090"}.Address())
}
