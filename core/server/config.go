package server

import "fmt"

// Config holds configuration for the bridge's own listeners.
type Config struct {
	// Port is the port the MCP SSE endpoint listens on.
	Port int `mapstructure:"port"`
}

// ManagementPort returns the port of the HTTP management surface.
// It sits next to the SSE port, which is owned by the MCP library.
func (c Config) ManagementPort() int {
	return c.Port + 1
}

// Validate checks that the listen port is a valid TCP port.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("server port %d is outside the valid TCP port range", c.Port)
	}
	return nil
}
