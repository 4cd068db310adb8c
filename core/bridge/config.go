package bridge

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds the connection settings for the Unity editor endpoint.
type Config struct {
	// Host is the network address of the Unity editor process.
	Host string `mapstructure:"host"`
	// Port is the TCP port the editor command listener is bound to.
	Port int `mapstructure:"port"`
	// ConnectTimeout is the upper bound, in seconds, on a pending connection attempt.
	ConnectTimeout float64 `mapstructure:"connect_timeout"`
	// BufferSize is the size in bytes of the read buffer on the editor connection.
	BufferSize int `mapstructure:"buffer_size"`
	// MaxRetries is the ceiling on attempts for a single editor call.
	MaxRetries int `mapstructure:"max_retries"`
	// RetryDelay is the delay, in seconds, between attempts.
	RetryDelay float64 `mapstructure:"retry_delay"`
}

// Addr returns the editor endpoint as a dialable "host:port" address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ConnectTimeoutDuration converts the configured timeout to a time.Duration.
func (c Config) ConnectTimeoutDuration() time.Duration {
	return time.Duration(c.ConnectTimeout * float64(time.Second))
}

// RetryDelayDuration converts the configured retry delay to a time.Duration.
func (c Config) RetryDelayDuration() time.Duration {
	return time.Duration(c.RetryDelay * float64(time.Second))
}

// Validate checks the editor connection settings against their allowed ranges.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("unity port %d is outside the valid TCP port range", c.Port)
	}
	if c.ConnectTimeout < 0 {
		return fmt.Errorf("connect timeout %v must not be negative", c.ConnectTimeout)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("buffer size %d must not be negative", c.BufferSize)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries %d must not be negative", c.MaxRetries)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay %v must not be negative", c.RetryDelay)
	}
	return nil
}
