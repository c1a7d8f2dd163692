package server

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ReadTimeoutSeconds bounds how long reading a request may take.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"10"`
	// WriteTimeoutSeconds bounds how long writing a response may take.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"15"`
	// BodyLimitBytes is the maximum accepted request body size.
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"1048576"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}

// Validate checks that the port is a usable TCP port.
func (c Config) Validate() error {
	p, err := strconv.Atoi(c.Port)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid server port %q", c.Port)
	}
	return nil
}

func (c Config) readTimeout() time.Duration {
	return seconds(c.ReadTimeoutSeconds, 10)
}

func (c Config) writeTimeout() time.Duration {
	return seconds(c.WriteTimeoutSeconds, 15)
}

func seconds(v, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Second
}
