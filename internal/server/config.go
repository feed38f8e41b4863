package server

import "time"

// Default configuration values
const (
	DefaultAddr              = "127.0.0.1:8765"
	DefaultReadTimeout       = 30 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultShutdownTimeout   = 30 * time.Second
	DefaultHeartbeatInterval = 15 * time.Second
	DefaultMaxEventBodyBytes = 8 * 1024 * 1024
	DefaultCORSMaxAge        = 12 * time.Hour
)

// Config holds the HTTP API configuration
type Config struct {
	// Addr is the listen address
	Addr string

	// AllowedOrigins lists origins (browser extensions) allowed to call the API.
	// "*" allows any origin. Requests without an Origin header are always allowed.
	AllowedOrigins []string

	// Debug enables gin debug mode
	Debug bool

	// HeartbeatInterval is how often SSE streams send a keep-alive comment
	HeartbeatInterval time.Duration

	// MaxEventBodyBytes bounds POST /api/events bodies
	MaxEventBodyBytes int64

	ReadTimeout     time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// SetDefaults applies default values to the config where values are not set
func (c *Config) SetDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if c.MaxEventBodyBytes <= 0 {
		c.MaxEventBodyBytes = DefaultMaxEventBodyBytes
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
}
