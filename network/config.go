package network

import (
	"time"
)

// Config holds spectator server configuration
type Config struct {
	// Address to bind, empty disables the server
	Address string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// SendQueueSize is the per-peer snapshot backlog before the peer is dropped
	SendQueueSize int
}

// DefaultConfig returns local-play defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         "",
		MaxPeers:        16,
		WriteTimeout:    2 * time.Second,
		ShutdownTimeout: 3 * time.Second,
		SendQueueSize:   8,
	}
}

// DebugConfig returns defaults bound to addr
func DebugConfig(addr string) *Config {
	cfg := DefaultConfig()
	cfg.Address = addr
	return cfg
}
