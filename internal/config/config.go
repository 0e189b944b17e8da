// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and server binaries. It is populated by merging environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the server-side PostgreSQL connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Client holds settings for the offline-first client: the remote API
	// endpoint and the local SQLite database path.
	Client Client `envPrefix:"CLIENT_"`

	// Push holds tuning knobs for the push-channel client: keepalive ping
	// interval and the reconnect backoff window.
	Push Push `envPrefix:"PUSH_"`

	// Netmon holds the connectivity monitor probe settings.
	Netmon Netmon `envPrefix:"NETMON_"`

	// Workers holds the sync trigger backoff settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups server-side persistence settings.
type Storage struct {
	// DB holds the PostgreSQL connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the server database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Client holds the client-process settings.
type Client struct {
	// BaseURL is the REST endpoint of the cellar server, e.g.
	// "http://localhost:8080". The push-channel URL is derived from it.
	// Env: CLIENT_SERVER_URL
	BaseURL string `env:"SERVER_URL"`

	// RequestTimeout is the per-request timeout for outbound REST calls.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DBPath is the path of the local SQLite database file.
	// Env: CLIENT_DB_PATH
	DBPath string `env:"DB_PATH"`
}

// Push holds push-channel client settings.
type Push struct {
	// PingInterval is the keepalive ping period on an established
	// connection. Env: PUSH_PING_INTERVAL
	PingInterval time.Duration `env:"PING_INTERVAL"`

	// InitialReconnectDelay seeds the exponential reconnect backoff.
	// Env: PUSH_INITIAL_RECONNECT_DELAY
	InitialReconnectDelay time.Duration `env:"INITIAL_RECONNECT_DELAY"`

	// MaxReconnectDelay caps the exponential reconnect backoff.
	// Env: PUSH_MAX_RECONNECT_DELAY
	MaxReconnectDelay time.Duration `env:"MAX_RECONNECT_DELAY"`
}

// Netmon holds connectivity monitor settings.
type Netmon struct {
	// ProbeInterval is how often the monitor probes the server host.
	// Env: NETMON_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeTimeout bounds a single reachability probe.
	// Env: NETMON_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Workers holds sync trigger settings.
type Workers struct {
	// InitialBackoff seeds the replay retry backoff.
	// Env: WORKERS_INITIAL_BACKOFF
	InitialBackoff time.Duration `env:"INITIAL_BACKOFF"`

	// MaxBackoff caps the replay retry backoff.
	// Env: WORKERS_MAX_BACKOFF
	MaxBackoff time.Duration `env:"MAX_BACKOFF"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources in priority order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// ServerConfig is the configuration view used by the server binary.
type ServerConfig struct {
	// Server contains the HTTP listen address and request timeout.
	Server Server
	// DB contains the PostgreSQL connection settings.
	DB DB
}

// GetServerConfig builds and validates the server view of the merged
// configuration, applying server defaults for unset fields.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Server: cfg.Server,
		DB:     cfg.Storage.DB,
	}
	serverCfg.applyDefaults()

	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "0.0.0.0:8080"
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
}
