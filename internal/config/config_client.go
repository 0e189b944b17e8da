// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the REST endpoint of the cellar server.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups local storage settings for the client.
type ClientStorage struct {
	// DBPath is the SQLite database file path.
	DBPath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig], with client defaults applied.
type ClientConfig struct {
	// Adapter contains the remote endpoint settings.
	Adapter ClientAdapter
	// Storage contains the local database settings.
	Storage ClientStorage
	// Push contains push-channel reconnect and keepalive settings.
	Push Push
	// Netmon contains connectivity probe settings.
	Netmon Netmon
	// Workers contains replay trigger backoff settings.
	Workers Workers
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Client.BaseURL,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Storage: ClientStorage{DBPath: cfg.Client.DBPath},
		Push:    cfg.Push,
		Netmon:  cfg.Netmon,
		Workers: cfg.Workers,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

// applyDefaults fills in the stock deployment values: 30s keepalive pings,
// a 1s..60s reconnect window, and a 1s..5m replay backoff window.
func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = "cellar.db"
	}
	if cfg.Push.PingInterval <= 0 {
		cfg.Push.PingInterval = 30 * time.Second
	}
	if cfg.Push.InitialReconnectDelay <= 0 {
		cfg.Push.InitialReconnectDelay = time.Second
	}
	if cfg.Push.MaxReconnectDelay <= 0 {
		cfg.Push.MaxReconnectDelay = time.Minute
	}
	if cfg.Netmon.ProbeInterval <= 0 {
		cfg.Netmon.ProbeInterval = 10 * time.Second
	}
	if cfg.Netmon.ProbeTimeout <= 0 {
		cfg.Netmon.ProbeTimeout = 3 * time.Second
	}
	if cfg.Workers.InitialBackoff <= 0 {
		cfg.Workers.InitialBackoff = time.Second
	}
	if cfg.Workers.MaxBackoff <= 0 {
		cfg.Workers.MaxBackoff = 5 * time.Minute
	}
}
