// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

package config

import (
	"net/url"
)

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DBPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Push.MaxReconnectDelay < cfg.Push.InitialReconnectDelay {
		return ErrInvalidPushConfigs
	}

	return nil
}
