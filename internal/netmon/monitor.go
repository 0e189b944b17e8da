// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

// Package netmon watches reachability of the cellar server.
//
// The monitor probes the server host on a fixed interval and exposes two
// things: a level-triggered Online() answer used by the sync engine to choose
// between an immediate remote call and local queueing, and an edge-triggered
// Reachable() channel that fires once per transition into reachability, which
// the sync trigger uses to wake a replay. Transitions into unreachability
// emit nothing: in-flight remote calls surface their own transport failures.
package netmon

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/stefpopov/go-wine-cellar/internal/config"
	"github.com/stefpopov/go-wine-cellar/internal/logger"
)

// ProbeFunc answers whether the server is reachable right now. Injectable for
// tests.
type ProbeFunc func(ctx context.Context) bool

// Monitor is the connectivity monitor worker.
type Monitor struct {
	probe    ProbeFunc
	interval time.Duration

	online    atomic.Bool
	reachable chan struct{}
	logger    *logger.Logger
}

// NewMonitor builds a monitor that TCP-dials the host of baseURL.
func NewMonitor(baseURL string, cfg config.Netmon, log *logger.Logger) (*Monitor, error) {
	addr, err := dialAddress(baseURL)
	if err != nil {
		return nil, fmt.Errorf("derive probe address: %w", err)
	}

	probeTimeout := cfg.ProbeTimeout
	probe := func(ctx context.Context) bool {
		d := net.Dialer{Timeout: probeTimeout}
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}

	return NewMonitorWithProbe(probe, cfg.ProbeInterval, log), nil
}

// NewMonitorWithProbe builds a monitor around a custom probe. Used by tests
// and by callers that already know how to check reachability.
func NewMonitorWithProbe(probe ProbeFunc, interval time.Duration, log *logger.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	return &Monitor{
		probe:     probe,
		interval:  interval,
		reachable: make(chan struct{}, 1),
		logger:    log,
	}
}

// Run probes immediately and then on every interval tick until ctx is done.
// Implements the workers.Worker contract.
func (m *Monitor) Run(ctx context.Context) {
	m.check(ctx)

	t := time.NewTicker(m.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.check(ctx)
		}
	}
}

// Online reports the result of the most recent probe.
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Reachable delivers one coalesced token per transition into reachability.
func (m *Monitor) Reachable() <-chan struct{} {
	return m.reachable
}

func (m *Monitor) check(ctx context.Context) {
	up := m.probe(ctx)
	was := m.online.Swap(up)

	if up && !was {
		m.logger.Debug().Str("func", "Monitor.check").Msg("network is available")
		select {
		case m.reachable <- struct{}{}:
		default:
		}
	}
	if !up && was {
		m.logger.Debug().Str("func", "Monitor.check").Msg("network lost")
	}
}

func dialAddress(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("base url %q has no host", baseURL)
	}

	host := u.Host
	if u.Port() == "" {
		switch u.Scheme {
		case "https", "wss":
			host = net.JoinHostPort(u.Hostname(), "443")
		default:
			host = net.JoinHostPort(u.Hostname(), "80")
		}
	}
	return host, nil
}
