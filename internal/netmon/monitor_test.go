// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

package netmon

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefpopov/go-wine-cellar/internal/logger"
)

func TestMonitor_OnlineTracksProbe(t *testing.T) {
	var up atomic.Bool
	m := NewMonitorWithProbe(func(context.Context) bool { return up.Load() }, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	assert.Eventually(t, func() bool { return !m.Online() }, time.Second, time.Millisecond)

	up.Store(true)
	assert.Eventually(t, m.Online, time.Second, time.Millisecond)

	up.Store(false)
	assert.Eventually(t, func() bool { return !m.Online() }, time.Second, time.Millisecond)
}

func TestMonitor_ReachableFiresOnlyOnTransition(t *testing.T) {
	var up atomic.Bool
	m := NewMonitorWithProbe(func(context.Context) bool { return up.Load() }, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	// offline: no token
	select {
	case <-m.Reachable():
		t.Fatal("unexpected reachable token while offline")
	case <-time.After(20 * time.Millisecond):
	}

	up.Store(true)
	select {
	case <-m.Reachable():
	case <-time.After(time.Second):
		t.Fatal("expected reachable token after coming online")
	}

	// staying online emits nothing further
	select {
	case <-m.Reachable():
		t.Fatal("reachable must be edge-triggered, not level-triggered")
	case <-time.After(20 * time.Millisecond):
	}

	// bounce: offline then online again produces exactly one new token
	up.Store(false)
	assert.Eventually(t, func() bool { return !m.Online() }, time.Second, time.Millisecond)
	up.Store(true)

	select {
	case <-m.Reachable():
	case <-time.After(time.Second):
		t.Fatal("expected reachable token after regaining connectivity")
	}
}

func TestDialAddress(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://localhost:8080", "localhost:8080"},
		{"http://cellar.example.com", "cellar.example.com:80"},
		{"https://cellar.example.com", "cellar.example.com:443"},
	}

	for _, tt := range tests {
		got, err := dialAddress(tt.base)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := dialAddress("not a url at all ://")
	require.Error(t, err)
}
