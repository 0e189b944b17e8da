// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/service"
)

// stubReplayer scripts a sequence of replay outcomes and counts invocations.
type stubReplayer struct {
	results []service.ReplayResult
	calls   atomic.Int32
	invoked chan struct{}
}

func newStubReplayer(results ...service.ReplayResult) *stubReplayer {
	return &stubReplayer{results: results, invoked: make(chan struct{}, 64)}
}

func (s *stubReplayer) Replay(context.Context) (service.ReplayResult, error) {
	n := int(s.calls.Add(1)) - 1
	s.invoked <- struct{}{}
	if n < len(s.results) {
		return s.results[n], nil
	}
	return service.ReplaySuccess, nil
}

type onlineStub struct{ online atomic.Bool }

func (o *onlineStub) Online() bool { return o.online.Load() }

func newTestTrigger(replayer service.Replayer, online bool) (*SyncTrigger, *onlineStub) {
	net := &onlineStub{}
	net.online.Store(online)
	trigger := NewSyncTrigger(replayer, net, SyncTriggerConfig{
		InitialBackoff: time.Millisecond,
		MaxBackoff:     10 * time.Millisecond,
	}, logger.Nop())
	return trigger, net
}

func waitInvocation(t *testing.T, r *stubReplayer) {
	t.Helper()
	select {
	case <-r.invoked:
	case <-time.After(time.Second):
		t.Fatal("replayer was not invoked")
	}
}

func TestSyncTrigger_ScheduleRunsOneReplay(t *testing.T) {
	replayer := newStubReplayer(service.ReplaySuccess)
	trigger, _ := newTestTrigger(replayer, true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go trigger.Run(ctx)

	trigger.Schedule()
	waitInvocation(t, replayer)

	// no further work queued: nothing else runs
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), replayer.calls.Load())
}

func TestSyncTrigger_SchedulesCoalesce(t *testing.T) {
	replayer := newStubReplayer(service.ReplaySuccess)
	trigger, _ := newTestTrigger(replayer, true)

	// all of these arrive before the worker starts draining
	for i := 0; i < 10; i++ {
		trigger.Schedule()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go trigger.Run(ctx)

	waitInvocation(t, replayer)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), replayer.calls.Load(), "burst of schedules must collapse into one batch")
}

func TestSyncTrigger_OfflineSkipsReplay(t *testing.T) {
	replayer := newStubReplayer()
	trigger, _ := newTestTrigger(replayer, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go trigger.Run(ctx)

	trigger.Schedule()
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, replayer.calls.Load(), "no replay may start while offline")
}

func TestSyncTrigger_RetriesAfterBackoffUntilSuccess(t *testing.T) {
	replayer := newStubReplayer(service.ReplayRetry, service.ReplayRetry, service.ReplaySuccess)
	trigger, _ := newTestTrigger(replayer, true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go trigger.Run(ctx)

	trigger.Schedule()
	waitInvocation(t, replayer)
	waitInvocation(t, replayer)
	waitInvocation(t, replayer)

	// after the success nothing else is scheduled
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(3), replayer.calls.Load())
}

func TestSyncTrigger_RunStopsOnCancel(t *testing.T) {
	replayer := newStubReplayer()
	trigger, _ := newTestTrigger(replayer, true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		trigger.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestRetryDelay(t *testing.T) {
	initial := time.Second
	max := time.Minute

	assert.Equal(t, time.Second, retryDelay(initial, max, 0))
	assert.Equal(t, 2*time.Second, retryDelay(initial, max, 1))
	assert.Equal(t, 32*time.Second, retryDelay(initial, max, 5))
	assert.Equal(t, time.Minute, retryDelay(initial, max, 6), "delay must cap at max")
	assert.Equal(t, time.Minute, retryDelay(initial, max, 200), "huge attempts must not overflow")
}
