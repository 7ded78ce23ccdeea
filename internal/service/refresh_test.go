package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	mu      sync.Mutex
	calls   int
	display CredentialDisplay
	err     error
}

func (p *stubProvider) EnsureActive(_ context.Context, _ uint, _ time.Time) (CredentialDisplay, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++

	return p.display, p.err
}

func (p *stubProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.calls
}

func TestRefreshLoop_TicksImmediatelyAndPeriodically(t *testing.T) {
	provider := &stubProvider{display: CredentialDisplay{Active: true}}

	var (
		mu        sync.Mutex
		snapshots []CredentialDisplay
	)

	loop := NewRefreshLoop(provider, 1, 20*time.Millisecond, func(d CredentialDisplay) {
		mu.Lock()
		snapshots = append(snapshots, d)
		mu.Unlock()
	})

	loop.Start(context.Background())
	time.Sleep(70 * time.Millisecond)
	loop.Stop()

	mu.Lock()
	count := len(snapshots)
	mu.Unlock()

	// One immediate evaluation plus at least two ticks.
	require.GreaterOrEqual(t, count, 3)
	assert.True(t, snapshots[0].Active)
}

func TestRefreshLoop_ErrorSkipsSinkAndRetries(t *testing.T) {
	provider := &stubProvider{err: errStore}

	sunk := 0
	loop := NewRefreshLoop(provider, 1, 10*time.Millisecond, func(CredentialDisplay) {
		sunk++
	})

	loop.Start(context.Background())
	time.Sleep(45 * time.Millisecond)
	loop.Stop()

	assert.Zero(t, sunk, "failed evaluations must not reach the sink")
	assert.GreaterOrEqual(t, provider.callCount(), 3, "loop keeps retrying on the next tick")
}

func TestRefreshLoop_StopIsIdempotent(t *testing.T) {
	provider := &stubProvider{}
	loop := NewRefreshLoop(provider, 1, 10*time.Millisecond, func(CredentialDisplay) {})

	loop.Start(context.Background())
	loop.Stop()
	loop.Stop() // second call is a no-op

	calls := provider.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, provider.callCount(), "no ticks after Stop")
}

func TestRefreshLoop_ParentContextCancelStopsTicks(t *testing.T) {
	provider := &stubProvider{}
	loop := NewRefreshLoop(provider, 1, 10*time.Millisecond, func(CredentialDisplay) {})

	ctx, cancel := context.WithCancel(context.Background())
	loop.Start(ctx)
	cancel()
	time.Sleep(20 * time.Millisecond)

	calls := provider.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, provider.callCount())

	loop.Stop()
}

func TestRefreshLoop_DefaultInterval(t *testing.T) {
	loop := NewRefreshLoop(&stubProvider{}, 1, 0, func(CredentialDisplay) {})

	assert.Equal(t, DefaultRefreshInterval, loop.interval)
}
