package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultRefreshInterval matches the dashboard's re-evaluation cadence.
const DefaultRefreshInterval = 20 * time.Second

type CredentialProvider interface {
	EnsureActive(ctx context.Context, studentID uint, now time.Time) (CredentialDisplay, error)
}

// RefreshLoop keeps one student's displayed credential consistent with the
// meal window calendar: it evaluates once immediately on Start and then on
// every tick, pushing each snapshot to the sink. A failed evaluation is
// logged and retried naturally on the next tick.
type RefreshLoop struct {
	provider  CredentialProvider
	studentID uint
	interval  time.Duration
	sink      func(CredentialDisplay)

	cancel context.CancelFunc
	done   chan struct{}
}

func NewRefreshLoop(provider CredentialProvider, studentID uint, interval time.Duration, sink func(CredentialDisplay)) *RefreshLoop {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return &RefreshLoop{
		provider:  provider,
		studentID: studentID,
		interval:  interval,
		sink:      sink,
	}
}

func (l *RefreshLoop) Start(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})

	go l.run(loopCtx)
}

// Stop cancels the loop and waits for the goroutine to exit. Safe to call
// more than once; the cancellation itself happens exactly once per Start.
func (l *RefreshLoop) Stop() {
	if l.cancel == nil {
		return
	}

	l.cancel()
	l.cancel = nil

	<-l.done
}

func (l *RefreshLoop) run(ctx context.Context) {
	defer close(l.done)

	l.tick(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.tick(ctx)
		}
	}
}

func (l *RefreshLoop) tick(ctx context.Context) {
	display, err := l.provider.EnsureActive(ctx, l.studentID, time.Now())
	if err != nil {
		zap.L().Warn("credential refresh failed",
			zap.Uint("student_id", l.studentID),
			zap.Error(err),
		)

		return
	}

	l.sink(display)
}
