package scheduler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/basel-ax/dalleimg/internal/domain"
)

type countingRunner struct {
	calls atomic.Int32
}

func (c *countingRunner) Run(ctx context.Context) domain.RunResult {
	c.calls.Add(1)
	return domain.RunResult{StatusCode: http.StatusOK}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSchedulerRunsJob(t *testing.T) {
	runner := &countingRunner{}
	s, err := New("@every 1s", time.UTC, runner, discardLogger())
	assert.Equal(t, nil, err)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	deadline := time.After(5 * time.Second)
	for runner.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("scheduled run never happened")
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	assert.Equal(t, nil, <-done)
}

func TestSchedulerInvalidSpec(t *testing.T) {
	s, err := New("every day at five", time.UTC, &countingRunner{}, discardLogger())

	assert.Equal(t, (*Scheduler)(nil), s)
	assert.NotEqual(t, nil, err)
}

func TestSchedulerDailyNext(t *testing.T) {
	loc := time.FixedZone("AEST", 10*60*60)
	s, err := New("0 0 5 * * *", loc, &countingRunner{}, discardLogger())
	assert.Equal(t, nil, err)

	from := time.Date(2026, time.October, 19, 6, 30, 0, 0, loc)
	next := s.Next(from)

	assert.Equal(t, time.Date(2026, time.October, 20, 5, 0, 0, 0, loc).Unix(), next.Unix())
}
