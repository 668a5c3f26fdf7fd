package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/basel-ax/dalleimg/internal/domain"
)

// Runner executes one pipeline invocation
type Runner interface {
	Run(ctx context.Context) domain.RunResult
}

// Scheduler runs the pipeline on a cron schedule, one run at a time
type Scheduler struct {
	cron     *cron.Cron
	spec     string
	schedule cron.Schedule
	location *time.Location
	runner   Runner
	logger   *slog.Logger
	mu       sync.Mutex
}

var parser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// New parses spec (with a seconds field) in loc
func New(spec string, loc *time.Location, runner Runner, logger *slog.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.Local
	}

	schedule, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	return &Scheduler{
		cron:     cron.New(cron.WithParser(parser), cron.WithLocation(loc)),
		spec:     spec,
		schedule: schedule,
		location: loc,
		runner:   runner,
		logger:   logger,
	}, nil
}

// Run starts the scheduler and blocks until ctx is cancelled and any
// in-flight run has finished
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Schedule(s.schedule, cron.FuncJob(func() {
		s.logger.Debug("[CRON] Attempting to start scheduled generation...")
		s.mu.Lock()
		defer s.mu.Unlock()

		if ctx.Err() != nil {
			return
		}

		s.logger.Info("[CRON] Running scheduled generation...")
		result := s.runner.Run(ctx)
		s.logger.Info("[CRON] Finished scheduled generation.", "status", result.StatusCode, "key", result.Key)
	}))

	// Start the cron scheduler
	s.cron.Start()
	s.logger.Info("Cron scheduler started successfully", "schedule", s.spec, "next", s.Next(time.Now()))

	// Keep the scheduler running until context is cancelled
	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info("Cron scheduler stopped")
	return nil
}

// Next returns the first activation after t in the scheduler's zone
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t.In(s.location))
}
