package pricing

import (
	"context"
	"log/slog"
	"time"

	"github.com/curiodex/curio/curio/stores"
	"golang.org/x/sync/semaphore"
)

// Scheduler triggers reconciliation on a fixed interval, optionally once at
// startup. A weighted semaphore of one guards against a sweep overrunning
// into the next tick: the late tick is skipped and logged, never interleaved.
type Scheduler struct {
	dispatcher Dispatcher
	platform   stores.Platform
	interval   time.Duration
	runOnStart bool
	running    *semaphore.Weighted
}

func NewScheduler(dispatcher Dispatcher, platform stores.Platform, interval time.Duration, runOnStart bool) *Scheduler {
	return &Scheduler{
		dispatcher: dispatcher,
		platform:   platform,
		interval:   interval,
		runOnStart: runOnStart,
		running:    semaphore.NewWeighted(1),
	}
}

// Start launches the schedule loop and returns immediately. The loop stops
// when ctx is cancelled; a sweep in flight stops at its next iteration.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		if s.runOnStart {
			s.trigger(ctx)
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.trigger(ctx)
			}
		}
	}()
}

func (s *Scheduler) trigger(ctx context.Context) {
	if !s.running.TryAcquire(1) {
		slog.Warn("Skipping price reconciliation, previous run still active",
			slog.String("type", "job"),
			slog.String("platform", string(s.platform)))
		return
	}
	defer s.running.Release(1)

	if err := s.dispatcher.Send(ctx, Command{Platform: s.platform}); err != nil {
		slog.Error("Price reconciliation run failed",
			slog.String("type", "job"),
			slog.String("platform", string(s.platform)),
			slog.Any("error", err))
	}
}

// TriggerNow runs one sweep synchronously. It shares the same single-run
// guard as the schedule loop.
func (s *Scheduler) TriggerNow(ctx context.Context) error {
	if !s.running.TryAcquire(1) {
		return ErrRunActive
	}
	defer s.running.Release(1)

	return s.dispatcher.Send(ctx, Command{Platform: s.platform})
}

// TriggerAsync starts one sweep in the background, for the admin endpoint.
// It reports ErrRunActive immediately when a sweep is already in flight.
func (s *Scheduler) TriggerAsync() error {
	if !s.running.TryAcquire(1) {
		return ErrRunActive
	}
	go func() {
		defer s.running.Release(1)
		if err := s.dispatcher.Send(context.Background(), Command{Platform: s.platform}); err != nil {
			slog.Error("Price reconciliation run failed",
				slog.String("type", "job"),
				slog.String("platform", string(s.platform)),
				slog.Any("error", err))
		}
	}()
	return nil
}
