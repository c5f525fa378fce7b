package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/dulc3/dashboard-api/internal/feed"
	"github.com/dulc3/dashboard-api/internal/logging"
)

// Scheduler periodically re-warms the feed cache so clients rarely hit a
// cold key during normal operation.
type Scheduler struct {
	scheduler *gocron.Scheduler
	feeds     *feed.Service
	interval  time.Duration
}

// New creates a Scheduler. An interval <= 0 disables scheduling.
func New(feeds *feed.Service, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		feeds:     feeds,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		logging.Logger.Info("scheduler disabled; feed cache refreshes on demand only")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		logging.Logger.Debug("scheduler: refreshing feed cache")

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		result := s.feeds.Refresh(ctx)
		logging.Logger.Info("scheduler: feed cache refreshed",
			"articles", result.ArticlesFetched)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
