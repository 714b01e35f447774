package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// IntervalWaiter blocks between poll cycles until the next activation of a cron schedule.
// Unlike cron.Cron it runs nothing itself, so the caller keeps a single goroutine.
type IntervalWaiter struct {
	schedule cron.Schedule
	logger   logrus.FieldLogger
	now      func() time.Time
}

// NewIntervalWaiter parses spec (standard cron syntax or descriptors such as "@every 10m").
func NewIntervalWaiter(spec string, logger logrus.FieldLogger) (*IntervalWaiter, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse poll schedule %q: %w", spec, err)
	}
	return NewIntervalWaiterFromSchedule(schedule, logger), nil
}

// NewIntervalWaiterFromSchedule wraps an already built schedule, e.g. cron.Every(d).
func NewIntervalWaiterFromSchedule(schedule cron.Schedule, logger logrus.FieldLogger) *IntervalWaiter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &IntervalWaiter{
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// Next returns the time the next cycle should start, counted from the current time.
func (w *IntervalWaiter) Next() time.Time {
	return w.schedule.Next(w.now())
}

// Wait sleeps until the next activation. It returns ctx.Err() if ctx is cancelled first.
func (w *IntervalWaiter) Wait(ctx context.Context) error {
	now := w.now()
	next := w.schedule.Next(now)
	delay := next.Sub(now)
	if delay < 0 {
		delay = 0
	}
	w.logger.WithField("next_poll", next.Format(time.RFC3339)).Debug("sleeping until next poll")

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
