// internal/app/poller.go
package app

import (
	"context"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// Sink delivers a notification text. Implemented by Notifier.
type Sink interface {
	Deliver(ctx context.Context, text string) error
}

// Waiter blocks until the next poll cycle is due.
type Waiter interface {
	Wait(ctx context.Context) error
}

// State is the step a Poller is currently executing.
type State int

const (
	StateFetching State = iota
	StateValidating
	StateFormatting
	StateNotifying
	StateIdle
	StateSleeping
)

func (s State) String() string {
	switch s {
	case StateFetching:
		return "FETCHING"
	case StateValidating:
		return "VALIDATING"
	case StateFormatting:
		return "FORMATTING"
	case StateNotifying:
		return "NOTIFYING"
	case StateIdle:
		return "IDLE"
	case StateSleeping:
		return "SLEEPING"
	default:
		return "UNKNOWN"
	}
}

// Poller runs the fetch, validate, format, notify, sleep cycle.
// It owns the cursor and the last delivered text; both live only in memory.
// A Poller is not safe for concurrent use.
type Poller struct {
	api    homework.StatusAPI
	sink   Sink
	waiter Waiter
	logger logrus.FieldLogger

	cursor       int64
	lastNotified string
	notified     bool // false until the first successful delivery
	state        State
}

func NewPoller(api homework.StatusAPI, sink Sink, waiter Waiter, logger logrus.FieldLogger, startCursor int64) *Poller {
	return &Poller{
		api:    api,
		sink:   sink,
		waiter: waiter,
		logger: logger,
		cursor: startCursor,
		state:  StateIdle,
	}
}

// Cursor returns the from_date the next fetch will use.
func (p *Poller) Cursor() int64 { return p.cursor }

// LastNotified returns the last delivered text and whether anything was delivered yet.
func (p *Poller) LastNotified() (string, bool) { return p.lastNotified, p.notified }

// State returns the step the poller executed last.
func (p *Poller) State() State { return p.state }

// Run loops until ctx is cancelled. Cancellation is a clean stop and returns nil.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.WithField("from_date", p.cursor).Info("Homework poller started")
	for {
		_ = p.RunCycle(ctx)
		if ctx.Err() != nil {
			break
		}

		p.state = StateSleeping
		if err := p.waiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				break
			}
			return err
		}
	}
	p.logger.Info("Homework poller stopped")
	return nil
}

// RunCycle performs one poll cycle. A failed cycle is reported to the chat
// (unless ctx was cancelled) and its error is returned for the caller's information.
func (p *Poller) RunCycle(ctx context.Context) error {
	err := p.poll(ctx)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		p.logger.WithError(err).Debug("poll cycle interrupted by shutdown")
		return err
	}
	p.reportFailure(ctx, err)
	return err
}

func (p *Poller) poll(ctx context.Context) error {
	p.state = StateFetching
	raw, err := p.api.Fetch(ctx, p.cursor)
	if err != nil {
		return err
	}

	p.state = StateValidating
	envelope, err := ValidateResponse(raw)
	if err != nil {
		return err
	}
	homeworks, next := envelope.Homeworks, envelope.CurrentDate
	p.logger.WithFields(logrus.Fields{"count": len(homeworks), "current_date": next}).Debug("Received homework list")
	p.cursor = next

	if len(homeworks) == 0 {
		p.state = StateIdle
		p.logger.Debug("No homework updates")
		return nil
	}

	// Only the most recent record is inspected; older ones in the same batch are dropped.
	latest := homeworks[0]
	p.state = StateFormatting
	text, err := FormatStatus(latest)
	if err != nil {
		return err
	}
	name, _ := latest.Name()
	status, _ := latest.Status()
	p.logger.WithFields(logrus.Fields{
		"homework": name,
		"status":   status,
		"comment":  latest.ReviewerComment(),
	}).Debug("Parsed homework status")

	if !p.isNew(text) {
		p.state = StateIdle
		p.logger.Debug("Status unchanged, notification suppressed")
		return nil
	}

	p.state = StateNotifying
	if err := p.sink.Deliver(ctx, text); err != nil {
		return err
	}
	p.remember(text)
	return nil
}

func (p *Poller) reportFailure(ctx context.Context, err error) {
	kind, _ := homework.KindOf(err)
	entry := p.logger.WithError(err).WithField("kind", kind.String())
	switch kind {
	case homework.KindEndpoint:
		entry.Error("Homework API request failed")
	case homework.KindShape, homework.KindMissingKey, homework.KindListShape:
		entry.Error("Unexpected homework API response")
	case homework.KindMissingField, homework.KindUnknownStatus:
		entry.Error("Unexpected homework record")
	case homework.KindDelivery:
		entry.Error("Failed to deliver status notification")
	default:
		entry.Error("Poll cycle failed")
	}

	text := FailureMessage(err)
	if !p.isNew(text) {
		p.logger.Debug("Failure already reported, notification suppressed")
		return
	}

	p.state = StateNotifying
	if derr := p.sink.Deliver(ctx, text); derr != nil {
		p.logger.WithError(derr).Error("Failed to deliver failure report")
		return
	}
	p.remember(text)
}

func (p *Poller) isNew(text string) bool {
	return !p.notified || text != p.lastNotified
}

func (p *Poller) remember(text string) {
	p.lastNotified = text
	p.notified = true
}
