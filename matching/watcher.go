// Package matching implements the bounded wait for a pending service
// request to be picked up by a provider. While searching, a watcher polls
// the request state on a fixed period and counts down a deadline on a
// one-second tick. There is no backoff and no cap on how many times a human
// may retry.
package matching

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/atuservicios/servicio-api/schema"
)

const logPrefix = "matching"

const (
	DefaultPollInterval     = 3 * time.Second
	DefaultCountdownSeconds = 60
)

// Outcome is a terminal or display-state event of one search.
type Outcome string

const (
	// OutcomeAccepted - a provider took the request; the watcher stopped.
	OutcomeAccepted Outcome = "accepted"
	// OutcomeNoProviders - the countdown ran out with no acceptance; the
	// watcher idles until Retry or Cancel.
	OutcomeNoProviders Outcome = "no_providers"
	// OutcomeCancelled - the caller gave up; the request was cancelled and
	// the watcher stopped.
	OutcomeCancelled Outcome = "cancelled"
)

// Lifecycle is the slice of the datastore the watcher drives.
type Lifecycle interface {
	GetRequest(requestID string) (*schema.ServiceRequest, error)
	CancelRequest(requestID string) error
}

// Broadcaster re-announces a request to providers. Best effort only; a
// failure never fails the search.
type Broadcaster interface {
	BroadcastNewRequest(requestID string) error
}

// Options tune the watcher. Zero values fall back to the production
// defaults; tests shrink the intervals.
type Options struct {
	PollInterval     time.Duration
	TickInterval     time.Duration
	CountdownSeconds int
	Broadcaster      Broadcaster
}

// Watcher tracks one pending request until it is accepted, abandoned or
// cancelled.
type Watcher struct {
	lifecycle Lifecycle
	requestID string
	opts      Options

	mu          sync.Mutex
	searching   bool
	secondsLeft int

	outcomes chan Outcome
	retryCh  chan struct{}
	cancelCh chan struct{}
	done     chan struct{}
}

func NewWatcher(lifecycle Lifecycle, requestID string, opts Options) *Watcher {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.CountdownSeconds <= 0 {
		opts.CountdownSeconds = DefaultCountdownSeconds
	}

	return &Watcher{
		lifecycle:   lifecycle,
		requestID:   requestID,
		opts:        opts,
		searching:   true,
		secondsLeft: opts.CountdownSeconds,
		outcomes:    make(chan Outcome, 4),
		retryCh:     make(chan struct{}, 1),
		cancelCh:    make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
}

// Outcomes yields search outcomes. OutcomeNoProviders may be followed by
// further outcomes after a Retry; OutcomeAccepted and OutcomeCancelled are
// final.
func (w *Watcher) Outcomes() <-chan Outcome {
	return w.outcomes
}

// Searching reports whether the countdown is running.
func (w *Watcher) Searching() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.searching
}

// SecondsLeft reports the remaining countdown.
func (w *Watcher) SecondsLeft() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.secondsLeft
}

// Retry resets the countdown and resumes searching, re-announcing the
// request to providers on a best-effort basis.
func (w *Watcher) Retry() {
	select {
	case w.retryCh <- struct{}{}:
	case <-w.done:
	}
}

// Cancel gives up the search and cancels the request.
func (w *Watcher) Cancel() {
	select {
	case w.cancelCh <- struct{}{}:
	case <-w.done:
	}
}

// Run drives the watcher until acceptance, cancellation or context
// teardown. Both tickers are released on every exit path.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.done)

	poll := time.NewTicker(w.opts.PollInterval)
	defer poll.Stop()
	countdown := time.NewTicker(w.opts.TickInterval)
	defer countdown.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.cancelCh:
			if err := w.lifecycle.CancelRequest(w.requestID); err != nil {
				log.WithField("prefix", logPrefix).WithError(err).Error("cancel request")
			}
			w.setSearching(false)
			w.outcomes <- OutcomeCancelled
			return

		case <-w.retryCh:
			w.mu.Lock()
			w.secondsLeft = w.opts.CountdownSeconds
			w.searching = true
			w.mu.Unlock()

			if w.opts.Broadcaster != nil {
				if err := w.opts.Broadcaster.BroadcastNewRequest(w.requestID); err != nil {
					log.WithField("prefix", logPrefix).WithError(err).Warn("re-broadcast request")
				}
			}

		case <-poll.C:
			if !w.Searching() {
				continue
			}

			req, err := w.lifecycle.GetRequest(w.requestID)
			if err != nil {
				log.WithField("prefix", logPrefix).WithError(err).Error("poll request")
				continue
			}

			if req.Status == schema.REQUEST_ACCEPTED {
				w.setSearching(false)
				w.outcomes <- OutcomeAccepted
				return
			}

			// another session of the same account may have ended the
			// request while this watcher was still counting down
			if schema.TerminalStatus(req.Status) {
				w.setSearching(false)
				w.outcomes <- OutcomeCancelled
				return
			}

		case <-countdown.C:
			w.mu.Lock()
			if !w.searching {
				w.mu.Unlock()
				continue
			}
			w.secondsLeft--
			exhausted := w.secondsLeft <= 0
			if exhausted {
				w.secondsLeft = 0
				w.searching = false
			}
			w.mu.Unlock()

			if exhausted {
				w.outcomes <- OutcomeNoProviders
			}
		}
	}
}

func (w *Watcher) setSearching(searching bool) {
	w.mu.Lock()
	w.searching = searching
	w.mu.Unlock()
}
