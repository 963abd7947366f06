package scheduler

import (
	"context"
	"time"

	"github.com/fidgetd/fidget/internal/event"
	"github.com/fidgetd/fidget/pkg/logger"
)

const (
	// DefaultStartupDelay elapses once before the first event may fire,
	// giving the environment time to settle.
	DefaultStartupDelay = 250 * time.Millisecond

	// idleYield is slept when the queue is empty so an eventless scheduler
	// still yields time to the OS.
	idleYield = 100 * time.Millisecond

	// pausePoll is the gate polling cadence while injection is suppressed.
	pausePoll = 500 * time.Millisecond

	// pauseLogEvery limits the "Paused..." log to every Nth poll.
	pauseLogEvery = 10
)

// Sink delivers one synthetic input event and reports whether injection is
// currently suppressed. The scheduler is the only caller; the backend handle
// behind a Sink needs no internal locking.
type Sink interface {
	Deliver(t event.Target) error
	Paused() bool
}

// Scheduler drives the delta queue against real time on a single goroutine.
// The queue and the clock reference are owned exclusively by the run loop;
// AddEvent may only be called before Start.
type Scheduler struct {
	queue      deltaQueue
	sink       Sink
	log        logger.Logger
	lastActive time.Time

	// clock seams, replaced in tests
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a Scheduler delivering through sink.
func New(sink Sink, log logger.Logger) *Scheduler {
	s := &Scheduler{
		sink:  sink,
		log:   log,
		now:   time.Now,
		sleep: sleepCtx,
	}
	s.lastActive = s.now()
	return s
}

// AddEvent schedules spec for its first full interval. Call before Start.
func (s *Scheduler) AddEvent(spec event.Spec) {
	s.log.Debug("scheduling %s", spec)
	s.queue.insert(queued{target: spec.Target, interval: spec.Interval})
}

// Pending returns the number of scheduled events.
func (s *Scheduler) Pending() int {
	return s.queue.len()
}

// Start runs the loop forever: it fires events while the gate is open and
// polls the gate at a fixed cadence while closed. It returns only when ctx
// is cancelled or an injection fails; a failed backend connection is not
// expected to self-heal, so the failure propagates instead of being retried.
func (s *Scheduler) Start(ctx context.Context, startupDelay time.Duration) error {
	if err := s.sleep(ctx, startupDelay); err != nil {
		return err
	}
	var noiseCtl uint64
	for {
		for !s.sink.Paused() {
			if err := s.runNext(ctx); err != nil {
				return err
			}
		}
		if noiseCtl%pauseLogEvery == 0 {
			s.log.Info("Paused...")
		}
		noiseCtl++
		if err := s.sleep(ctx, pausePoll); err != nil {
			return err
		}
		// Paused wall-clock time is never charged against pending events.
		s.lastActive = s.now()
	}
}

// runNext performs one active step: pop the earliest event, sleep off any
// delay it still has in wall-clock terms, deliver it, and reinsert it for a
// fresh interval.
func (s *Scheduler) runNext(ctx context.Context) error {
	ev, ok := s.queue.popFront()
	if !ok {
		s.log.Debug("nothing to do...")
		return s.sleep(ctx, idleYield)
	}
	elapsed := s.now().Sub(s.lastActive)
	s.log.Debug("wall time passed since last check: %v", elapsed)
	s.log.Debug("event time remaining: %v", ev.remaining)
	if ev.remaining > elapsed {
		// Sleep for however much is left of this event's delay, minus the
		// wall-clock time already spent since the reference point.
		if err := s.sleep(ctx, ev.remaining-elapsed); err != nil {
			return err
		}
		s.lastActive = s.now()
	} else {
		// Catch-up: the due time already passed. Fast-forward the clock
		// reference by the nominal delay instead of sleeping, so backlog
		// drains without accumulating sleep debt.
		s.lastActive = s.lastActive.Add(ev.remaining)
	}
	s.log.Info("%s (next in %.3fs)", ev.target, ev.interval.Seconds())
	if err := s.sink.Deliver(ev.target); err != nil {
		return err
	}
	s.queue.insert(ev)
	return nil
}

// sleepCtx blocks for d or until ctx is cancelled, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
