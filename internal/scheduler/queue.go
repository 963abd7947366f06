package scheduler

import (
	"time"

	"github.com/fidgetd/fidget/internal/event"
)

// queued is the scheduler's working record for one periodic action.
// remaining is delta-encoded: it counts from the due time of the entry
// immediately ahead in the queue, not from the clock reference.
type queued struct {
	target    event.Target
	interval  time.Duration
	remaining time.Duration
}

// deltaQueue keeps pending events ordered soonest-due first. The prefix sum
// of remaining through entry i is entry i's absolute time until due; every
// insert and pop must preserve that invariant.
type deltaQueue struct {
	events []queued
}

func (q *deltaQueue) len() int {
	return len(q.events)
}

// insertionPoint walks from the front looking for the first entry due later
// than ev, decrementing ev.remaining by each entry passed so that it ends up
// delta-encoded against its predecessor. Ties insert after the existing
// entry, so earlier-registered events fire first on exact ties.
func (q *deltaQueue) insertionPoint(ev *queued) int {
	ev.remaining = ev.interval
	for i := range q.events {
		if ev.remaining < q.events[i].remaining {
			return i
		}
		ev.remaining -= q.events[i].remaining
	}
	return len(q.events)
}

// insert schedules ev a full interval from the queue's time origin. The
// successor's delta shrinks by ev's final remaining: ev now waits in front
// of it.
func (q *deltaQueue) insert(ev queued) {
	i := q.insertionPoint(&ev)
	if i < len(q.events) {
		q.events[i].remaining -= ev.remaining
	}
	q.events = append(q.events, queued{})
	copy(q.events[i+1:], q.events[i:])
	q.events[i] = ev
}

// popFront removes and returns the soonest-due entry. ok is false when the
// queue is empty, which is a normal idle state rather than an error.
func (q *deltaQueue) popFront() (queued, bool) {
	if len(q.events) == 0 {
		return queued{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}
