// Package scheduler provides the periodic input-event scheduling core of
// fidget. It multiplexes N independently periodic events on a single
// goroutine using a delta-encoded queue: each pending entry stores its wait
// time relative to the entry ahead of it, so the queue stays implicitly
// sorted with plain linear insertion and no stored absolute deadlines.
//
// The run loop owns a wall-clock reference point and corrects for drift: when
// real time has already passed an event's due time it fast-forwards the
// reference instead of sleeping, trading punctuality for throughput under
// backlog. Injection is suppressed while the activity gate reports the user
// present; time spent paused is never charged against any pending event.
package scheduler
