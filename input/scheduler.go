// This file is part of x16-emulator-mcp.
//
// x16-emulator-mcp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// x16-emulator-mcp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with x16-emulator-mcp.  If not, see <https://www.gnu.org/licenses/>.

package input

import (
	"time"

	"github.com/benjcooley/x16-emulator-mcp/logger"
)

// KeyInjector implementations deliver a single key transition to the
// emulated machine's keyboard input path. It is the only side effect that
// escapes this package.
type KeyInjector interface {
	InjectKey(down bool, code uint8)
}

// Scheduler owns an ordered list of pending event queues and replays them
// against a KeyInjector at the pace demanded by each event's wait time.
//
// The scheduler performs no locking and never blocks. All state is mutated
// by Submit() and Tick() only, and both must be called from the same
// goroutine, nominally the one driving the emulated machine's frame loop. A
// host accepting submissions from elsewhere (a request handler, say) must
// marshal them onto that goroutine itself.
type Scheduler struct {
	inj KeyInjector

	// how the scheduler learns the current time on submission. replaceable
	// for testing
	clock func() time.Time

	// exactly one queue, the head of the pending list, is being drained at
	// any time. cursor indexes the next undispatched event in that queue
	pending []*Queue
	cursor  int

	// elapsed wall-clock time not yet spent on dispatching events
	accumulated time.Duration
	lastTick    time.Time
	active      bool
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(inj KeyInjector) *Scheduler {
	return &Scheduler{
		inj:   inj,
		clock: time.Now,
	}
}

// Submit appends a queue to the pending list, taking ownership of it. If the
// scheduler was idle it becomes active and the timing reference is reset.
//
// A nil queue is rejected with an error log and no other effect.
func (s *Scheduler) Submit(q *Queue) {
	if q == nil {
		logger.Errorf(logTag, "nil queue submitted to scheduler")
		return
	}

	s.pending = append(s.pending, q)

	if !s.active {
		s.active = true
		s.cursor = 0
		s.accumulated = 0
		s.lastTick = s.clock()
	}

	logger.Logf(logTag, "queue with %d events submitted (%d total pending)", q.Len(), s.PendingEventCount())
}

// SubmitText translates text and submits the resulting queue. Equivalent to
// calling Submit() with the result of Translate().
func (s *Scheduler) SubmitText(text string, typingRateMs int, mode Mode) {
	s.Submit(Translate(text, typingRateMs, mode))
}

// Tick dispatches every event whose accumulated wait time has elapsed by
// time now. The host must call Tick() once per frame.
//
// Unspent accumulated time is retained for the next tick, so draining keeps
// pace with wall-clock time whatever the frame rate.
func (s *Scheduler) Tick(now time.Time) {
	if !s.active {
		return
	}

	s.accumulated += now.Sub(s.lastTick)
	s.lastTick = now

	for len(s.pending) > 0 {
		q := s.pending[0]

		for s.cursor < q.Len() {
			ev := q.events[s.cursor]

			wait := time.Duration(ev.Wait()) * time.Millisecond
			if s.accumulated < wait {
				// not enough time has passed for the next event. done until
				// the next tick
				return
			}
			s.accumulated -= wait
			s.cursor++

			// a WaitEvent requires no external call; the pause has already
			// been paid for out of the accumulator
			if kv, ok := ev.(KeyEvent); ok {
				s.inj.InjectKey(kv.Down, kv.Code)
			}
		}

		// head queue fully drained. continue draining the next queue in the
		// same tick if time remains
		s.pending = s.pending[1:]
		s.cursor = 0
	}

	s.active = false
	s.accumulated = 0
	logger.Logf(logTag, "all input queues drained")
}

// PendingEventCount returns the total number of undispatched events across
// all pending queues.
func (s *Scheduler) PendingEventCount() int {
	var n int
	for i, q := range s.pending {
		n += q.Len()
		if i == 0 {
			n -= s.cursor
		}
	}
	return n
}

// Active returns true if undispatched events are pending.
func (s *Scheduler) Active() bool {
	return s.active
}

// Flush discards all pending queues and returns the scheduler to idle. A
// replay abandoned mid-chord may have left a modifier key down, so releases
// for both modifiers are injected unconditionally. Harmless if they were
// already up.
func (s *Scheduler) Flush() {
	if !s.active {
		return
	}

	n := s.PendingEventCount()
	s.pending = nil
	s.cursor = 0
	s.accumulated = 0
	s.active = false

	s.inj.InjectKey(false, codeLeftShift)
	s.inj.InjectKey(false, codeLeftCtrl)

	logger.Logf(logTag, "flushed %d pending events", n)
}
