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

// Queue is an ordered sequence of timed input events produced by one call to
// the Translate() function.
//
// Once a queue has been submitted to a Scheduler, ownership passes to the
// scheduler and the submitter must not touch the queue again.
type Queue struct {
	events []Event
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return &Queue{
		events: make([]Event, 0, 64),
	}
}

func (q *Queue) add(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	return len(q.events)
}

// TotalWait returns the sum of the wait times of every event in the queue,
// in milliseconds. This is the minimum wall-clock time a full replay of the
// queue will take.
func (q *Queue) TotalWait() int {
	var t int
	for _, ev := range q.events {
		t += ev.Wait()
	}
	return t
}
