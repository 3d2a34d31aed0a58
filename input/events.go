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

// Event is a single timed action in a Queue. The two concrete types are
// KeyEvent and WaitEvent.
//
// The value returned by the Wait() function is the time in milliseconds that
// must elapse after the previous event in the queue before the event can be
// dispatched.
type Event interface {
	Wait() int
}

// KeyEvent is a key transition on the emulated keyboard. Code is the
// device's own key number, not an ASCII value.
type KeyEvent struct {
	Code   uint8
	Down   bool
	WaitMs int
}

// Wait implements the Event interface.
func (ev KeyEvent) Wait() int {
	return ev.WaitMs
}

// WaitEvent is a deliberate pause in a replay. Dispatching a WaitEvent has
// no external effect; the pause itself is the event's wait time.
type WaitEvent struct {
	PauseMs int
}

// Wait implements the Event interface.
func (ev WaitEvent) Wait() int {
	return ev.PauseMs
}
