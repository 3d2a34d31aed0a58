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
	"testing"

	"github.com/benjcooley/x16-emulator-mcp/test"
)

func TestWaitMilliseconds(t *testing.T) {
	q := Translate("`_500`", 10, ModeASCII)
	test.Equate(t, q.Len(), 1)

	wv, ok := q.events[0].(WaitEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, wv.PauseMs, 500)
}

func TestWaitSeconds(t *testing.T) {
	// a fractional value is in seconds
	q := Translate("`_1.5`", 10, ModeASCII)
	test.Equate(t, q.Len(), 1)
	test.Equate(t, q.events[0].(WaitEvent).PauseMs, 1500)

	q = Translate("`_0.25`", 10, ModeASCII)
	test.Equate(t, q.events[0].(WaitEvent).PauseMs, 250)
}

func TestWaitBetweenText(t *testing.T) {
	q := Translate("x`_500`y", 10, ModeASCII)
	test.Equate(t, q.Len(), 5)

	wv, ok := q.events[2].(WaitEvent)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, wv.PauseMs, 500)
}

func TestWaitInvalidValues(t *testing.T) {
	// negative and non-numeric values consume the token but emit nothing
	q := Translate("`_-5`", 10, ModeASCII)
	test.Equate(t, q.Len(), 0)

	q = Translate("`_5x`", 10, ModeASCII)
	test.Equate(t, q.Len(), 0)

	q = Translate("`_-1.5`", 10, ModeASCII)
	test.Equate(t, q.Len(), 0)
}

func TestRawKeyNumber(t *testing.T) {
	q := Translate("`K43`", 10, ModeASCII)
	test.Equate(t, q.Len(), 2)
	test.Equate(t, q.events[0].(KeyEvent).Code, uint8(43))
	test.Equate(t, q.events[0].(KeyEvent).Down, true)
	test.Equate(t, q.events[1].(KeyEvent).Down, false)
}

func TestRawKeyNumberOutOfRange(t *testing.T) {
	q := Translate("`K999`", 10, ModeASCII)
	test.Equate(t, q.Len(), 0)

	q = Translate("`K0`", 10, ModeASCII)
	test.Equate(t, q.Len(), 0)

	q = Translate("`Kxy`", 10, ModeASCII)
	test.Equate(t, q.Len(), 0)
}

func TestMacroNameCaseInsensitive(t *testing.T) {
	q := Translate("`enter`", 10, ModeASCII)
	test.Equate(t, q.Len(), 2)
	test.Equate(t, q.events[0].(KeyEvent).Code, uint8(43))

	q = Translate("`Red`", 10, ModeASCII)
	test.Equate(t, q.events[0].(KeyEvent).Code, codeLeftCtrl)
}

func TestJoystickAliases(t *testing.T) {
	// joystick names resolve to their keyboard equivalents
	q := Translate("`JOY_UP`", 10, ModeASCII)
	test.Equate(t, q.events[0].(KeyEvent).Code, uint8(83))

	q = Translate("`DPAD_LEFT`", 10, ModeASCII)
	test.Equate(t, q.events[0].(KeyEvent).Code, uint8(79))

	q = Translate("`JOY2_A`", 10, ModeASCII)
	test.Equate(t, q.events[0].(KeyEvent).Code, uint8(61))
}

func TestNamedPause(t *testing.T) {
	q := Translate("`PAUSE`", 10, ModeASCII)
	test.Equate(t, q.Len(), 1)
	test.Equate(t, q.events[0].(WaitEvent).PauseMs, 500)
}

func TestShiftedMacro(t *testing.T) {
	// CLR is shift+HOME. the shift chord is raised and released around it
	q := Translate("`CLR`", 10, ModeASCII)
	test.Equate(t, q.Len(), 4)
	test.Equate(t, q.events[0].(KeyEvent).Code, codeLeftShift)
	test.Equate(t, q.events[0].(KeyEvent).Down, true)
	test.Equate(t, q.events[1].(KeyEvent).Code, uint8(80))
	test.Equate(t, q.events[3].(KeyEvent).Code, codeLeftShift)
	test.Equate(t, q.events[3].(KeyEvent).Down, false)
}
