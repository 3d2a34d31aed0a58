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

// keyAt returns the event at index i as a KeyEvent, failing the test if it
// is any other variant.
func keyAt(t *testing.T, q *Queue, i int) KeyEvent {
	t.Helper()
	kv, ok := q.events[i].(KeyEvent)
	if !ok {
		t.Fatalf("event %d is not a KeyEvent (%T)", i, q.events[i])
	}
	return kv
}

func TestPlainText(t *testing.T) {
	q := Translate("abc", 10, ModeASCII)

	// two events per character, no modifier transitions
	test.Equate(t, q.Len(), 6)

	codes := []uint8{31, 50, 48}
	for i, c := range codes {
		down := keyAt(t, q, i*2)
		up := keyAt(t, q, i*2+1)
		test.Equate(t, down.Code, c)
		test.Equate(t, down.Down, true)
		test.Equate(t, down.WaitMs, 10)
		test.Equate(t, up.Code, c)
		test.Equate(t, up.Down, false)
		test.Equate(t, up.WaitMs, 1)
	}
}

func TestUppercaseShift(t *testing.T) {
	// the canonical ordering test: shift wraps the H but not the i, and the
	// ENTER macro follows without any transitions
	q := Translate("Hi`ENTER`", 30, ModeASCII)
	test.Equate(t, q.Len(), 8)

	expected := []KeyEvent{
		{Code: codeLeftShift, Down: true, WaitMs: 1},
		{Code: 36, Down: true, WaitMs: 30},
		{Code: 36, Down: false, WaitMs: 1},
		{Code: codeLeftShift, Down: false, WaitMs: 1},
		{Code: 24, Down: true, WaitMs: 30},
		{Code: 24, Down: false, WaitMs: 1},
		{Code: 43, Down: true, WaitMs: 30},
		{Code: 43, Down: false, WaitMs: 1},
	}
	for i, e := range expected {
		kv := keyAt(t, q, i)
		test.Equate(t, kv.Code, e.Code)
		test.Equate(t, kv.Down, e.Down)
		test.Equate(t, kv.WaitMs, e.WaitMs)
	}
}

func TestNativeCharsetNoShift(t *testing.T) {
	// in the native charset mode upper case letters type without shift
	q := Translate("HI", 10, ModePETSCII)
	test.Equate(t, q.Len(), 4)
	for i := 0; i < q.Len(); i++ {
		kv := keyAt(t, q, i)
		if kv.Code == codeLeftShift {
			t.Errorf("unexpected shift transition in native charset mode")
		}
	}
}

func TestCtrlColourRelease(t *testing.T) {
	// a colour chord raises ctrl once and the following plain text releases
	// it once. there must never be a transition per character
	q := Translate("`RED`abc", 10, ModeASCII)

	var ctrlDown, ctrlUp int
	for i := 0; i < q.Len(); i++ {
		kv := keyAt(t, q, i)
		if kv.Code == codeLeftCtrl {
			if kv.Down {
				ctrlDown++
			} else {
				ctrlUp++
			}
		}
	}
	test.Equate(t, ctrlDown, 1)
	test.Equate(t, ctrlUp, 1)

	// ctrl-down, colour key down/up, ctrl-up, then three plain characters
	test.Equate(t, q.Len(), 10)
}

func TestTrailingModifierRelease(t *testing.T) {
	// a queue ending with a modifier still held gets a closing release
	q := Translate("`RED`", 10, ModeASCII)
	test.Equate(t, q.Len(), 4)

	last := keyAt(t, q, q.Len()-1)
	test.Equate(t, last.Code, codeLeftCtrl)
	test.Equate(t, last.Down, false)
}

func TestUnknownMacroSkipped(t *testing.T) {
	// characters before and after an unknown macro still translate
	q := Translate("a`FOOBAR`b", 10, ModeASCII)
	test.Equate(t, q.Len(), 4)
	test.Equate(t, keyAt(t, q, 0).Code, uint8(31))
	test.Equate(t, keyAt(t, q, 2).Code, uint8(50))
}

func TestTranslationWarningsReturned(t *testing.T) {
	q, warnings := TranslateWithWarnings("a`FOOBAR`b", 10, ModeASCII)
	test.Equate(t, q.Len(), 4)
	test.Equate(t, len(warnings), 1)
	test.Equate(t, warnings[0], "unknown macro: FOOBAR")

	// the warning list belongs to a single translation pass. a later pass
	// starts empty, whatever earlier passes raised
	_, warnings = TranslateWithWarnings("abc", 10, ModeASCII)
	test.Equate(t, len(warnings), 0)
}

func TestUnterminatedMacro(t *testing.T) {
	// an unterminated token emits nothing but the characters before it are
	// unaffected
	q := Translate("ab`ENTER", 10, ModeASCII)
	test.Equate(t, q.Len(), 4)
}

func TestEmptyInput(t *testing.T) {
	q := Translate("", 10, ModeASCII)
	test.Equate(t, q.Len(), 0)
	test.Equate(t, q.TotalWait(), 0)
}

func TestUnmappedCharactersSkipped(t *testing.T) {
	// no curly braces on the emulated keyboard
	q := Translate("a{b}", 10, ModeASCII)
	test.Equate(t, q.Len(), 4)
}

func TestEscapeSequences(t *testing.T) {
	q := Translate(`a\nb`, 10, ModeASCII)
	test.Equate(t, q.Len(), 6)
	test.Equate(t, keyAt(t, q, 2).Code, uint8(43))

	q = Translate(`a\tb`, 10, ModeASCII)
	test.Equate(t, keyAt(t, q, 2).Code, uint8(16))
}

func TestTypingRateClamp(t *testing.T) {
	q := Translate("a", 0, ModeASCII)
	test.Equate(t, keyAt(t, q, 0).WaitMs, 1)
}

func TestReplayTimeLowerBound(t *testing.T) {
	// total replay time for N characters at rate R is at least N*R
	q := Translate("abcde", 20, ModeASCII)
	if q.TotalWait() < 5*20 {
		t.Errorf("replay time %dms below lower bound %dms", q.TotalWait(), 5*20)
	}
}
