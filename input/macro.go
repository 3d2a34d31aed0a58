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
	"strconv"
	"strings"
)

// the character that opens and closes a macro token in input text.
const macroDelimiter = '`'

type actionKind int

const (
	keyAction actionKind = iota
	waitAction
)

// macroAction is the resolution of a named macro. A keyAction types a key
// chord; a waitAction pauses the replay.
type macroAction struct {
	kind  actionKind
	code  uint8
	shift bool
	ctrl  bool

	// waitAction only. milliseconds
	pause int
}

func key(code uint8) macroAction {
	return macroAction{kind: keyAction, code: code}
}

func shiftKey(code uint8) macroAction {
	return macroAction{kind: keyAction, code: code, shift: true}
}

func ctrlKey(code uint8) macroAction {
	return macroAction{kind: keyAction, code: code, ctrl: true}
}

func pause(ms int) macroAction {
	return macroAction{kind: waitAction, pause: ms}
}

// macroTable is the static name to action table. Built once at package
// initialisation and never written to after that. Lookup is by upper-cased
// name.
var macroTable = buildMacroTable()

func buildMacroTable() map[string]macroAction {
	t := map[string]macroAction{
		// function keys
		"F1": key(112), "F2": key(113), "F3": key(114), "F4": key(115),
		"F5": key(116), "F6": key(117), "F7": key(118), "F8": key(119),
		"F9": key(120), "F10": key(121), "F11": key(122), "F12": key(123),

		// cursor keys
		"UP": key(83), "DOWN": key(84), "LEFT": key(79), "RIGHT": key(89),

		// navigation
		"HOME": key(80), "END": key(81), "PAGEUP": key(85), "PAGEDOWN": key(86),
		"INSERT": key(75), "DELETE": key(76),

		// control keys
		"ENTER": key(43), "RETURN": key(43), "TAB": key(16),
		"BACKSPACE": key(15), "ESCAPE": key(110), "SPACE": key(61),

		// screen control. CLR is shift+HOME and INST is shift+BACKSPACE, as
		// on the real keyboard
		"CLR": shiftKey(80), "INST": shiftKey(15),

		// colour codes are ctrl+number chords (Commodore convention:
		// ctrl+1 is black through to ctrl+8 for yellow)
		"BLK": ctrlKey(2), "WHT": ctrlKey(3), "RED": ctrlKey(4),
		"CYN": ctrlKey(5), "PUR": ctrlKey(6), "GRN": ctrlKey(7),
		"BLU": ctrlKey(8), "YEL": ctrlKey(9),

		// reverse video on/off are ctrl+9 and ctrl+0
		"RVS_ON": ctrlKey(10), "RVS_OFF": ctrlKey(11),

		// a fixed-length named pause, for scripts that don't care about the
		// exact duration. `_N` gives full control
		"PAUSE": pause(500),
	}

	// joystick names resolve to keyboard equivalents so that scripts written
	// against a controller keep working through the keyboard path. cursor
	// keys for directions; space and enter for the A and B buttons
	joy := map[string]macroAction{
		"UP": key(83), "DOWN": key(84), "LEFT": key(79), "RIGHT": key(89),
		"A": key(61), "B": key(43), "X": key(47), "Y": key(22),
		"BACK": key(32), "START": key(32),
	}
	for n, act := range joy {
		t["JOY_"+n] = act
		t["JOY1_"+n] = act
		t["JOY2_"+n] = act
		t["JOY3_"+n] = act
		t["JOY4_"+n] = act
	}
	for _, n := range []string{"UP", "DOWN", "LEFT", "RIGHT"} {
		t["DPAD_"+n] = joy[n]
	}
	for _, n := range []string{"A", "B", "X", "Y"} {
		t["BUTTON_"+n] = joy[n]
	}

	return t
}

// macro name characters. scanning a macro token stops at the first character
// outside this set
func isMacroNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_' || c == '-' || c == '.'
}

// parseMacro scans the macro token starting at position start (the character
// after the opening delimiter), resolving it to zero or more queued events.
// Returns the number of characters consumed, which is zero if no macro name
// characters were found.
//
// None of the failure modes are fatal: an unknown name, a bad wait value or
// a missing closing delimiter is logged as a warning and emits nothing.
func (tr *translator) parseMacro(text string, start int) int {
	end := start
	for end < len(text) && isMacroNameChar(text[end]) {
		end++
	}
	if end == start {
		return 0
	}

	name := strings.ToUpper(text[start:end])
	consumed := end - start

	// a token with no closing delimiter emits nothing. the partial name is
	// included in the warning to help find the typo
	if end >= len(text) || text[end] != macroDelimiter {
		tr.warnf("unterminated macro: `%s", name)
		return consumed
	}

	// dynamic wait
	if name[0] == '_' && len(name) > 1 {
		tr.parseWait(name[1:])
		return consumed
	}

	if act, ok := macroTable[name]; ok {
		switch act.kind {
		case waitAction:
			tr.queue.add(WaitEvent{PauseMs: act.pause})
		case keyAction:
			tr.emitKey(act.code, act.shift, act.ctrl)
		}
		return consumed
	}

	// raw key number: `K43` types key number 43 directly
	if name[0] == 'K' && len(name) > 1 {
		n, err := strconv.Atoi(name[1:])
		if err != nil || n < 1 || n > 255 {
			tr.warnf("invalid raw key number: %s", name)
			return consumed
		}
		tr.emitKey(uint8(n), false, false)
		return consumed
	}

	tr.warnf("unknown macro: %s", name)
	return consumed
}

// parseWait handles the value part of a `_N` macro. A value containing a
// decimal point is in seconds, otherwise it is in milliseconds.
func (tr *translator) parseWait(value string) {
	var ms int

	if strings.Contains(value, ".") {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			tr.warnf("invalid wait value: _%s", value)
			return
		}
		ms = int(f * 1000)
	} else {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			tr.warnf("invalid wait value: _%s", value)
			return
		}
		ms = n
	}

	tr.queue.add(WaitEvent{PauseMs: ms})
}
