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
	"fmt"

	"github.com/benjcooley/x16-emulator-mcp/logger"
)

// tag for log entries originating in this package.
const logTag = "input"

// Mode selects how literal characters are mapped to key events.
type Mode int

// List of valid Mode values.
const (
	// ModeASCII types natural text. Upper case letters receive an explicit
	// shift chord even though the character table never requires one
	ModeASCII Mode = iota

	// ModePETSCII types in terms of the device's native charset, where
	// unshifted letter keys already produce upper case
	ModePETSCII
)

func (m Mode) String() string {
	switch m {
	case ModeASCII:
		return "ascii"
	case ModePETSCII:
		return "petscii"
	}
	return "unknown"
}

// ParseMode converts a mode name, as it appears in a control-plane request,
// to a Mode value. Unrecognised names default to ModePETSCII, the machine's
// power-on state.
func ParseMode(s string) Mode {
	if s == "ascii" {
		return ModeASCII
	}
	return ModePETSCII
}

// minimum delay between consecutive key events, in milliseconds. key-up
// events and modifier transitions always use this delay; key-down events
// use the typing rate
const minEventDelayMs = 1

// translator carries the state of one translation pass: the queue being
// built and the logical shift/ctrl state, which persists across characters
// until a chord requires it to change.
type translator struct {
	queue *Queue
	rate  int
	mode  Mode
	shift bool
	ctrl  bool

	// warnings raised while translating. belongs to this pass alone, so
	// concurrent translations never see each other's warnings
	warnings []string
}

// warnf records a translation warning in the central log and in the warning
// list returned by TranslateWithWarnings().
func (tr *translator) warnf(pattern string, args ...interface{}) {
	logger.Warnf(logTag, pattern, args...)
	tr.warnings = append(tr.warnings, fmt.Sprintf(pattern, args...))
}

// Translate converts text to a queue of timed key events, ready for
// submission to a Scheduler.
//
// typingRateMs is the delay before each key-down event, clamped to a
// minimum. Macro tokens between backtick delimiters are resolved by the
// macro parser. The returned queue is never nil; text with no mappable
// content yields an empty queue.
func Translate(text string, typingRateMs int, mode Mode) *Queue {
	q, _ := TranslateWithWarnings(text, typingRateMs, mode)
	return q
}

// TranslateWithWarnings is like Translate() but also returns the warnings
// raised during the translation, for callers that report them back to
// whoever supplied the text. The warnings appear in the central log either
// way.
func TranslateWithWarnings(text string, typingRateMs int, mode Mode) (*Queue, []string) {
	if typingRateMs < minEventDelayMs {
		typingRateMs = minEventDelayMs
	}

	tr := &translator{
		queue: NewQueue(),
		rate:  typingRateMs,
		mode:  mode,
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		// escape sequences for the two special keys that are awkward to
		// carry in request text
		if c == '\\' && i+1 < len(text) {
			switch text[i+1] {
			case 'n':
				c = '\n'
				i++
			case 't':
				c = '\t'
				i++
			}
		}

		if c == macroDelimiter {
			consumed := tr.parseMacro(text, i+1)
			next := i + 1 + consumed

			if next < len(text) && text[next] == macroDelimiter {
				if consumed == 0 {
					tr.warnf("empty macro in input")
				}
				// skip the closing delimiter
				i = next
			} else {
				if consumed == 0 {
					tr.warnf("stray macro delimiter in input")
				}
				// no closing delimiter. carry on from wherever the macro
				// scan stopped
				i = next - 1
			}
			continue
		}

		m, ok := lookupChar(c)
		if !ok {
			// no equivalent on the emulated keyboard. expected for much of
			// the 7-bit range so not even worth a log entry
			continue
		}

		// in ASCII mode an upper case letter needs shift regardless of what
		// the character table says
		shift := m.shift || (tr.mode == ModeASCII && c >= 'A' && c <= 'Z')
		tr.emitKey(m.code, shift, m.ctrl)
	}

	// never leave a modifier held at the end of a queue
	if tr.shift {
		tr.queue.add(KeyEvent{Code: codeLeftShift, Down: false, WaitMs: minEventDelayMs})
		tr.shift = false
	}
	if tr.ctrl {
		tr.queue.add(KeyEvent{Code: codeLeftCtrl, Down: false, WaitMs: minEventDelayMs})
		tr.ctrl = false
	}

	return tr.queue, tr.warnings
}

// emitKey adds the events for one key chord to the queue: any modifier
// transitions needed to reach the wanted shift/ctrl state, then key-down and
// key-up. Transition and key-up events use the fixed minimum delay; the
// key-down event carries the typing rate.
func (tr *translator) emitKey(code uint8, shift bool, ctrl bool) {
	if shift != tr.shift {
		tr.queue.add(KeyEvent{Code: codeLeftShift, Down: shift, WaitMs: minEventDelayMs})
		tr.shift = shift
	}
	if ctrl != tr.ctrl {
		tr.queue.add(KeyEvent{Code: codeLeftCtrl, Down: ctrl, WaitMs: minEventDelayMs})
		tr.ctrl = ctrl
	}

	tr.queue.add(KeyEvent{Code: code, Down: true, WaitMs: tr.rate})
	tr.queue.add(KeyEvent{Code: code, Down: false, WaitMs: minEventDelayMs})
}
