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

// X16 key numbers for the modifier keys.
const (
	codeLeftShift uint8 = 44
	codeLeftCtrl  uint8 = 58
)

// the key number zero means "no mapping". characters that resolve to noCode
// are skipped during translation.
const noCode uint8 = 0

// mapping associates a 7-bit character with the X16 key number that types it
// and the modifier state the chord requires.
type mapping struct {
	char  byte
	code  uint8
	shift bool
	ctrl  bool
}

// charTable is the literal source for the lookup table. Letters appear once,
// in lower case: the lookup builder aliases the upper case letters to the
// same key number. Whether an upper case letter also needs shift is decided
// by the typing mode during translation, not here, so that ASCII and native
// charset modes can share the table.
var charTable = []mapping{
	// letters
	{'a', 31, false, false}, {'b', 50, false, false}, {'c', 48, false, false},
	{'d', 33, false, false}, {'e', 19, false, false}, {'f', 34, false, false},
	{'g', 35, false, false}, {'h', 36, false, false}, {'i', 24, false, false},
	{'j', 37, false, false}, {'k', 38, false, false}, {'l', 39, false, false},
	{'m', 52, false, false}, {'n', 51, false, false}, {'o', 25, false, false},
	{'p', 26, false, false}, {'q', 17, false, false}, {'r', 20, false, false},
	{'s', 32, false, false}, {'t', 21, false, false}, {'u', 23, false, false},
	{'v', 49, false, false}, {'w', 18, false, false}, {'x', 47, false, false},
	{'y', 22, false, false}, {'z', 46, false, false},

	// numbers
	{'0', 11, false, false}, {'1', 2, false, false}, {'2', 3, false, false},
	{'3', 4, false, false}, {'4', 5, false, false}, {'5', 6, false, false},
	{'6', 7, false, false}, {'7', 8, false, false}, {'8', 9, false, false},
	{'9', 10, false, false},

	// characters typed as a shifted number key
	{'!', 2, true, false},
	{'@', 3, true, false},
	{'#', 4, true, false},
	{'$', 5, true, false},
	{'%', 6, true, false},
	{'^', 7, true, false},
	{'&', 8, true, false},
	{'*', 9, true, false},
	{'(', 10, true, false},
	{')', 11, true, false},
	{'"', 41, true, false},

	// basic punctuation
	{' ', 61, false, false},
	{',', 53, false, false},
	{'.', 54, false, false},
	{'/', 55, false, false},
	{';', 40, false, false},
	{'\'', 41, false, false},
	{'-', 12, false, false},
	{'=', 13, false, false},
	{'[', 27, false, false},
	{']', 28, false, false},
	{'\\', 29, false, false},

	// control characters
	{'\n', 43, false, false},
	{'\r', 43, false, false},
	{'\t', 16, false, false},
	{'\b', 15, false, false},
}

// charLookup is the table actually consulted during translation. Built once
// at package initialisation; never written to after that.
var charLookup = buildCharLookup()

func buildCharLookup() [128]mapping {
	var lookup [128]mapping

	for _, m := range charTable {
		lookup[m.char] = m

		// upper case letters share the lower case key number
		if m.char >= 'a' && m.char <= 'z' {
			u := m
			u.char = m.char - 'a' + 'A'
			lookup[u.char] = u
		}
	}

	return lookup
}

// lookupChar returns the mapping for a character. The second return value is
// false if the character has no equivalent on the emulated keyboard.
func lookupChar(c byte) (mapping, bool) {
	if c >= 128 || charLookup[c].code == noCode {
		return mapping{}, false
	}
	return charLookup[c], true
}
