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

package curated

import (
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error.
//
// Unlike the Errorf() function in the fmt package the first argument is named
// "pattern" rather than "format". The pattern is kept as the identity of the
// error and is what the Is() and Has() functions match against.
func Errorf(pattern string, values ...interface{}) error {
	// formatting is deferred until Error() is called. only the arguments are
	// stored at this point
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message. Normalisation being the removal
// of duplicate adjacent parts in the message chain. Letter-case and white
// space are unaffected.
//
// Implements the go language error interface.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	// de-duplicate adjacent message parts
	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is checks if the error is a curated error with the specified pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}

	return false
}

// Has checks if the error is a curated error with the specified pattern
// somewhere in the chain of wrapped values.
func Has(err error, pattern string) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for _, v := range err.(curated).values {
		if e, ok := v.(curated); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
