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

package test

import (
	"testing"
	"time"
)

// Equate is used to test equality between one value and another. Both values
// must be of the same type. Convenient when writing tests where the expected
// value is a literal:
//
//	n := queue.Len()
//	test.Equate(t, n, 10)
//
// This is by no means a comprehensive comparison function but it is good
// enough for the types used in this project.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	default:
		t.Fatalf("unhandled type for Equate() function (%T)", v)

	case nil:
		if expectedValue != nil {
			t.Errorf("equation of type %T failed (%v - wanted nil)", v, v)
		}

	case int:
		switch ev := expectedValue.(type) {
		case int:
			if v != ev {
				t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case uint8:
		switch ev := expectedValue.(type) {
		case int:
			if v != uint8(ev) {
				t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, ev)
			}
		case uint8:
			if v != ev {
				t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not compatible (%T and %T)", v, ev)
		}

	case string:
		switch ev := expectedValue.(type) {
		case string:
			if v != ev {
				t.Errorf("equation of type %T failed (%s - wanted %s)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case bool:
		switch ev := expectedValue.(type) {
		case bool:
			if v != ev {
				t.Errorf("equation of type %T failed (%v - wanted %v)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case time.Duration:
		switch ev := expectedValue.(type) {
		case time.Duration:
			if v != ev {
				t.Errorf("equation of type %T failed (%v - wanted %v)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}
	}
}
