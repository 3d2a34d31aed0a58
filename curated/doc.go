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

// Package curated provides the error type used throughout the project.
// Errors are created with the Errorf() function and can later be tested
// against the pattern they were created with:
//
//	err := curated.Errorf("input: %v", underlying)
//	if curated.Is(err, "input: %v") {
//		...
//	}
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts. This keeps wrapped errors readable when several layers add
// the same prefix.
package curated
