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

//go:build !statsview
// +build !statsview

// Package statsview provides a runtime monitor of the running process. It is
// only available when built with the statsview tag.
package statsview

import "io"

// Address of the stats server.
const Address = ""

// Launch is a stub. Build with the statsview tag for a working
// implementation.
func Launch(output io.Writer) {
	output.Write([]byte("no statsview in this build\n"))
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
