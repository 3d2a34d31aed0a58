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

// Package version records the application name and release number.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "x16-emulator-mcp"

// if number is empty then the project was not built using the makefile
var number string

// Version contains the version string for the current build of the project.
//
// If the version string is "unreleased" then the project has been built
// manually (ie. not with the makefile). If the string is "local" then there
// is no vcs information at all.
var Version string

func init() {
	if number != "" {
		Version = number
		return
	}

	Version = "local"
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				Version = fmt.Sprintf("unreleased (%.7s)", s.Value)
			}
		}
	}
}
