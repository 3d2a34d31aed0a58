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

// Package input turns text into precisely timed synthetic keypresses for the
// emulated machine.
//
// The Translate() function performs a single pass over the supplied text and
// produces a Queue of timed key-down/key-up events. Text can contain macro
// tokens between backticks, standing for special keys, pauses and
// colour/modifier codes:
//
//	hello`ENTER`load"*",8`_500``F1`
//
// A Scheduler owns submitted queues and replays them against a KeyInjector.
// The scheduler never sleeps; all timing is derived from the timestamps
// passed to the Tick() function, which the host must call once per frame.
//
// Translation failures are never fatal. Unknown macros and invalid pause
// values are logged and skipped, and characters with no equivalent on the
// emulated keyboard are dropped silently, so that an automation script with
// a typo keeps moving.
package input
