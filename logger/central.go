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

package logger

import (
	"fmt"
	"io"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one log.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger at the default (info) level.
func Log(tag, detail string) {
	central.log(LevelInfo, tag, detail)
}

// Logf adds a formatted entry to the central logger at the default (info)
// level.
func Logf(tag, pattern string, args ...interface{}) {
	central.log(LevelInfo, tag, fmt.Sprintf(pattern, args...))
}

// Warnf adds a formatted entry to the central logger at the warning level.
func Warnf(tag, pattern string, args ...interface{}) {
	central.log(LevelWarn, tag, fmt.Sprintf(pattern, args...))
}

// Errorf adds a formatted entry to the central logger at the error level.
func Errorf(tag, pattern string, args ...interface{}) {
	central.log(LevelError, tag, fmt.Sprintf(pattern, args...))
}

// Clear all entries from central logger.
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho echoes new log entries to io.Writer as they arrive. A nil writer
// disables echoing.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}

// SetCheckpoint marks the current end of the central log. Entries added after
// the call can be retrieved with SinceCheckpoint().
func SetCheckpoint() {
	central.setCheckpoint()
}

// SinceCheckpoint returns a copy of the entries at or above the threshold
// level added since the most recent call to SetCheckpoint(). Returns nil if
// no checkpoint has been set.
func SinceCheckpoint(threshold Level) []Entry {
	return central.sinceCheckpoint(threshold)
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries.
func BorrowLog(f func([]Entry)) {
	central.borrowLog(f)
}
