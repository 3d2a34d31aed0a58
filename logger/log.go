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
	"strings"
	"sync"
	"time"
)

// Level indicates the severity of a log entry.
type Level int

// List of valid Level values.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (lvl Level) String() string {
	switch lvl {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warning"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Tag       string
	Detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	if e.Level >= LevelWarn {
		s.WriteString(fmt.Sprintf("%s: ", e.Level))
	}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// not exposing logger to outside of the package. the package level functions
// can be used to log to the central logger.
type logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// log entries are echoed to this writer as they arrive. may be nil
	echo io.Writer

	// index into entries of the most recent checkpoint. negative when no
	// checkpoint is set
	checkpoint int
}

func newLogger(maxEntries int) *logger {
	return &logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
		checkpoint: -1,
	}
}

func (l *logger) log(level Level, tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	// a repeat of the most recent entry bumps the repeat counter rather than
	// adding a new entry
	if len(l.entries) > 0 {
		e := &l.entries[len(l.entries)-1]
		if detail == e.Detail && tag == e.Tag && level == e.Level {
			e.repeated++
			e.Timestamp = time.Now()
			if l.echo != nil {
				io.WriteString(l.echo, e.String())
			}
			return
		}
	}

	l.entries = append(l.entries, Entry{
		Timestamp: time.Now(),
		Level:     level,
		Tag:       tag,
		Detail:    detail,
	})

	// maintain maximum length, adjusting the checkpoint to match
	if len(l.entries) > l.maxEntries {
		trim := len(l.entries) - l.maxEntries
		l.entries = l.entries[trim:]
		if l.checkpoint >= 0 {
			l.checkpoint -= trim
			if l.checkpoint < 0 {
				l.checkpoint = 0
			}
		}
	}

	if l.echo != nil {
		io.WriteString(l.echo, l.entries[len(l.entries)-1].String())
	}
}

func (l *logger) clear() {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.entries = l.entries[:0]
	l.checkpoint = -1
}

func (l *logger) write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()

	for i := range l.entries {
		io.WriteString(output, l.entries[i].String())
	}
}

func (l *logger) tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

func (l *logger) setEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.echo = output
}

func (l *logger) setCheckpoint() {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.checkpoint = len(l.entries)
}

func (l *logger) sinceCheckpoint(threshold Level) []Entry {
	l.crit.Lock()
	defer l.crit.Unlock()

	if l.checkpoint < 0 {
		return nil
	}

	var c []Entry
	for _, e := range l.entries[l.checkpoint:] {
		if e.Level >= threshold {
			c = append(c, e)
		}
	}
	return c
}

func (l *logger) borrowLog(f func([]Entry)) {
	l.crit.Lock()
	defer l.crit.Unlock()

	f(l.entries)
}
