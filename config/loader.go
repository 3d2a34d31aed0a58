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

package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"

	"github.com/benjcooley/x16-emulator-mcp/curated"
	"github.com/benjcooley/x16-emulator-mcp/logger"
)

const logTag = "config"

// Loader reads the configuration file and optionally watches it for changes.
type Loader struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
// An empty path means "no configuration file"; Load() will then return the
// defaults and Watch() is a no-op.
func NewLoader(path string) *Loader {
	return &Loader{
		path: path,
	}
}

// Load reads and validates the configuration file, layered over Defaults().
// A missing file is not an error: the defaults are returned.
func (l *Loader) Load() (Config, error) {
	cfg := Defaults()

	if l.path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		logger.Logf(logTag, "no configuration file at %s, using defaults", l.path)
		return cfg, nil
	}

	if _, err := toml.DecodeFile(l.path, &cfg); err != nil {
		return cfg, curated.Errorf("config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Watch the configuration file for changes, calling onChange with the newly
// loaded configuration after every successful reload. A reload that fails to
// parse or validate is logged and otherwise ignored; the previous
// configuration stays in force.
//
// onChange is called from the watch goroutine.
func (l *Loader) Watch(onChange func(Config)) error {
	if l.path == "" {
		return nil
	}

	var err error
	l.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return curated.Errorf("config: %v", err)
	}

	if err := l.watcher.Add(l.path); err != nil {
		l.watcher.Close()
		l.watcher = nil
		return curated.Errorf("config: %v", err)
	}

	l.done = make(chan bool)

	go func() {
		defer close(l.done)
		for {
			select {
			case ev, ok := <-l.watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				cfg, err := l.Load()
				if err != nil {
					logger.Errorf(logTag, "reload failed: %v", err)
					continue
				}
				logger.Logf(logTag, "configuration reloaded from %s", l.path)
				onChange(cfg)

			case err, ok := <-l.watcher.Errors:
				if !ok {
					return
				}
				logger.Errorf(logTag, "watch: %v", err)
			}
		}
	}()

	return nil
}

// End stops watching the configuration file. The Loader can still Load()
// after End() has returned.
func (l *Loader) End() {
	if l.watcher == nil {
		return
	}
	l.watcher.Close()
	<-l.done
	l.watcher = nil
}
