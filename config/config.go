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

// Package config handles the service configuration file.
package config

import (
	"time"

	"github.com/benjcooley/x16-emulator-mcp/curated"
)

// Config is the service configuration. The zero value is not useful; start
// from Defaults().
type Config struct {
	// address the control server listens on
	ListenAddress string `toml:"listen_address"`

	// base URL of the emulator's own control socket
	EmulatorEndpoint string `toml:"emulator_endpoint"`

	// default delay between typed characters, in milliseconds. requests can
	// override this per submission
	TypingRateMs int `toml:"typing_rate_ms"`

	// interval between scheduler ticks, in milliseconds
	TickMs int `toml:"tick_ms"`

	// echo log entries to stderr as they arrive
	LogEcho bool `toml:"log_echo"`
}

// Defaults returns the configuration used when no file is present. The
// typing rate matches the emulator's historical injection delay of 10ms per
// character; the tick interval approximates a 60Hz frame rate.
func Defaults() Config {
	return Config{
		ListenAddress:    "localhost:9090",
		EmulatorEndpoint: "http://localhost:9009",
		TypingRateMs:     10,
		TickMs:           16,
	}
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if c.ListenAddress == "" {
		return curated.Errorf("config: listen_address is empty")
	}
	if c.EmulatorEndpoint == "" {
		return curated.Errorf("config: emulator_endpoint is empty")
	}
	if c.TypingRateMs < 1 {
		return curated.Errorf("config: typing_rate_ms must be at least 1 (%d)", c.TypingRateMs)
	}
	if c.TickMs < 1 {
		return curated.Errorf("config: tick_ms must be at least 1 (%d)", c.TickMs)
	}
	return nil
}

// TickInterval returns the tick interval as a time.Duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}
