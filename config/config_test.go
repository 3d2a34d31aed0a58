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

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benjcooley/x16-emulator-mcp/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "x16mcp.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoadFile(t *testing.T) {
	p := writeFile(t, `
listen_address = "0.0.0.0:8800"
emulator_endpoint = "http://127.0.0.1:7700"
typing_rate_ms = 25
tick_ms = 8
log_echo = true
`)

	cfg, err := config.NewLoader(p).Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8800", cfg.ListenAddress)
	assert.Equal(t, "http://127.0.0.1:7700", cfg.EmulatorEndpoint)
	assert.Equal(t, 25, cfg.TypingRateMs)
	assert.Equal(t, 8*time.Millisecond, cfg.TickInterval())
	assert.True(t, cfg.LogEcho)
}

func TestLoadPartialFile(t *testing.T) {
	// fields not in the file keep their default values
	p := writeFile(t, `typing_rate_ms = 40`)

	cfg, err := config.NewLoader(p).Load()
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.TypingRateMs)
	assert.Equal(t, config.Defaults().ListenAddress, cfg.ListenAddress)
	assert.Equal(t, config.Defaults().EmulatorEndpoint, cfg.EmulatorEndpoint)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := config.NewLoader(filepath.Join(t.TempDir(), "no-such-file.toml")).Load()
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := config.NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoadBadTOML(t *testing.T) {
	p := writeFile(t, `typing_rate_ms = `)
	_, err := config.NewLoader(p).Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Defaults()
	assert.NoError(t, cfg.Validate())

	cfg = config.Defaults()
	cfg.ListenAddress = ""
	assert.Error(t, cfg.Validate())

	cfg = config.Defaults()
	cfg.EmulatorEndpoint = ""
	assert.Error(t, cfg.Validate())

	cfg = config.Defaults()
	cfg.TypingRateMs = 0
	assert.Error(t, cfg.Validate())

	cfg = config.Defaults()
	cfg.TickMs = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateOnLoad(t *testing.T) {
	p := writeFile(t, `tick_ms = 0`)
	_, err := config.NewLoader(p).Load()
	assert.Error(t, err)
}

func TestWatchReload(t *testing.T) {
	p := writeFile(t, `typing_rate_ms = 10`)

	l := config.NewLoader(p)
	_, err := l.Load()
	require.NoError(t, err)

	changed := make(chan config.Config, 1)
	require.NoError(t, l.Watch(func(cfg config.Config) {
		select {
		case changed <- cfg:
		default:
		}
	}))
	defer l.End()

	require.NoError(t, os.WriteFile(p, []byte(`typing_rate_ms = 55`), 0644))

	select {
	case cfg := <-changed:
		assert.Equal(t, 55, cfg.TypingRateMs)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload notification")
	}
}
