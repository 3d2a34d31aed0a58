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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/benjcooley/x16-emulator-mcp/config"
	"github.com/benjcooley/x16-emulator-mcp/control"
	"github.com/benjcooley/x16-emulator-mcp/curated"
	"github.com/benjcooley/x16-emulator-mcp/emulator"
	"github.com/benjcooley/x16-emulator-mcp/input"
	"github.com/benjcooley/x16-emulator-mcp/logger"
	"github.com/benjcooley/x16-emulator-mcp/statsview"
	"github.com/benjcooley/x16-emulator-mcp/version"
)

const logTag = "main"

// number of control requests that can be waiting for the tick loop before
// the control server starts refusing work
const commandBacklog = 64

// host connects the control server to the scheduler. the scheduler is only
// ever touched from the tick loop goroutine; control requests are marshalled
// onto that goroutine through the commands channel.
type host struct {
	commands chan func(sched *input.Scheduler)

	// most recent status snapshot. published by the tick loop, read by any
	// number of control requests
	status atomic.Value
}

func newHost() *host {
	h := &host{
		commands: make(chan func(sched *input.Scheduler), commandBacklog),
	}
	h.status.Store(control.Status{State: "idle"})
	return h
}

// Submit implements the control.Host interface. called from the control
// server's request goroutines.
func (h *host) Submit(q *input.Queue) error {
	select {
	case h.commands <- func(sched *input.Scheduler) {
		sched.Submit(q)
	}:
		return nil
	default:
		return curated.Errorf("host: command backlog full")
	}
}

// Flush implements the control.Host interface.
func (h *host) Flush() error {
	select {
	case h.commands <- func(sched *input.Scheduler) {
		sched.Flush()
	}:
		return nil
	default:
		return curated.Errorf("host: command backlog full")
	}
}

// Status implements the control.Host interface.
func (h *host) Status() control.Status {
	return h.status.Load().(control.Status)
}

// service runs the tick loop until ctx is cancelled. commands from the
// control server are applied between ticks so that the scheduler sees a
// single goroutine.
func (h *host) service(ctx context.Context, sched *input.Scheduler, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-h.commands:
			cmd(sched)
		case now := <-ticker.C:
			// apply any commands that arrived since the last tick before
			// advancing the schedule
			for {
				select {
				case cmd := <-h.commands:
					cmd(sched)
					continue
				default:
				}
				break
			}

			sched.Tick(now)

			state := "idle"
			if sched.Active() {
				state = "active"
			}
			h.status.Store(control.Status{
				State:         state,
				PendingEvents: sched.PendingEventCount(),
			})
		}
	}
}

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	listen := flag.String("listen", "", "control server address (overrides configuration file)")
	endpoint := flag.String("emulator", "", "emulator endpoint URL (overrides configuration file)")
	echo := flag.Bool("log", false, "echo log entries to stderr")
	stats := flag.Bool("statsview", false, fmt.Sprintf("run stats server (%t)", statsview.Available()))
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)
		os.Exit(0)
	}

	exitVal := run(*configPath, *listen, *endpoint, *echo, *stats)
	os.Exit(exitVal)
}

func run(configPath string, listen string, endpoint string, echo bool, stats bool) int {
	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		return 10
	}

	// command line overrides the configuration file
	if listen != "" {
		cfg.ListenAddress = listen
	}
	if endpoint != "" {
		cfg.EmulatorEndpoint = endpoint
	}

	if echo || cfg.LogEcho {
		logger.SetEcho(os.Stderr)
	}

	if stats {
		statsview.Launch(os.Stdout)
	}

	logger.Logf(logTag, "%s (%s)", version.ApplicationName, version.Version)

	kb := emulator.NewKeyboard(cfg.EmulatorEndpoint)
	defer kb.End()

	sched := input.NewScheduler(kb)
	h := newHost()

	srv := control.NewServer(cfg.ListenAddress, cfg.TypingRateMs, h)

	// configuration reloads adjust what can be adjusted at runtime. the
	// listen address and tick interval are fixed for the life of the process
	err = loader.Watch(func(cfg config.Config) {
		srv.SetDefaultRate(cfg.TypingRateMs)

		// the -log flag pins echoing on whatever the file says
		if !echo {
			if cfg.LogEcho {
				logger.SetEcho(os.Stderr)
			} else {
				logger.SetEcho(nil)
			}
		}
	})
	if err != nil {
		logger.Errorf(logTag, "%v", err)
	}
	defer loader.End()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	tickDone := make(chan bool)
	go func() {
		defer close(tickDone)
		h.service(ctx, sched, cfg.TickInterval())
	}()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	exitVal := 0
	select {
	case <-intChan:
		logger.Log(logTag, "interrupt")
	case err := <-serveErr:
		if err != nil {
			fmt.Fprintf(os.Stderr, "* %v\n", err)
			exitVal = 10
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(logTag, "shutdown: %v", err)
	}

	cancel()
	<-tickDone

	return exitVal
}
