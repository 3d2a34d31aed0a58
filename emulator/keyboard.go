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

// Package emulator is the client side of the emulator's own control socket.
// It delivers the key transitions produced by the input package to a running
// emulator process.
package emulator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/benjcooley/x16-emulator-mcp/curated"
	"github.com/benjcooley/x16-emulator-mcp/logger"
)

const logTag = "emulator"

// how many undelivered transitions to hold before dropping new ones.
const sendBacklog = 256

// transition is the wire form of a single key event.
type transition struct {
	Code uint8 `json:"code"`
	Down bool  `json:"down"`
}

// Keyboard forwards key transitions to the emulator process over its HTTP
// control socket. It implements the KeyInjector interface of the input
// package.
//
// Delivery is asynchronous so that the caller's frame loop is never blocked
// by the network: transitions are posted in order by a background goroutine.
// If the backlog fills, new transitions are dropped with a warning.
type Keyboard struct {
	endpoint string
	client   *http.Client
	send     chan transition
	done     chan bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. endpoint is the base URL of the emulator's control socket.
func NewKeyboard(endpoint string) *Keyboard {
	kb := &Keyboard{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client: &http.Client{
			Timeout: time.Second,
		},
		send: make(chan transition, sendBacklog),
		done: make(chan bool),
	}

	go kb.run()

	return kb
}

// InjectKey implements the input.KeyInjector interface. It never blocks.
func (kb *Keyboard) InjectKey(down bool, code uint8) {
	select {
	case kb.send <- transition{Code: code, Down: down}:
	default:
		logger.Warnf(logTag, "key transition dropped (emulator not keeping up)")
	}
}

// End delivers any backlogged transitions and stops the delivery goroutine.
// The Keyboard must not be used after End() has returned.
func (kb *Keyboard) End() {
	close(kb.send)
	<-kb.done
}

func (kb *Keyboard) run() {
	for tr := range kb.send {
		if err := kb.post("/inject_key", tr); err != nil {
			logger.Errorf(logTag, "%v", err)
		}
	}
	close(kb.done)
}

// url should not contain the emulator endpoint, it will be added
// automatically.
func (kb *Keyboard) post(url string, data interface{}) error {
	body, err := json.Marshal(data)
	if err != nil {
		return curated.Errorf("emulator: %v", err)
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s%s", kb.endpoint, url), bytes.NewBuffer(body))
	if err != nil {
		return curated.Errorf("emulator: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := kb.client.Do(req)
	if err != nil {
		return curated.Errorf("emulator: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return curated.Errorf("emulator: unexpected response from emulator [%d]", resp.StatusCode)
	}

	return nil
}
