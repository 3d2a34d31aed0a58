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

// Package control is the HTTP/JSON surface through which clients submit
// keyboard input and query replay progress. It is a thin router: requests
// are translated into event queues and handed to the host, which owns the
// scheduler.
//
// Handlers run on the HTTP server's goroutines and never touch scheduler
// state directly. The Host implementation is responsible for marshalling
// submissions onto the goroutine driving the scheduler's tick.
package control

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/tidwall/gjson"

	"github.com/benjcooley/x16-emulator-mcp/input"
	"github.com/benjcooley/x16-emulator-mcp/logger"
	"github.com/benjcooley/x16-emulator-mcp/version"
)

const logTag = "control"

// Status is a snapshot of replay progress, as reported by the host.
type Status struct {
	State         string `json:"state"`
	PendingEvents int    `json:"pending_events"`
}

// Host is the surface the control server drives. Submit and Flush accept
// work on behalf of the scheduler's goroutine; both return an error if the
// work cannot be accepted.
type Host interface {
	Submit(q *input.Queue) error
	Flush() error
	Status() Status
}

// Server serves the control endpoints. Use ListenAndServe() to start it and
// Shutdown() to stop it.
type Server struct {
	host Host
	srv  *http.Server

	// default typing rate for requests that don't specify one. atomic so
	// that a configuration reload can adjust it while requests are in
	// flight
	defaultRateMs int64
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(addr string, defaultRateMs int, host Host) *Server {
	srv := &Server{
		host: host,
	}
	srv.defaultRateMs = int64(defaultRateMs)

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.root)
	mux.HandleFunc("/keyboard", srv.keyboard)
	mux.HandleFunc("/status", srv.status)
	mux.HandleFunc("/flush", srv.flush)

	srv.srv = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	return srv
}

// ListenAndServe blocks, serving control requests until Shutdown() is
// called.
func (srv *Server) ListenAndServe() error {
	logger.Logf(logTag, "listening on %s", srv.srv.Addr)
	err := srv.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown the server, waiting for in-flight requests to complete.
func (srv *Server) Shutdown(ctx context.Context) error {
	return srv.srv.Shutdown(ctx)
}

// Handler returns the server's request handler. Principally for testing.
func (srv *Server) Handler() http.Handler {
	return srv.srv.Handler
}

// SetDefaultRate changes the typing rate used by requests that don't
// specify one. Safe to call while the server is running.
func (srv *Server) SetDefaultRate(ms int) {
	atomic.StoreInt64(&srv.defaultRateMs, int64(ms))
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(logTag, "writing response: %v", err)
	}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

type rootResponse struct {
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

func (srv *Server) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "no such endpoint")
		return
	}

	writeJSON(w, http.StatusOK, rootResponse{
		Service: version.ApplicationName,
		Version: version.Version,
		Endpoints: []string{
			"POST /keyboard - submit text for typed replay",
			"GET /status - replay progress",
			"POST /flush - discard all pending input",
		},
	})
}

type keyboardResponse struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	QueuedEvents int      `json:"queued_events"`
	EstimatedMs  int      `json:"estimated_ms"`
	Warnings     []string `json:"warnings,omitempty"`
}

func (srv *Server) keyboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "cannot read request body")
		return
	}

	if !gjson.ValidBytes(body) {
		writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}

	text := gjson.GetBytes(body, "text")
	if !text.Exists() {
		writeError(w, http.StatusBadRequest, "missing text field")
		return
	}

	rate := int(gjson.GetBytes(body, "typing_rate_ms").Int())
	if rate <= 0 {
		rate = int(atomic.LoadInt64(&srv.defaultRateMs))
	}

	mode := input.ParseMode(gjson.GetBytes(body, "mode").String())

	// translation warnings are reported back to the client. the translator
	// collects them per call, so concurrent requests cannot see each
	// other's warnings and unrelated log entries from other goroutines
	// never appear in a response
	q, warnings := input.TranslateWithWarnings(text.String(), rate, mode)

	if err := srv.host.Submit(q); err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, keyboardResponse{
		Success:      true,
		Message:      "text queued for replay",
		QueuedEvents: q.Len(),
		EstimatedMs:  q.TotalWait(),
		Warnings:     warnings,
	})
}

type statusResponse struct {
	Success bool   `json:"success"`
	Version string `json:"version"`
	Status
}

func (srv *Server) status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Success: true,
		Version: version.Version,
		Status:  srv.host.Status(),
	})
}

type flushResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (srv *Server) flush(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	if err := srv.host.Flush(); err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, flushResponse{
		Success: true,
		Message: "pending input discarded",
	})
}
