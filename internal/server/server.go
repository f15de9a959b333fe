package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Server timeouts. Websocket connections are hijacked, so only the header
// read and idle keep-alive are bounded.
const (
	ReadHeaderTimeout = 10 * time.Second
	IdleTimeout       = 120 * time.Second
)

var okResponse = map[string]any{"status": "ok"}

// NewMux returns the HTTP routes: a status banner on "/" and the gesture
// websocket on "/ws".
func NewMux(opts Options) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", sendBanner)
	mux.Handle("/ws", NewWebSocketHandler(opts))
	return mux
}

// StartServer listens on addr until the server fails. A bare port such as
// "12000" listens on all interfaces.
func StartServer(addr string, opts Options) error {
	if !strings.Contains(addr, ":") {
		port, err := strconv.Atoi(addr)
		if err != nil {
			return fmt.Errorf("invalid port: %w", err)
		}
		addr = fmt.Sprintf(":%d", port)
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           NewMux(opts),
		ReadHeaderTimeout: ReadHeaderTimeout,
		IdleTimeout:       IdleTimeout,
	}

	logger := opts.Session.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.WithField("addr", server.Addr).Info("starting gesture server")
	return server.ListenAndServe()
}

func sendBanner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(okResponse)
}
