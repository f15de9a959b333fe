package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/phanxgames/gesture"
	"github.com/sirupsen/logrus"
)

// Message types sent by clients.
const (
	MsgTouch   = "touch"
	MsgAcquire = "acquire"
	MsgLose    = "lose"
	MsgReset   = "reset"
	MsgUpdate  = "update"
)

// Message types sent by the server.
const (
	MsgEvent     = "event"
	MsgTransform = "transform"
	MsgError     = "error"
	MsgHello     = "hello"
)

// ClientMessage is one frame from a websocket client.
type ClientMessage struct {
	Type    string                `json:"type"`
	Kind    string                `json:"kind,omitempty"`
	Touches []gesture.TouchSample `json:"touches,omitempty"`
	Seconds float32               `json:"seconds,omitempty"`
}

// ServerMessage is one frame sent to a websocket client.
type ServerMessage struct {
	Type      string             `json:"type"`
	Session   string             `json:"session,omitempty"`
	Event     string             `json:"event,omitempty"`
	Data      gesture.Event      `json:"data,omitempty"`
	Transform *gesture.Transform `json:"transform,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// Options configures the websocket endpoint.
type Options struct {
	Session    SessionConfig
	EnableCORS bool
}

type wsConnection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (wsc *wsConnection) sendJSON(v any) error {
	wsc.writeMu.Lock()
	defer wsc.writeMu.Unlock()
	return wsc.conn.WriteJSON(v)
}

func newUpgrader(enableCORS bool) *websocket.Upgrader {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	if enableCORS {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	} else {
		upgrader.CheckOrigin = isSameOrigin
	}

	return &upgrader
}

func isSameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return originURL.Host == r.Host
}

// NewWebSocketHandler returns a handler that upgrades each request and runs
// one gesture session per connection. Frames are processed in arrival order
// on the connection's read loop.
func NewWebSocketHandler(opts Options) http.Handler {
	logger := opts.Session.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	upgrader := newUpgrader(opts.EnableCORS)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Warn("websocket upgrade failed")
			return
		}
		defer conn.Close()

		serveConn(&wsConnection{conn: conn}, opts.Session, logger)
	})
}

func serveConn(wsc *wsConnection, cfg SessionConfig, logger *logrus.Logger) {
	var pending []ServerMessage
	cfg.Logger = logger
	sess, err := NewSession(cfg, func(e gesture.Event) {
		pending = append(pending, ServerMessage{Type: MsgEvent, Event: e.Name(), Data: e})
	})
	if err != nil {
		logger.WithError(err).Warn("websocket session rejected")
		_ = wsc.sendJSON(ServerMessage{Type: MsgError, Error: err.Error()})
		return
	}
	defer sess.Close()

	log := logger.WithFields(logrus.Fields{
		"session": sess.ID,
		"remote":  wsc.conn.RemoteAddr().String(),
	})
	log.Info("websocket session started")

	if err := wsc.sendJSON(ServerMessage{Type: MsgHello, Session: sess.ID}); err != nil {
		log.WithError(err).Debug("websocket write failed")
		return
	}

	for {
		messageType, message, err := wsc.conn.ReadMessage()
		if err != nil {
			log.WithError(err).Info("websocket session closed")
			return
		}

		if messageType != websocket.TextMessage {
			_ = wsc.sendJSON(ServerMessage{Type: MsgError, Error: "only text messages accepted"})
			continue
		}

		pending = pending[:0]
		if err := handleMessage(sess, message); err != nil {
			log.WithError(err).Debug("rejected client message")
			pending = append(pending, ServerMessage{Type: MsgError, Error: err.Error()})
		}
		if sess.TakeChanged() {
			t := sess.Transform()
			pending = append(pending, ServerMessage{Type: MsgTransform, Transform: &t})
		}

		for _, msg := range pending {
			if err := wsc.sendJSON(msg); err != nil {
				log.WithError(err).Debug("websocket write failed")
				return
			}
		}
	}
}

func handleMessage(sess *Session, message []byte) error {
	var msg ClientMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		return fmt.Errorf("parse message: %w", err)
	}

	switch msg.Type {
	case MsgTouch:
		kind, err := gesture.ParseTouchKind(msg.Kind)
		if err != nil {
			return err
		}
		sess.Dispatch(gesture.TouchInput{Kind: kind, Touches: msg.Touches})
	case MsgAcquire:
		sess.Scene().TargetAcquired()
	case MsgLose:
		sess.Scene().TargetLost()
	case MsgReset:
		sess.Reset(msg.Seconds)
	case MsgUpdate:
		sess.Update(msg.Seconds)
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
	return nil
}
