package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/fitgym/backend/internal/fitbot"
	"github.com/fitgym/backend/pkg/logging"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = pongWait * 9 / 10
	maxFrameSize = 8 << 10
	sendBuffer   = 16
	keepHistory  = 20
)

func (h *ChatHTTP) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(h.AllowedOrigins, origin)
		},
	}
}

type chatClient struct {
	h       *ChatHTTP
	conn    *websocket.Conn
	send    chan any
	quit    chan struct{}
	history []fitbot.Message
}

// Socket serves FitBot over a WebSocket. Each text frame is one chat turn.
// The connection keeps its own history.
func (h *ChatHTTP) Socket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "chat.ws")

	conn, err := h.upgrader().Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		l.Warn("ws_upgrade_failed", "error", err)
		return nil
	}
	l.Info("ws_connected")

	client := &chatClient{h: h, conn: conn, send: make(chan any, sendBuffer), quit: make(chan struct{})}
	done := make(chan struct{})
	go func() {
		client.writePump()
		close(done)
	}()

	client.readPump(ctx)
	<-done
	l.Info("ws_disconnected")
	return nil
}

// frameText accepts either raw text or {"text": "..."}.
func frameText(frame []byte) string {
	var in struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(frame, &in); err == nil && in.Text != nil {
		return *in.Text
	}
	if json.Valid(frame) && strings.HasPrefix(strings.TrimSpace(string(frame)), "{") {
		return ""
	}
	return string(frame)
}

func (cl *chatClient) push(msg any) bool {
	select {
	case cl.send <- msg:
		return true
	case <-cl.quit:
		return false
	}
}

func (cl *chatClient) readPump(ctx context.Context) {
	defer close(cl.send)

	cl.conn.SetReadLimit(maxFrameSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frame, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.FromContext(ctx).Warn("ws_read_failed", "error", err)
			}
			return
		}

		text := frameText(frame)
		reply, failure := cl.h.answer(ctx, text, cl.history)
		if failure != nil {
			failure.Type = "error"
			if !cl.push(failure) {
				return
			}
			continue
		}

		cl.history = append(cl.history,
			fitbot.Message{Role: fitbot.RoleUser, Content: strings.TrimSpace(text)},
			fitbot.Message{Role: fitbot.RoleAssistant, Content: reply.Message},
		)
		if len(cl.history) > keepHistory {
			cl.history = cl.history[len(cl.history)-keepHistory:]
		}
		reply.Type = "reply"
		if !cl.push(reply) {
			return
		}
	}
}

func (cl *chatClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(cl.quit)
		cl.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
