package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fitgym/backend/internal/fitbot"
	"github.com/fitgym/backend/internal/transport"
	"github.com/fitgym/backend/pkg/logging"
	"github.com/labstack/echo/v4"
)

type ChatHTTP struct {
	Bot *fitbot.Bot

	// ProviderKeys maps a remote provider id to whether its key is set.
	ProviderKeys   map[string]bool
	AllowedOrigins []string
}

type chatReply struct {
	Type      string `json:"type,omitempty"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Provider  string `json:"provider"`
}

type chatFailure struct {
	Type    string `json:"type,omitempty"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	status  int
}

// answer runs one chat turn and returns either a reply or a failure body.
func (h *ChatHTTP) answer(ctx context.Context, message string, history []fitbot.Message) (*chatReply, *chatFailure) {
	l := logging.FromContext(ctx).With("handler", "chat.answer")

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &chatFailure{Error: "Message is required", status: http.StatusBadRequest}
	}

	r, err := h.Bot.Reply(ctx, message, history)
	if err != nil {
		if errors.Is(err, fitbot.ErrNotConfigured) {
			l.Warn("chat_failed", "status", 503, "reason", "provider not configured")
			return nil, &chatFailure{
				Error:   "AI service not configured",
				Message: fitbot.NotConfiguredApology,
				status:  http.StatusServiceUnavailable,
			}
		}
		l.Error("chat_failed", "status", 500, "reason", "provider error", "error", err)
		return nil, &chatFailure{
			Error:   "Failed to get response from AI",
			Message: fitbot.UpstreamApology,
			status:  http.StatusInternalServerError,
		}
	}

	return &chatReply{
		Message:   r.Message,
		Timestamp: r.Timestamp.Format(time.RFC3339),
		Provider:  r.Provider,
	}, nil
}

func (h *ChatHTTP) Chat(c echo.Context) error {
	var req transport.ChatRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Message is required")
	}

	reply, failure := h.answer(c.Request().Context(), req.Message, req.History)
	if failure != nil {
		return c.JSON(failure.status, failure)
	}
	return c.JSON(http.StatusOK, reply)
}

func (h *ChatHTTP) Providers(c echo.Context) error {
	return c.JSON(http.StatusOK, fitbot.Providers(h.Bot.ProviderID, h.ProviderKeys))
}
