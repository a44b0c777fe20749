package fitbot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fitgym/backend/pkg/logging"
)

const (
	ProviderMock = "mock"

	// replies at or under this many characters are treated as unusable
	minReplyLen = 50
	maxHistory  = 10
)

var (
	ErrNotConfigured = errors.New("ai provider not configured")
	ErrUnusableReply = errors.New("ai reply too short")
)

type Reply struct {
	Message   string
	Provider  string
	Timestamp time.Time
}

// Bot answers chat messages with a remote provider and optionally falls back
// to the rule-based responder.
type Bot struct {
	Provider   Completer
	ProviderID string
	Fallback   bool
	Rules      Rules
	Now        func() time.Time
}

func (b *Bot) now() time.Time {
	if b.Now != nil {
		return b.Now().UTC()
	}
	return time.Now().UTC()
}

func (b *Bot) Configured() bool { return b.Provider != nil }

func (b *Bot) Reply(ctx context.Context, message string, history []Message) (Reply, error) {
	l := logging.FromContext(ctx).With("svc", "fitbot.reply", "provider", b.ProviderID)

	if b.Provider == nil {
		if b.Fallback {
			return b.fallback(message), nil
		}
		return Reply{}, ErrNotConfigured
	}

	text, err := b.Provider.Complete(ctx, conversation(message, history))
	if err == nil && utf8.RuneCountInString(strings.TrimSpace(text)) <= minReplyLen {
		err = ErrUnusableReply
	}
	if err != nil {
		l.Warn("provider_failed", "fallback", b.Fallback, "error", err)
		if b.Fallback {
			return b.fallback(message), nil
		}
		return Reply{}, fmt.Errorf("%s: %w", b.ProviderID, err)
	}

	return Reply{Message: strings.TrimSpace(text), Provider: b.ProviderID, Timestamp: b.now()}, nil
}

func (b *Bot) fallback(message string) Reply {
	return Reply{Message: b.Rules.Reply(message), Provider: ProviderMock, Timestamp: b.now()}
}

func conversation(message string, history []Message) []Message {
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	out := make([]Message, 0, len(history)+1)
	for _, m := range history {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			continue
		}
		out = append(out, m)
	}
	return append(out, Message{Role: RoleUser, Content: message})
}

type ProviderInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RequiresKey bool   `json:"requiresKey"`
	Configured  bool   `json:"configured"`
	Active      bool   `json:"active"`
}

// Providers lists the chat backends. keys maps a provider id to whether its
// API key is set.
func Providers(active string, keys map[string]bool) []ProviderInfo {
	list := []ProviderInfo{
		{ID: ProviderMock, Name: "Demo Mode", Description: "Smart responses without API (works offline)", Configured: true},
		{ID: "groq", Name: "Groq", Description: "Fast Llama models (free tier available)", RequiresKey: true},
		{ID: "together", Name: "Together AI", Description: "Open-source models (free credits)", RequiresKey: true},
	}
	for i := range list {
		if list[i].RequiresKey {
			list[i].Configured = keys[list[i].ID]
		}
		list[i].Active = list[i].ID == active
	}
	return list
}
