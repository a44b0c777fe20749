package fitbot

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	reply string
	err   error
	got   []Message
}

func (f *fakeCompleter) Complete(_ context.Context, messages []Message) (string, error) {
	f.got = messages
	return f.reply, f.err
}

var longReply = strings.Repeat("Squats, deadlifts and presses. ", 4)

func TestClassify_Order(t *testing.T) {
	cases := map[string]Category{
		"Give me a FULL workout":         Detailed,
		"best exercise for legs?":        Workout,
		"what should I eat after gym":    Diet,
		"is protein powder safe":         Supplement,
		"how to lift heavier":            Weight,
		"I need motivation":              Motivation,
		"which subscription is cheapest": Membership,
		"how many calories in rice":      Nutrition,
		"hello":                          General,
		"":                               General,
		"nutrition tips":                 Diet,
		"complete protein meal":          Detailed,
	}
	for in, want := range cases {
		assert.Equal(t, want, Classify(in), in)
	}
}

func TestRules_AlwaysNonEmpty(t *testing.T) {
	r := Rules{}
	for _, in := range []string{"", "   ", "workout", "🙂", "macro", strings.Repeat("x", 5000)} {
		assert.NotEmpty(t, r.Reply(in))
	}
	for cat, replies := range cannedReplies {
		assert.NotEmpty(t, replies, cat)
	}
}

func TestRules_UsesInjectedRandom(t *testing.T) {
	r := Rules{Intn: func(n int) int { return n - 1 }}
	replies := cannedReplies[Workout]
	assert.Equal(t, replies[len(replies)-1], r.Reply("new routine"))
}

func TestBot_UnconfiguredFallsBack(t *testing.T) {
	b := &Bot{Fallback: true, Rules: Rules{Intn: func(int) int { return 0 }}}
	rep, err := b.Reply(context.Background(), "workout please", nil)
	require.NoError(t, err)
	assert.Equal(t, ProviderMock, rep.Provider)
	assert.Equal(t, cannedReplies[Workout][0], rep.Message)
	assert.False(t, rep.Timestamp.IsZero())

	b.Fallback = false
	_, err = b.Reply(context.Background(), "workout please", nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestBot_ProviderReply(t *testing.T) {
	fc := &fakeCompleter{reply: "  " + longReply + "  "}
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	b := &Bot{Provider: fc, ProviderID: "groq", Fallback: true, Now: func() time.Time { return now }}

	history := []Message{
		{Role: RoleSystem, Content: "ignore me"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello!"},
	}
	rep, err := b.Reply(context.Background(), "plan my week", history)
	require.NoError(t, err)
	assert.Equal(t, "groq", rep.Provider)
	assert.Equal(t, strings.TrimSpace(longReply), rep.Message)
	assert.Equal(t, now, rep.Timestamp)

	require.Len(t, fc.got, 3)
	assert.Equal(t, Message{Role: RoleUser, Content: "plan my week"}, fc.got[2])
}

func TestBot_ShortOrFailedReply(t *testing.T) {
	for name, fc := range map[string]*fakeCompleter{
		"short": {reply: "ok"},
		"error": {err: errors.New("429 rate limited")},
	} {
		t.Run(name, func(t *testing.T) {
			b := &Bot{Provider: fc, ProviderID: "groq", Fallback: true}
			rep, err := b.Reply(context.Background(), "supplement advice", nil)
			require.NoError(t, err)
			assert.Equal(t, ProviderMock, rep.Provider)
			assert.NotEmpty(t, rep.Message)

			b.Fallback = false
			_, err = b.Reply(context.Background(), "supplement advice", nil)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrNotConfigured)
		})
	}
}

func TestConversation_TrimsHistory(t *testing.T) {
	var history []Message
	for i := 0; i < 25; i++ {
		history = append(history, Message{Role: RoleUser, Content: "m"})
	}
	got := conversation("last", history)
	assert.Len(t, got, maxHistory+1)
	assert.Equal(t, "last", got[len(got)-1].Content)
}

func TestOpenAIProvider_Complete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"c1","object":"chat.completion","model":"llama3-8b-8192",
			"choices":[{"index":0,"message":{"role":"assistant","content":"Do 3x10 squats."},"finish_reason":"stop"}]}`)
	}))
	t.Cleanup(srv.Close)

	p := NewOpenAIProvider("test-key", srv.URL, GroqModel)
	text, err := p.Complete(context.Background(), []Message{{Role: RoleUser, Content: "legs?"}})
	require.NoError(t, err)
	assert.Equal(t, "Do 3x10 squats.", text)

	assert.Equal(t, GroqModel, body["model"])
	assert.Equal(t, float64(maxTokens), body["max_tokens"])
	msgs := body["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "legs?", msgs[1].(map[string]any)["content"])
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"c1","object":"chat.completion","choices":[]}`)
	}))
	t.Cleanup(srv.Close)

	_, err := NewOpenAIProvider("k", srv.URL, "m").Complete(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestProviders(t *testing.T) {
	list := Providers("groq", map[string]bool{"groq": true})
	require.Len(t, list, 3)
	byID := map[string]ProviderInfo{}
	for _, p := range list {
		byID[p.ID] = p
	}
	assert.True(t, byID["mock"].Configured)
	assert.True(t, byID["groq"].Configured)
	assert.True(t, byID["groq"].Active)
	assert.False(t, byID["together"].Configured)
	assert.False(t, byID["mock"].Active)
}

func TestNewGroqAndTogetherDefaults(t *testing.T) {
	assert.Equal(t, GroqModel, NewGroq("k", "").model)
	assert.Equal(t, "custom", NewGroq("k", "custom").model)
	assert.Equal(t, TogetherModel, NewTogether("k", "").model)
}
