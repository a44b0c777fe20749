package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitgym/backend/internal/repo"
	"github.com/fitgym/backend/pkg/db"
)

var testSecret = []byte("test-session-secret")

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	ctx := context.Background()
	gdb, err := db.Open(ctx, "", db.DriverMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	r := &repo.GormRepo{DB: gdb}
	require.NoError(t, r.Migrate(ctx))
	return r
}

type publishedEvent struct {
	Topic string
	Key   string
	Event map[string]any
}

type eventRecorder struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (r *eventRecorder) PublishEvent(_ context.Context, topic, key string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, _ := event.(map[string]any)
	r.events = append(r.events, publishedEvent{Topic: topic, Key: key, Event: ev})
	return nil
}

func (r *eventRecorder) Close() error { return nil }

func (r *eventRecorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Event["type"].(string))
	}
	return out
}

func newUserService(t *testing.T) (*UserService, *eventRecorder) {
	t.Helper()
	ev := &eventRecorder{}
	return &UserService{
		Repo:         newTestRepo(t),
		Events:       ev,
		Secret:       testSecret,
		TTL:          time.Hour,
		AutoActivate: true,
	}, ev
}
