package mykafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	topics []string
	keys   []string
	events []any
	err    error
}

func (r *recorder) PublishEvent(_ context.Context, topic, key string, event any) error {
	r.topics = append(r.topics, topic)
	r.keys = append(r.keys, key)
	r.events = append(r.events, event)
	return r.err
}

func (r *recorder) Close() error { return nil }

func TestMessage(t *testing.T) {
	msg, err := message(TopicUserEvents, "u@example.com", map[string]any{"type": "user_registered"})
	require.NoError(t, err)
	assert.Equal(t, TopicUserEvents, msg.Topic)
	assert.Equal(t, []byte("u@example.com"), msg.Key)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "user_registered", decoded["type"])

	_, err = message(TopicUserEvents, "k", map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
}

func TestNew_WithoutBrokersIsNoop(t *testing.T) {
	p := New(nil, nil)
	_, ok := p.(Noop)
	require.True(t, ok)
	assert.NoError(t, p.PublishEvent(context.Background(), TopicPaymentEvents, "k", map[string]any{}))
	assert.NoError(t, p.Close())

	_, ok = New([]string{"localhost:9092"}, nil).(*Producer)
	assert.True(t, ok)
}

func TestPublish_StampsAndSwallowsErrors(t *testing.T) {
	rec := &recorder{err: errors.New("broker down")}
	Publish(context.Background(), rec, TopicPaymentEvents, "order_1", map[string]any{"type": "order_created"})

	require.Len(t, rec.events, 1)
	assert.Equal(t, TopicPaymentEvents, rec.topics[0])
	assert.Equal(t, "order_1", rec.keys[0])
	ev := rec.events[0].(map[string]any)
	assert.Equal(t, "order_created", ev["type"])
	assert.NotEmpty(t, ev["at"])

	Publish(context.Background(), nil, TopicPaymentEvents, "x", map[string]any{})
}
