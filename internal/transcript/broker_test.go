package transcript

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUnreachableBroker возвращает брокер, указывающий на закрытый порт
func newUnreachableBroker(t *testing.T) *RedisBroker {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewRedisBroker(client, logger)
}

func TestDecodeEvent(t *testing.T) {
	event, err := decodeEvent(`{"session_id":"s1","transcript":"fire on market","is_final":true,"timestamp":1700000000.25}`)

	require.NoError(t, err)
	assert.Equal(t, "s1", event.SessionID)
	assert.Equal(t, "fire on market", event.Transcript)
	assert.True(t, event.IsFinal)
	assert.Equal(t, 1700000000.25, event.Timestamp)
}

func TestDecodeEvent_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "fire"},
		{name: "missing session", payload: `{"transcript":"fire"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeEvent(tc.payload)
			assert.Error(t, err)
		})
	}
}

func TestPublish_RedisUnavailable(t *testing.T) {
	broker := newUnreachableBroker(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := broker.Publish(ctx, models.TranscriptEvent{SessionID: "s1", Transcript: "help"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "transcript: failed to publish event")
}

func TestSubscribe_RedisUnavailable(t *testing.T) {
	broker := newUnreachableBroker(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	events, err := broker.Subscribe(ctx)

	require.Error(t, err)
	assert.Nil(t, events)
}
