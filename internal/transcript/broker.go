package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/sirupsen/logrus"
)

const channelName = "voice:transcripts"

// RedisBroker раздает фрагменты расшифровки через Redis Pub/Sub,
// каждый подписчик получает все события
type RedisBroker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
}

func NewRedisBroker(redisClient *redis.Client, logger *logrus.Logger) *RedisBroker {
	return &RedisBroker{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Publish отправляет событие в канал
func (b *RedisBroker) Publish(ctx context.Context, event models.TranscriptEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("transcript: failed to marshal event: %w", err)
	}
	if err := b.redisClient.Publish(ctx, channelName, payload).Err(); err != nil {
		return fmt.Errorf("transcript: failed to publish event: %w", err)
	}
	return nil
}

// Subscribe возвращает канал событий, который закрывается вместе с ctx
func (b *RedisBroker) Subscribe(ctx context.Context) (<-chan models.TranscriptEvent, error) {
	pubsub := b.redisClient.Subscribe(ctx, channelName)
	// Дожидаемся подтверждения подписки, чтобы не потерять первые события
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("transcript: failed to subscribe: %w", err)
	}

	out := make(chan models.TranscriptEvent, 16)
	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				event, err := decodeEvent(msg.Payload)
				if err != nil {
					b.logger.WithError(err).Warn("Failed to unmarshal transcript event")
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func decodeEvent(payload string) (models.TranscriptEvent, error) {
	var event models.TranscriptEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return event, err
	}
	if event.SessionID == "" {
		return event, errors.New("transcript: event without session id")
	}
	return event, nil
}
