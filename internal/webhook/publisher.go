package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/responder_ai/internal/models"
)

const (
	webhookQueueKey = "webhook_events"
)

// Причины отправки события диспетчерской службе
const (
	ReasonEmergencyCall     = "emergency_call"
	ReasonIncidentConfirmed = "incident_confirmed"
)

// DispatchEvent - структура для данных вебхука о новом подтвержденном инциденте
type DispatchEvent struct {
	IncidentID       string    `json:"incident_id"`
	Type             string    `json:"type"`
	Severity         string    `json:"severity"`
	Status           string    `json:"status"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	Address          string    `json:"address"`
	Reason           string    `json:"reason"`
	RecommendedUnits []string  `json:"recommended_units,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// NewDispatchEvent собирает событие из инцидента
func NewDispatchEvent(incident *models.Incident, reason string, units []string) DispatchEvent {
	return DispatchEvent{
		IncidentID:       incident.ID,
		Type:             incident.Type,
		Severity:         incident.Severity,
		Status:           incident.Status,
		Latitude:         incident.Location.Lat,
		Longitude:        incident.Location.Lng,
		Address:          incident.Location.Address,
		Reason:           reason,
		RecommendedUnits: units,
		Timestamp:        time.Now().UTC(),
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
