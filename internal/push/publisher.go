package push

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	pushQueueKey = "push_batch_jobs"

	KindNewIncident    = "NEW_INCIDENT"
	KindIncidentUpdate = "INCIDENT_UPDATE"
)

// Target - адресат одного push-сообщения внутри батча
type Target struct {
	UserID         uuid.UUID `json:"user_id"`
	NotificationID uuid.UUID `json:"notification_id"`
	Token          string    `json:"token"`
}

// BatchJob - задание на пакетную отправку push-уведомлений
type BatchJob struct {
	IncidentID uuid.UUID         `json:"incident_id"`
	Kind       string            `json:"kind"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Data       map[string]string `json:"data,omitempty"`
	Targets    []Target          `json:"targets"`
}

// Publisher - интерфейс для постановки батчей в очередь отправки
type Publisher interface {
	Publish(ctx context.Context, job BatchJob) error
}

// RedisPublisher - реализация Publisher, использующая список Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует задание в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, job BatchJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal push batch job: %w", err)
	}

	// Используем LPUSH для добавления задания в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, pushQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish push batch job to Redis: %w", err)
	}
	return nil
}
