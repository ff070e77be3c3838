package push

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NotificationStore - минимальный контракт воркера к хранилищу уведомлений
type NotificationStore interface {
	MarkDelivered(ctx context.Context, id uuid.UUID, pushSent bool, deliveredAt time.Time) error
}

// TokenStore - контракт для очистки недействительных push-токенов
type TokenStore interface {
	ClearPushToken(ctx context.Context, token string) error
}

// Worker - фоновый обработчик очереди push-батчей
type Worker struct {
	redisClient   *redis.Client
	sender        Sender
	notifications NotificationStore
	tokens        TokenStore
	logger        *logrus.Logger
	retryDelay    time.Duration
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, sender Sender, notifications NotificationStore, tokens TokenStore, logger *logrus.Logger, retryDelay time.Duration) *Worker {
	return &Worker{
		redisClient:   redisClient,
		sender:        sender,
		notifications: notifications,
		tokens:        tokens,
		logger:        logger,
		retryDelay:    retryDelay,
	}
}

// Start запускает горутину для обработки очереди push-батчей
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting push worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping push worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, pushQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop push batch job from Redis")
					time.Sleep(w.retryDelay) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				var job BatchJob
				if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal push batch job from Redis")
					continue
				}

				w.ProcessJob(ctx, job)
			}
		}
	}()
}

// ProcessJob отправляет один батч и разбирает исходы по токенам.
// Любой сбой деградирует до "уведомление остается PENDING": доставку
// позже повторит ретрай-свип
func (w *Worker) ProcessJob(ctx context.Context, job BatchJob) {
	log := w.logger.WithFields(logrus.Fields{
		"incident_id": job.IncidentID,
		"kind":        job.Kind,
		"targets":     len(job.Targets),
	})
	log.Debug("Processing push batch job...")

	if len(job.Targets) == 0 {
		return
	}

	tokens := make([]string, 0, len(job.Targets))
	byToken := make(map[string]Target, len(job.Targets))
	for _, t := range job.Targets {
		tokens = append(tokens, t.Token)
		byToken[t.Token] = t
	}

	results, err := w.sender.SendBatch(ctx, tokens, Payload{
		Title: job.Title,
		Body:  job.Body,
		Data:  job.Data,
	})
	if err != nil {
		// Шлюз недоступен целиком: уведомления остаются PENDING
		log.WithError(err).Warn("Push batch send failed, notifications stay pending")
		return
	}

	now := time.Now()
	delivered := 0
	for _, res := range results {
		target, ok := byToken[res.Token]
		if !ok {
			log.WithField("token", res.Token).Warn("Push gateway returned unknown token")
			continue
		}

		switch res.Outcome {
		case OutcomeDelivered:
			if err := w.notifications.MarkDelivered(ctx, target.NotificationID, true, now); err != nil {
				log.WithError(err).WithField("notification_id", target.NotificationID).Error("Failed to mark notification delivered")
				continue
			}
			delivered++
		case OutcomeInvalidToken:
			// Единственная мутация состояния пользователя из конвейера
			// доставки: чистим токен, чтобы будущие рассылки его пропускали
			if err := w.tokens.ClearPushToken(ctx, res.Token); err != nil {
				log.WithError(err).Error("Failed to clear invalid push token")
			} else {
				log.WithField("user_id", target.UserID).Info("Cleared invalid push token")
			}
		default:
			// Временный сбой: уведомление остается PENDING до ретрай-свипа
			log.WithFields(logrus.Fields{
				"user_id": target.UserID,
				"error":   res.Error,
			}).Debug("Transient push failure, will retry")
		}
	}

	log.WithField("delivered", delivered).Info("Push batch processed")
}
