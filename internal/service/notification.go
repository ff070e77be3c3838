package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_alert_system/internal/models"
	"github.com/shenikar/incident_alert_system/pkg/e"
	"github.com/sirupsen/logrus"
)

// NotificationService определяет контракт для работы с уведомлениями пользователя
type NotificationService interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*models.Notification, error)
}

type notificationService struct {
	notifications NotificationRepository
	logger        *logrus.Logger
}

func NewNotificationService(notifications NotificationRepository, logger *logrus.Logger) NotificationService {
	return &notificationService{
		notifications: notifications,
		logger:        logger,
	}
}

// ListNotifications возвращает уведомления пользователя с пагинацией
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Notification, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	notifications, err := s.notifications.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead помечает уведомление прочитанным. Статус движется только вперед:
// уже прочитанное или отвеченное уведомление не меняется
func (s *notificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) (*models.Notification, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "notification",
		"method":          "MarkRead",
		"notification_id": id,
	})

	notification, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Notification not found")
		return nil, fmt.Errorf("service: could not load notification: %w", err)
	}

	if notification.UserID != userID {
		log.Warn("Notification accessed by non-owner")
		return nil, fmt.Errorf("service: notification belongs to another user: %w", e.ErrUnauthorized)
	}

	if notification.Status == models.NotificationRead || notification.Status == models.NotificationResponded {
		return notification, nil
	}

	now := time.Now()
	if err := s.notifications.MarkRead(ctx, id, now); err != nil {
		log.WithError(err).Error("Failed to mark notification as read")
		return nil, fmt.Errorf("service: could not mark notification read: %w", err)
	}

	notification.Status = models.NotificationRead
	notification.ReadAt = &now
	return notification, nil
}
