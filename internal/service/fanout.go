package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_alert_system/internal/models"
	"github.com/shenikar/incident_alert_system/internal/push"
	"github.com/sirupsen/logrus"
)

// UserLocationRepository определяет контракт для работы с бд локаций пользователей
type UserLocationRepository interface {
	FindDistinctUsersWithinRadius(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.User, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*models.UserLocation, error)

	// ReplaceActive атомарно деактивирует прежнюю активную локацию
	// пользователя и вставляет новую
	ReplaceActive(ctx context.Context, location *models.UserLocation) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// NotificationRepository определяет контракт для работы с бд уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error
	MarkDelivered(ctx context.Context, id uuid.UUID, pushSent bool, deliveredAt time.Time) error
	FindPendingUnsent(ctx context.Context, limit int) ([]*models.Notification, error)
	IncrementAttempts(ctx context.Context, ids []uuid.UUID) error
}

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	IncrementIncidentsReported(ctx context.Context, id uuid.UUID) error
	TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error
	ClearPushToken(ctx context.Context, token string) error
}

// FanoutService определяет контракт рассылки уведомлений ближайшим пользователям
type FanoutService interface {
	NotifyNewIncident(ctx context.Context, incident *models.Incident) (int, error)
	NotifyIncidentUpdate(ctx context.Context, incident *models.Incident, excludedUserIDs []uuid.UUID) (int, error)
}

type fanoutService struct {
	incidents     IncidentRepository
	locations     UserLocationRepository
	notifications NotificationRepository
	publisher     push.Publisher
	logger        *logrus.Logger
}

func NewFanoutService(incidents IncidentRepository, locations UserLocationRepository, notifications NotificationRepository, publisher push.Publisher, logger *logrus.Logger) FanoutService {
	return &fanoutService{
		incidents:     incidents,
		locations:     locations,
		notifications: notifications,
		publisher:     publisher,
		logger:        logger,
	}
}

// NotifyNewIncident рассылает уведомления о новом инциденте всем подходящим
// пользователям в радиусе поражения, кроме автора
func (s *fanoutService) NotifyNewIncident(ctx context.Context, incident *models.Incident) (int, error) {
	return s.fanout(ctx, incident, models.NotificationNewIncident, nil)
}

// NotifyIncidentUpdate рассылает уведомления об обновлении инцидента,
// пропуская пользователей, которые уже проголосовали
func (s *fanoutService) NotifyIncidentUpdate(ctx context.Context, incident *models.Incident, excludedUserIDs []uuid.UUID) (int, error) {
	return s.fanout(ctx, incident, models.NotificationIncidentUpdate, excludedUserIDs)
}

func (s *fanoutService) fanout(ctx context.Context, incident *models.Incident, kind models.NotificationType, excludedUserIDs []uuid.UUID) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "fanout",
		"incident_id": incident.ID,
		"kind":        kind,
	})

	users, err := s.locations.FindDistinctUsersWithinRadius(ctx, incident.Latitude, incident.Longitude, incident.RadiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to query users within incident radius")
		return 0, fmt.Errorf("fanout: could not find nearby users: %w", err)
	}

	excluded := make(map[uuid.UUID]struct{}, len(excludedUserIDs))
	for _, id := range excludedUserIDs {
		excluded[id] = struct{}{}
	}

	targets := make([]push.Target, 0, len(users))
	for _, user := range users {
		if user.ID == incident.ReporterID {
			continue
		}
		if _, skip := excluded[user.ID]; skip {
			continue
		}
		if !user.NotificationsEnabled || user.PushToken == "" {
			continue
		}

		notification := buildNotification(user.ID, incident, kind)
		if err := s.notifications.Create(ctx, notification); err != nil {
			log.WithError(err).WithField("user_id", user.ID).Error("Failed to create notification record")
			continue
		}

		targets = append(targets, push.Target{
			UserID:         user.ID,
			NotificationID: notification.ID,
			Token:          user.PushToken,
		})
	}

	if len(targets) == 0 {
		log.Debug("No eligible users for fan-out")
		return 0, nil
	}

	if kind == models.NotificationNewIncident {
		if err := s.incidents.AddNotifications(ctx, incident.ID, len(targets)); err != nil {
			log.WithError(err).Error("Failed to update incident notification counter")
		}
	}

	job := push.BatchJob{
		IncidentID: incident.ID,
		Kind:       string(kind),
		Title:      targetsTitle(kind),
		Body:       incident.Title,
		Data: map[string]string{
			"incident_id": incident.ID.String(),
			"latitude":    strconv.FormatFloat(incident.Latitude, 'f', -1, 64),
			"longitude":   strconv.FormatFloat(incident.Longitude, 'f', -1, 64),
			"action":      actionHint(kind),
		},
		Targets: targets,
	}

	// Отправка в очередь fire-and-forget: при сбое записи остаются
	// PENDING и будут подобраны ретрай-свипом
	if err := s.publisher.Publish(ctx, job); err != nil {
		log.WithError(err).Warn("Failed to enqueue push batch, notifications stay pending")
	}

	log.WithField("count", len(targets)).Info("Fan-out completed")
	return len(targets), nil
}

func buildNotification(userID uuid.UUID, incident *models.Incident, kind models.NotificationType) *models.Notification {
	incidentID := incident.ID
	n := &models.Notification{
		UserID:     userID,
		IncidentID: &incidentID,
		Type:       kind,
		Status:     models.NotificationPending,
	}
	switch kind {
	case models.NotificationIncidentUpdate:
		n.Title = "Incident update"
		n.Message = fmt.Sprintf("Incident %q has been confirmed by multiple users", incident.Title)
	default:
		n.Title = "New incident near you"
		n.Message = incident.Title
	}
	return n
}

func targetsTitle(kind models.NotificationType) string {
	if kind == models.NotificationIncidentUpdate {
		return "Incident update"
	}
	return "New incident in your area"
}

func actionHint(kind models.NotificationType) string {
	if kind == models.NotificationNewIncident {
		return "confirm_incident"
	}
	return "view_incident"
}
