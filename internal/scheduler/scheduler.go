package scheduler

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_alert_system/internal/config"
	"github.com/shenikar/incident_alert_system/internal/models"
	"github.com/shenikar/incident_alert_system/internal/push"
	"github.com/shenikar/incident_alert_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Scheduler запускает периодические свипы: пересчет интенсивности,
// экспирацию инцидентов, ретрай недоставленных уведомлений и очистку
// устаревших локаций. Свипы идемпотентны и не зависят друг от друга.
type Scheduler struct {
	incidents     service.IncidentRepository
	notifications service.NotificationRepository
	users         service.UserRepository
	locations     service.UserLocationRepository
	fanout        service.FanoutService
	publisher     push.Publisher
	cfg           *config.Config
	logger        *logrus.Logger
}

func New(incidents service.IncidentRepository, notifications service.NotificationRepository, users service.UserRepository, locations service.UserLocationRepository, fanout service.FanoutService, publisher push.Publisher, cfg *config.Config, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		incidents:     incidents,
		notifications: notifications,
		users:         users,
		locations:     locations,
		fanout:        fanout,
		publisher:     publisher,
		cfg:           cfg,
		logger:        logger,
	}
}

// Start запускает все свипы в отдельных горутинах
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting reconciliation scheduler...")
	go s.runPeriodic(ctx, "intensity", s.cfg.IntensitySweepInterval, s.RunIntensitySweep)
	go s.runPeriodic(ctx, "expiration", s.cfg.ExpirationSweepInterval, s.RunExpirationSweep)
	go s.runPeriodic(ctx, "notification_retry", s.cfg.RetrySweepInterval, s.RunRetrySweep)
	go s.runPeriodic(ctx, "location_cleanup", s.cfg.LocationSweepInterval, s.RunLocationSweep)
}

func (s *Scheduler) runPeriodic(ctx context.Context, name string, interval time.Duration, sweep func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log := s.logger.WithField("sweep", name)
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping sweep")
			return
		case <-ticker.C:
			if err := sweep(ctx); err != nil {
				log.WithError(err).Error("Sweep failed")
			}
		}
	}
}

// RunIntensitySweep пересчитывает интенсивность всех активных инцидентов.
// Запись в бд только при существенном изменении; пересечение значимого
// порога снизу вверх запускает рассылку обновления
func (s *Scheduler) RunIntensitySweep(ctx context.Context) error {
	log := s.logger.WithField("sweep", "intensity")

	incidents, err := s.incidents.FindByStatus(ctx, models.IncidentActive)
	if err != nil {
		return err
	}

	now := time.Now()
	updated := 0
	for _, incident := range incidents {
		old := incident.IntensityLevel
		recomputed := service.DecayedIntensity(incident.ConfirmationCount, incident.LastConfirmationAt, now)

		if !service.MaterialIntensityChange(old, recomputed) {
			continue
		}

		if err := s.incidents.UpdateIntensity(ctx, incident.ID, recomputed); err != nil {
			log.WithError(err).WithField("incident_id", incident.ID).Error("Failed to persist intensity")
			continue
		}
		incident.IntensityLevel = recomputed
		updated++

		if service.CrossedSignificantThreshold(old, recomputed) {
			voters, err := s.incidents.ListVoterIDs(ctx, incident.ID)
			if err != nil {
				log.WithError(err).WithField("incident_id", incident.ID).Error("Failed to list voters")
				continue
			}
			if _, err := s.fanout.NotifyIncidentUpdate(ctx, incident, voters); err != nil {
				log.WithError(err).WithField("incident_id", incident.ID).Error("Failed to fan out intensity update")
			}
		}
	}

	log.WithFields(logrus.Fields{"checked": len(incidents), "updated": updated}).Debug("Intensity sweep completed")
	return nil
}

// RunExpirationSweep переводит просроченные активные инциденты в EXPIRED.
// Повторный запуск без новых данных ничего не меняет
func (s *Scheduler) RunExpirationSweep(ctx context.Context) error {
	log := s.logger.WithField("sweep", "expiration")

	expired, err := s.incidents.FindExpired(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, incident := range expired {
		if err := s.incidents.UpdateStatus(ctx, incident.ID, models.IncidentExpired); err != nil {
			log.WithError(err).WithField("incident_id", incident.ID).Error("Failed to expire incident")
			continue
		}
		log.WithField("incident_id", incident.ID).Info("Incident marked as expired")
	}
	return nil
}

type retryGroup struct {
	incidentID uuid.UUID
	kind       models.NotificationType
}

// RunRetrySweep повторно ставит в очередь PENDING-уведомления без
// отправленного push. Пользователи без токена, с выключенными уведомлениями
// или с исчерпанными попытками закрываются административно - DELIVERED
// без реальной отправки
func (s *Scheduler) RunRetrySweep(ctx context.Context) error {
	log := s.logger.WithField("sweep", "notification_retry")

	pending, err := s.notifications.FindPendingUnsent(ctx, 500)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	now := time.Now()
	groups := make(map[retryGroup][]push.Target)
	payloads := make(map[retryGroup]*models.Notification)
	retried := make(map[retryGroup][]uuid.UUID)

	for _, notification := range pending {
		user, err := s.users.GetByID(ctx, notification.UserID)
		if err != nil {
			log.WithError(err).WithField("notification_id", notification.ID).Warn("Notification target user missing, closing out")
			s.closeOut(ctx, notification.ID, now, log)
			continue
		}

		if user.PushToken == "" || !user.NotificationsEnabled || notification.Attempts >= s.cfg.PushMaxAttempts {
			s.closeOut(ctx, notification.ID, now, log)
			continue
		}

		key := retryGroup{kind: notification.Type}
		if notification.IncidentID != nil {
			key.incidentID = *notification.IncidentID
		}
		groups[key] = append(groups[key], push.Target{
			UserID:         user.ID,
			NotificationID: notification.ID,
			Token:          user.PushToken,
		})
		if payloads[key] == nil {
			payloads[key] = notification
		}
		retried[key] = append(retried[key], notification.ID)
	}

	for key, targets := range groups {
		sample := payloads[key]
		job := push.BatchJob{
			IncidentID: key.incidentID,
			Kind:       string(key.kind),
			Title:      sample.Title,
			Body:       sample.Message,
			Targets:    targets,
		}
		if key.incidentID != uuid.Nil {
			incident, err := s.incidents.GetByID(ctx, key.incidentID)
			if err != nil {
				log.WithError(err).WithField("incident_id", key.incidentID).Warn("Incident missing for pending notifications")
			} else {
				action := "view_incident"
				if key.kind == models.NotificationNewIncident {
					action = "confirm_incident"
				}
				job.Data = map[string]string{
					"incident_id": incident.ID.String(),
					"latitude":    strconv.FormatFloat(incident.Latitude, 'f', -1, 64),
					"longitude":   strconv.FormatFloat(incident.Longitude, 'f', -1, 64),
					"action":      action,
				}
			}
		}

		if err := s.publisher.Publish(ctx, job); err != nil {
			log.WithError(err).Warn("Failed to enqueue retry batch")
			continue
		}
		if err := s.notifications.IncrementAttempts(ctx, retried[key]); err != nil {
			log.WithError(err).Error("Failed to increment notification attempts")
		}
	}

	log.WithField("pending", len(pending)).Debug("Notification retry sweep completed")
	return nil
}

// closeOut помечает уведомление доставленным без отправки push
func (s *Scheduler) closeOut(ctx context.Context, id uuid.UUID, now time.Time, log *logrus.Entry) {
	if err := s.notifications.MarkDelivered(ctx, id, false, now); err != nil {
		log.WithError(err).WithField("notification_id", id).Error("Failed to close out notification")
	}
}

// RunLocationSweep удаляет локации старше порога ретеншна
func (s *Scheduler) RunLocationSweep(ctx context.Context) error {
	cutoff := time.Now().Add(-s.cfg.LocationRetention)
	deleted, err := s.locations.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.logger.WithFields(logrus.Fields{"sweep": "location_cleanup", "deleted": deleted}).Info("Old locations cleaned")
	}
	return nil
}
