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

const (
	// significantConfirmations - количество подтверждений, после достижения
	// которого рассылается обновление инцидента
	significantConfirmations = 5

	// disputeDenials - минимум отрицаний для перевода инцидента в DISPUTED
	disputeDenials = 10
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	FindNearby(ctx context.Context, lat, lon, radiusMeters float64, userID uuid.UUID) ([]*models.NearbyIncident, error)
	FindNearbyPaged(ctx context.Context, lat, lon, radiusMeters float64, userID uuid.UUID, page, pageSize int) ([]*models.NearbyIncident, error)
	FindByStatus(ctx context.Context, status models.IncidentStatus) ([]*models.Incident, error)
	FindExpired(ctx context.Context, now time.Time) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus) error
	UpdateIntensity(ctx context.Context, id uuid.UUID, level float64) error
	AddNotifications(ctx context.Context, id uuid.UUID, count int) error

	// ApplyVote применяет голос атомарно: запись подтверждения, счетчики
	// инцидента и статистика пользователя меняются в одной транзакции.
	// Дельты счетчиков возвращаются вместе с инцидентом
	ApplyVote(ctx context.Context, incidentID uuid.UUID, record *models.ConfirmationRecord) (*VoteResult, error)
	GetVote(ctx context.Context, incidentID, userID uuid.UUID) (*models.ConfirmationRecord, error)
	ListVoterIDs(ctx context.Context, incidentID uuid.UUID) ([]uuid.UUID, error)
}

// IncidentDetails - инцидент с контекстом запросившего пользователя
type IncidentDetails struct {
	Incident     *models.Incident
	Distance     *float64
	UserHasVoted bool
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id, userID uuid.UUID) (*IncidentDetails, error)
	ConfirmIncident(ctx context.Context, incidentID, userID uuid.UUID, vote VoteInput) (*models.Incident, error)
	NearbyIncidents(ctx context.Context, lat, lon, radiusMeters float64, userID uuid.UUID) ([]*models.NearbyIncident, error)
	NearbyIncidentsPaged(ctx context.Context, lat, lon, radiusMeters float64, userID uuid.UUID, page, pageSize int) ([]*models.NearbyIncident, error)
}

type incidentService struct {
	repo      IncidentRepository
	users     UserRepository
	locations UserLocationRepository
	ledger    ConfirmationLedger
	fanout    FanoutService
	logger    *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, users UserRepository, locations UserLocationRepository, ledger ConfirmationLedger, fanout FanoutService, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:      repo,
		users:     users,
		locations: locations,
		ledger:    ledger,
		fanout:    fanout,
		logger:    logger,
	}
}

// CreateIncident создает инцидент и запускает рассылку ближайшим пользователям
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "CreateIncident",
		"reporter": incident.ReporterID,
	})
	log.Info("Attempting to create a new incident")

	if err := validateIncident(incident); err != nil {
		log.WithError(err).Warn("Incident validation failed")
		return err
	}

	now := time.Now()
	incident.Status = models.IncidentActive
	incident.ExpiresAt = now.Add(models.IncidentTTL)

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	if err := s.users.IncrementIncidentsReported(ctx, incident.ReporterID); err != nil {
		log.WithError(err).Error("Failed to increment reporter stats")
	}

	// Рассылка best-effort: ее сбой не откатывает созданный инцидент
	if _, err := s.fanout.NotifyNewIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to fan out new incident notifications")
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID вместе с расстоянием до активной
// локации пользователя и флагом его участия в голосовании
func (s *incidentService) GetIncident(ctx context.Context, id, userID uuid.UUID) (*IncidentDetails, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	details := &IncidentDetails{Incident: incident}

	vote, err := s.repo.GetVote(ctx, id, userID)
	if err == nil && vote != nil {
		details.UserHasVoted = true
	}

	if loc, err := s.locations.FindActiveByUser(ctx, userID); err == nil && loc != nil {
		d := HaversineMeters(loc.Latitude, loc.Longitude, incident.Latitude, incident.Longitude)
		details.Distance = &d
	}

	return details, nil
}

// ConfirmIncident применяет голос пользователя, пересчитывает интенсивность
// и выполняет переходы статуса
func (s *incidentService) ConfirmIncident(ctx context.Context, incidentID, userID uuid.UUID, vote VoteInput) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ConfirmIncident",
		"incident_id": incidentID,
		"user_id":     userID,
	})
	log.Info("Applying incident vote")

	if _, err := s.repo.GetByID(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Incident not found for vote")
		return nil, fmt.Errorf("service: could not load incident: %w", err)
	}

	applied, err := s.ledger.ApplyVote(ctx, incidentID, userID, vote)
	if err != nil {
		log.WithError(err).Error("Failed to apply vote")
		return nil, err
	}
	updated := applied.Incident

	intensity := DecayedIntensity(updated.ConfirmationCount, updated.LastConfirmationAt, time.Now())
	if err := s.repo.UpdateIntensity(ctx, incidentID, intensity); err != nil {
		log.WithError(err).Error("Failed to persist recomputed intensity")
		return nil, fmt.Errorf("service: could not update intensity: %w", err)
	}
	updated.IntensityLevel = intensity

	// EXPIRED и DISPUTED записывают голос для истории, но рассылку
	// и переходы статуса больше не запускают
	if updated.Status != models.IncidentActive {
		return updated, nil
	}

	if s.reachedSignificantConfirmations(applied, updated) {
		voters, err := s.repo.ListVoterIDs(ctx, incidentID)
		if err != nil {
			log.WithError(err).Error("Failed to list voters for update fan-out")
		} else if _, err := s.fanout.NotifyIncidentUpdate(ctx, updated, voters); err != nil {
			log.WithError(err).Error("Failed to fan out incident update notifications")
		}
	}

	if updated.DenialCount >= disputeDenials && updated.DenialCount > 2*updated.ConfirmationCount {
		if err := s.repo.UpdateStatus(ctx, incidentID, models.IncidentDisputed); err != nil {
			log.WithError(err).Error("Failed to mark incident as disputed")
			return nil, fmt.Errorf("service: could not mark incident disputed: %w", err)
		}
		updated.Status = models.IncidentDisputed
		log.Info("Incident marked as disputed")
	}

	return updated, nil
}

// reachedSignificantConfirmations срабатывает один раз - в момент, когда
// количество подтверждений впервые достигает порога, а отрицаний немного.
// Досостояние восстанавливается из дельт транзакции голоса: снимок из
// отдельного чтения под конкурентными голосами устаревает
func (s *incidentService) reachedSignificantConfirmations(applied *VoteResult, after *models.Incident) bool {
	beforeConfirms := after.ConfirmationCount - applied.DeltaConfirms
	return after.ConfirmationCount >= significantConfirmations &&
		beforeConfirms < significantConfirmations &&
		after.DenialCount <= after.ConfirmationCount/3
}

// NearbyIncidents возвращает активные инциденты вокруг точки, по возрастанию расстояния
func (s *incidentService) NearbyIncidents(ctx context.Context, lat, lon, radiusMeters float64, userID uuid.UUID) ([]*models.NearbyIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "NearbyIncidents",
		"user_id": userID,
	})

	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}
	if radiusMeters <= 0 {
		return nil, fmt.Errorf("service: search radius must be positive: %w", e.ErrValidation)
	}

	incidents, err := s.repo.FindNearby(ctx, lat, lon, radiusMeters, userID)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby incidents")
		return nil, fmt.Errorf("service: could not find nearby incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Nearby incidents listed")
	return incidents, nil
}

// NearbyIncidentsPaged возвращает страницу активных инцидентов вокруг точки
func (s *incidentService) NearbyIncidentsPaged(ctx context.Context, lat, lon, radiusMeters float64, userID uuid.UUID, page, pageSize int) ([]*models.NearbyIncident, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}
	if radiusMeters <= 0 {
		return nil, fmt.Errorf("service: search radius must be positive: %w", e.ErrValidation)
	}

	incidents, err := s.repo.FindNearbyPaged(ctx, lat, lon, radiusMeters, userID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not find nearby incidents: %w", err)
	}
	return incidents, nil
}

func validateIncident(incident *models.Incident) error {
	if err := validateCoordinates(incident.Latitude, incident.Longitude); err != nil {
		return err
	}
	if incident.RadiusMeters <= 0 {
		return fmt.Errorf("service: incident radius must be positive: %w", e.ErrValidation)
	}
	if incident.Title == "" {
		return fmt.Errorf("service: incident title is required: %w", e.ErrValidation)
	}
	if !models.ValidSeverity(incident.Severity) {
		return fmt.Errorf("service: unknown severity %q: %w", incident.Severity, e.ErrValidation)
	}
	if !models.ValidCategory(incident.Category) {
		return fmt.Errorf("service: unknown category %q: %w", incident.Category, e.ErrValidation)
	}
	return nil
}

func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("service: coordinates out of range: %w", e.ErrValidation)
	}
	return nil
}
