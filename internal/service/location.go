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

// LocationInput - данные обновления местоположения
type LocationInput struct {
	Latitude       float64
	Longitude      float64
	AccuracyMeters float64
}

// LocationService определяет контракт для работы с местоположением пользователей
type LocationService interface {
	UpdateLocation(ctx context.Context, userID uuid.UUID, in LocationInput) (*models.UserLocation, error)
	CurrentLocation(ctx context.Context, userID uuid.UUID) (*models.UserLocation, error)
}

type locationService struct {
	locations UserLocationRepository
	users     UserRepository
	logger    *logrus.Logger
}

func NewLocationService(locations UserLocationRepository, users UserRepository, logger *logrus.Logger) LocationService {
	return &locationService{
		locations: locations,
		users:     users,
		logger:    logger,
	}
}

// UpdateLocation записывает новую локацию пользователя, атомарно
// деактивируя предыдущую: активной остается ровно одна
func (s *locationService) UpdateLocation(ctx context.Context, userID uuid.UUID, in LocationInput) (*models.UserLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "UpdateLocation",
		"user_id": userID,
	})

	if err := validateCoordinates(in.Latitude, in.Longitude); err != nil {
		log.WithError(err).Warn("Location validation failed")
		return nil, err
	}
	if in.AccuracyMeters < 0 {
		return nil, fmt.Errorf("service: accuracy must be non-negative: %w", e.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("User not found for location update")
		return nil, fmt.Errorf("service: could not load user: %w", err)
	}
	if !user.LocationSharingEnabled {
		log.Warn("Location sharing is disabled for user")
		return nil, fmt.Errorf("service: location sharing is disabled: %w", e.ErrValidation)
	}

	now := time.Now()
	location := &models.UserLocation{
		UserID:         userID,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		AccuracyMeters: in.AccuracyMeters,
		Timestamp:      now,
		IsActive:       true,
	}

	deactivated, err := s.locations.ReplaceActive(ctx, location)
	if err != nil {
		log.WithError(err).Error("Failed to replace active location")
		return nil, fmt.Errorf("service: could not update location: %w", err)
	}

	if err := s.users.TouchLastActive(ctx, userID, now); err != nil {
		log.WithError(err).Error("Failed to update user last activity")
	}

	log.WithField("deactivated", deactivated).Info("User location updated")
	return location, nil
}

// CurrentLocation возвращает активную локацию пользователя
func (s *locationService) CurrentLocation(ctx context.Context, userID uuid.UUID) (*models.UserLocation, error) {
	location, err := s.locations.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get current location: %w", err)
	}
	return location, nil
}
