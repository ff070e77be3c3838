package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/incident_alert_system/internal/models"
	"github.com/shenikar/incident_alert_system/pkg/e"
	"github.com/sirupsen/logrus"
)

// VoteInput - данные голоса пользователя по инциденту
type VoteInput struct {
	Action              models.ConfirmationAction
	Latitude            float64
	Longitude           float64
	Comment             string
	Confidence          int
	NotificationDelayMS int64
	DeviceType          string
}

// VoteResult - инцидент после применения голоса вместе с дельтами
// счетчиков, вычисленными внутри той же транзакции. Досостояние
// восстанавливается вычитанием дельт, без отдельного чтения
type VoteResult struct {
	Incident      *models.Incident
	DeltaConfirms int
	DeltaDenials  int
}

// ConfirmationLedger определяет контракт журнала подтверждений.
// Для пары (инцидент, пользователь) хранится не более одной записи,
// повторный голос перезаписывает ее и корректирует счетчики инцидента.
type ConfirmationLedger interface {
	ApplyVote(ctx context.Context, incidentID, userID uuid.UUID, in VoteInput) (*VoteResult, error)
}

type confirmationLedger struct {
	repo   IncidentRepository
	logger *logrus.Logger
}

func NewConfirmationLedger(repo IncidentRepository, logger *logrus.Logger) ConfirmationLedger {
	return &confirmationLedger{
		repo:   repo,
		logger: logger,
	}
}

// ApplyVote валидирует голос и применяет его одной транзакционной
// единицей работы в репозитории
func (l *confirmationLedger) ApplyVote(ctx context.Context, incidentID, userID uuid.UUID, in VoteInput) (*VoteResult, error) {
	log := l.logger.WithFields(logrus.Fields{
		"service":     "ledger",
		"method":      "ApplyVote",
		"incident_id": incidentID,
		"user_id":     userID,
		"action":      in.Action,
	})

	if err := validateVote(in); err != nil {
		log.WithError(err).Warn("Vote validation failed")
		return nil, err
	}

	record := &models.ConfirmationRecord{
		IncidentID:          incidentID,
		UserID:              userID,
		Action:              in.Action,
		UserLatitude:        in.Latitude,
		UserLongitude:       in.Longitude,
		Comment:             in.Comment,
		Confidence:          in.Confidence,
		NotificationDelayMS: in.NotificationDelayMS,
		DeviceType:          in.DeviceType,
	}

	result, err := l.repo.ApplyVote(ctx, incidentID, record)
	if err != nil {
		log.WithError(err).Error("Failed to apply vote in repository")
		return nil, fmt.Errorf("ledger: could not apply vote: %w", err)
	}

	log.WithFields(logrus.Fields{
		"confirmations": result.Incident.ConfirmationCount,
		"denials":       result.Incident.DenialCount,
	}).Info("Vote applied")
	return result, nil
}

func validateVote(in VoteInput) error {
	if !models.ValidAction(in.Action) {
		return fmt.Errorf("ledger: unknown action %q: %w", in.Action, e.ErrValidation)
	}
	if err := validateCoordinates(in.Latitude, in.Longitude); err != nil {
		return err
	}
	if in.Confidence < 1 || in.Confidence > 5 {
		return fmt.Errorf("ledger: confidence must be in [1,5]: %w", e.ErrValidation)
	}
	return nil
}
