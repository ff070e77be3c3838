package models

import (
	"time"

	"github.com/google/uuid"
)

// ConfirmationAction - действие пользователя по инциденту
type ConfirmationAction string

const (
	ActionConfirmed ConfirmationAction = "CONFIRMED"
	ActionDenied    ConfirmationAction = "DENIED"
)

// ValidAction проверяет, что значение входит в закрытое перечисление
func ValidAction(a ConfirmationAction) bool {
	return a == ActionConfirmed || a == ActionDenied
}

// ConfirmationRecord - голос пользователя по инциденту.
// Для пары (incident, user) существует не более одной записи:
// повторный голос перезаписывает ее на месте.
type ConfirmationRecord struct {
	ID         uuid.UUID          `json:"id"`
	IncidentID uuid.UUID          `json:"incident_id"`
	UserID     uuid.UUID          `json:"user_id"`
	Action     ConfirmationAction `json:"action"`
	Timestamp  time.Time          `json:"timestamp"`

	// Местоположение пользователя в момент голосования
	UserLatitude  float64 `json:"user_latitude"`
	UserLongitude float64 `json:"user_longitude"`

	Comment    string `json:"comment,omitempty"`
	Confidence int    `json:"confidence"` // 1-5

	// Метаданные устройства
	NotificationDelayMS int64  `json:"notification_delay_ms"`
	DeviceType          string `json:"device_type,omitempty"`
}

// VoteDeltas возвращает приращения счетчиков подтверждений и отрицаний
// при переходе от предыдущего действия (nil - первый голос) к новому.
// Повторный голос тем же действием счетчики не меняет.
func VoteDeltas(prev *ConfirmationAction, next ConfirmationAction) (dConfirm, dDeny int) {
	if prev == nil {
		if next == ActionConfirmed {
			return 1, 0
		}
		return 0, 1
	}
	if *prev == next {
		return 0, 0
	}
	if next == ActionConfirmed {
		return 1, -1
	}
	return -1, 1
}
