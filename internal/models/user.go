package models

import (
	"time"

	"github.com/google/uuid"
)

// User - профиль пользователя. Идентификация принадлежит внешнему
// auth-слою, здесь храним настройки уведомлений и статистику.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`

	NotificationsEnabled     bool    `json:"notifications_enabled"`
	LocationSharingEnabled   bool    `json:"location_sharing_enabled"`
	NotificationRadiusMeters float64 `json:"notification_radius_meters"`

	// Токен push-доставки, очищается при ответе invalid-token от шлюза
	PushToken string `json:"push_token,omitempty"`

	TotalIncidentsReported int `json:"total_incidents_reported"`
	TotalConfirmations     int `json:"total_confirmations"`

	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}
