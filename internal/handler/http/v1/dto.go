package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Title        string  `json:"title" validate:"required,min=2,max=255"`
	Description  string  `json:"description,omitempty" validate:"max=1000"`
	Address      string  `json:"address,omitempty"`
	Severity     string  `json:"severity" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Category     string  `json:"category" validate:"required,oneof=ACCIDENT CRIME FIRE MEDICAL NATURAL_DISASTER OTHER"`
	Latitude     float64 `json:"latitude" validate:"required,latitude"`
	Longitude    float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0"`
}

// ConfirmIncidentRequest DTO для подтверждения или отрицания инцидента
// @Description DTO для подтверждения или отрицания инцидента
type ConfirmIncidentRequest struct {
	Action              string  `json:"action" validate:"required,oneof=CONFIRMED DENIED"`
	Latitude            float64 `json:"latitude" validate:"required,latitude"`
	Longitude           float64 `json:"longitude" validate:"required,longitude"`
	Comment             string  `json:"comment,omitempty" validate:"max=500"`
	Confidence          int     `json:"confidence" validate:"required,min=1,max=5"`
	NotificationDelayMS int64   `json:"notification_delay_ms,omitempty"`
	DeviceType          string  `json:"device_type,omitempty"`
}

// UpdateLocationRequest DTO для обновления местоположения пользователя
// @Description DTO для обновления местоположения пользователя
type UpdateLocationRequest struct {
	Latitude       float64 `json:"latitude" validate:"required,latitude"`
	Longitude      float64 `json:"longitude" validate:"required,longitude"`
	AccuracyMeters float64 `json:"accuracy_meters" validate:"gte=0"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ReporterID         uuid.UUID  `json:"reporter_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Address            string     `json:"address,omitempty"`
	Severity           string     `json:"severity"`
	Category           string     `json:"category"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	RadiusMeters       float64    `json:"radius_meters"`
	Status             string     `json:"status"`
	ConfirmationCount  int        `json:"confirmation_count"`
	DenialCount        int        `json:"denial_count"`
	IntensityLevel     float64    `json:"intensity_level"`
	LastConfirmationAt *time.Time `json:"last_confirmation_at,omitempty"`
	TotalNotifications int        `json:"total_notifications"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	ExpiresAt          time.Time  `json:"expires_at"`
	DistanceMeters     *float64   `json:"distance_meters,omitempty"`
	UserHasVoted       *bool      `json:"user_has_voted,omitempty"`
}

// LocationResponse DTO для ответа с местоположением
// @Description DTO для ответа с местоположением
type LocationResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	Timestamp      time.Time `json:"timestamp"`
	IsActive       bool      `json:"is_active"`
}

// NotificationResponse DTO для ответа с уведомлением
// @Description DTO для ответа с уведомлением
type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	IncidentID  *uuid.UUID `json:"incident_id,omitempty"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	PushSent    bool       `json:"push_sent"`
	CreatedAt   time.Time  `json:"created_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
}
