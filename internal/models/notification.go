package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType - тип уведомления
type NotificationType string

const (
	NotificationNewIncident    NotificationType = "NEW_INCIDENT"
	NotificationIncidentUpdate NotificationType = "INCIDENT_UPDATE"
	NotificationSystem         NotificationType = "SYSTEM"
)

// NotificationStatus - статус доставки уведомления.
// Переходы только вперед: PENDING -> DELIVERED -> READ -> RESPONDED.
type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "PENDING"
	NotificationDelivered NotificationStatus = "DELIVERED"
	NotificationRead      NotificationStatus = "READ"
	NotificationResponded NotificationStatus = "RESPONDED"
)

type Notification struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	IncidentID *uuid.UUID `json:"incident_id,omitempty"`

	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`

	Status   NotificationStatus `json:"status"`
	PushSent bool               `json:"push_sent"`
	Attempts int                `json:"attempts"`

	CreatedAt   time.Time  `json:"created_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
}
