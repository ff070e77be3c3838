package models

import (
	"time"

	"github.com/google/uuid"
)

// UserLocation - местоположение пользователя.
// У пользователя активна не более одной записи: новая запись
// атомарно деактивирует предыдущую, старые записи удаляются ретеншн-свипом.
type UserLocation struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	Timestamp      time.Time `json:"timestamp"`
	IsActive       bool      `json:"is_active"`
}
