package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentStatus - статус жизненного цикла инцидента
type IncidentStatus string

const (
	IncidentActive   IncidentStatus = "ACTIVE"
	IncidentDisputed IncidentStatus = "DISPUTED"
	IncidentExpired  IncidentStatus = "EXPIRED"
)

// IncidentSeverity - серьезность инцидента
type IncidentSeverity string

const (
	SeverityLow      IncidentSeverity = "LOW"
	SeverityMedium   IncidentSeverity = "MEDIUM"
	SeverityHigh     IncidentSeverity = "HIGH"
	SeverityCritical IncidentSeverity = "CRITICAL"
)

// IncidentCategory - категория инцидента
type IncidentCategory string

const (
	CategoryAccident        IncidentCategory = "ACCIDENT"
	CategoryCrime           IncidentCategory = "CRIME"
	CategoryFire            IncidentCategory = "FIRE"
	CategoryMedical         IncidentCategory = "MEDICAL"
	CategoryNaturalDisaster IncidentCategory = "NATURAL_DISASTER"
	CategoryOther           IncidentCategory = "OTHER"
)

// IncidentTTL - время жизни инцидента с момента создания
const IncidentTTL = 24 * time.Hour

type Incident struct {
	ID         uuid.UUID `json:"id"`
	ReporterID uuid.UUID `json:"reporter_id"`

	Title       string           `json:"title"`
	Description string           `json:"description"`
	Address     string           `json:"address"`
	Severity    IncidentSeverity `json:"severity"`
	Category    IncidentCategory `json:"category"`

	// Координаты и радиус поражения фиксируются при создании
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`

	Status IncidentStatus `json:"status"`

	// Счетчики всегда равны количеству записей подтверждений
	// с соответствующим действием
	ConfirmationCount int `json:"confirmation_count"`
	DenialCount       int `json:"denial_count"`

	IntensityLevel     float64    `json:"intensity_level"`
	LastConfirmationAt *time.Time `json:"last_confirmation_at,omitempty"`
	TotalNotifications int        `json:"total_notifications"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NearbyIncident - инцидент с расстоянием до точки запроса
type NearbyIncident struct {
	Incident
	DistanceMeters float64 `json:"distance_meters"`
	UserHasVoted   bool    `json:"user_has_voted"`
}

// ValidSeverity проверяет, что значение входит в закрытое перечисление
func ValidSeverity(s IncidentSeverity) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// ValidCategory проверяет, что значение входит в закрытое перечисление
func ValidCategory(c IncidentCategory) bool {
	switch c {
	case CategoryAccident, CategoryCrime, CategoryFire, CategoryMedical, CategoryNaturalDisaster, CategoryOther:
		return true
	}
	return false
}
