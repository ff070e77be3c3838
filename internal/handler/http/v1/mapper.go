package v1

import (
	"github.com/shenikar/incident_alert_system/internal/models"
	"github.com/shenikar/incident_alert_system/internal/service"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Title:        dto.Title,
		Description:  dto.Description,
		Address:      dto.Address,
		Severity:     models.IncidentSeverity(dto.Severity),
		Category:     models.IncidentCategory(dto.Category),
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		RadiusMeters: dto.RadiusMeters,
	}
}

// DTOToVoteInput преобразует DTO подтверждения в голос
func DTOToVoteInput(dto ConfirmIncidentRequest) service.VoteInput {
	return service.VoteInput{
		Action:              models.ConfirmationAction(dto.Action),
		Latitude:            dto.Latitude,
		Longitude:           dto.Longitude,
		Comment:             dto.Comment,
		Confidence:          dto.Confidence,
		NotificationDelayMS: dto.NotificationDelayMS,
		DeviceType:          dto.DeviceType,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                 model.ID,
		ReporterID:         model.ReporterID,
		Title:              model.Title,
		Description:        model.Description,
		Address:            model.Address,
		Severity:           string(model.Severity),
		Category:           string(model.Category),
		Latitude:           model.Latitude,
		Longitude:          model.Longitude,
		RadiusMeters:       model.RadiusMeters,
		Status:             string(model.Status),
		ConfirmationCount:  model.ConfirmationCount,
		DenialCount:        model.DenialCount,
		IntensityLevel:     model.IntensityLevel,
		LastConfirmationAt: model.LastConfirmationAt,
		TotalNotifications: model.TotalNotifications,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
		ExpiresAt:          model.ExpiresAt,
	}
}

// DetailsToIncidentResponse преобразует детали инцидента в DTO для ответа
func DetailsToIncidentResponse(details *service.IncidentDetails) *IncidentResponse {
	resp := ModelToIncidentResponse(details.Incident)
	resp.DistanceMeters = details.Distance
	resp.UserHasVoted = &details.UserHasVoted
	return resp
}

// NearbyToIncidentResponses преобразует слайс ближайших инцидентов в слайс DTO
func NearbyToIncidentResponses(nearby []*models.NearbyIncident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(nearby))
	for i, n := range nearby {
		resp := ModelToIncidentResponse(&n.Incident)
		distance := n.DistanceMeters
		voted := n.UserHasVoted
		resp.DistanceMeters = &distance
		resp.UserHasVoted = &voted
		responses[i] = resp
	}
	return responses
}

// ModelToLocationResponse преобразует местоположение в DTO для ответа
func ModelToLocationResponse(model *models.UserLocation) *LocationResponse {
	return &LocationResponse{
		ID:             model.ID,
		UserID:         model.UserID,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		AccuracyMeters: model.AccuracyMeters,
		Timestamp:      model.Timestamp,
		IsActive:       model.IsActive,
	}
}

// ModelToNotificationResponse преобразует уведомление в DTO для ответа
func ModelToNotificationResponse(model *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:          model.ID,
		IncidentID:  model.IncidentID,
		Title:       model.Title,
		Message:     model.Message,
		Type:        string(model.Type),
		Status:      string(model.Status),
		PushSent:    model.PushSent,
		CreatedAt:   model.CreatedAt,
		DeliveredAt: model.DeliveredAt,
		ReadAt:      model.ReadAt,
	}
}

// ModelsToNotificationResponses преобразует слайс уведомлений в слайс DTO
func ModelsToNotificationResponses(models []*models.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToNotificationResponse(model)
	}
	return responses
}
