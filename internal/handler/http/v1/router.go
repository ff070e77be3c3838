package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Все пользовательские операции требуют заголовок X-User-ID,
	// health-check остается доступным без него
	// Маршруты для инцидентов и голосования
	incidents := api.Group("/incidents", UserIDMiddleware(h.logger))
	{
		incidents.POST("", h.createIncident)
		incidents.GET("/nearby", h.nearbyIncidents)
		incidents.GET("/nearby/paged", h.nearbyIncidentsPaged)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id/confirm", h.confirmIncident)
	}

	// Маршруты для местоположения пользователя
	users := api.Group("/users", UserIDMiddleware(h.logger))
	{
		users.POST("/location", h.updateLocation)
		users.GET("/location/current", h.currentLocation)
	}

	// Маршруты для уведомлений
	notifications := api.Group("/notifications", UserIDMiddleware(h.logger))
	{
		notifications.GET("", h.listNotifications)
		notifications.PUT("/:id/read", h.markNotificationRead)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
