package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/incident_alert_system/internal/config"
	"github.com/shenikar/incident_alert_system/internal/service"
	"github.com/shenikar/incident_alert_system/pkg/e"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService     service.IncidentService
	locationService     service.LocationService
	notificationService service.NotificationService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(incidentService service.IncidentService, locationService service.LocationService, notificationService service.NotificationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService:     incidentService,
		locationService:     locationService,
		notificationService: notificationService,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// respondError переводит доменные ошибки в HTTP-статусы
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, e.ErrValidation):
		log.WithError(err).Warn("Validation failed in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, e.ErrUnauthorized):
		log.WithError(err).Warn("Access denied")
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	default:
		log.WithError(err).Error("Internal error in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Report a new incident
// @Description Report a new incident at the given location. Nearby users are notified asynchronously. Requires API key and X-User-ID header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Reporter user ID"
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
		return
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	model.ReporterID = userID
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get nearby incidents
// @Description Get active incidents within the given radius of a point, closest first. Requires API key and X-User-ID header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "User ID"
// @Param latitude query number true "Latitude of the query point"
// @Param longitude query number true "Longitude of the query point"
// @Param radius query number false "Search radius in meters" default(5000)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/nearby [get]
func (h *Handler) nearbyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyIncidents")

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
		return
	}

	lat, lon, radius, err := parseGeoQuery(c)
	if err != nil {
		log.WithError(err).Warn("Invalid query parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incidents, err := h.incidentService.NearbyIncidents(c.Request.Context(), lat, lon, radius, userID)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, NearbyToIncidentResponses(incidents))
}

// @Summary Get nearby incidents with pagination
// @Description Get a page of active incidents within the given radius of a point, closest first. Requires API key and X-User-ID header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "User ID"
// @Param latitude query number true "Latitude of the query point"
// @Param longitude query number true "Longitude of the query point"
// @Param radius query number false "Search radius in meters" default(5000)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/nearby/paged [get]
func (h *Handler) nearbyIncidentsPaged(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyIncidentsPaged")

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
		return
	}

	lat, lon, radius, err := parseGeoQuery(c)
	if err != nil {
		log.WithError(err).Warn("Invalid query parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	incidents, err := h.incidentService.NearbyIncidentsPaged(c.Request.Context(), lat, lon, radius, userID, page, pageSize)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, NearbyToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident with the caller's distance and vote state. Requires API key and X-User-ID header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
		return
	}

	details, err := h.incidentService.GetIncident(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DetailsToIncidentResponse(details))
}

// @Summary Confirm or deny an incident
// @Description Record the caller's vote on an incident. Repeat votes replace the previous one. Requires API key and X-User-ID header.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Voter user ID"
// @Param id path string true "Incident ID"
// @Param vote body ConfirmIncidentRequest true "Vote request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID, request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/confirm [put]
func (h *Handler) confirmIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "confirmIncident").WithField("id", id)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
		return
	}

	var input ConfirmIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.ConfirmIncident(c.Request.Context(), id, userID, DTOToVoteInput(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update user location
// @Description Record the caller's current location. The previous active location is deactivated. Requires API key and X-User-ID header.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "User ID"
// @Param location body UpdateLocationRequest true "Location update request"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or location sharing disabled"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/location [post]
func (h *Handler) updateLocation(c *gin.Context) {
	var input UpdateLocationRequest
	log := h.logger.WithField("method", "updateLocation")

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
		return
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), userID, service.LocationInput{
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		AccuracyMeters: input.AccuracyMeters,
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(location))
}

// @Summary Get current user location
// @Description Get the caller's active location. Requires API key and X-User-ID header.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} LocationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No active location"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/location/current [get]
func (h *Handler) currentLocation(c *gin.Context) {
	log := h.logger.WithField("method", "currentLocation")

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
		return
	}

	location, err := h.locationService.CurrentLocation(c.Request.Context(), userID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(location))
}

// @Summary Get user notifications
// @Description Get a paginated list of the caller's notifications, newest first. Requires API key and X-User-ID header.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} NotificationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "listNotifications")

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToNotificationResponses(notifications))
}

// @Summary Mark a notification as read
// @Description Mark the caller's notification as read. Already read notifications are returned unchanged. Requires API key and X-User-ID header.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Notification ID"
// @Success 200 {object} NotificationResponse
// @Failure 400 {object} map[string]string "Invalid notification ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Notification belongs to another user"
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/{id}/read [put]
func (h *Handler) markNotificationRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification ID"})
		return
	}
	log := h.logger.WithField("method", "markNotificationRead").WithField("id", id)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToNotificationResponse(notification))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseGeoQuery разбирает координаты и радиус из query-параметров
func parseGeoQuery(c *gin.Context) (lat, lon, radius float64, err error) {
	lat, err = strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return 0, 0, 0, errors.New("invalid latitude")
	}
	lon, err = strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return 0, 0, 0, errors.New("invalid longitude")
	}
	radius, err = strconv.ParseFloat(c.DefaultQuery("radius", "5000"), 64)
	if err != nil {
		return 0, 0, 0, errors.New("invalid radius")
	}
	return lat, lon, radius, nil
}
