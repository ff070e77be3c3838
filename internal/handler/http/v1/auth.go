package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/incident_alert_system/internal/config"
	"github.com/sirupsen/logrus"
)

// userIDKey - ключ контекста gin, под которым хранится идентификатор пользователя
const userIDKey = "userID"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warnf("Invalid API key provided: %s", apiKey)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// UserIDMiddleware - middleware для извлечения идентификатора пользователя
// из заголовка X-User-ID. Все пользовательские операции требуют этот заголовок.
func UserIDMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			log.Warn("User ID missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			log.Warnf("Invalid user ID provided: %s", raw)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid X-User-ID header"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID достает идентификатор пользователя, установленный middleware
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	return userID, ok
}
