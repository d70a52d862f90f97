package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/23F3001886/CleanEarth/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Audit persists a trail of mutating calls made by logged-in users.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyBytes []byte
		if c.Request.Body != nil && c.Request.Method != http.MethodGet {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		// only mutations by logged-in users are recorded
		if c.Request.Method == http.MethodGet {
			return
		}
		user := CurrentUser(c)
		if user == nil {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if len(bodyBytes) > 0 && len(bodyBytes) < 2000 {
			action += " " + string(bodyBytes)
		}

		log := models.AuditLog{
			UserID:    &user.ID,
			Method:    c.Request.Method,
			Path:      path,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&log).Error
	}
}
