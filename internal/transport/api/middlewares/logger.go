package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет в лог каждый запрос. Приватные ошибки хендлеров попадают в лог, но не в ответ.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := l.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		})
		if userID, ok := c.Get(CurrentUserIDKey); ok {
			entry = entry.WithField("user_id", userID)
		}

		if len(c.Errors) > 0 {
			entry.WithError(c.Errors.Last().Err).Warn("request failed")
			return
		}
		entry.Debug("request served")
	}
}
