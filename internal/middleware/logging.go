package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const loggerKey = contextKey("logger")

// RequestLogger inietta nel contesto un logger arricchito con un request id
// e registra il completamento di ogni richiesta.
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		reqLogger := base.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)

		c.Header("X-Request-ID", requestID)
		c.Set(string(loggerKey), reqLogger)

		c.Next()

		reqLogger.Info("request completed",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// Logger recupera il logger di richiesta dal contesto gin.
func Logger(c *gin.Context) *slog.Logger {
	v, ok := c.Get(string(loggerKey))
	if !ok {
		return slog.Default()
	}
	l, ok := v.(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}
