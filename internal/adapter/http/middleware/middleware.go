package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"xrpl-escrow-agent/pkg/apperror"
	"xrpl-escrow-agent/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderAPIKey authenticates the trusted outer layer.
	HeaderAPIKey = "X-API-Key"

	// CtxRequestID is the gin context key for the request id.
	CtxRequestID = "request_id"
)

// RequestID attaches a request id to the context and response headers,
// reusing the inbound one when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// APIKeyAuth verifies the static key presented by the outer layer. There
// is no per-user auth here; client identity arrives in request payloads
// and is trusted.
func APIKeyAuth(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(HeaderAPIKey)
		if presented == "" ||
			subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
			response.Error(c, apperror.ErrUnauthorized())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger creates a structured request logging middleware.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("request_id", c.GetString(CtxRequestID)).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits request body size.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
