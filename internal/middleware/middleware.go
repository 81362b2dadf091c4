package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the key used to store the request ID in context. This ID
// traces the HTTP exchange; it is distinct from the requestId stamped on a
// persisted capture record.
const RequestIDKey = "request_id"

// CORS sets permissive cross-origin headers on every response. It does not
// short-circuit OPTIONS; method gating, including the empty 200 preflight
// response, belongs to the handlers.
func CORS(allowMethods string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Next()
	}
}

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger logs every request with structured fields
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := logrus.Fields{
			"request_id":  c.GetString(RequestIDKey),
			"method":      c.Request.Method,
			"path":        path,
			"status_code": c.Writer.Status(),
			"latency_ms":  float64(time.Since(start).Nanoseconds()) / 1e6,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}

		switch {
		case c.Writer.Status() >= 500:
			logrus.WithFields(fields).Error("Server error")
		case c.Writer.Status() >= 400:
			logrus.WithFields(fields).Warn("Client error")
		default:
			logrus.WithFields(fields).Info("Request completed")
		}
	}
}

// Recovery turns an uncaught panic into the generic 500 envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      recovered,
		}).Error("Request panicked")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
			"message": "An unexpected error occurred while processing the request",
		})
	})
}
