package middleware

import (
	"net/http"
	"time"

	"registrant-auth/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger returns a middleware that logs one line per HTTP request and
// makes sure every response carries a request id.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := c.Request
		start := time.Now()

		id := req.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)

		c.Next()

		stop := time.Now()
		status := c.Writer.Status()

		// Query strings carry the issuance proof and headers the token; only
		// the path is logged.
		fields := map[string]any{
			"id":            id,
			"remote_ip":     c.ClientIP(),
			"host":          req.Host,
			"method":        req.Method,
			"path":          req.URL.Path,
			"protocol":      req.Proto,
			"user_agent":    req.UserAgent(),
			"status":        status,
			"status_text":   http.StatusText(status),
			"error":         c.Errors.String(),
			"bytes_in":      req.ContentLength,
			"bytes_out":     c.Writer.Size(),
			"latency":       stop.Sub(start).Nanoseconds(),
			"latency_human": stop.Sub(start).String(),
		}

		if status >= http.StatusInternalServerError {
			logger.Error("request", fields)
			return
		}
		logger.Info("request", fields)
	}
}
