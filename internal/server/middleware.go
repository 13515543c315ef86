package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/salespulse/salespulse/internal/config"
	obsmetrics "github.com/salespulse/salespulse/internal/observability/metrics"
	"github.com/salespulse/salespulse/internal/orgcontext"
	"go.uber.org/zap"
)

// RequestLogMiddleware logs each request with a correlation ID echoed in
// the X-Request-Id header.
func RequestLogMiddleware(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http.request")
	return func(c *gin.Context) {
		start := time.Now()
		requestID := ensureRequestID(c)

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if lastErr := c.Errors.Last(); lastErr != nil {
			fields = append(fields, zap.String("error", lastErr.Error()))
		}

		if status >= http.StatusInternalServerError {
			log.Error(route, fields...)
			return
		}
		log.Info(route, fields...)
	}
}

func ensureRequestID(c *gin.Context) string {
	requestID := strings.TrimSpace(c.GetHeader("X-Request-Id"))
	if requestID == "" {
		requestID = uuid.NewString()
	}

	c.Set("request_id", requestID)
	c.Header("X-Request-Id", requestID)
	return requestID
}

// MetricsMiddleware records request latency per route and status.
func MetricsMiddleware(metrics *obsmetrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		metrics.ObserveRequest(
			route,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}

// OrgMiddleware resolves the acting organization from the X-Org-Id header,
// falling back to the configured default for single-tenant deployments.
func OrgMiddleware(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("X-Org-Id"))
		orgID := cfg.DefaultOrgID
		if raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				AbortWithError(c, newValidationError("org_id", "invalid_org_id", "org id must be numeric"))
				return
			}
			orgID = parsed
		}

		if orgID != 0 {
			ctx := orgcontext.WithOrgID(c.Request.Context(), orgID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
