package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/public-awesome/marketplace-sub000/src/pkg/xzap"
)

// RLog assigns every request a trace id and writes one access log line with
// latency and status. The trace id rides the request context so service and
// dao logs correlate.
func RLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.NewString()
		c.Set(xzap.CtxTraceID, traceID)
		ctx := context.WithValue(c.Request.Context(), xzap.CtxTraceID, traceID)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		xzap.WithContext(c.Request.Context()).Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
