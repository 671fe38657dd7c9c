package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/public-awesome/marketplace-sub000/src/pkg/errcode"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xhttp"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xzap"
)

// RecoverMiddleware turns handler panics into a logged internal error
// response instead of a dropped connection.
func RecoverMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				xzap.WithContext(c.Request.Context()).Error("panic in handler",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
				)
				xhttp.Error(c, errcode.ErrInternal)
				c.Abort()
			}
		}()
		c.Next()
	}
}
