package middleware

import (
	"strconv"

	"hradmin/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger membuat scoped logger per request yang sudah ditempeli
// request id dan subject id (jika sudah lewat AuthGuard).
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")

		fields := []zap.Field{zap.String("request_id", rid)}
		if loginID, ok := c.Get(ContextLoginIDKey); ok {
			if id, ok := loginID.(uint); ok {
				fields = append(fields, zap.String("login_id", strconv.FormatUint(uint64(id), 10)))
			}
		}

		reqLogger := logger.With(fields...)

		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
