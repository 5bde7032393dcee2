package employee

import (
	"hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// createHandler datang dari modul registration: POST employee memakai alur
// pembuatan credential+employee yang sama dengan /register.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	createHandler gin.HandlerFunc,
	guard gin.HandlerFunc,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(guard)
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		employees.POST("", middleware.RateLimitBySubject(0.5, 2), createHandler)
		employees.PUT("/:id", middleware.RateLimitBySubject(0.5, 2), handler.Update)
		employees.DELETE("/:id", middleware.RateLimitBySubject(0.2, 1), handler.Delete)
	}
}
