package department

import (
	"hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard gin.HandlerFunc) {
	departments := r.Group("/departments")

	departments.Use(guard)

	{
		departments.GET("", h.GetAll)
		departments.GET("/options", h.GetOptions)
		departments.GET("/:id", h.GetById)
		departments.POST("", middleware.RateLimitBySubject(0.5, 2), h.Create)
		departments.PUT("/:id", middleware.RateLimitBySubject(0.5, 2), h.Update)
		departments.DELETE("/:id", middleware.RateLimitBySubject(0.2, 1), h.Delete)
	}
}
