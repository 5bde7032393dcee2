package division

import (
	"hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard gin.HandlerFunc) {
	divisions := r.Group("/divisions")

	divisions.Use(guard)

	{
		divisions.GET("", h.GetAll)
		divisions.GET("/options", h.GetOptions)
		divisions.GET("/:id", h.GetById)
		divisions.POST("", middleware.RateLimitBySubject(0.5, 2), h.Create)
		divisions.PUT("/:id", middleware.RateLimitBySubject(0.5, 2), h.Update)
		divisions.DELETE("/:id", middleware.RateLimitBySubject(0.2, 1), h.Delete)
	}
}
