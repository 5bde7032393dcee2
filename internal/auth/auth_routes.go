package auth

import (
	"hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
}
