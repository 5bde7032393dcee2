package registration

import (
	"hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Hanya route publik yang didaftarkan di sini; POST /admin/employees
// didaftarkan oleh modul employee dengan handler CreateEmployee.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/register", middleware.RateLimitByIP(0.2, 3), handler.Register)
}
