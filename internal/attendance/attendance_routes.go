package attendance

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts attendance under its owning employee. writeGuards
// run before Mark only.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, writeGuards ...gin.HandlerFunc) {
	attendance := r.Group("/employees/:employee_id/attendance")
	{
		attendance.GET("", h.List)
		mark := append(append([]gin.HandlerFunc{}, writeGuards...), h.Mark)
		attendance.POST("", mark...)
	}
}
