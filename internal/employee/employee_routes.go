package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the employee collection. writeGuards run before the
// create and delete handlers.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, writeGuards ...gin.HandlerFunc) {
	guarded := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeGuards...), handler)
	}

	employees := r.Group("/employees")
	{
		employees.GET("", h.List)
		employees.POST("", guarded(h.Create)...)
		employees.DELETE("/:employee_id", guarded(h.Delete)...)
	}
}
