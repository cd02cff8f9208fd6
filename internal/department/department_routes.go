package department

import (
	"staffcore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	departments := r.Group("/departments")
	{
		departments.GET("", middleware.RateLimitByIP(3, 10), handler.GetAll)
		departments.POST("", middleware.RateLimitByIP(1, 3), handler.Create)
		departments.DELETE("/:id", middleware.RateLimitByIP(0.5, 2), handler.Delete)
	}
}
