package position

import (
	"staffcore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	positions := r.Group("/positions")
	{
		positions.GET("", middleware.RateLimitByIP(3, 10), handler.GetAll)
		positions.POST("", middleware.RateLimitByIP(1, 3), handler.Create)
		positions.DELETE("/:id", middleware.RateLimitByIP(0.5, 2), handler.Delete)
	}
}
