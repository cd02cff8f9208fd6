package attendance

import (
	"staffcore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("", middleware.RateLimitByIP(3, 10), handler.GetAll)
		attendances.POST("/clock-in", middleware.RateLimitByIP(1, 3), handler.ClockIn)
		attendances.POST("/clock-out", middleware.RateLimitByIP(1, 3), handler.ClockOut)
	}
}
