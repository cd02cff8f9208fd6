package company

import (
	"staffcore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	companies := r.Group("/companies")
	{
		companies.POST("", middleware.RateLimitByIP(0.2, 1), handler.Register)
		companies.GET("/current", middleware.RateLimitByIP(3, 10), handler.GetCurrent)
		companies.PUT("/current/branding", middleware.RateLimitByIP(0.5, 2), handler.UpdateBranding)
	}
}
