package taxbracket

import (
	"staffcore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	brackets := r.Group("/tax-brackets")
	{
		brackets.GET("", middleware.RateLimitByIP(3, 10), handler.GetAll)
		brackets.POST("", middleware.RateLimitByIP(0.5, 2), handler.Create)
		brackets.PUT("/:id", middleware.RateLimitByIP(0.5, 2), handler.Update)
		brackets.DELETE("/:id", middleware.RateLimitByIP(0.1, 1), handler.Delete)
	}
}
