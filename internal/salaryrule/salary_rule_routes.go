package salaryrule

import (
	"staffcore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	rules := r.Group("/salary-rules")
	{
		rules.GET("", middleware.RateLimitByIP(3, 10), handler.GetAll)
		rules.GET("/:id", middleware.RateLimitByIP(3, 10), handler.GetById)
		rules.POST("", middleware.RateLimitByIP(0.5, 2), handler.Create)
		rules.PUT("/:id", middleware.RateLimitByIP(0.5, 2), handler.Update)
		rules.DELETE("/:id", middleware.RateLimitByIP(0.1, 1), handler.Delete)
	}
}
