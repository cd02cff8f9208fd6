package payroll

import (
	"staffcore/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	payroll := r.Group("/payroll")
	{
		periods := payroll.Group("/periods")
		{
			periods.POST("", middleware.RateLimitByIP(1, 3), handler.CreatePeriod)
			periods.GET("", middleware.RateLimitByIP(3, 10), handler.GetPeriods)
			periods.GET("/:id", middleware.RateLimitByIP(3, 10), handler.GetPeriod)
			periods.DELETE("/:id", middleware.RateLimitByIP(0.5, 2), handler.DeletePeriod)
			periods.GET("/:id/summary", middleware.RateLimitByIP(3, 10), handler.PeriodSummary)

			// Batch dan finalize dilindungi Idempotency-Key; submit ganda
			// dari klien tidak menjalankan batch dua kali.
			periods.POST("/:id/process", middleware.Idempotency(rdb), middleware.RateLimitByCompany(0.2, 1), handler.ProcessPeriod)
			periods.POST("/:id/finalize", middleware.Idempotency(rdb), middleware.RateLimitByCompany(0.2, 1), handler.FinalizePeriod)
		}

		payroll.GET("/employees/:id/calculate", middleware.RateLimitByIP(2, 5), handler.Calculate)
		payroll.POST("/employees/:id/payslips", middleware.Idempotency(rdb), middleware.RateLimitByIP(1, 3), handler.GeneratePayslip)
		payroll.GET("/payslips", middleware.RateLimitByIP(3, 10), handler.GetPayslips)
		payroll.POST("/payslips/:id/bonus", middleware.RateLimitByIP(1, 3), handler.UpdateBonus)
	}
}
