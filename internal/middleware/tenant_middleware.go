package middleware

import (
	"context"
	"net/http"

	"staffcore/internal/shared/apperror"
	"staffcore/internal/shared/contextutil"
	"staffcore/internal/shared/response"
	"staffcore/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const companyHeader = "X-Company-Slug"

// CompanyResolver adalah potongan company.Service yang dibutuhkan di sini;
// didefinisikan di sisi konsumen supaya middleware tidak mengimpor
// internal/company (yang route-nya memakai middleware ini).
type CompanyResolver interface {
	GetBySlug(ctx context.Context, slug string) (*tenant.Company, error)
}

// ResolveTenant menerjemahkan slug di header menjadi company aktif.
// Semua query di bawahnya otomatis ter-scope lewat tenant.Store.
// Tanpa header, request jalan terus tanpa tenant (jalur admin);
// context mati bersama request jadi tidak ada kebocoran antar request.
func ResolveTenant(companyService CompanyResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.GetHeader(companyHeader)
		if slug == "" {
			c.Next()
			return
		}

		comp, err := companyService.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			if httpErr.Code == apperror.CodeNotFound {
				response.Error(c, http.StatusNotFound, apperror.CodeNotFound,
					"Unknown company", nil)
			} else {
				response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			}
			c.Abort()
			return
		}

		ctx := tenant.WithCompany(c.Request.Context(), comp)

		// Tempelkan juga ke logger supaya semua log request ini ber-label tenant
		logger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("company_id", comp.ID.String()),
			zap.String("company_slug", comp.Slug),
		)
		ctx = contextutil.WithLogger(ctx, logger)

		c.Set("company_id", comp.ID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
