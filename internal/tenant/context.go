package tenant

import (
	"context"

	"github.com/google/uuid"
)

// Tenant aktif dibawa lewat context.Context, bukan state global:
// setiap request/goroutine membawa nilainya sendiri dan nilainya mati
// bersama context-nya, jadi tidak ada kebocoran antar unit eksekusi.

type contextKey struct{}

var companyKey contextKey

// WithCompany menempelkan company aktif ke context.
func WithCompany(ctx context.Context, c *Company) context.Context {
	return context.WithValue(ctx, companyKey, c)
}

// CompanyFromContext mengambil company aktif. ok=false berarti context
// berjalan tanpa tenant (mode maintenance lintas tenant).
func CompanyFromContext(ctx context.Context) (*Company, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(companyKey).(*Company)
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}

// CompanyID adalah shortcut untuk scope query.
func CompanyID(ctx context.Context) (uuid.UUID, bool) {
	c, ok := CompanyFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return c.ID, true
}

// Detach mengembalikan context tanpa tenant. Dipakai di akhir unit kerja
// atau saat operasi maintenance memang harus melihat semua tenant.
func Detach(ctx context.Context) context.Context {
	return context.WithValue(ctx, companyKey, (*Company)(nil))
}
