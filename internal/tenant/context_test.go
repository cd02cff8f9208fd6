package tenant_test

import (
	"context"
	"sync"
	"testing"

	"staffcore/internal/company"
	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newCompany(slug string) *company.Company {
	return &company.Company{ID: uuid.New(), Name: slug, Slug: slug}
}

func TestWithCompany_RoundTrip(t *testing.T) {
	acme := newCompany("acme")
	ctx := tenant.WithCompany(context.Background(), acme)

	got, ok := tenant.CompanyFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, acme.ID, got.ID)

	id, ok := tenant.CompanyID(ctx)
	assert.True(t, ok)
	assert.Equal(t, acme.ID, id)
}

func TestCompanyFromContext_Empty(t *testing.T) {
	_, ok := tenant.CompanyFromContext(context.Background())
	assert.False(t, ok)

	id, ok := tenant.CompanyID(context.Background())
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
}

func TestDetach_ClearsTenant(t *testing.T) {
	acme := newCompany("acme")
	ctx := tenant.WithCompany(context.Background(), acme)

	detached := tenant.Detach(ctx)
	_, ok := tenant.CompanyFromContext(detached)
	assert.False(t, ok)

	// Context asal tidak tersentuh.
	_, ok = tenant.CompanyFromContext(ctx)
	assert.True(t, ok)
}

func TestWithCompany_PerGoroutineIsolation(t *testing.T) {
	acme := newCompany("acme")
	globex := newCompany("globex")

	var wg sync.WaitGroup
	for _, comp := range []*company.Company{acme, globex} {
		comp := comp
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := tenant.WithCompany(context.Background(), comp)
			for i := 0; i < 100; i++ {
				got, ok := tenant.CompanyFromContext(ctx)
				assert.True(t, ok)
				assert.Equal(t, comp.ID, got.ID)
			}
		}()
	}
	wg.Wait()
}
