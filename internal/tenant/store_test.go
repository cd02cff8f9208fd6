package tenant_test

import (
	"context"
	"fmt"
	"testing"

	"staffcore/internal/shared/apperror"
	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// note dipakai sebagai entitas contoh milik tenant.
type note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Body      string    `gorm:"type:text"`
}

func (n *note) GetCompanyID() uuid.UUID   { return n.CompanyID }
func (n *note) SetCompanyID(id uuid.UUID) { n.CompanyID = id }

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&note{}))
	return db
}

func TestStore_CreateStampsTenantFromContext(t *testing.T) {
	db := openTestDB(t)
	store := tenant.NewStore[note](db)

	acme := newCompany("acme")
	ctx := tenant.WithCompany(context.Background(), acme)

	n := &note{ID: uuid.New(), Body: "hello"}
	assert.NoError(t, store.Create(ctx, n))
	assert.Equal(t, acme.ID, n.CompanyID)
}

func TestStore_CreateWithoutTenantFails(t *testing.T) {
	db := openTestDB(t)
	store := tenant.NewStore[note](db)

	n := &note{ID: uuid.New(), Body: "orphan"}
	err := store.Create(context.Background(), n)
	assert.ErrorIs(t, err, apperror.ErrTenantRequired)
}

func TestStore_CreateWithExplicitCompanyNeedsNoContext(t *testing.T) {
	db := openTestDB(t)
	store := tenant.NewStore[note](db)

	n := &note{ID: uuid.New(), CompanyID: uuid.New(), Body: "preset"}
	assert.NoError(t, store.Create(context.Background(), n))
}

func TestStore_CrossTenantInvisibility(t *testing.T) {
	db := openTestDB(t)
	store := tenant.NewStore[note](db)

	acme := newCompany("acme")
	globex := newCompany("globex")
	acmeCtx := tenant.WithCompany(context.Background(), acme)
	globexCtx := tenant.WithCompany(context.Background(), globex)

	alice := &note{ID: uuid.New(), Body: "alice"}
	assert.NoError(t, store.Create(acmeCtx, alice))

	// List di tenant lain kosong.
	rows, err := store.List(globexCtx)
	assert.NoError(t, err)
	assert.Empty(t, rows)

	// Get by id lintas tenant berakhir NOT_FOUND, bukan data tenant lain.
	_, err = store.Get(globexCtx, alice.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// Tenant sendiri tetap melihat recordnya.
	got, err := store.Get(acmeCtx, alice.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", got.Body)
}

func TestStore_NoTenantSeesAllRows(t *testing.T) {
	db := openTestDB(t)
	store := tenant.NewStore[note](db)

	acmeCtx := tenant.WithCompany(context.Background(), newCompany("acme"))
	globexCtx := tenant.WithCompany(context.Background(), newCompany("globex"))

	assert.NoError(t, store.Create(acmeCtx, &note{ID: uuid.New(), Body: "a"}))
	assert.NoError(t, store.Create(globexCtx, &note{ID: uuid.New(), Body: "b"}))

	// Context tanpa tenant adalah escape hatch maintenance: tidak disaring.
	rows, err := store.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = store.List(tenant.Detach(acmeCtx))
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestStore_UpdateCrossTenantRejected(t *testing.T) {
	db := openTestDB(t)
	store := tenant.NewStore[note](db)

	acmeCtx := tenant.WithCompany(context.Background(), newCompany("acme"))
	globexCtx := tenant.WithCompany(context.Background(), newCompany("globex"))

	n := &note{ID: uuid.New(), Body: "original"}
	assert.NoError(t, store.Create(acmeCtx, n))

	n.Body = "hijacked"
	err := store.Update(globexCtx, n.ID, n)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	got, err := store.Get(acmeCtx, n.ID)
	assert.NoError(t, err)
	assert.Equal(t, "original", got.Body)
}

func TestStore_DeleteCrossTenantRejected(t *testing.T) {
	db := openTestDB(t)
	store := tenant.NewStore[note](db)

	acmeCtx := tenant.WithCompany(context.Background(), newCompany("acme"))
	globexCtx := tenant.WithCompany(context.Background(), newCompany("globex"))

	n := &note{ID: uuid.New(), Body: "keep"}
	assert.NoError(t, store.Create(acmeCtx, n))

	err := store.Delete(globexCtx, n.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	assert.NoError(t, store.Delete(acmeCtx, n.ID))
}
