package tenant

import (
	"context"
	"errors"

	"staffcore/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owned diimplementasikan setiap entitas milik tenant.
type Owned interface {
	GetCompanyID() uuid.UUID
	SetCompanyID(id uuid.UUID)
}

// Store membungkus koleksi entitas milik tenant di atas gorm.
// Kontrak:
//   - Query menyaring ke tenant aktif; tanpa tenant di context hasilnya
//     TIDAK disaring (dipakai tooling admin, lihat ScopeFromContext).
//   - Create menempelkan company dari context bila record belum punya;
//     bila tetap kosong, gagal dengan INTEGRITY_ERROR.
//   - Get/Update/Delete hanya bekerja di dalam hasil Query: id milik
//     tenant lain berakhir NOT_FOUND, bukan bocor lintas tenant.
type Store[T any] struct {
	db *gorm.DB
}

func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// DB mengembalikan koneksi mentah untuk repo yang butuh query khusus.
func (s *Store[T]) DB() *gorm.DB {
	return s.db
}

func (s *Store[T]) Query(ctx context.Context) *gorm.DB {
	var model T
	return s.db.WithContext(ctx).
		Model(&model).
		Scopes(ScopeFromContext(ctx))
}

func (s *Store[T]) Create(ctx context.Context, row Owned) error {
	if row.GetCompanyID() == uuid.Nil {
		if id, ok := CompanyID(ctx); ok {
			row.SetCompanyID(id)
		}
	}
	if row.GetCompanyID() == uuid.Nil {
		return apperror.ErrTenantRequired
	}
	return s.db.WithContext(ctx).Create(row).Error
}

func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	err := s.Query(ctx).Find(&rows).Error
	return rows, err
}

func (s *Store[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	err := s.Query(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update menolak record yang tidak terlihat di scope aktif. Record lama
// dicek dulu lewat Get supaya id tenant lain tidak bisa ditimpa.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, row Owned) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Save(row).Error
}

func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var model T
	res := s.Query(ctx).Delete(&model, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
