package counter_test

import (
	"context"
	"testing"

	"staffcore/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (counter.Repository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	return counter.NewRepository(db), mock
}

func TestGetNextValue_UpsertReturnsNextValue(t *testing.T) {
	repo, mock := newMockRepo(t)
	companyID := uuid.New().String()

	mock.ExpectQuery(`INSERT INTO company_counters`).
		WithArgs(companyID, counter.TypePayslipReference).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(7)))

	got, err := repo.GetNextValue(context.Background(), companyID, counter.TypePayslipReference)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNextValue_CountersAreIndependentPerType(t *testing.T) {
	repo, mock := newMockRepo(t)
	companyID := uuid.New().String()

	mock.ExpectQuery(`INSERT INTO company_counters`).
		WithArgs(companyID, counter.TypePayslipReference).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(3)))
	mock.ExpectQuery(`INSERT INTO company_counters`).
		WithArgs(companyID, "INVOICE_REF").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(1)))

	got, err := repo.GetNextValue(context.Background(), companyID, counter.TypePayslipReference)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), got)

	got, err = repo.GetNextValue(context.Background(), companyID, "INVOICE_REF")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNextValue_PropagatesDriverError(t *testing.T) {
	repo, mock := newMockRepo(t)
	companyID := uuid.New().String()

	mock.ExpectQuery(`INSERT INTO company_counters`).
		WithArgs(companyID, counter.TypePayslipReference).
		WillReturnError(assert.AnError)

	_, err := repo.GetNextValue(context.Background(), companyID, counter.TypePayslipReference)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
