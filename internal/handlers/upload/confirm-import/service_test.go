// internal/handlers/upload/confirm-import/service_test.go
package confirmimport

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthlens-api/internal/common/logger"
	"wealthlens-api/internal/models"
)

func sampleHoldings() []models.ParsedHolding {
	return []models.ParsedHolding{
		{Symbol: "INFY", ISIN: "INE009A01021", Quantity: 10, AveragePrice: 1450.50, RowNumber: 2},
		{Symbol: "TCS", ISIN: "INE467B01029", Quantity: 5, AveragePrice: 3200, RowNumber: 3},
	}
}

func TestImportHoldings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO holdings").
		WithArgs(sqlmock.AnyArg(), "user-1", "INFY", "INE009A01021", "", 10.0, 1450.50, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO holdings").
		WithArgs(sqlmock.AnyArg(), "user-1", "TCS", "INE467B01029", "", 5.0, 3200.0, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	service := NewService(db, logger.NewNoOpLogger())
	count, err := service.ImportHoldings(context.Background(), "user-1", sampleHoldings())
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportHoldings_EmptySetIsNoOp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	service := NewService(db, logger.NewNoOpLogger())
	count, err := service.ImportHoldings(context.Background(), "user-1", nil)
	assert.NoError(t, err)
	assert.Zero(t, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportHoldings_RowFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO holdings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO holdings").
		WillReturnError(errors.New("value too long"))
	mock.ExpectRollback()

	service := NewService(db, logger.NewNoOpLogger())
	count, err := service.ImportHoldings(context.Background(), "user-1", sampleHoldings())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "upsert holding row 3")
	assert.Zero(t, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordAudit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs("holdings_imported", "upload_session", "sess-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	service := NewService(db, logger.NewNoOpLogger())
	service.RecordAudit(context.Background(), "holdings_imported", "upload_session", "sess-1",
		map[string]interface{}{"imported": 2})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordAudit_FailureIsSwallowed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO audit_log").
		WillReturnError(errors.New("table missing"))

	service := NewService(db, logger.NewNoOpLogger())
	// Must not panic or propagate.
	service.RecordAudit(context.Background(), "holdings_imported", "upload_session", "sess-1", nil)
	assert.NoError(t, mock.ExpectationsWereMet())
}
