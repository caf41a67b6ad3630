// internal/handlers/upload/confirm-import/handler_test.go
package confirmimport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "wealthlens-api/internal/common/errors"
	"wealthlens-api/internal/common/logger"
	"wealthlens-api/internal/mapping"
	"wealthlens-api/internal/uploadsession"
)

func newTestHandler(t *testing.T) (*Handler, *uploadsession.Store, sqlmock.Sqlmock) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := uploadsession.NewStore(client, 30*time.Minute)
	log := logger.NewNoOpLogger()
	service := NewService(db, log)
	return NewHandler(LoadConfig(), service, store, log, apierrors.NewErrorHandler(log)), store, mock
}

func seedSession(t *testing.T, store *uploadsession.Store) *uploadsession.Session {
	t.Helper()
	headers := []string{"Symbol", "Quantity", "Avg Price"}
	session := &uploadsession.Session{
		SessionID: "cccc-dddd",
		UserID:    "user-1",
		FileName:  "holdings.csv",
		Headers:   headers,
		Mappings:  mapping.MapColumns(headers),
		Rows: [][]string{
			{"INFY", "10", "1450.50"},
			{"", "3", "100"}, // no identifier, becomes a warning
		},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Save(context.Background(), session))
	return session
}

func performConfirm(t *testing.T, handler *Handler, sessionID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST(Route, handler.Handle)

	url := strings.Replace(Route, ":session_id", sessionID, 1)
	req := httptest.NewRequest(http.MethodPost, url, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandle_ConfirmImport(t *testing.T) {
	handler, store, mock := newTestHandler(t)
	session := seedSession(t, store)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO holdings").
		WithArgs(sqlmock.AnyArg(), "user-1", "INFY", "", "", 10.0, 1450.50, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO audit_log").
		WillReturnResult(sqlmock.NewResult(1, 1))

	recorder := performConfirm(t, handler, session.SessionID)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var resp Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.ImportedCount)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "neither a symbol nor an ISIN")

	// One-shot: session is gone after confirm.
	_, err := store.Get(context.Background(), session.SessionID)
	assert.ErrorIs(t, err, uploadsession.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandle_ConfirmUsesOverriddenMappings(t *testing.T) {
	handler, store, mock := newTestHandler(t)
	session := seedSession(t, store)

	// User re-mapped the quantity column to ignore.
	session.Mappings[1] = mapping.Override(session.Mappings[1], mapping.FieldIgnore)
	require.NoError(t, store.Save(context.Background(), session))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO holdings").
		WithArgs(sqlmock.AnyArg(), "user-1", "INFY", "", "", 0.0, 1450.50, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO audit_log").
		WillReturnResult(sqlmock.NewResult(1, 1))

	recorder := performConfirm(t, handler, session.SessionID)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandle_SessionNotFound(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	recorder := performConfirm(t, handler, "missing")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, string(apierrors.ErrCodeSessionNotFound), resp.Code)
}

func TestHandle_DatabaseFailure(t *testing.T) {
	handler, store, mock := newTestHandler(t)
	session := seedSession(t, store)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO holdings").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	recorder := performConfirm(t, handler, session.SessionID)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, string(apierrors.ErrCodeDatabaseUpsertFailed), resp.Code)
	// 5xx responses never leak internals.
	assert.Equal(t, "Internal server error", resp.Error)
	assert.Empty(t, resp.Details)

	// Session survives a failed import so the user can retry.
	_, err := store.Get(context.Background(), session.SessionID)
	assert.NoError(t, err)
}
