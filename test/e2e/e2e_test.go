// test/e2e/e2e_test.go
//
// Full-stack flow tests: a real gin engine wired through server.New,
// with Postgres mocked by sqlmock and Redis by miniredis. Exercises the
// onboarding analysis, the complete upload wizard (preview, override,
// confirm) and both copilot endpoints in one process.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthlens-api/internal/common/config"
	"wealthlens-api/internal/common/database"
	"wealthlens-api/internal/common/logger"
	"wealthlens-api/internal/server"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "wealthlens-api",
			Version:     "test",
			Environment: "test",
		},
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 0,
		},
		Upload: config.UploadConfig{
			MaxFileBytes:  1 << 20,
			MaxRows:       100,
			SessionTTLMin: 30,
		},
	}
}

func newTestServer(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	// The analyze-profile handler persists asynchronously, so writes
	// from different requests can interleave.
	mock.MatchExpectationsInOrder(false)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	srv := server.New(testConfig(), logger.NewNoOpLogger(),
		&database.PostgresClient{DB: db},
		&database.RedisClient{Client: client},
		nil)
	return srv.Engine(), mock
}

func doJSON(t *testing.T, engine *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthAndReady(t *testing.T) {
	engine, _ := newTestServer(t)

	recorder := doJSON(t, engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, engine, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"ready":true`)
}

func TestAnalyzeProfileFlow(t *testing.T) {
	engine, mock := newTestServer(t)

	// Async persistence; the expectations may or may not be consumed
	// before the test ends, so they are registered but not enforced.
	mock.ExpectExec("INSERT INTO onboarding_snapshots").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO user_profiles").
		WillReturnResult(sqlmock.NewResult(0, 1))

	recorder := doJSON(t, engine, http.MethodPost, "/api/onboarding/analyze-profile", map[string]interface{}{
		"user_id":            "user-e2e",
		"risk_answers":       []string{"focus_on_growth", "comfortable_with_volatility"},
		"horizon_years":      20,
		"portfolio_snapshot": map[string]float64{"equity": 80, "debt": 15, "cash": 5},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var resp struct {
		RiskLabel struct {
			Label string  `json:"label"`
			Score float64 `json:"score"`
		} `json:"risk_label"`
		Summary    []string `json:"summary"`
		Confidence string   `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "Aggressive", resp.RiskLabel.Label)
	assert.Equal(t, 80.0, resp.RiskLabel.Score)
	assert.Len(t, resp.Summary, 4)
	assert.Equal(t, "high", resp.Confidence)
}

func TestUploadWizardFlow(t *testing.T) {
	engine, mock := newTestServer(t)

	// Preview.
	csv := "Symbol,ISIN Code,Qty,Avg Price,Current Value\n" +
		"INFY,INE009A01021,10,1450.50,15000\n" +
		"TCS,INE467B01029,5,3200,16500\n"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("user_id", "user-e2e"))
	part, err := writer.CreateFormFile("file", "holdings.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/upload/preview", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var preview struct {
		SessionID       string `json:"session_id"`
		DetectedColumns []struct {
			Header      string `json:"header"`
			TargetField string `json:"target_field"`
			IsIgnored   bool   `json:"is_ignored"`
		} `json:"detected_columns"`
		Holdings []struct {
			Symbol string `json:"symbol"`
		} `json:"holdings"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &preview))
	require.NotEmpty(t, preview.SessionID)
	require.Len(t, preview.DetectedColumns, 5)
	assert.Len(t, preview.Holdings, 2)

	// Current Value is derived data and starts out ignored.
	assert.True(t, preview.DetectedColumns[4].IsIgnored)

	// Override: import Current Value as average_price after all.
	recorder = doJSON(t, engine, http.MethodPut,
		fmt.Sprintf("/api/portfolio/upload/%s/mappings", preview.SessionID),
		map[string]interface{}{
			"overrides": []map[string]string{
				{"header": "Current Value", "target_field": "average_price"},
			},
		})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.Contains(t, recorder.Body.String(), `"confidence":"manual"`)

	// Confirm.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO holdings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO holdings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO audit_log").
		WillReturnResult(sqlmock.NewResult(1, 1))

	recorder = doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/api/portfolio/upload/%s/confirm", preview.SessionID), nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.Contains(t, recorder.Body.String(), `"imported_count":2`)

	// The session is one-shot; a second confirm finds nothing.
	recorder = doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/api/portfolio/upload/%s/confirm", preview.SessionID), nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCopilotScreening(t *testing.T) {
	engine, _ := newTestServer(t)

	recorder := doJSON(t, engine, http.MethodPost, "/api/copilot/screen-query",
		map[string]string{"query": "Should I buy Infosys stock?"})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"action":"refuse"`)
	assert.Contains(t, recorder.Body.String(), `"should_block":true`)

	recorder = doJSON(t, engine, http.MethodPost, "/api/copilot/screen-query",
		map[string]string{"query": "How does rupee cost averaging work?"})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"action":"proceed"`)
}

func TestCopilotSanitization(t *testing.T) {
	engine, _ := newTestServer(t)

	recorder := doJSON(t, engine, http.MethodPost, "/api/copilot/sanitize-response",
		map[string]string{"text": "You should buy this fund, returns are guaranteed."})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		SanitizedText string   `json:"sanitized_text"`
		Sanitizations []string `json:"sanitizations"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.NotContains(t, strings.ToLower(resp.SanitizedText), "guaranteed")
	assert.Contains(t, resp.Sanitizations, "advice_language")
	assert.Contains(t, resp.Sanitizations, "overconfidence_language")
}

func TestMetricsEndpoint(t *testing.T) {
	engine, _ := newTestServer(t)

	recorder := doJSON(t, engine, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "api_requests_total")
}

func TestUnknownSessionIs404(t *testing.T) {
	engine, _ := newTestServer(t)

	recorder := doJSON(t, engine, http.MethodPut, "/api/portfolio/upload/nope/mappings",
		map[string]interface{}{
			"overrides": []map[string]string{{"header": "X", "target_field": "symbol"}},
		})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
