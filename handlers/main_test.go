// mediahub/handlers/main_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"mediahub/database"
	"mediahub/models"
	"mediahub/utils"
)

const testAdminPassword = "test-admin-pass"

// MockApplication holds dependencies for handler tests.
type MockApplication struct {
	db          *database.StoreService
	storage     models.StorageService
	rateLimiter *models.RateLimiter
	uploadDir   string
	logger      *slog.Logger
}

func (a *MockApplication) DB() *database.StoreService       { return a.db }
func (a *MockApplication) Storage() models.StorageService   { return a.storage }
func (a *MockApplication) RateLimiter() *models.RateLimiter { return a.rateLimiter }
func (a *MockApplication) Logger() *slog.Logger             { return a.logger }
func (a *MockApplication) UploadDir() string                { return a.uploadDir }

// setupTestApp creates a full application stack with a test database.
func setupTestApp(t *testing.T) *MockApplication {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	dbPath := filepath.Join(t.TempDir(), "test.db?_journal_mode=WAL&_foreign_keys=on")
	dbService, err := database.InitDB(dbPath, testAdminPassword, logger)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	uploadDir := t.TempDir()
	app := &MockApplication{
		db:          dbService,
		storage:     &utils.LocalStorage{UploadDir: uploadDir},
		rateLimiter: models.NewRateLimiter(time.Millisecond, 100, time.Hour, 24*time.Hour),
		uploadDir:   uploadDir,
		logger:      logger,
	}

	t.Cleanup(func() {
		if err := app.db.DB.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return app
}

// doRequest runs one request through the full router with the given role
// level and decodes the response body into out (when non-nil).
func doRequest(t *testing.T, app App, method, path string, level int, body, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if level > 0 {
		req.Header.Set(LevelHeader, strconv.Itoa(level))
	}

	rec := httptest.NewRecorder()
	SetupRouter(app).ServeHTTP(rec, req)

	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("Expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, wantMessage string) {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", rec.Body.String(), err)
	}
	if body.Error != wantMessage {
		t.Errorf("Expected error %q, got %q", wantMessage, body.Error)
	}
}

