package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"sync"
	"testing"

	"ecomatch_backend/database"
	"ecomatch_backend/internal/app"
	"ecomatch_backend/internal/config"
	"ecomatch_backend/internal/email"
	"ecomatch_backend/internal/logger"
	"ecomatch_backend/internal/seeder"
	"ecomatch_backend/internal/storage"

	"gorm.io/gorm"
)

// TestServer bundles a running httptest server with its database and a
// recording mailer.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Mailer *MockMailer
	Config *config.Config
}

// NewTestServer boots the full router against the database named by
// DATABASE_URL. Tests are skipped when it is unset.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	logger.Init("test")

	cfg := &config.Config{}
	cfg.Database.DSN = dsn
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLMinutes = 60
	cfg.JWT.RefreshTTLDay = 30
	cfg.Activation.Secret = "test-activation-secret"
	cfg.Activation.TTLHours = 72
	cfg.Frontend.BaseURL = "http://localhost:3000"
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png"}

	db, err := database.Connect(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", dsn, err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := seeder.Seed(db); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}

	mailer := NewMockMailer()
	files, err := storage.NewStorage(storage.Config{Type: "local", BasePath: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to build test storage: %v", err)
	}

	router := app.SetupRouter(cfg, db, mailer, files)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
		Mailer: mailer,
		Config: cfg,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ClearTables truncates all mutable tables between tests. The seeded
// catalogs (geo, service types) stay.
func (ts *TestServer) ClearTables(t *testing.T) {
	t.Helper()

	err := ts.DB.Exec(`TRUNCATE TABLE
		offers, request_images, request_services, requests,
		leads, provider_services, provider_coverage_regions, provider_profiles,
		refresh_tokens, users, subscriptions, access_logs
		RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("failed to clear tables: %v", err)
	}
	ts.Mailer.Reset()
}

// SendRequest performs a JSON request against the test server and
// returns the response plus the body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	bodyBytes, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(bodyBytes)
}

// UploadFile describes one file part for SendMultipart.
type UploadFile struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// SendMultipart performs a multipart/form-data request with the given
// form fields and file parts.
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string][]string, files []UploadFile) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, values := range fields {
		for _, value := range values {
			if err := writer.WriteField(name, value); err != nil {
				t.Fatalf("failed to write form field %s: %v", name, err)
			}
		}
	}
	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Name))
		header.Set("Content-Type", file.ContentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write(file.Content); err != nil {
			t.Fatalf("failed to write file content: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to finish multipart body: %v", err)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	bodyBytes, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(bodyBytes)
}

// MockMailer records outgoing mail instead of sending it.
type MockMailer struct {
	mu sync.Mutex

	LeadConfirmations []LeadConfirmation
	Activations       []Activation
	RequestAccepted   []RequestAcceptedMail
}

type LeadConfirmation struct {
	To    string
	Token string
}

type Activation struct {
	To    string
	UID   string
	Token string
}

type RequestAcceptedMail struct {
	To           string
	RequestTitle string
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(msg *email.Email) error { return nil }

func (m *MockMailer) SendLeadConfirmation(to, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LeadConfirmations = append(m.LeadConfirmations, LeadConfirmation{To: to, Token: token})
	return nil
}

func (m *MockMailer) SendAccountActivation(to, uid, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Activations = append(m.Activations, Activation{To: to, UID: uid, Token: token})
	return nil
}

func (m *MockMailer) SendRequestAccepted(to, requestTitle string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestAccepted = append(m.RequestAccepted, RequestAcceptedMail{To: to, RequestTitle: requestTitle})
	return nil
}

func (m *MockMailer) Validate() error { return nil }
func (m *MockMailer) Close() error    { return nil }

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LeadConfirmations = nil
	m.Activations = nil
	m.RequestAccepted = nil
}

// LastLeadToken returns the token from the most recent confirmation
// mail.
func (m *MockMailer) LastLeadToken(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.LeadConfirmations) == 0 {
		t.Fatal("no lead confirmation emails recorded")
	}
	return m.LeadConfirmations[len(m.LeadConfirmations)-1].Token
}
