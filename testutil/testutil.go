// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-queue/auth"
	"github.com/danielhkuo/quickly-queue/cliparse"
	"github.com/danielhkuo/quickly-queue/db"
	"github.com/danielhkuo/quickly-queue/models"
	"github.com/danielhkuo/quickly-queue/session"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each test gets its own database, so no cleanup between tests
// is needed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.Config{DatabaseType: "sqlite", DatabaseURL: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// A :memory: database exists per connection; pin the pool to one
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		SecretKey:    "test-secret-key",
	}
}

// NewTestSessions returns a session manager keyed to the test config
func NewTestSessions(cfg cliparse.Config) *session.Manager {
	return session.NewManager(cfg.SecretKey)
}

// CreateTestUser registers a user directly in the database and returns
// its ID. The password is bcrypt-hashed the same way registration does.
func CreateTestUser(t *testing.T, conn *sql.DB, username, email, password string) string {
	t.Helper()

	userID, _ := auth.GenerateID(16)
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, username, email, hash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestQueue inserts a queue for the given creator and returns its ID
func CreateTestQueue(t *testing.T, conn *sql.DB, creatorID, name string, priority int) string {
	t.Helper()

	queueID, _ := auth.GenerateID(16)
	_, err := conn.Exec(`
		INSERT INTO queue (id, name, priority, creator_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, queueID, name, priority, creatorID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test queue: %v", err)
	}

	return queueID
}

// AddTestParticipant inserts a waiting entry into a queue and returns its ID
func AddTestParticipant(t *testing.T, conn *sql.DB, queueID, username, content string) string {
	t.Helper()

	entryID, _ := auth.GenerateID(16)
	_, err := conn.Exec(`
		INSERT INTO queue_entry (id, queue_id, username, status, content, comment, position, created_at)
		VALUES ($1, $2, $3, $4, $5, '', 0, $6)
	`, entryID, queueID, username, models.StatusWaiting, content, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test participant: %v", err)
	}

	return entryID
}

// AddTestContentOption inserts a content option and returns its ID
func AddTestContentOption(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	optionID, _ := auth.GenerateID(12)
	_, err := conn.Exec("INSERT INTO content_option (id, name) VALUES ($1, $2)", optionID, name)
	if err != nil {
		t.Fatalf("Failed to create test content option: %v", err)
	}

	return optionID
}

// SessionCookie returns a valid session cookie for the given user
func SessionCookie(t *testing.T, sessions *session.Manager, userID string) *http.Cookie {
	t.Helper()

	token, err := sessions.Token(userID)
	if err != nil {
		t.Fatalf("Failed to create session token: %v", err)
	}
	return &http.Cookie{Name: session.CookieName, Value: token}
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// MakeFormRequest creates an HTTP test request with a form-encoded body
func MakeFormRequest(method, path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks that the response redirects to the given location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected redirect status %d, got %d. Body: %s", http.StatusSeeOther, w.Code, w.Body.String())
		return
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
