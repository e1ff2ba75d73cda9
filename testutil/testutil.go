// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/classroom-quorum/classroom"
	"github.com/danielhkuo/classroom-quorum/cliparse"
	"github.com/danielhkuo/classroom-quorum/db"
	"github.com/danielhkuo/classroom-quorum/models"
)

// TestMinStudents is the arrival threshold used by GetTestConfig
const TestMinStudents = 10

// SetupTestDB opens a fresh in-memory journal with the full schema.
// It is closed when the test finishes.
func SetupTestDB(t *testing.T) *db.Journal {
	t.Helper()

	journal, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { journal.Close() })

	return journal
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		MinStudents:  TestMinStudents,
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  ":memory:",
		LogLevel:     "info",
	}
}

// NewTestCoordinator returns a coordinator that journals transitions into
// journal, the way main wires it. journal may be nil.
func NewTestCoordinator(t *testing.T, journal *db.Journal) *classroom.Coordinator {
	t.Helper()

	return classroom.New(classroom.Options{
		MinStudents: TestMinStudents,
		OnTransition: func(tr classroom.Transition) {
			if journal == nil {
				return
			}
			if _, err := journal.Record(t.Context(), tr); err != nil {
				t.Errorf("Failed to record transition: %v", err)
			}
		},
	})
}

// JoinTestTeachers issues identities for n teachers and registers them
func JoinTestTeachers(t *testing.T, coord *classroom.Coordinator, n int) []models.Teacher {
	t.Helper()

	teachers := make([]models.Teacher, n)
	for i := range teachers {
		teachers[i] = coord.Join(models.Teacher{
			ID:   coord.NextIdentity(),
			Name: "TestTeacher",
		})
	}
	return teachers
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
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

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
