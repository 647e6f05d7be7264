// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/contractflow/cliparse"
	"github.com/danielhkuo/contractflow/db"
)

// TestDBURL is an in-memory SQLite database; each SetupTestDB call gets a
// fresh one.
const TestDBURL = "file::memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, db.SQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.SQLite,
		Env:          "test",
		CORSOrigin:   "*",
	}
}

// CreateTestProject inserts a project and returns its ID.
// status may be "", "ongoing" or "completed".
func CreateTestProject(t *testing.T, conn *sqlx.DB, projectNo, estimate, status string) int64 {
	t.Helper()

	var st *string
	if status != "" {
		st = &status
	}

	var id int64
	err := conn.QueryRowx(`
		INSERT INTO projects (project_no, project_description, district, ds_division, fund_source,
			vote_details, total_cost_estimate, beneficiaries, output, outcome, feasibility_studies,
			relevant_pc, status)
		VALUES (?, 'Test project', 'Colombo', 'Maharagama', 'GOSL', 'V-1', ?, 100, 'Output', 'Outcome', 'Done', 'PC-1', ?)
		RETURNING id
	`, projectNo, estimate, st).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}

	return id
}

// CreateTestBillPayment inserts a bill payment and returns its ID.
func CreateTestBillPayment(t *testing.T, conn *sqlx.DB, date, billNo, amount, net string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRowx(`
		INSERT INTO bill_payments (date_of_payment, bill_no, bill_amount, net_payment)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`, date, billNo, amount, net).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test bill payment: %v", err)
	}

	return id
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
