package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
	"time"
)

func TestWriteRoundTripsEmbeddedCommas(t *testing.T) {
	header := []string{"Email", "Full Name", "User Type", "Status", "Created At"}
	rows := [][]string{
		{"a@test.local", "Doe, Jane", "customer", "active", "2026-01-15 10:00:00"},
		{"b@test.local", `Says "hi"`, "customer", "suspended", "2026-02-01 09:30:00"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, header, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	parsed, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if !reflect.DeepEqual(parsed[0], header) {
		t.Fatalf("header = %v", parsed[0])
	}
	if !reflect.DeepEqual(parsed[1], rows[0]) {
		t.Fatalf("row 1 = %v, want %v", parsed[1], rows[0])
	}
	if parsed[1][1] != "Doe, Jane" {
		t.Fatalf("comma value = %q", parsed[1][1])
	}
	if !reflect.DeepEqual(parsed[2], rows[1]) {
		t.Fatalf("row 2 = %v, want %v", parsed[2], rows[1])
	}
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 8, 29, 13, 45, 0, 0, time.UTC)
	if got := Filename("drivers", at); got != "drivers-export-2026-08-29.csv" {
		t.Fatalf("filename = %q", got)
	}
}
