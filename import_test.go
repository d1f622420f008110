package casetrail

import (
	"errors"
	"strings"
	"testing"
)

func TestReadRows_ParsesHeaderAndRowsInOrder(t *testing.T) {
	input := "ID,Category,Status\nTC001,Login,Pending\nTC002,Nav,Passed\n"

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ReadRows returned %d rows, want 2", len(rows))
	}
	if rows[0]["ID"] != "TC001" || rows[1]["ID"] != "TC002" {
		t.Errorf("row order not preserved: %v", rows)
	}
	if rows[1]["Status"] != "Passed" {
		t.Errorf("rows[1][Status] = %q, want Passed", rows[1]["Status"])
	}
}

func TestReadRows_ResolvesLegacyHeaderAliases(t *testing.T) {
	input := "ID,Test Case,Test Status,Date of Last Test\nTC001,Valid Login,Passed,2026-01-15\n"

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if rows[0]["TestCase"] != "Valid Login" {
		t.Errorf("TestCase = %q, want alias resolved", rows[0]["TestCase"])
	}
	if rows[0]["Status"] != "Passed" {
		t.Errorf("Status = %q, want alias resolved", rows[0]["Status"])
	}
	if rows[0]["LastTestDate"] != "2026-01-15" {
		t.Errorf("LastTestDate = %q, want alias resolved", rows[0]["LastTestDate"])
	}
}

func TestReadRows_MissingIDColumn(t *testing.T) {
	_, err := ReadRows(strings.NewReader("Category,Status\nLogin,Pending\n"))

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
	if loadErr.Row != 0 {
		t.Errorf("LoadError.Row = %d, want 0 (header fault)", loadErr.Row)
	}
}

func TestReadRows_EmptyInput(t *testing.T) {
	var loadErr *LoadError
	if _, err := ReadRows(strings.NewReader("")); !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *LoadError for empty input", err)
	}
}

func TestReadRows_RaggedRowFailsWholeLoad(t *testing.T) {
	input := "ID,Category\nTC001,Login\nTC002,Login,unexpected\nTC003,Nav\n"

	rows, err := ReadRows(strings.NewReader(input))
	if rows != nil {
		t.Error("partial rows returned from a failed load")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
	if loadErr.Row != 2 {
		t.Errorf("LoadError.Row = %d, want 2", loadErr.Row)
	}
}

func TestReadRows_QuotedValues(t *testing.T) {
	input := "ID,Notes\nTC001,\"hello, world\nsecond line\"\n"

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if rows[0]["Notes"] != "hello, world\nsecond line" {
		t.Errorf("Notes = %q, quoting not honored", rows[0]["Notes"])
	}
}

func TestReadRows_HeaderOnlyYieldsZeroRows(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("ID,Category,Status\n"))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("ReadRows returned %d rows, want 0", len(rows))
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"2026-08-30", "2026-08-30"},
		{"2026/08/30", "2026-08-30"},
		{"08/30/2026", "2026-08-30"},
		{"2026-08-30 14:22:01", "2026-08-30"},
		{"2026-08-30T14:22:01Z", "2026-08-30"},
		{"next week", "next week"},
		{"30-08-2026?", "30-08-2026?"},
	}
	for _, tt := range tests {
		if got := NormalizeDate(tt.in); got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
