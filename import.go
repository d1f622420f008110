package casetrail

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Header aliases accepted on import. The legacy sheet format spelled several
// columns differently; exports always use canonical headers.
var headerAliases = map[string]Field{
	"Test Case":         FieldTestCase,
	"Test Description":  FieldDescription,
	"Test Input":        FieldInput,
	"Expected Outcome":  FieldExpectedOutcome,
	"Test Env":          FieldEnvironment,
	"Observed Outcome":  FieldObservedOutcome,
	"Test Status":       FieldStatus,
	"Last Test Date":    FieldLastTestDate,
	"Date of Last Test": FieldLastTestDate,
}

func canonicalHeader(name string) string {
	name = strings.TrimSpace(name)
	if f, ok := headerAliases[name]; ok {
		return string(f)
	}
	return name
}

// ReadRows parses CSV input into ordered raw rows keyed by canonical header
// names. The header must name at least the ID column; any malformed row shape
// fails the whole load with a *LoadError, never a partial result.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &LoadError{Err: errors.New("empty input: missing header")}
	}
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("read header: %w", err)}
	}

	columns := make([]string, len(header))
	hasID := false
	for i, name := range header {
		columns[i] = canonicalHeader(name)
		if columns[i] == string(FieldID) {
			hasID = true
		}
	}
	if !hasID {
		return nil, &LoadError{Err: errors.New("header does not name an ID column")}
	}

	var rows []Row
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.Reader enforces a uniform column count; ragged rows land here.
			return nil, &LoadError{Row: line, Err: err}
		}

		row := make(Row, len(columns))
		for i, name := range columns {
			row[name] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Date layouts recognized at the boundary, canonical form first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// NormalizeDate canonicalizes a date string to ISO form (2006-01-02) when it
// parses under a recognized layout, and returns the input verbatim otherwise.
// An unparseable date is preserved, not rejected: only row shape failures
// abort a load.
func NormalizeDate(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return value
}
