package casetrail

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// ExportCSV serializes the live store to CSV: canonical header, all fields in
// canonical order, one row per record including unmodified ones. The output
// reflects current values, not the baseline.
func ExportCSV(s *Store, w io.Writer) error {
	cw := csv.NewWriter(w)

	fields := Fields()
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = string(f)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range s.Rows() {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// SuggestedFilename returns a download filename stamped with the given time.
// Purely a presentation nicety; callers may name the output anything.
func SuggestedFilename(now time.Time) string {
	return fmt.Sprintf("test_cases_updated_%s.csv", now.Format("20060102_150405"))
}
