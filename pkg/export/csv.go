// Package export writes the admin CSV downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// Write emits a UTF-8 CSV with a header row. encoding/csv quotes fields
// containing commas/quotes/newlines, so round-tripping through a standard
// parser reproduces the values exactly.
func Write(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename follows the {entity}-export-{ISO date}.csv pattern.
func Filename(entity string, now time.Time) string {
	return fmt.Sprintf("%s-export-%s.csv", entity, now.Format("2006-01-02"))
}
