package core

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/JonMunkholm/BatesView/internal/loadfile"
)

// WriteCSV streams a parsed table as RFC 4180 CSV: header row first, then
// data rows, quoting handled by encoding/csv. This is the generic
// downstream encoding of the parser's output, not part of parsing.
func WriteCSV(w io.Writer, table *loadfile.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
