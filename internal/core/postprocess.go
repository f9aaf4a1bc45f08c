package core

import (
	"strconv"
	"strings"

	"github.com/JonMunkholm/BatesView/internal/loadfile"
	"github.com/JonMunkholm/BatesView/internal/schema"
)

// Display post-processing. These are presentation decisions layered on top
// of the parser's output, not parser contracts: the parser hands back every
// column and every cell verbatim.

// PruneEmptyColumns returns a table without columns whose every cell is
// empty (the untracked attachment-metadata columns usually are). A table
// with zero rows keeps all its columns.
func PruneEmptyColumns(t *loadfile.Table) *loadfile.Table {
	if len(t.Rows) == 0 {
		return t
	}

	keep := make([]int, 0, len(t.Columns))
	for i := range t.Columns {
		for _, row := range t.Rows {
			if row[i] != "" {
				keep = append(keep, i)
				break
			}
		}
	}

	if len(keep) == len(t.Columns) {
		return t
	}

	pruned := &loadfile.Table{
		Columns:     make([]string, len(keep)),
		Rows:        make([][]string, len(t.Rows)),
		SkippedRows: t.SkippedRows,
	}
	for j, i := range keep {
		pruned.Columns[j] = t.Columns[i]
	}
	for r, row := range t.Rows {
		cells := make([]string, len(keep))
		for j, i := range keep {
			cells[j] = row[i]
		}
		pruned.Rows[r] = cells
	}
	return pruned
}

// CoercePages rewrites the Pages column in place: numeric values are
// normalized, anything else becomes the empty string.
func CoercePages(t *loadfile.Table) {
	idx := t.ColumnIndex(schema.PagesColumn)
	if idx < 0 {
		return
	}
	for _, row := range t.Rows {
		row[idx] = coerceNumeric(row[idx])
	}
}

// coerceNumeric normalizes a numeric string, preferring integer form.
// "12" → "12", "12.0" → "12", "3.5" → "3.5", "twelve" → "".
func coerceNumeric(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
