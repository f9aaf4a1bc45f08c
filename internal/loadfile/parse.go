package loadfile

import "fmt"

// Default values for Options. The thorn delimiter and the "Native Link"
// marker are what the real-world export tooling produces.
const (
	DefaultDelimiter    = 'þ' // U+00FE
	DefaultHeaderMarker = "Native Link"
)

// Options configures a single Parse call. The zero value selects the
// defaults. Options are plain values; nothing in the parser mutates them
// or retains them.
type Options struct {
	// Delimiter is the field wrapper/separator character.
	Delimiter rune

	// HeaderMarker is the substring that identifies the last physical line
	// of the header block. By convention it is the final canonical column
	// name.
	HeaderMarker string

	// UseFixedHeaderNames substitutes the canonical schema for the file's
	// own header names. The observed column count always wins: canonical
	// names are truncated to it, or padded with synthetic letter names
	// beyond position 28.
	UseFixedHeaderNames bool

	// StrictWidth drops rows whose width differs from the header instead of
	// force-padding or truncating them.
	StrictWidth bool
}

func (o Options) withDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = DefaultDelimiter
	}
	if o.HeaderMarker == "" {
		o.HeaderMarker = DefaultHeaderMarker
	}
	return o
}

// Table is the parser's output: ordered column names plus rows of string
// cells. Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string

	// SkippedRows counts data lines dropped under the strict width policy.
	// Always zero under the lenient policy.
	SkippedRows int
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Parse turns raw load-file bytes into a rectangular table.
//
// A file with a valid header and zero data lines is a successful empty
// result (a Table with no rows), not an error. Failures are reported as
// errors wrapping one of the package sentinels: ErrDecode,
// ErrHeaderNotFound, ErrEmptyHeader, or ErrSchemaMismatch.
func Parse(data []byte, opts Options) (*Table, error) {
	opts = opts.withDefaults()

	text, err := Normalize(data)
	if err != nil {
		return nil, err
	}

	headerBlock, dataLines, err := locateHeader(splitLines(text), opts.HeaderMarker)
	if err != nil {
		return nil, err
	}

	header, err := tokenizeHeader(headerBlock, opts.Delimiter)
	if err != nil {
		return nil, err
	}

	width := len(header)
	columns := header
	if opts.UseFixedHeaderNames {
		columns = fixedNames(width)
	}

	rows, skipped := reconcileRows(dataLines, opts.Delimiter, width, opts.StrictWidth)

	return assemble(columns, rows, skipped)
}

// fixedNames resolves the canonical schema against the observed width:
// truncated when the file has fewer columns, padded with synthetic letter
// names when it has more.
func fixedNames(width int) []string {
	names := make([]string, width)
	for i := range names {
		if i < len(CanonicalColumns) {
			names[i] = CanonicalColumns[i]
		} else {
			names[i] = columnLetters(i + 1)
		}
	}
	return names
}

// assemble builds the final Table, re-checking the width invariant that
// reconciliation is supposed to guarantee.
func assemble(columns []string, rows [][]string, skipped int) (*Table, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d",
				ErrSchemaMismatch, i+1, len(row), len(columns))
		}
	}
	return &Table{Columns: columns, Rows: rows, SkippedRows: skipped}, nil
}
