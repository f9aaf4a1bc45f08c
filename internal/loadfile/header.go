package loadfile

import (
	"fmt"
	"strings"
)

// locateHeader finds the boundary between the header block and the data
// region. The header spans up to three physical lines because one column
// name contains an embedded line break, so the first line containing the
// marker (the final canonical column's name) terminates the block.
//
// Returns the header-block lines concatenated with no separator — the break
// occurs mid-token and must vanish, not become whitespace — plus the
// remaining data lines.
func locateHeader(lines []string, marker string) (string, []string, error) {
	for i, line := range lines {
		if strings.Contains(line, marker) {
			return strings.Join(lines[:i+1], ""), lines[i+1:], nil
		}
	}
	return "", nil, fmt.Errorf("%w: no line contains %q", ErrHeaderNotFound, marker)
}

// tokenizeHeader splits the concatenated header block into the column names
// for this file. The file's own header wins over the canonical schema.
func tokenizeHeader(block string, delimiter rune) ([]string, error) {
	columns := splitFields(block, delimiter)
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: header block %q", ErrEmptyHeader, block)
	}
	return columns, nil
}
