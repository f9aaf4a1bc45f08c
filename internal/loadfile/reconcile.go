package loadfile

import "strings"

// reconcileRows tokenizes each data line and forces it to the header width.
//
// Under the default lenient policy no row is ever rejected: trailing stray
// tokens are truncated and missing trailing fields are padded with empty
// strings. Under the strict policy a row whose width differs from the header
// is dropped and counted instead of being silently reshaped — bulk acceptance
// can mask structurally broken rows.
//
// Lines that are empty after trimming are skipped entirely.
func reconcileRows(lines []string, delimiter rune, width int, strict bool) (rows [][]string, skipped int) {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		tokens := splitFields(line, delimiter)
		switch {
		case len(tokens) == width:
			// accept as-is
		case strict:
			skipped++
			continue
		case len(tokens) > width:
			tokens = tokens[:width]
		default:
			padded := make([]string, width)
			copy(padded, tokens)
			tokens = padded
		}

		rows = append(rows, tokens)
	}
	return rows, skipped
}
