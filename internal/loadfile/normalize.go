package loadfile

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// bom is the UTF-8 byte-order mark some export tools prepend.
const bom = "\uFEFF"

// controlArtifact is the 0x14 byte this export format leaks into values.
// It is a mis-encoded separator artifact, not meaningful data, and can
// appear anywhere, including inside hash values.
const controlArtifact = "\x14"

// Normalize decodes raw bytes into clean, newline-delimited text.
//
// The input must be valid UTF-8; anything else fails with ErrDecode rather
// than being silently repaired. A single leading BOM is stripped and every
// occurrence of the 0x14 artifact is removed. Normalizing already-normalized
// text is a no-op.
func Normalize(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: invalid byte sequence", ErrDecode)
	}

	text := string(data)
	text = strings.TrimPrefix(text, bom)
	text = strings.ReplaceAll(text, controlArtifact, "")

	return text, nil
}

// splitLines breaks normalized text into physical lines, tolerating both
// Unix and Windows line endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
