package loadfile

import "strings"

// splitFields splits a line into fields on the delimiter.
//
// The format has no quoting or escaping: the delimiter is a plain separator
// that also wraps each row, so splitting yields one empty token at each end.
// Exactly that leading and trailing empty token are discarded (when present).
// Empty tokens between two interior delimiters are genuinely empty field
// values and are kept, otherwise every later column in the row shifts left
// without any error being raised. Every token is whitespace-trimmed.
func splitFields(line string, delimiter rune) []string {
	tokens := strings.Split(line, string(delimiter))
	for i, tok := range tokens {
		tokens[i] = strings.TrimSpace(tok)
	}

	if len(tokens) > 0 && tokens[0] == "" {
		tokens = tokens[1:]
	}
	if len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	return tokens
}
