package loadfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "wrapped row loses exactly one empty token per end",
			line: "þXþYþZþ",
			want: []string{"X", "Y", "Z"},
		},
		{
			name: "interior empty field is preserved",
			line: "þAþþCþ",
			want: []string{"A", "", "C"},
		},
		{
			name: "whitespace around values is trimmed",
			line: "þ BATES000001 þ  þ Smith, Jane þ",
			want: []string{"BATES000001", "", "Smith, Jane"},
		},
		{
			name: "unwrapped line keeps all tokens",
			line: "XþY",
			want: []string{"X", "Y"},
		},
		{
			name: "whitespace-only boundary tokens count as wrappers",
			line: "þAþBþ  ",
			want: []string{"A", "B"},
		},
		{
			name: "consecutive interior empties survive",
			line: "þAþþþDþ",
			want: []string{"A", "", "", "D"},
		},
		{
			name: "empty line",
			line: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitFields(tt.line, DefaultDelimiter)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitFields_CustomDelimiter(t *testing.T) {
	got := splitFields("|a||c|", '|')
	assert.Equal(t, []string{"a", "", "c"}, got)
}
