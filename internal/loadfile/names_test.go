package loadfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLetters(t *testing.T) {
	tests := []struct {
		pos  int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{28, "AB"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, columnLetters(tt.pos), "position %d", tt.pos)
	}
}

func TestSyntheticNames_WrapsAtZ(t *testing.T) {
	names := SyntheticNames(27)
	require.Len(t, names, 27)
	assert.Equal(t, "A", names[0])
	assert.Equal(t, "Z", names[25])
	assert.Equal(t, "AA", names[26])
}

func TestSyntheticNames_Empty(t *testing.T) {
	assert.Empty(t, SyntheticNames(0))
}
