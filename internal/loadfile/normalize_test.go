package loadfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_StripsBOM(t *testing.T) {
	out, err := Normalize([]byte("\uFEFFþBates Beginþ"))
	require.NoError(t, err)
	assert.Equal(t, "þBates Beginþ", out)
}

func TestNormalize_RemovesControlArtifactEverywhere(t *testing.T) {
	// 0x14 is a mis-encoded artifact, not data: it must vanish even from
	// the middle of a value, not only at field boundaries.
	out, err := Normalize([]byte("þd41d\x148cd9\x14þ\x14"))
	require.NoError(t, err)
	assert.Equal(t, "þd41d8cd9þ", out)
	assert.NotContains(t, out, "\x14")
}

func TestNormalize_Idempotent(t *testing.T) {
	once, err := Normalize([]byte("\uFEFFþAþ\x14þBþ"))
	require.NoError(t, err)

	twice, err := Normalize([]byte(once))
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalize_InvalidUTF8(t *testing.T) {
	_, err := Normalize([]byte{0xfe, 0xff, 0x41})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestNormalize_EmptyInput(t *testing.T) {
	out, err := Normalize(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestSplitLines_WindowsEndings(t *testing.T) {
	lines := splitLines("one\r\ntwo\nthree")
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}
