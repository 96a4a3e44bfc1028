package lexdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()
	values := []string{
		"", "a", "hello", "with\x00null", "with\x01escape", "both\x00\x01mixed",
	}
	for _, s := range values {
		buf := appendString(nil, s)
		got, consumed, err := decodeString(buf)
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.Equal(t, len(buf), consumed)
	}
}

func TestStringSelfDelimits(t *testing.T) {
	t.Parallel()
	a := appendString(nil, "abc")
	b := appendString(nil, "xyz")
	concatenated := append(append([]byte{}, a...), b...)

	got, n, err := decodeString(concatenated)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, n, len(a))

	got2, _, err := decodeString(concatenated[n:])
	require.NoError(t, err)
	assert.Equal(t, "xyz", got2)
}

func TestStringOrder(t *testing.T) {
	t.Parallel()
	values := []string{"", "a", "aa", "ab", "b"}
	encoded := make([][]byte, len(values))
	for i, s := range values {
		encoded[i] = appendString(nil, s)
	}
	assert.IsIncreasing(t, encoded)
}

func TestStringUnterminated(t *testing.T) {
	t.Parallel()
	_, _, err := decodeString([]byte{'a', 'b', 'c'})
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, BadSizeEncoding, e.Kind)
}

func TestLengthOfString(t *testing.T) {
	t.Parallel()
	buf := appendString(nil, "hello")
	buf = append(buf, 0xAA, 0xBB)
	n, err := lengthOfString(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf)-2, n)
}
