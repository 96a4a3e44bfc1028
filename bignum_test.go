package lexdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigNumRoundTrip(t *testing.T) {
	t.Parallel()
	values := []string{
		"-10.3", "-0.001", "-0.0", "0", "0.0", "0.100", "0.333", "10.3",
	}
	for _, s := range values {
		buf, err := appendBigNum(nil, s)
		require.NoError(t, err, s)
		got, consumed, err := decodeBigNum(buf)
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.Equal(t, len(buf), consumed)
	}
}

// TestBigNumOrder walks a sorted list of decimal strings and checks that
// their encodings sort the same way, including the negative-zero case
// (-0.0 sorts strictly between -0.001 and 0).
func TestBigNumOrder(t *testing.T) {
	t.Parallel()
	values := []string{
		"-10.3", "-0.001", "-0.0", "0", "0.0", "0.100", "0.333", "10.3",
	}
	encoded := make([][]byte, len(values))
	for i, s := range values {
		buf, err := appendBigNum(nil, s)
		require.NoError(t, err)
		encoded[i] = buf
	}
	assert.IsIncreasing(t, encoded)
}

func TestBigNumNegativeZeroPrefix(t *testing.T) {
	t.Parallel()
	buf, err := appendBigNum(nil, "-0.0")
	require.NoError(t, err)
	assert.Equal(t, NegativeZero, buf[0])
}

func TestBigNumPositiveZeroPrefix(t *testing.T) {
	t.Parallel()
	buf, err := appendBigNum(nil, "0")
	require.NoError(t, err)
	assert.Equal(t, positiveZero, buf[0])
}

func TestBigNumInvalidText(t *testing.T) {
	t.Parallel()
	_, err := appendBigNum(nil, "not-a-decimal")
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, BadSizeEncoding, e.Kind)
}

func TestLengthOfBigNum(t *testing.T) {
	t.Parallel()
	buf, err := appendBigNum(nil, "-10.3")
	require.NoError(t, err)
	buf = append(buf, 0xAA, 0xBB)
	n, err := lengthOfBigNum(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf)-2, n)
}
