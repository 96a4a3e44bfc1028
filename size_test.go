package lexdata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendSizeVectors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    uint64
		data []byte
	}{
		{"zero", 0, []byte{positiveZero}},
		{"one", 1, []byte{0b1000_0001}},
		{"twelve", 12, []byte{0b1000_1100}},
		{"max single byte", 63, []byte{0b1011_1111}},
		{"min two bytes", 64, []byte{0b1100_0000, 0b0100_0000}},
		{"four thousand ninety five", 4095, []byte{0b1101_1111, 0b0111_1111}},
		{"nine byte boundary", 72057594037927935, []byte{
			0xC0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := appendSize(nil, tt.n)
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestSizeRoundTrip(t *testing.T) {
	t.Parallel()
	values := []uint64{0, 1, 12, 63, 64, 127, 128, 4095, 4096, 1 << 20, 72057594037927935, math.MaxUint32, math.MaxUint64}
	for _, n := range values {
		buf := appendSize(nil, n)
		positive, got, consumed, err := decodeSize(buf)
		require.NoError(t, err)
		assert.True(t, positive)
		assert.Equal(t, n, got)
		assert.Equal(t, len(buf), consumed)
	}
}

func TestSizeOrderPreserving(t *testing.T) {
	t.Parallel()
	values := []uint64{0, 1, 12, 63, 64, 127, 128, 4095, 4096, 1 << 20, 72057594037927935, math.MaxUint64}
	encoded := make([][]byte, len(values))
	for i, n := range values {
		encoded[i] = appendSize(nil, n)
	}
	assert.IsIncreasing(t, encoded)
}

func TestDecodeSizeTruncated(t *testing.T) {
	t.Parallel()
	buf := appendSize(nil, 4096)
	_, _, _, err := decodeSize(buf[:len(buf)-1])
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, BadSizeEncoding, e.Kind)
}

func TestDecodeSizeEmpty(t *testing.T) {
	t.Parallel()
	_, _, _, err := decodeSize(nil)
	require.Error(t, err)
}
