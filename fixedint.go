package lexdata

import "encoding/binary"

// Int32 and Int64 are fixed-width signed integer codecs: big-endian
// two's-complement with the sign bit flipped, so that negative values sort
// before non-negative ones byte-for-byte.

const (
	int32Size = 4
	int64Size = 8
)

// appendInt32 appends the order-preserving 4-byte encoding of v to buf.
func appendInt32(buf []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(buf, uint32(v)^0x8000_0000)
}

// decodeInt32 reads a 4-byte order-preserving int32 from the front of buf.
func decodeInt32(buf []byte) (int32, int, error) {
	if len(buf) < int32Size {
		return 0, 0, newError(BadInt32Layout, "need %d bytes, have %d", int32Size, len(buf))
	}
	return int32(binary.BigEndian.Uint32(buf) ^ 0x8000_0000), int32Size, nil
}

// appendInt64 appends the order-preserving 8-byte encoding of v to buf.
func appendInt64(buf []byte, v int64) []byte {
	return binary.BigEndian.AppendUint64(buf, uint64(v)^0x8000_0000_0000_0000)
}

// decodeInt64 reads an 8-byte order-preserving int64 from the front of buf.
func decodeInt64(buf []byte) (int64, int, error) {
	if len(buf) < int64Size {
		return 0, 0, newError(BadInt64Layout, "need %d bytes, have %d", int64Size, len(buf))
	}
	return int64(binary.BigEndian.Uint64(buf) ^ 0x8000_0000_0000_0000), int64Size, nil
}
