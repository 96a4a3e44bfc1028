package lexdata

import "math/big"

// BigInt is the arbitrary-precision signed integer codec: a size code
// carrying the magnitude's byte count, followed by that many big-endian
// magnitude bytes, with the whole run (size code and payload)
// bitwise-negated for negative values.

// appendSignedMagnitude appends a size-code-prefixed sign-and-magnitude
// encoding of mag (a big-endian, no-leading-zero byte slice) to buf, negated
// as a whole run when neg is true.
//
// The payload keeps one extra bit of headroom above the magnitude's
// significant bits: when mag's leading byte has its high bit set, a zero
// byte is written ahead of it, so the payload is ceil((bits+1)/8) bytes.
//
// mag may be nil or empty to represent zero. Passing neg=true with an empty
// mag is how BigNum represents "-0": the ordinary zero-magnitude size code
// (positiveZero, see size.go) gets negated into NegativeZero, with no
// special-cased byte constant needed here.
func appendSignedMagnitude(buf []byte, neg bool, mag []byte) []byte {
	start := len(buf)
	headroom := len(mag) > 0 && mag[0]&0x80 != 0
	numBytes := len(mag)
	if headroom {
		numBytes++
	}
	buf = appendSize(buf, uint64(numBytes))
	if headroom {
		buf = append(buf, 0)
	}
	buf = append(buf, mag...)
	if neg {
		negate(buf[start:])
	}
	return buf
}

// decodeSignedMagnitude reads a size-code-prefixed sign-and-magnitude run
// from the front of buf, returning the sign (true for negative), the
// magnitude bytes (big-endian, freshly allocated), and the number of bytes
// consumed.
func decodeSignedMagnitude(buf []byte) (neg bool, mag []byte, consumed int, err error) {
	positive, numBytes, idx, err := decodeSize(buf)
	if err != nil {
		return false, nil, 0, err
	}
	if numBytes > uint64(len(buf)-idx) {
		return false, nil, 0, newError(BadSizeEncoding, "need %d magnitude bytes, have %d", numBytes, len(buf)-idx)
	}
	mag = make([]byte, numBytes)
	copy(mag, buf[idx:idx+int(numBytes)])
	if !positive {
		negate(mag)
	}
	return !positive, mag, idx + int(numBytes), nil
}

// appendBigInt appends the BigInt encoding of v to buf.
//
// v.Bytes() is the minimal big-endian magnitude with no leading zero byte;
// appendSignedMagnitude adds the one-bit headroom (a leading zero byte when
// the top byte's high bit is set). The sign travels as a separate bool
// negated over the whole run, never in the payload's own high bit.
func appendBigInt(buf []byte, v *big.Int) []byte {
	return appendSignedMagnitude(buf, v.Sign() < 0, v.Bytes())
}

// decodeBigInt reads a BigInt from the front of buf, returning the decoded
// value and the number of bytes consumed.
func decodeBigInt(buf []byte) (*big.Int, int, error) {
	neg, mag, consumed, err := decodeSignedMagnitude(buf)
	if err != nil {
		return nil, 0, err
	}
	v := new(big.Int).SetBytes(mag)
	if neg {
		v.Neg(v)
	}
	return v, consumed, nil
}

// lengthOfSignedMagnitude returns the number of bytes a signed-magnitude
// record occupies at the front of buf, without fully decoding it.
func lengthOfSignedMagnitude(buf []byte) (int, error) {
	_, numBytes, idx, err := decodeSize(buf)
	if err != nil {
		return 0, err
	}
	if numBytes > uint64(len(buf)-idx) {
		return 0, newError(BadSizeEncoding, "need %d magnitude bytes, have %d", numBytes, len(buf)-idx)
	}
	return idx + int(numBytes), nil
}
