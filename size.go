package lexdata

// The size codec is a variable-length, order-preserving encoding of a
// non-negative magnitude, used as the length prefix for BigInt payloads.
// It doubles as its own sign carrier: the first byte's high bit records
// whether the *carrier* (not the magnitude) is positive or negative, which
// is what lets the BigInt codec (bigint.go) reuse it as the whole-value
// sign bit.
//
// First byte, highest order:
//
//	S C vvvvvv
//
// S is 1 for a positive carrier, 0 for negative. C is the continuation
// bit: 1 if more bytes follow. The low six bits hold the most significant
// payload bits.
//
// Every following byte:
//
//	C vvvvvvv
//
// Continuation bit plus seven payload bits.
//
// Two encodings exist for a zero-magnitude carrier: positiveZero
// (0b1000_0000, S=1, no continuation, zero payload) and NegativeZero
// (0b0111_1111, the bitwise negation of positiveZero). Only negating a
// positive-zero encoding ever produces NegativeZero; nothing in this file
// emits it directly. See bigint.go and bignum.go for why that matters
// (it's how BigNum represents "-0" without a dedicated zero-sized-magnitude
// case).
const (
	sizeFirstSign         byte = 0b1000_0000
	sizeFirstContinuation byte = 0b0100_0000
	sizeFirstMask         byte = 0b0011_1111
	sizeContinuation      byte = 0b1000_0000
	sizeBaseMask          byte = 0b0111_1111

	// positiveZero is the ordinary encoding of magnitude 0 under a
	// positive carrier. Its negation is NegativeZero.
	positiveZero byte = sizeFirstSign

	// NegativeZero is the canonical encoding of magnitude 0 under a
	// negative carrier.
	NegativeZero byte = ^positiveZero
)

// appendSize appends the order-preserving encoding of n to buf under a
// positive carrier, returning the updated buffer.
//
// The algorithm peels off 7-bit groups from the low end, building the
// byte sequence from the tail backward so the final (highest-order) byte
// can be special-cased to carry the sign bit in 6 payload bits, except
// when n needs exactly 7 bits of payload in its top group, which the
// "7 bits but not 6" case below zero-pads into its own byte.
func appendSize(buf []byte, n uint64) []byte {
	if n == 0 {
		return append(buf, positiveZero)
	}

	var tmp [16]byte // more than enough for any uint64 in 7-bit groups
	end := len(tmp)
	pos := end
	remaining := n
	first := true
	for remaining > 0 {
		pos--
		if remaining >= uint64(sizeContinuation) {
			cont := byte(0)
			if !first {
				cont = sizeContinuation
			}
			tmp[pos] = cont | byte(remaining&uint64(sizeBaseMask))
		} else if remaining > uint64(sizeFirstMask) {
			// Exactly 7 bits of payload needed in the leading group:
			// zero-pad a dedicated first byte above this one.
			cont := byte(0)
			if !first {
				cont = sizeContinuation
			}
			tmp[pos] = cont | byte(remaining&uint64(sizeBaseMask))
			pos--
			tmp[pos] = sizeFirstSign | sizeFirstContinuation
		} else {
			cont := byte(0)
			if !first {
				cont = sizeFirstContinuation
			}
			tmp[pos] = sizeFirstSign | cont | byte(remaining&uint64(sizeFirstMask))
		}
		remaining >>= 7
		first = false
	}
	return append(buf, tmp[pos:end]...)
}

// decodeSize reads a size code from the front of buf, returning the
// carrier's sign (true for positive), the decoded magnitude, and the
// number of bytes consumed.
//
// If the first byte's high bit is clear, the carrier is negative and
// every byte is negated on the fly as it's read, so the same loop decodes
// both polarities: size_dec(encode(n)) and size_dec(negate(encode(n)))
// both yield magnitude n, differing only in the returned sign.
func decodeSize(buf []byte) (positive bool, magnitude uint64, consumed int, err error) {
	if len(buf) == 0 {
		return false, 0, 0, newError(BadSizeEncoding, "empty buffer")
	}

	first := buf[0]
	positive = first&sizeFirstSign != 0
	if !positive {
		first = ^first
	}
	magnitude = uint64(first & sizeFirstMask)
	if first&sizeFirstContinuation == 0 {
		return positive, magnitude, 1, nil
	}

	for i := 1; ; i++ {
		if i >= len(buf) {
			return false, 0, 0, newError(BadSizeEncoding, "truncated size code, %d byte(s) available", len(buf))
		}
		b := buf[i]
		if !positive {
			b = ^b
		}
		magnitude = magnitude<<7 | uint64(b&sizeBaseMask)
		if b&sizeContinuation == 0 {
			return positive, magnitude, i + 1, nil
		}
	}
}
