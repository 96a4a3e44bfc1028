package lexdata

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// BigNum is the arbitrary-precision decimal codec: an integer part via the
// BigInt codec (bigint.go) followed by a fraction part (fraction.go), with
// the fraction bytes negated for negative values.
//
// Parsing decimal text into (sign, integer magnitude, fraction digit
// string) is delegated to cockroachdb/apd/v3's Decimal, whose Negative,
// Coeff, and Exponent fields decompose surface decimal text exactly,
// including the "-0.0" case: apd.Decimal keeps Negative true even when
// Coeff is zero, something *big.Int cannot itself represent.
//
// The integer part's own sign is always d.Negative, with no special case
// for a zero integer part: appendSignedMagnitude(true, nil) already
// produces NegativeZero by negating the ordinary zero-magnitude size code
// (see bigint.go), which is exactly the "-0.x" prefix a forced negative
// zero needs.

func appendBigNum(buf []byte, text string) ([]byte, error) {
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return nil, newError(BadSizeEncoding, "invalid decimal %q: %v", text, err)
	}

	intMag, fracDigits := splitDecimal(d)

	buf = appendSignedMagnitude(buf, d.Negative, intMag.Bytes())

	fracStart := len(buf)
	buf = appendFraction(buf, fracDigits)
	if d.Negative {
		negate(buf[fracStart:])
	}
	return buf, nil
}

// decodeBigNum reads a BigNum from the front of buf, returning the decimal
// text and the number of bytes consumed.
func decodeBigNum(buf []byte) (string, int, error) {
	neg, mag, consumed, err := decodeSignedMagnitude(buf)
	if err != nil {
		return "", 0, err
	}
	fracDigits, fracConsumed, err := decodeFractionSigned(buf[consumed:], neg)
	if err != nil {
		return "", 0, err
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(new(big.Int).SetBytes(mag).String())
	if fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(fracDigits)
	}
	return b.String(), consumed + fracConsumed, nil
}

// lengthOfBigNum returns the number of bytes a BigNum record occupies at
// the front of buf, without fully decoding it.
func lengthOfBigNum(buf []byte) (int, error) {
	neg, _, consumed, err := decodeSignedMagnitude(buf)
	if err != nil {
		return 0, err
	}
	fracLen, err := lengthOfFractionSigned(buf[consumed:], neg)
	if err != nil {
		return 0, err
	}
	return consumed + fracLen, nil
}

// splitDecimal decomposes an apd.Decimal's unsigned coefficient and
// exponent into an integer magnitude and a fraction digit string (no
// leading '.'), preserving trailing fractional zeros (e.g. "0.100" keeps
// its coefficient's trailing zero rather than normalizing it away).
func splitDecimal(d *apd.Decimal) (intMag *big.Int, fracDigits string) {
	coeff := new(big.Int).Abs((*big.Int)(&d.Coeff))

	if d.Exponent >= 0 {
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Exponent)), nil)
		return new(big.Int).Mul(coeff, pow), ""
	}

	numFracDigits := int(-d.Exponent)
	coeffStr := coeff.String()
	if len(coeffStr) <= numFracDigits {
		return new(big.Int), strings.Repeat("0", numFracDigits-len(coeffStr)) + coeffStr
	}

	splitAt := len(coeffStr) - numFracDigits
	intPart := new(big.Int)
	intPart.SetString(coeffStr[:splitAt], 10)
	return intPart, coeffStr[splitAt:]
}
