/*
Package lexdata encodes typed scalar values as order-preserving byte
strings suitable for use as, or as components of, keys in a sorted
key-value store.

Every encoded record is an [Aspect] byte followed by a payload whose
shape depends on that aspect: fixed-width for the XSD numeric aspects
that map to int32/int64/float32/float64, a self-terminating escaped run
for the aspects that carry free text, a sign-and-magnitude run for
arbitrary-precision integers, and a sign-and-magnitude integer part
followed by a BCD-packed fraction for arbitrary-precision decimals.
Records concatenate without a length prefix: [LengthOfRecord] finds
where one ends without decoding it, and the byte order of concatenated
records matches the natural order of the values they encode, field by
field.

[Encode] and [Decode] are the two entry points most callers need.
[Value] is the tagged union of everything [Encode] can accept; the
*Value constructors ([TextValue], [Int32Value], [Int64Value],
[Float32Value], [Float64Value], [BigIntValue], [BoolValue]) build one
from a Go value, and [Aspect] says which XSD-shaped type it should be
treated as.

Arbitrary-precision decimals are passed and returned as decimal text
(e.g. "-10.3"), not as a numeric type, since no built-in Go type
represents a signed decimal with a distinguishable negative zero: the
[Decimal] aspect's Value is always a [TextValue].
*/
package lexdata
