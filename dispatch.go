package lexdata

// Encode, Decode, and LengthOfRecord are the package's top-level entry
// points: a record is one leading Aspect byte followed by the payload
// storageFor(aspect) selects. Decode and LengthOfRecord only need that
// leading byte to know how much of buf to consume next; neither ever
// needs to look past the payload, which is what lets records be
// concatenated without any outer length prefix.

// Encode appends the encoding of v, tagged with aspect, to buf.
//
// aspect must be compatible with v.Kind: Boolean requires KindBool, the
// aspects routed to StorageString require KindText, Decimal requires
// KindText holding decimal digits, DateTime and DateTimeStamp require
// KindText holding an RFC-3339 timestamp, and the numeric storage types
// require the matching numeric Kind. An incompatible pairing, or an
// aspect value outside the named enumeration, returns an
// UnexpectedAspect error.
func Encode(buf []byte, aspect Aspect, v Value) ([]byte, error) {
	if aspect == Boolean {
		if v.Kind != KindBool {
			return nil, newError(UnexpectedAspect, "aspect Boolean requires a bool value, got kind %d", v.Kind)
		}
		if v.BoolVal {
			return append(buf, byte(aspectTrue)), nil
		}
		return append(buf, byte(aspectFalse)), nil
	}

	storage, ok := storageFor(aspect)
	if !ok {
		return nil, newError(UnexpectedAspect, "unrecognized aspect %d", byte(aspect))
	}

	buf = append(buf, byte(aspect))

	switch storage {
	case StorageString:
		if v.Kind != KindText {
			return nil, newError(UnexpectedAspect, "aspect %s requires a text value, got kind %d", aspect, v.Kind)
		}
		return appendString(buf, v.Text), nil

	case StorageDateTime:
		if v.Kind != KindText {
			return nil, newError(UnexpectedAspect, "aspect %s requires a text value, got kind %d", aspect, v.Kind)
		}
		return appendDateTime(buf, v.Text)

	case StorageBigNum:
		if v.Kind != KindText {
			return nil, newError(UnexpectedAspect, "aspect %s requires a text value, got kind %d", aspect, v.Kind)
		}
		return appendBigNum(buf, v.Text)

	case StorageBigInt:
		if v.Kind != KindBigInt {
			return nil, newError(UnexpectedAspect, "aspect %s requires a big int value, got kind %d", aspect, v.Kind)
		}
		return appendBigInt(buf, v.BigIntVal), nil

	case StorageInt32:
		if v.Kind != KindInt32 {
			return nil, newError(UnexpectedAspect, "aspect %s requires an int32 value, got kind %d", aspect, v.Kind)
		}
		return appendInt32(buf, v.Int32Val), nil

	case StorageInt64:
		if v.Kind != KindInt64 {
			return nil, newError(UnexpectedAspect, "aspect %s requires an int64 value, got kind %d", aspect, v.Kind)
		}
		return appendInt64(buf, v.Int64Val), nil

	case StorageFloat32:
		if v.Kind != KindFloat32 {
			return nil, newError(UnexpectedAspect, "aspect %s requires a float32 value, got kind %d", aspect, v.Kind)
		}
		return appendFloat32(buf, v.Float32Val), nil

	case StorageFloat64:
		if v.Kind != KindFloat64 {
			return nil, newError(UnexpectedAspect, "aspect %s requires a float64 value, got kind %d", aspect, v.Kind)
		}
		return appendFloat64(buf, v.Float64Val), nil

	default:
		return nil, newError(UnexpectedAspect, "aspect %s has no registered storage", aspect)
	}
}

// Decode reads one record from the front of buf, returning the record's
// Aspect, its decoded Value, and the number of bytes consumed.
func Decode(buf []byte) (Aspect, Value, int, error) {
	if len(buf) == 0 {
		return 0, Value{}, 0, newError(UnexpectedAspect, "empty buffer")
	}

	first := Aspect(buf[0])
	switch first {
	case aspectFalse:
		return Boolean, BoolValue(false), 1, nil
	case aspectTrue:
		return Boolean, BoolValue(true), 1, nil
	}

	storage, ok := storageFor(first)
	if !ok {
		return 0, Value{}, 0, newError(UnexpectedAspect, "unrecognized aspect byte %d", buf[0])
	}
	rest := buf[1:]

	switch storage {
	case StorageString:
		s, n, err := decodeString(rest)
		if err != nil {
			return 0, Value{}, 0, err
		}
		return first, TextValue(s), n + 1, nil

	case StorageDateTime:
		s, n, err := decodeDateTime(rest)
		if err != nil {
			return 0, Value{}, 0, err
		}
		return first, TextValue(s), n + 1, nil

	case StorageBigNum:
		s, n, err := decodeBigNum(rest)
		if err != nil {
			return 0, Value{}, 0, err
		}
		return first, TextValue(s), n + 1, nil

	case StorageBigInt:
		v, n, err := decodeBigInt(rest)
		if err != nil {
			return 0, Value{}, 0, err
		}
		return first, BigIntValue(v), n + 1, nil

	case StorageInt32:
		v, n, err := decodeInt32(rest)
		if err != nil {
			return 0, Value{}, 0, err
		}
		return first, Int32Value(v), n + 1, nil

	case StorageInt64:
		v, n, err := decodeInt64(rest)
		if err != nil {
			return 0, Value{}, 0, err
		}
		return first, Int64Value(v), n + 1, nil

	case StorageFloat32:
		v, n, err := decodeFloat32(rest)
		if err != nil {
			return 0, Value{}, 0, err
		}
		return first, Float32Value(v), n + 1, nil

	case StorageFloat64:
		v, n, err := decodeFloat64(rest)
		if err != nil {
			return 0, Value{}, 0, err
		}
		return first, Float64Value(v), n + 1, nil

	default:
		return 0, Value{}, 0, newError(UnexpectedAspect, "aspect %s has no registered storage", first)
	}
}

// LengthOfRecord returns the number of bytes the record at the front of
// buf occupies, without decoding its payload. This lets a caller skip
// over records - for example while scanning a range of concatenated keys
// - without paying for a full Decode.
func LengthOfRecord(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, newError(UnexpectedAspect, "empty buffer")
	}

	first := Aspect(buf[0])
	switch first {
	case aspectFalse, aspectTrue:
		return 1, nil
	}

	storage, ok := storageFor(first)
	if !ok {
		return 0, newError(UnexpectedAspect, "unrecognized aspect byte %d", buf[0])
	}
	rest := buf[1:]

	var n int
	var err error
	switch storage {
	case StorageString:
		n, err = lengthOfString(rest)
	case StorageDateTime:
		n, err = int64Size, checkLen(rest, int64Size)
	case StorageBigNum:
		n, err = lengthOfBigNum(rest)
	case StorageBigInt:
		n, err = lengthOfSignedMagnitude(rest)
	case StorageInt32:
		n, err = int32Size, checkLen(rest, int32Size)
	case StorageInt64:
		n, err = int64Size, checkLen(rest, int64Size)
	case StorageFloat32:
		n, err = int32Size, checkLen(rest, int32Size)
	case StorageFloat64:
		n, err = int64Size, checkLen(rest, int64Size)
	default:
		return 0, newError(UnexpectedAspect, "aspect %s has no registered storage", first)
	}
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

func checkLen(buf []byte, n int) error {
	if len(buf) < n {
		return newError(BadSizeEncoding, "need %d bytes, have %d", n, len(buf))
	}
	return nil
}
