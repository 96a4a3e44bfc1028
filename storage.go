package lexdata

// StorageType is the internal routing enum: every Aspect maps to exactly
// one StorageType via storageFor, which selects the codec dispatch.go
// invokes.
type StorageType int

const (
	StorageString StorageType = iota + 1
	StorageInt32
	StorageInt64
	StorageFloat32
	StorageFloat64
	StorageBigInt
	StorageBigNum
	StorageDateTime
)

// storageFor is the total aspect -> storage type mapping. A handful of
// mappings are load-bearing (Token->String, Decimal->BigNum,
// PositiveInteger->BigInt, Int|Short|Byte->Int32, DateTime->DateTime); the
// remainder is recorded in DESIGN.md under "Aspect -> StorageType mapping".
//
// Partial-date aspects (GYear...GDay) and the Duration family have no
// defined numeric wire format, so they route to StorageString: their
// surface text round-trips, but no semantic ordering beyond raw byte
// comparison is claimed for them.
var aspectStorage = map[Aspect]StorageType{
	String:             StorageString,
	HexBinary:          StorageString,
	Base64Binary:       StorageString,
	AnyURI:             StorageString,
	Language:           StorageString,
	NormalizedString:   StorageString,
	Token:              StorageString,
	NmToken:            StorageString,
	Name:               StorageString,
	NCName:             StorageString,
	NOtation:           StorageString,
	QName:              StorageString,
	ID:                 StorageString,
	IdRef:              StorageString,
	Entity:             StorageString,
	XMLLiteral:         StorageString,
	PlainLiteral:       StorageString,
	LangString:         StorageString,
	Literal:            StorageString,
	Date:               StorageString,
	Time:               StorageString,
	GYear:              StorageString,
	GYearMonth:         StorageString,
	GMonth:             StorageString,
	GMonthDay:          StorageString,
	GDay:               StorageString,
	Duration:           StorageString,
	DayTimeDuration:    StorageString,
	YearMonthDuration:  StorageString,

	DateTime:      StorageDateTime,
	DateTimeStamp: StorageDateTime,

	Byte:         StorageInt32,
	Short:        StorageInt32,
	Int:          StorageInt32,
	UnsignedByte: StorageInt32,

	// UnsignedShort (0..65535) fits easily in int32's positive range
	// (max int32 is ~2.1 billion), so it is routed to Int32 for the same
	// reason Byte/Short are. UnsignedInt
	// (0..2^32-1) does not fit in int32's positive half, so it goes to
	// Int64 instead, alongside Long and UnsignedLong (Value has no unsigned
	// variant; see DESIGN.md for why this is safe for ordering even though
	// UnsignedLong's true range exceeds int64).
	UnsignedShort: StorageInt32,
	Long:          StorageInt64,
	UnsignedInt:   StorageInt64,
	UnsignedLong:  StorageInt64,

	Double: StorageFloat64,
	Float:  StorageFloat32,

	Decimal: StorageBigNum,

	Integer:            StorageBigInt,
	PositiveInteger:    StorageBigInt,
	NonNegativeInteger: StorageBigInt,
	NegativeInteger:    StorageBigInt,
	NonPositiveInteger: StorageBigInt,
}

// storageFor returns the StorageType for aspect, and false if aspect is
// not one of the named enumeration values (including the wire-only
// aspectFalse/aspectTrue, which never reach this function — see
// dispatch.go).
func storageFor(aspect Aspect) (StorageType, bool) {
	st, ok := aspectStorage[aspect]
	return st, ok
}
