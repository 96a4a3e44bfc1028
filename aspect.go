package lexdata

// Aspect is the closed, XSD-aligned semantic type tag carried as the first
// byte of every encoded record. Its values come from declaration order
// (iota, starting at 1) rather than from explicit literals, and the byte
// value assigned to each aspect is part of the wire format, so the order
// of the list below is itself the byte table: entries must never be
// reordered, removed or reused, only appended. Two values, aspectFalse and aspectTrue, are
// internal: they never appear as a decoded Aspect (see dispatch.go), only
// as the wire byte for a Bool Value.
//
// A stable small-integer tag over an XSD-aligned type family, routing
// codecs the way storage.go routes them off Aspect.
type Aspect byte

const (
	String Aspect = iota + 1
	Boolean
	Decimal
	Integer
	Double
	Float
	Date
	Time
	DateTime
	DateTimeStamp
	GYear
	GYearMonth
	GMonth
	GMonthDay
	GDay
	Duration
	DayTimeDuration
	YearMonthDuration
	Byte
	Short
	Int
	Long
	UnsignedByte
	UnsignedShort
	UnsignedInt
	UnsignedLong
	PositiveInteger
	NonNegativeInteger
	NegativeInteger
	NonPositiveInteger
	HexBinary
	Base64Binary
	AnyURI
	Language
	NormalizedString
	Token
	NmToken
	Name
	NCName
	NOtation
	QName
	ID
	IdRef
	Entity
	XMLLiteral
	PlainLiteral
	LangString
	Literal

	// aspectFalse and aspectTrue are wire-only: a Bool Value encodes as one
	// of these two bytes with a zero-byte payload, and decodes back to a
	// BoolValue tagged with the Boolean aspect.
	aspectFalse
	aspectTrue
)

var aspectNames = map[Aspect]string{
	String: "String", Boolean: "Boolean", Decimal: "Decimal", Integer: "Integer",
	Double: "Double", Float: "Float", Date: "Date", Time: "Time",
	DateTime: "DateTime", DateTimeStamp: "DateTimeStamp", GYear: "GYear",
	GYearMonth: "GYearMonth", GMonth: "GMonth", GMonthDay: "GMonthDay", GDay: "GDay",
	Duration: "Duration", DayTimeDuration: "DayTimeDuration", YearMonthDuration: "YearMonthDuration",
	Byte: "Byte", Short: "Short", Int: "Int", Long: "Long",
	UnsignedByte: "UnsignedByte", UnsignedShort: "UnsignedShort",
	UnsignedInt: "UnsignedInt", UnsignedLong: "UnsignedLong",
	PositiveInteger: "PositiveInteger", NonNegativeInteger: "NonNegativeInteger",
	NegativeInteger: "NegativeInteger", NonPositiveInteger: "NonPositiveInteger",
	HexBinary: "HexBinary", Base64Binary: "Base64Binary", AnyURI: "AnyURI",
	Language: "Language", NormalizedString: "NormalizedString", Token: "Token",
	NmToken: "NmToken", Name: "Name", NCName: "NCName", NOtation: "NOtation",
	QName: "QName", ID: "ID", IdRef: "IdRef", Entity: "Entity",
	XMLLiteral: "XMLLiteral", PlainLiteral: "PlainLiteral", LangString: "LangString",
	Literal: "Literal",
}

func (a Aspect) String() string {
	if name, ok := aspectNames[a]; ok {
		return name
	}
	return "Aspect(unknown)"
}
