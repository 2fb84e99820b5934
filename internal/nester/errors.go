package nester

// DecodeError is a single UTF-8 decode failure nested inside a comment or
// identifier token's own span (as opposed to a stand-alone InvalidEncoding
// insignificant).
type DecodeError struct {
	Input Span
}

// StringErrorKind enumerates the defects a string literal scan can record.
type StringErrorKind uint8

const (
	StringEndOfInput StringErrorKind = iota
	StringInvalidEncoding
	StringInvalidEscape
	StringInvalidControl
	StringInvalidDecimalUnicode
	StringInvalidHexUnicode
)

// StringError is one typed defect observed while scanning a string literal.
type StringError struct {
	Kind  StringErrorKind
	Input Span
}

// NumberErrorKind enumerates the defects a number literal scan can record.
// DecodedErrorPosition is kept first so its variant index doubles as the
// bitset slot used by the dedup-by-kind pass in the original implementation.
type NumberErrorKind uint8

const (
	NumberDecodedErrorPosition NumberErrorKind = iota
	NumberMissingExponent
	NumberMissingValue
	NumberMissingBoundary
)

// NumberLiteralError is one typed defect observed while scanning a number
// literal.
type NumberLiteralError struct {
	Kind  NumberErrorKind
	Input Span
}

// OperatorErrorKind enumerates the defects a multi-character operator or
// bracket-like token scan can record.
type OperatorErrorKind uint8

const (
	OperatorDecodedErrorPosition OperatorErrorKind = iota
	OperatorWrongClose
	OperatorUnexpectedClose
	OperatorNotClosed
)

// OperatorLiteralError is one typed defect observed while scanning an
// operator literal.
type OperatorLiteralError struct {
	Kind  OperatorErrorKind
	Input Span
}

// NewlineErrorKind enumerates the defects a newline/indentation scan can
// record.
type NewlineErrorKind uint8

const (
	NewlineDecodedErrorPosition NewlineErrorKind = iota
	NewlineMixedIndentCharacter
)

// NewlineError is one typed defect observed while measuring a line's
// indentation.
type NewlineError struct {
	Kind  NewlineErrorKind
	Input Span
}
