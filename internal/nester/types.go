package nester

import "rebuildlex/internal/source"

// Span is a half-open byte window into an immutable source buffer — the
// ByteView of the original implementation. source.Span already carries the
// owning file and start/end offsets, so it is reused directly rather than
// introducing a parallel pointer-range type.
type Span = source.Span

// Position locates a token within its source file. LineNumber is 1-based,
// matching source.FileSet.Resolve.
type Position struct {
	Line uint32
}

// base is embedded by every token and insignificant variant. It carries the
// byte range, the logical line it was scanned on, and the cooperative taint
// flag C3 mutates to implement cross-token dedup.
type base struct {
	Input    Span
	Position Position
	Tainted  bool
}

// Span returns the element's byte range.
func (b *base) Span() Span { return b.Input }

// IsTainted reports whether a sibling reporter has already folded this
// element's defect into a previously emitted diagnostic.
func (b *base) IsTainted() bool { return b.Tainted }

// Taint marks the element as already reported. It is a one-way transition
// for the duration of a single lexreport.ReportLineErrors pass.
func (b *base) Taint() { b.Tainted = true }

// Element is satisfied by every token and insignificant variant; BlockLine's
// ForEach uses it to interleave the two sorted sequences by Span().Start.
type Element interface {
	Span() Span
}

// Taintable is the cooperative-dedup side channel C3/C4 mutate: once a
// carrier's defect has been folded into a previously emitted diagnostic, it
// is tainted and every later reporter skips it.
type Taintable interface {
	IsTainted() bool
	Taint()
}

// Token is the sum type of BlockLine.Tokens' elements.
type Token interface {
	Element
	Taintable
	tokenVariant()
}

// Insignificant is the sum type of BlockLine.Insignificants' elements.
type Insignificant interface {
	Element
	Taintable
	insignificantVariant()
}

// --- significant token variants ---

// BlockLiteral is a nested, indented block: a sequence of further
// block-lines (e.g. a function body or compound statement).
type BlockLiteral struct {
	base
	Lines []BlockLine
}

func (*BlockLiteral) tokenVariant() {}

// ColonSeparator, CommaSeparator and the bracket tokens carry no payload
// beyond their span; the reporter treats them as no-ops (§4.5).
type ColonSeparator struct{ base }
type CommaSeparator struct{ base }
type SquareBracketOpen struct{ base }
type SquareBracketClose struct{ base }
type BracketOpen struct{ base }
type BracketClose struct{ base }

func (*ColonSeparator) tokenVariant()     {}
func (*CommaSeparator) tokenVariant()     {}
func (*SquareBracketOpen) tokenVariant()  {}
func (*SquareBracketClose) tokenVariant() {}
func (*BracketOpen) tokenVariant()        {}
func (*BracketClose) tokenVariant()       {}

// StringLiteral carries the decoded literal value plus any errors raised
// while scanning escapes, unicode references, or its terminator.
type StringLiteral struct {
	base
	Value  string
	Errors []StringError
}

func (*StringLiteral) tokenVariant() {}

// HasErrors reports whether the literal carries any error payload.
func (s *StringLiteral) HasErrors() bool { return len(s.Errors) > 0 }

// NumberLiteral carries the malformed-suffix/exponent/radix errors a number
// scan can raise, alongside any decode errors inside its own span.
type NumberLiteral struct {
	base
	Errors []NumberLiteralError
}

func (*NumberLiteral) tokenVariant() {}

func (n *NumberLiteral) HasErrors() bool { return len(n.Errors) > 0 }

// OperatorLiteral carries bracket-matching errors for multi-character
// operator/bracket-like tokens (the nester's own operator grammar).
type OperatorLiteral struct {
	base
	Errors []OperatorLiteralError
}

func (*OperatorLiteral) tokenVariant() {}

func (o *OperatorLiteral) HasErrors() bool { return len(o.Errors) > 0 }

// IdentifierLiteral carries any decode errors found inside its own span.
type IdentifierLiteral struct {
	base
	DecodeErrors []DecodeError
}

func (*IdentifierLiteral) tokenVariant() {}

// --- insignificant variants ---

// CommentLiteral carries any decode errors found inside its own span.
type CommentLiteral struct {
	base
	DecodeErrors []DecodeError
}

func (*CommentLiteral) insignificantVariant() {}

type WhiteSpaceSeparator struct{ base }
type SemicolonSeparator struct{ base }
type BlockStartColon struct{ base }
type BlockEndIdentifier struct{ base }

func (*WhiteSpaceSeparator) insignificantVariant() {}
func (*SemicolonSeparator) insignificantVariant()  {}
func (*BlockStartColon) insignificantVariant()     {}
func (*BlockEndIdentifier) insignificantVariant()  {}

// InvalidEncoding marks a run of bytes the UTF-8 decoder rejected outright
// (as opposed to a decode error nested inside a comment/identifier/string).
type InvalidEncoding struct{ base }

func (*InvalidEncoding) insignificantVariant() {}

// UnexpectedCharacter marks a byte the scanner could not assign to any
// token kind.
type UnexpectedCharacter struct{ base }

func (*UnexpectedCharacter) insignificantVariant() {}

// NewLineIndentation is the newline-plus-indentation marker between two
// physical lines; it carries whichever mix of decode and mixed-indent
// errors the scanner observed while measuring the next line's indent.
type NewLineIndentation struct {
	base
	Errors []NewlineError
}

func (*NewLineIndentation) insignificantVariant() {}

// HasErrors reports whether the newline carries any error payload.
func (n *NewLineIndentation) HasErrors() bool { return len(n.Errors) > 0 }
