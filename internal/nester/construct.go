package nester

// The constructors below are the only way to build a token or insignificant
// from outside this package: base is unexported so that IsTainted/Taint
// stay a package-private implementation detail of the dedup machinery,
// not part of the public shape every scanner/filter/nester collaborator
// would otherwise have to know about.

func newBase(span Span, line uint32) base {
	return base{Input: span, Position: Position{Line: line}}
}

func NewBlockLiteral(span Span, line uint32, lines []BlockLine) *BlockLiteral {
	return &BlockLiteral{base: newBase(span, line), Lines: lines}
}

func NewColonSeparator(span Span, line uint32) *ColonSeparator { return &ColonSeparator{newBase(span, line)} }
func NewCommaSeparator(span Span, line uint32) *CommaSeparator { return &CommaSeparator{newBase(span, line)} }
func NewSquareBracketOpen(span Span, line uint32) *SquareBracketOpen {
	return &SquareBracketOpen{newBase(span, line)}
}
func NewSquareBracketClose(span Span, line uint32) *SquareBracketClose {
	return &SquareBracketClose{newBase(span, line)}
}
func NewBracketOpen(span Span, line uint32) *BracketOpen   { return &BracketOpen{newBase(span, line)} }
func NewBracketClose(span Span, line uint32) *BracketClose { return &BracketClose{newBase(span, line)} }

func NewStringLiteral(span Span, line uint32, value string, errs []StringError) *StringLiteral {
	return &StringLiteral{base: newBase(span, line), Value: value, Errors: errs}
}

func NewNumberLiteral(span Span, line uint32, errs []NumberLiteralError) *NumberLiteral {
	return &NumberLiteral{base: newBase(span, line), Errors: errs}
}

func NewOperatorLiteral(span Span, line uint32, errs []OperatorLiteralError) *OperatorLiteral {
	return &OperatorLiteral{base: newBase(span, line), Errors: errs}
}

func NewIdentifierLiteral(span Span, line uint32, decodeErrors []DecodeError) *IdentifierLiteral {
	return &IdentifierLiteral{base: newBase(span, line), DecodeErrors: decodeErrors}
}

func NewCommentLiteral(span Span, line uint32, decodeErrors []DecodeError) *CommentLiteral {
	return &CommentLiteral{base: newBase(span, line), DecodeErrors: decodeErrors}
}

func NewWhiteSpaceSeparator(span Span, line uint32) *WhiteSpaceSeparator {
	return &WhiteSpaceSeparator{newBase(span, line)}
}
func NewSemicolonSeparator(span Span, line uint32) *SemicolonSeparator {
	return &SemicolonSeparator{newBase(span, line)}
}
func NewBlockStartColon(span Span, line uint32) *BlockStartColon {
	return &BlockStartColon{newBase(span, line)}
}
func NewBlockEndIdentifier(span Span, line uint32) *BlockEndIdentifier {
	return &BlockEndIdentifier{newBase(span, line)}
}

func NewInvalidEncoding(span Span, line uint32) *InvalidEncoding {
	return &InvalidEncoding{newBase(span, line)}
}

func NewUnexpectedCharacter(span Span, line uint32) *UnexpectedCharacter {
	return &UnexpectedCharacter{newBase(span, line)}
}

func NewNewLineIndentation(span Span, line uint32, errs []NewlineError) *NewLineIndentation {
	return &NewLineIndentation{base: newBase(span, line), Errors: errs}
}
