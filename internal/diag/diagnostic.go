package diag

// TextSpan is a byte offset + length into a specific rendered
// SourceCodeBlock.Text, never into the original source buffer.
// Unset denotes "not yet observed" while the escaper is still scanning.
type TextSpan struct {
	Start  int32
	Length int32
}

// UnsetSpan is the sentinel value a marker holds before the escaper has
// located both its start and its end.
var UnsetSpan = TextSpan{Start: -1, Length: -1}

func (s TextSpan) started() bool { return s.Start != -1 }
func (s TextSpan) finished() bool { return s.Length != -1 }

// Marker highlights a TextSpan inside a SourceCodeBlock's rendered text.
type Marker struct {
	Span        TextSpan
	Annotations []string
}

// Paragraph is a plain explanatory sentence or two.
type Paragraph struct {
	Text string
}

// SourceCodeBlock renders one escaped source excerpt together with the
// highlighted spans pointing at the defects it explains.
type SourceCodeBlock struct {
	Text       string
	Highlights []Marker
	Caption    string
	OriginLine uint32
}

// DocItem is implemented by Paragraph and SourceCodeBlock: the two kinds of
// content that make up a Document.
type DocItem interface {
	docItem()
}

func (Paragraph) docItem()       {}
func (SourceCodeBlock) docItem() {}

// Document is an ordered sequence of paragraphs and source excerpts.
type Document []DocItem

// Explanation is one named section of a Diagnostic (heading + document).
type Explanation struct {
	Heading string
	Body    Document
}

// Diagnostic is the engine's sole output value: a code plus one or more
// explanations. The lexical engine only ever emits a single-part Diagnostic,
// but downstream stages may compose richer ones.
type Diagnostic struct {
	Code  Code
	Parts []Explanation
}

// NewDiagnostic builds a single-explanation Diagnostic, the shape every
// reporter in the lexical engine produces.
func NewDiagnostic(code Code, heading string, body Document) Diagnostic {
	return Diagnostic{Code: code, Parts: []Explanation{{Heading: heading, Body: body}}}
}
