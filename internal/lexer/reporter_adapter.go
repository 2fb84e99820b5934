package lexer

import (
	"rebuildlex/internal/diag"
	"rebuildlex/internal/source"
)

// SinkReporter adapts a diag.Sink to the lexer's Reporter interface, letting
// the raw byte scanner and the BlockLine-level diagnostic engine share one
// collection/printing pipeline even though they report at different
// granularities.
type SinkReporter struct {
	Sink diag.Sink
}

var scanKindCodes = map[string]uint16{
	"UnterminatedString":       diag.NumScanUnterminatedString,
	"UnterminatedBlockComment": diag.NumScanUnterminatedBlockComment,
	"UnknownChar":              diag.NumScanUnexpectedCharacter,
	"BadNumber":                diag.NumScanBadNumber,
}

// Report implements Reporter.
func (r *SinkReporter) Report(kind string, sp source.Span, msg string) {
	code, ok := scanKindCodes[kind]
	if !ok {
		code = diag.NumScanUnexpectedCharacter
	}
	body := diag.Document{diag.Paragraph{Text: msg}}
	r.Sink.ReportDiagnostic(diag.NewDiagnostic(diag.ScanCode(code), kind, body))
}
