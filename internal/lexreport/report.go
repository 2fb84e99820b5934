package lexreport

import (
	"rebuildlex/internal/diag"
	"rebuildlex/internal/nester"
	"rebuildlex/internal/source"
)

// ReportLineErrors walks bl in source order and emits one diagnostic per
// defect it finds, delivering each to sink as soon as it is produced. Empty
// or well-formed elements are no-ops. Calling it twice on the same bl is
// safe: tainting makes the second call emit nothing (the engine's central
// dedup invariant).
func ReportLineErrors(fs *source.FileSet, bl nester.BlockLine, sink diag.Sink) {
	bl.ForEach(func(el nester.Element) {
		switch t := el.(type) {
		case *nester.NewLineIndentation:
			reportNewline(fs, bl, t, sink)
		case *nester.CommentLiteral:
			reportTokenWithDecodeErrors(fs, bl, t, t.DecodeErrors, t.Position.Line, sink)
		case *nester.StringLiteral:
			reportStringLiteral(fs, bl, t, sink)
		case *nester.NumberLiteral:
			reportNumberLiteral(fs, bl, t, sink)
		case *nester.IdentifierLiteral:
			reportTokenWithDecodeErrors(fs, bl, t, t.DecodeErrors, t.Position.Line, sink)
		// ^ both CommentLiteral and IdentifierLiteral share the same
		// "report my own nested decode errors" shape (they differ only in
		// which list they live in — insignificants vs. tokens).
		case *nester.OperatorLiteral:
			reportOperatorLiteral(fs, bl, t, sink)
		case *nester.InvalidEncoding:
			reportInvalidEncoding(fs, bl, t, sink)
		case *nester.UnexpectedCharacter:
			reportUnexpectedCharacter(fs, bl, t, sink)
		}
		// WhiteSpaceSeparator, SemicolonSeparator, BlockStartColon,
		// BlockEndIdentifier, well-formed literals, and bracket tokens
		// carry no diagnostic payload: no-op.
	})
}

func toHighlights(spans []diag.TextSpan) []diag.Marker {
	out := make([]diag.Marker, len(spans))
	for i, s := range spans {
		out[i] = diag.Marker{Span: s}
	}
	return out
}

func reportDecodeErrorMarkers(fs *source.FileSet, line uint32, tokenLines nester.Span, viewMarkers []nester.Span, sink diag.Sink) {
	esc := escapeSourceLine(fs, tokenLines, viewMarkers)

	para := "The UTF8-decoder encountered an invalid encoding"
	if len(viewMarkers) != 1 {
		para = "The UTF8-decoder encountered multiple invalid encodings"
	}

	body := diag.Document{
		diag.Paragraph{Text: para},
		diag.SourceCodeBlock{Text: esc.text, Highlights: toHighlights(esc.markers), OriginLine: line},
	}
	sink.ReportDiagnostic(diag.NewDiagnostic(diag.LexCode(diag.NumInvalidEncoding), "Invalid UTF8 Encoding", body))
}

func reportDecodeErrors(fs *source.FileSet, bl nester.BlockLine, tok nester.Element, line uint32, sink diag.Sink) {
	tokenLines := expandToPhysicalLine(fs, bl, tok.Span())
	markers := collectDecodeErrorMarkers(nil, bl, tokenLines, tok)
	reportDecodeErrorMarkers(fs, line, tokenLines, markers, sink)
}

func reportTokenWithDecodeErrors(fs *source.FileSet, bl nester.BlockLine, tok interface {
	nester.Element
	nester.Taintable
}, decodeErrors []nester.DecodeError, line uint32, sink diag.Sink) {
	if tok.IsTainted() || len(decodeErrors) == 0 {
		return
	}
	// tok must still read as untainted while collectDecodeErrorMarkers walks
	// the block line below — it folds tok's own decode errors into the
	// marker list by finding tok among its siblings, which the isTainted
	// guard in that loop would otherwise skip.
	reportDecodeErrors(fs, bl, tok, line, sink)
	tok.Taint()
}

func reportInvalidEncoding(fs *source.FileSet, bl nester.BlockLine, ie *nester.InvalidEncoding, sink diag.Sink) {
	if ie.IsTainted() {
		return
	}
	reportDecodeErrors(fs, bl, ie, ie.Position.Line, sink)
	ie.Taint()
}

func reportNewline(fs *source.FileSet, bl nester.BlockLine, nli *nester.NewLineIndentation, sink diag.Sink) {
	if nli.IsTainted() || !nli.HasErrors() {
		return
	}

	tokenLines := expandToPhysicalLine(fs, bl, nli.Span())

	var decodeMarkers []nester.Span
	for _, e := range nli.Errors {
		if e.Kind == nester.NewlineDecodedErrorPosition {
			decodeMarkers = append(decodeMarkers, e.Input)
		}
	}
	if len(decodeMarkers) > 0 {
		if len(decodeMarkers) == len(nli.Errors) {
			decodeMarkers = nil
		}
		// nli must still read as untainted here: collectDecodeErrorMarkers
		// re-derives nli's own markers from nli.Errors when the slice above
		// was cleared, by matching nli among its own siblings.
		decodeMarkers = collectDecodeErrorMarkers(decodeMarkers, bl, tokenLines, nli)
		reportDecodeErrorMarkers(fs, nli.Position.Line-1, tokenLines, decodeMarkers, sink)
	}
	nli.Taint()

	var mixedMarkers []nester.Span
	for _, e := range nli.Errors {
		if e.Kind == nester.NewlineMixedIndentCharacter {
			mixedMarkers = append(mixedMarkers, e.Input)
		}
	}
	if len(mixedMarkers) == 0 {
		return
	}
	mixedMarkers = collectMixedIndentMarkers(mixedMarkers, bl, tokenLines, nli)

	esc := escapeSourceLine(fs, tokenLines, mixedMarkers)
	body := diag.Document{
		diag.Paragraph{Text: "The indentation mixes tabs and spaces."},
		diag.SourceCodeBlock{Text: esc.text, Highlights: toHighlights(esc.markers), OriginLine: nli.Position.Line - 1},
	}
	sink.ReportDiagnostic(diag.NewDiagnostic(diag.LexCode(diag.NumMixedIndent), "Mixed Indentation Characters", body))
}

func reportUnexpectedCharacter(fs *source.FileSet, bl nester.BlockLine, uc *nester.UnexpectedCharacter, sink diag.Sink) {
	if uc.IsTainted() {
		return
	}
	uc.Taint()
	tokenLines := expandToPhysicalLine(fs, bl, uc.Span())
	markers := collectUnexpectedCharacterMarkers(bl, tokenLines, uc)

	esc := escapeSourceLine(fs, tokenLines, markers)

	para := "The tokenizer encountered a character that is not part of any Rebuild language token."
	if len(markers) != 1 {
		para = "The tokenizer encountered multiple characters that are not part of any Rebuild language token."
	}
	body := diag.Document{
		diag.Paragraph{Text: para},
		diag.SourceCodeBlock{Text: esc.text, Highlights: toHighlights(esc.markers), OriginLine: uc.Position.Line},
	}
	sink.ReportDiagnostic(diag.NewDiagnostic(diag.LexCode(diag.NumUnexpectedCharacter), "Unexpected characters", body))
}

func reportStringLiteral(fs *source.FileSet, bl nester.BlockLine, sl *nester.StringLiteral, sink diag.Sink) {
	if sl.IsTainted() || !sl.HasErrors() {
		return
	}
	sl.Taint()
	tokenLines := expandToPhysicalLine(fs, bl, sl.Span())

	var reported [6]bool
	for _, err := range sl.Errors {
		if reported[err.Kind] {
			continue
		}
		reported[err.Kind] = true

		var markers []nester.Span
		for _, e2 := range sl.Errors {
			if e2.Kind == err.Kind {
				markers = append(markers, e2.Input)
			}
		}

		if err.Kind == nester.StringInvalidEncoding {
			reportDecodeErrorMarkers(fs, sl.Position.Line, tokenLines, markers, sink)
			continue
		}

		esc := escapeSourceLine(fs, tokenLines, markers)
		block := diag.SourceCodeBlock{Text: esc.text, Highlights: toHighlights(esc.markers), OriginLine: sl.Position.Line}

		switch err.Kind {
		case nester.StringEndOfInput:
			emit(sink, diag.NumStringEndOfInput, "Unexpected end of input", "The string was not terminated.", block)
		case nester.StringInvalidEscape:
			emit(sink, diag.NumStringInvalidEscape, "Unkown escape sequence", "These Escape sequences are unknown.", block)
		case nester.StringInvalidControl:
			emit(sink, diag.NumStringInvalidControl, "Unkown control characters", "Use of invalid control characters. Use escape sequences.", block)
		case nester.StringInvalidDecimalUnicode:
			emit(sink, diag.NumStringInvalidDecimal, "Invalid decimal unicode", "Use of invalid decimal unicode values.", block)
		case nester.StringInvalidHexUnicode:
			emit(sink, diag.NumStringInvalidHex, "Invalid hexadecimal unicode", "Use of invalid hexadecimal unicode values.", block)
		}
	}
}

func reportNumberLiteral(fs *source.FileSet, bl nester.BlockLine, nl *nester.NumberLiteral, sink diag.Sink) {
	if nl.IsTainted() || !nl.HasErrors() {
		return
	}
	nl.Taint()
	tokenLines := expandToPhysicalLine(fs, bl, nl.Span())

	var reported [4]bool
	for _, err := range nl.Errors {
		if reported[err.Kind] {
			continue
		}
		reported[err.Kind] = true

		var markers []nester.Span
		for _, e2 := range nl.Errors {
			if e2.Kind == err.Kind {
				markers = append(markers, e2.Input)
			}
		}

		if err.Kind == nester.NumberDecodedErrorPosition {
			reportDecodeErrorMarkers(fs, nl.Position.Line, tokenLines, markers, sink)
			continue
		}

		esc := escapeSourceLine(fs, tokenLines, markers)
		block := diag.SourceCodeBlock{Text: esc.text, Highlights: toHighlights(esc.markers), OriginLine: nl.Position.Line}

		switch err.Kind {
		case nester.NumberMissingExponent:
			emit(sink, diag.NumNumberMissingExp, "Missing exponent value", "After the exponent sign an actual value is expected.", block)
		case nester.NumberMissingValue:
			emit(sink, diag.NumNumberMissingValue, "Missing value", "After the radix sign an actual value is expected.", block)
		case nester.NumberMissingBoundary:
			emit(sink, diag.NumNumberMissingBoundary, "Missing boundary", "The number literal ends with an unknown suffix.", block)
		}
	}
}

func reportOperatorLiteral(fs *source.FileSet, bl nester.BlockLine, ol *nester.OperatorLiteral, sink diag.Sink) {
	if ol.IsTainted() || !ol.HasErrors() {
		return
	}
	ol.Taint()
	tokenLines := expandToPhysicalLine(fs, bl, ol.Span())

	var reported [4]bool
	for _, err := range ol.Errors {
		if reported[err.Kind] {
			continue
		}
		reported[err.Kind] = true

		var markers []nester.Span
		for _, e2 := range ol.Errors {
			if e2.Kind == err.Kind {
				markers = append(markers, e2.Input)
			}
		}

		if err.Kind == nester.OperatorDecodedErrorPosition {
			reportDecodeErrorMarkers(fs, ol.Position.Line, tokenLines, markers, sink)
			continue
		}

		esc := escapeSourceLine(fs, tokenLines, markers)
		block := diag.SourceCodeBlock{Text: esc.text, Highlights: toHighlights(esc.markers), OriginLine: ol.Position.Line}

		switch err.Kind {
		case nester.OperatorWrongClose:
			emit(sink, diag.NumOperatorWrongClose, "Operator wrong close", "The closing sign does not match the opening sign.", block)
		case nester.OperatorUnexpectedClose:
			emit(sink, diag.NumOperatorUnexpectedClose, "Operator unexpected close", "There was no opening sign before the closing sign.", block)
		case nester.OperatorNotClosed:
			emit(sink, diag.NumOperatorNotClosed, "Operator not closed", "The operator ends before the closing sign was found.", block)
		}
	}
}

func emit(sink diag.Sink, code uint16, heading, paragraph string, block diag.SourceCodeBlock) {
	body := diag.Document{diag.Paragraph{Text: paragraph}, block}
	sink.ReportDiagnostic(diag.NewDiagnostic(diag.LexCode(code), heading, body))
}
