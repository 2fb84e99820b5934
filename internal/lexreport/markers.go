package lexreport

import "rebuildlex/internal/nester"

func isOnLine(s, tokenLines nester.Span) bool {
	return s.Start >= tokenLines.Start && s.End <= tokenLines.End
}

func taintSibling(e nester.Element, self nester.Element) {
	if e == self {
		return
	}
	if t, ok := e.(nester.Taintable); ok {
		t.Taint()
	}
}

// allElements returns every token and insignificant of bl as a single
// slice, order unimportant to the collectors below.
func allElements(bl nester.BlockLine) []nester.Element {
	out := make([]nester.Element, 0, len(bl.Tokens)+len(bl.Insignificants))
	for _, t := range bl.Tokens {
		out = append(out, t)
	}
	for _, i := range bl.Insignificants {
		out = append(out, i)
	}
	return out
}

// collectDecodeErrorMarkers gathers decode-error spans from every carrier
// co-located on tokenLines — InvalidEncoding markers directly,
// CommentLiteral/IdentifierLiteral nested decode errors, and a
// NewLineIndentation's errors when *every* one of them is a decode error
// (an all-or-nothing filter so a newline carrying a different defect mix is
// never raided for markers it doesn't own). Every carrier folded in this
// way — other than self — is tainted so it is not reported again; self's
// own span is still appended to markers since it is itself one of the
// highlights the caller needs.
func collectDecodeErrorMarkers(markers []nester.Span, bl nester.BlockLine, tokenLines nester.Span, self nester.Element) []nester.Span {
	for _, el := range allElements(bl) {
		switch t := el.(type) {
		case *nester.InvalidEncoding:
			if t.IsTainted() || !isOnLine(t.Span(), tokenLines) {
				continue
			}
			markers = append(markers, t.Span())
			taintSibling(t, self)

		case *nester.CommentLiteral:
			if t.IsTainted() || !isOnLine(t.Span(), tokenLines) {
				continue
			}
			for _, e := range t.DecodeErrors {
				markers = append(markers, e.Input)
			}
			taintSibling(t, self)

		case *nester.IdentifierLiteral:
			if t.IsTainted() || !isOnLine(t.Span(), tokenLines) {
				continue
			}
			for _, e := range t.DecodeErrors {
				markers = append(markers, e.Input)
			}
			taintSibling(t, self)

		case *nester.NewLineIndentation:
			if t.IsTainted() || !isOnLine(t.Span(), tokenLines) {
				continue
			}
			if !allKind(t.Errors, nester.NewlineDecodedErrorPosition) {
				continue
			}
			for _, e := range t.Errors {
				markers = append(markers, e.Input)
			}
			taintSibling(t, self)
		}
	}
	return markers
}

// collectMixedIndentMarkers gathers MixedIndentCharacter spans from sibling
// NewLineIndentation insignificants co-located on tokenLines whose error set
// is entirely mixed-indent markers. self has already contributed its own
// markers directly and is excluded here — unlike the decode-error
// collector, re-including it would double-count a newline with no siblings
// (the only carrier on its own physical line).
func collectMixedIndentMarkers(markers []nester.Span, bl nester.BlockLine, tokenLines nester.Span, self nester.Element) []nester.Span {
	for _, ins := range bl.Insignificants {
		if nester.Element(ins) == self {
			continue
		}
		nli, ok := ins.(*nester.NewLineIndentation)
		if !ok || nli.IsTainted() || !isOnLine(nli.Span(), tokenLines) {
			continue
		}
		if !allKind(nli.Errors, nester.NewlineMixedIndentCharacter) {
			continue
		}
		for _, e := range nli.Errors {
			markers = append(markers, e.Input)
		}
		taintSibling(nli, self)
	}
	return markers
}

// collectUnexpectedCharacterMarkers gathers every UnexpectedCharacter on
// tokenLines (including self), tainting each sibling folded in.
func collectUnexpectedCharacterMarkers(bl nester.BlockLine, tokenLines nester.Span, self nester.Element) []nester.Span {
	var markers []nester.Span
	for _, ins := range bl.Insignificants {
		uc, ok := ins.(*nester.UnexpectedCharacter)
		if !ok || !isOnLine(uc.Span(), tokenLines) {
			continue
		}
		markers = append(markers, uc.Span())
		taintSibling(uc, self)
	}
	return markers
}

func allKind(errs []nester.NewlineError, kind nester.NewlineErrorKind) bool {
	for _, e := range errs {
		if e.Kind != kind {
			return false
		}
	}
	return true
}
