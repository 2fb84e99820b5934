package lexreport

import (
	"fmt"
	"strings"

	"rebuildlex/internal/diag"
	"rebuildlex/internal/nester"
	"rebuildlex/internal/rope"
	"rebuildlex/internal/source"
)

// escapedLine is the result of escaping one source excerpt: the printable
// text plus, in the same order as the markers passed in, the span each
// marker occupies inside that text.
type escapedLine struct {
	text    string
	markers []diag.TextSpan
}

// escapeSourceLine renders view as printable text while tracking, for each
// entry in viewMarkers (each expected to be contained in view), the byte
// span it ends up at inside the rendered text. Column offsets mix units
// deliberately: one per code point for pass-through bytes, output-byte count
// for escaped sequences — see the package's design notes.
func escapeSourceLine(fs *source.FileSet, view nester.Span, viewMarkers []nester.Span) escapedLine {
	content := fs.Get(view.File).Content

	markers := make([]diag.TextSpan, len(viewMarkers))
	for i := range markers {
		markers[i] = diag.UnsetSpan
	}

	var out rope.Rope
	begin := view.Start
	var offset int32
	requiresEscapes := false

	updateMarkers := func(p uint32) {
		for i, vm := range viewMarkers {
			m := &markers[i]
			if vm.Start <= p && m.Start == -1 {
				m.Start = offset
			}
			if vm.End <= p && m.Length == -1 {
				m.Length = offset - m.Start
			}
		}
	}

	addEscaped := func(inputStart, inputEnd uint32) {
		out.WriteBytes(content[begin:inputStart])
		var esc string
		if inputEnd-inputStart == 1 {
			switch content[inputStart] {
			case 0x0A:
				esc = "\\n\n"
			case 0x0D:
				requiresEscapes = true
				esc = "\\r"
			case 0x09:
				requiresEscapes = true
				esc = "\\t"
			case 0x00:
				requiresEscapes = true
				esc = "\\0"
			default:
				requiresEscapes = true
				esc = fmt.Sprintf("\\[%x]", content[inputStart])
			}
		} else {
			requiresEscapes = true
			var b strings.Builder
			b.WriteString("\\[")
			for _, by := range content[inputStart:inputEnd] {
				fmt.Fprintf(&b, "%x", by)
			}
			b.WriteString("]")
			esc = b.String()
		}
		out.WriteString(esc)
		begin = inputEnd
		offset += int32(len(esc))
	}

	for _, item := range rope.Decode(content[view.Start:view.End]) {
		absStart := view.Start + uint32(item.Input.Begin)
		absEnd := view.Start + uint32(item.Input.End)

		if item.Kind == rope.ItemError {
			updateMarkers(absStart)
			addEscaped(absStart, absEnd)
			continue
		}

		updateMarkers(absStart)
		cp := item.CP
		switch {
		case cp.IsCombiningMark(), cp.IsControl(), cp.IsNonCharacter(), cp.IsSurrogate():
			addEscaped(absStart, absEnd)
			continue
		case cp.V == '\\':
			out.WriteBytes(content[begin:absEnd])
			out.WriteRune(cp.V)
			begin = absEnd
			offset++
		}
		offset++
	}
	out.WriteBytes(content[begin:view.End])
	updateMarkers(view.End)

	if !requiresEscapes {
		for i, vm := range viewMarkers {
			markers[i] = diag.TextSpan{
				Start:  int32(vm.Start - view.Start),
				Length: int32(vm.End - vm.Start),
			}
		}
		return escapedLine{text: string(content[view.Start:view.End]), markers: markers}
	}

	return escapedLine{text: out.String(), markers: markers}
}
