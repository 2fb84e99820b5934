package lexreport

import (
	"rebuildlex/internal/nester"
	"rebuildlex/internal/source"
)

// blockLineExtent returns the smallest span covering every token and
// insignificant in bl. If bl is entirely empty, the zero Span is returned.
func blockLineExtent(bl nester.BlockLine) nester.Span {
	var extent nester.Span
	have := false

	grow := func(s nester.Span) {
		if !have {
			extent = s
			have = true
			return
		}
		extent = extent.Cover(s)
	}

	if len(bl.Tokens) > 0 {
		grow(bl.Tokens[0].Span())
		grow(bl.Tokens[len(bl.Tokens)-1].Span())
	}
	if len(bl.Insignificants) > 0 {
		grow(bl.Insignificants[0].Span())
		grow(bl.Insignificants[len(bl.Insignificants)-1].Span())
	}
	return extent
}

// expandToPhysicalLine widens view to the left and right while the
// neighboring byte is neither CR nor LF, never reading past the block-line's
// own extent. Diagnostics must show the full physical line(s) a bad token
// occupies without running into whatever data happens to sit outside the
// caller-supplied buffer.
func expandToPhysicalLine(fs *source.FileSet, bl nester.BlockLine, view nester.Span) nester.Span {
	all := blockLineExtent(bl)
	content := fs.Get(view.File).Content

	start := view.Start
	for start > all.Start && !isLineBreak(content[start-1]) {
		start--
	}
	end := view.End
	for end < all.End && !isLineBreak(content[end]) {
		end++
	}
	return nester.Span{File: view.File, Start: start, End: end}
}

func isLineBreak(b byte) bool { return b == '\r' || b == '\n' }
