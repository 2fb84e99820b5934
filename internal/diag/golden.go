package diag

import (
	"fmt"
	"strings"
)

// FormatGolden renders diagnostics into a stable, deterministic multi-line
// string suitable for golden-file tests. Each diagnostic contributes a line
// with its code, then for each explanation an indented heading line
// followed by its paragraph text and source blocks in document order; a
// source block is its origin line and quoted text, then one line per
// highlight. Diagnostics are separated by a blank line. The format carries no
// color and no machine-parseable structure (see the engine's non-goals):
// it exists for test assertions, not for the CLI's own output path.
func FormatGolden(diags []Diagnostic) string {
	var b strings.Builder
	for i, d := range diags {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeGoldenDiagnostic(&b, d)
	}
	return b.String()
}

func writeGoldenDiagnostic(b *strings.Builder, d Diagnostic) {
	fmt.Fprintf(b, "%s\n", d.Code.String())
	for _, part := range d.Parts {
		fmt.Fprintf(b, "  %s\n", part.Heading)
		for _, item := range part.Body {
			switch v := item.(type) {
			case Paragraph:
				fmt.Fprintf(b, "    %s\n", v.Text)
			case SourceCodeBlock:
				fmt.Fprintf(b, "    @%d: %q\n", v.OriginLine, v.Text)
				for _, h := range v.Highlights {
					fmt.Fprintf(b, "      ^ [%d,%d)\n", h.Span.Start, h.Span.Start+h.Span.Length)
				}
			}
		}
	}
}
