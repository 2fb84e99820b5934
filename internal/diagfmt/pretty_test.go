package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"rebuildlex/internal/diag"
	"rebuildlex/internal/source"
)

func singleDiagBag(code diag.Code, heading string, block diag.SourceCodeBlock, prose string) *diag.Bag {
	body := diag.Document{block}
	if prose != "" {
		body = append(body, diag.Paragraph{Text: prose})
	}
	bag := diag.NewBag()
	bag.ReportDiagnostic(diag.NewDiagnostic(code, heading, body))
	return bag
}

// fileSetFor builds a single-file FileSet for path, for tests exercising
// Pretty's path formatting.
func fileSetFor(path string) (*source.FileSet, source.FileID) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, nil)
	return fs, id
}

func TestPretty_HeadingAndCode(t *testing.T) {
	block := diag.SourceCodeBlock{Text: `let x = "oops`, OriginLine: 3}
	bag := singleDiagBag(diag.LexCode(diag.NumStringEndOfInput), "unterminated string literal", block, "")

	fs, id := fileSetFor("test.rb")
	var buf bytes.Buffer
	if err := Pretty(&buf, fs, id, bag, PrettyOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "rebuild-lexer[10]") {
		t.Fatalf("expected code in output, got:\n%s", out)
	}
	if !strings.Contains(out, "unterminated string literal") {
		t.Fatalf("expected heading in output, got:\n%s", out)
	}
	if !strings.Contains(out, "test.rb:3") {
		t.Fatalf("expected path:line in output, got:\n%s", out)
	}
	if !strings.Contains(out, block.Text) {
		t.Fatalf("expected source excerpt in output, got:\n%s", out)
	}
}

func TestPretty_PathModes(t *testing.T) {
	block := diag.SourceCodeBlock{Text: "x", OriginLine: 1}

	tests := []struct {
		name     string
		mode     PathMode
		path     string
		contains string
	}{
		{"basename", PathModeBasename, "/home/user/project/src/test.rb", "test.rb"},
		{"absolute passthrough when already absolute", PathModeAuto, "/abs/path/test.rb", "/abs/path/test.rb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := singleDiagBag(diag.LexCode(diag.NumUnexpectedCharacter), "unexpected character", block, "")
			fs, id := fileSetFor(tt.path)
			var buf bytes.Buffer
			if err := Pretty(&buf, fs, id, bag, PrettyOpts{PathMode: tt.mode}); err != nil {
				t.Fatalf("Pretty: %v", err)
			}
			if !strings.Contains(buf.String(), tt.contains) {
				t.Fatalf("expected output to contain %q, got:\n%s", tt.contains, buf.String())
			}
		})
	}
}

func TestPretty_HighlightsUnderline(t *testing.T) {
	block := diag.SourceCodeBlock{
		Text: `let x = "a\nb"`,
		Highlights: []diag.Marker{
			{Span: diag.TextSpan{Start: 9, Length: 2}},
		},
		OriginLine: 1,
	}
	bag := singleDiagBag(diag.LexCode(diag.NumStringInvalidEscape), "invalid escape sequence", block, "")

	fs, id := fileSetFor("test.rb")
	var buf bytes.Buffer
	if err := Pretty(&buf, fs, id, bag, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")

	var underline string
	for i, l := range lines {
		if strings.TrimSpace(l) == block.Text && i+1 < len(lines) {
			underline = lines[i+1]
			break
		}
	}
	if underline == "" {
		t.Fatalf("expected an underline line after the source excerpt, got:\n%s", buf.String())
	}
	if !strings.Contains(underline, "^^") {
		t.Fatalf("expected two carets under the two-byte highlight, got %q", underline)
	}
}

func TestPretty_NoHighlightsOmitsUnderline(t *testing.T) {
	block := diag.SourceCodeBlock{Text: "let x = 1", OriginLine: 1}
	bag := singleDiagBag(diag.LexCode(diag.NumMixedIndent), "mixed indentation", block, "")

	fs, id := fileSetFor("test.rb")
	var buf bytes.Buffer
	if err := Pretty(&buf, fs, id, bag, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if strings.Contains(buf.String(), "^") {
		t.Fatalf("expected no caret line without highlights, got:\n%s", buf.String())
	}
}

func TestPretty_ParagraphProse(t *testing.T) {
	block := diag.SourceCodeBlock{Text: "0x", OriginLine: 5}
	bag := singleDiagBag(diag.LexCode(diag.NumNumberMissingValue), "missing hex digits", block, "expected at least one hex digit after 0x")

	fs, id := fileSetFor("test.rb")
	var buf bytes.Buffer
	if err := Pretty(&buf, fs, id, bag, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if !strings.Contains(buf.String(), "expected at least one hex digit after 0x") {
		t.Fatalf("expected paragraph prose in output, got:\n%s", buf.String())
	}
}

func TestPretty_MultipleDiagnosticsInOrder(t *testing.T) {
	bag := diag.NewBag()
	bag.ReportDiagnostic(diag.NewDiagnostic(diag.LexCode(diag.NumMixedIndent), "first", diag.Document{
		diag.SourceCodeBlock{Text: "a", OriginLine: 1},
	}))
	bag.ReportDiagnostic(diag.NewDiagnostic(diag.LexCode(diag.NumUnexpectedCharacter), "second", diag.Document{
		diag.SourceCodeBlock{Text: "b", OriginLine: 2},
	}))

	fs, id := fileSetFor("test.rb")
	var buf bytes.Buffer
	if err := Pretty(&buf, fs, id, bag, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	out := buf.String()
	firstIdx := strings.Index(out, "first")
	secondIdx := strings.Index(out, "second")
	if firstIdx == -1 || secondIdx == -1 || firstIdx > secondIdx {
		t.Fatalf("expected diagnostics rendered in emission order, got:\n%s", out)
	}
}
