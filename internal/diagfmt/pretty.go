package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rebuildlex/internal/diag"
	"rebuildlex/internal/source"
)

var (
	headingColor   = color.New(color.FgRed, color.Bold)
	codeColor      = color.New(color.FgHiBlack)
	pathColor      = color.New(color.FgCyan)
	highlightColor = color.New(color.FgYellow, color.Bold)
)

// Pretty writes one human-readable block per diagnostic in bag, in the
// order they were collected. fileID names the file the diagnostics were
// raised against within fileSet; its path is rendered ahead of each source
// excerpt's origin line, shaped by opts.PathMode.
func Pretty(w io.Writer, fileSet *source.FileSet, fileID source.FileID, bag *diag.Bag, opts PrettyOpts) error {
	displayPath := fileSet.Get(fileID).FormatPath(opts.PathMode.String(), fileSet.BaseDir())

	for _, d := range bag.Items() {
		if err := prettyOne(w, displayPath, d, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, path string, d diag.Diagnostic, opts PrettyOpts) error {
	for _, part := range d.Parts {
		heading := part.Heading
		code := d.Code.String()
		if opts.Color {
			heading = headingColor.Sprint(heading)
			code = codeColor.Sprint(code)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", code, heading); err != nil {
			return err
		}
		for _, item := range part.Body {
			switch v := item.(type) {
			case diag.Paragraph:
				if err := writeParagraph(w, v, opts); err != nil {
					return err
				}
			case diag.SourceCodeBlock:
				if err := writeSourceCodeBlock(w, path, v, opts); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeParagraph(w io.Writer, p diag.Paragraph, opts PrettyOpts) error {
	text := p.Text
	if opts.Width > 0 {
		text = truncate(text, int(opts.Width))
	}
	_, err := fmt.Fprintf(w, "  %s\n", text)
	return err
}

func writeSourceCodeBlock(w io.Writer, path string, b diag.SourceCodeBlock, opts PrettyOpts) error {
	arrow := fmt.Sprintf("%s:%d", path, b.OriginLine)
	if opts.Color {
		arrow = pathColor.Sprint(arrow)
	}
	if b.Caption != "" {
		arrow = fmt.Sprintf("%s (%s)", arrow, b.Caption)
	}
	if _, err := fmt.Fprintf(w, "  --> %s\n", arrow); err != nil {
		return err
	}

	text := b.Text
	if _, err := fmt.Fprintf(w, "  %s\n", text); err != nil {
		return err
	}

	underline := underlineFor(text, b.Highlights)
	if underline == "" {
		return nil
	}
	if opts.Color {
		underline = highlightColor.Sprint(underline)
	}
	_, err := fmt.Fprintf(w, "  %s\n", underline)
	return err
}

// underlineFor builds a caret line aligning '^' marks under every highlight
// span in text, accounting for wide runes the same way truncate does.
func underlineFor(text string, highlights []diag.Marker) string {
	if len(highlights) == 0 {
		return ""
	}
	width := runewidth.StringWidth(text)
	line := make([]rune, width)
	for i := range line {
		line[i] = ' '
	}

	runes := []rune(text)
	col := 0
	byteToCol := make(map[int]int, len(runes)+1)
	byteOff := 0
	for _, r := range runes {
		byteToCol[byteOff] = col
		byteOff += len(string(r))
		col += runewidth.RuneWidth(r)
	}
	byteToCol[byteOff] = col

	for _, h := range highlights {
		start, ok := byteToCol[int(h.Span.Start)]
		if !ok {
			continue
		}
		end, ok := byteToCol[int(h.Span.Start+h.Span.Length)]
		if !ok || end <= start {
			end = start + 1
		}
		for i := start; i < end && i < len(line); i++ {
			line[i] = '^'
		}
	}
	return strings.TrimRight(string(line), " ")
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
