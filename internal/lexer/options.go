package lexer

import (
	"rebuildlex/internal/source"
)

// Reporter is a thin interface so the scanner doesn't need to import diag.
// The lexer only calls it with raw parameters; an external layer formats
// the diagnostic.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // may be nil — errors are then dropped, scanning continues
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
