package lexer

import (
	"rebuildlex/internal/source"
	"rebuildlex/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // accumulated leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
	}
}

// Next returns the next significant token with its Leading trivia already
// collected. Always returns EOF once the cursor is exhausted.
func (lx *Lexer) Next() token.Token {
	// 1) a pending lookahead token takes priority
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// 2) collect leading trivia into lx.hold
	lx.collectLeadingTrivia()

	// 3) EOF — the hold is dropped, not attached to the EOF token
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	// 4) dispatch on the current byte
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '_':
		// underscore: only Underscore if the run doesn't continue as an ident
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '_' && isIdentContinueByte(b1) {
			// "__foo" or "_123" — an identifier
			tok = lx.scanIdentOrKeyword()
		} else {
			// a lone "_" — Underscore
			tok = lx.scanOperatorOrPunct()
		}

	case isIdentStartByte(ch):
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == 'f' && b1 == '"' {
			// f"..." — the prefix and the string form one FStringLit
			start := lx.cursor.Mark()
			lx.cursor.Bump() // 'f'
			tok = lx.scanString()
			tok.Span = lx.cursor.SpanFrom(start)
			tok.Text = string(lx.file.Content[tok.Span.Start:tok.Span.End])
			if tok.Kind == token.StringLit {
				tok.Kind = token.FStringLit
			}
		} else {
			tok = lx.scanIdentOrKeyword()
		}

	case ch >= utf8RuneSelf:
		// a possible Unicode identifier — scanIdentOrKeyword sorts it out
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		// '.' followed by a digit
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	default:
		// operators/punctuation, including @, brackets, commas, etc.
		tok = lx.scanOperatorOrPunct()
	}

	// 5) attach the collected leading trivia and reset the hold
	tok.Leading = lx.hold
	lx.hold = nil

	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
