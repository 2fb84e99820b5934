// Package nester defines the block-line data model the lexical diagnostic
// engine (package lexreport) consumes: the significant token and
// insignificant variants a source line is made of, and the typed error
// payloads attached to them.
//
// The scanner/filter/nester passes that actually produce a BlockLine from
// raw source bytes are external collaborators and out of scope here — this
// package only carries the shapes those passes are assumed to deliver.
//
// Grounded on the original implementation's lexer/nesting.data/nesting/Token.h.
package nester
