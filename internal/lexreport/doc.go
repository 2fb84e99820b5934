// Package lexreport turns an already-tokenized nester.BlockLine into the
// human-readable diagnostics the compiler front-end surfaces for lexical
// defects: invalid UTF-8, mixed indentation, unexpected characters, and
// malformed string/number/operator literals.
//
// The package is a pure transformation (BlockLine -> []diag.Diagnostic)
// with no I/O of its own; callers supply a diag.Sink to receive the
// results and a source.FileSet to resolve byte spans to raw bytes.
//
// Grounded on the original implementation's
// parser.lib/parser/LineErrorReporter.h.
package lexreport
