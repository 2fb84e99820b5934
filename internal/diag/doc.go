// Package diag defines the diagnostic model shared by the lexical
// diagnostic engine and its consumers.
//
// # Scope
//
// A Diagnostic is deliberately small and document-oriented rather than a
// flat (severity, span, message) record: it is a Code plus one or more
// Explanations, each carrying a heading and a Document — an ordered mix
// of Paragraph prose and SourceCodeBlock excerpts. This mirrors how the
// engine actually builds a report: escape a source line once, highlight
// every co-located defect on it, and explain what's wrong in prose.
//
// Apart from FormatGolden's plain-text form for golden tests, package diag
// does not format, color, or serialize diagnostics — no JSON, no SARIF; see
// internal/lexreport for how Diagnostics are produced and internal/diagfmt
// for how they are printed.
//
// # Emitting diagnostics
//
// Producers call a Sink's ReportDiagnostic once per defect they explain.
// Bag is the sink used by tests and single-pass CLI runs: it simply
// collects diagnostics in emission order for later formatting.
package diag
