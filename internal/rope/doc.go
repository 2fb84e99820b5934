// Package rope provides the string primitives the lexical diagnostic
// engine builds its escaper on: a UTF-8 decoder that surfaces invalid
// sequences as explicit items (Decode), Unicode scalar classification
// (CodePoint), and a piecewise append-only string builder (Rope) used as
// the escaper's write target to avoid O(n^2) concatenation.
//
// Grounded on the original implementation's strings/rope.h and
// strings/utf8Decode — reimplemented with Go slices standing in for
// pointer-range views.
package rope
