package rope

import "strings"

type pieceKind uint8

const (
	pieceCodePoint pieceKind = iota
	pieceBytes
)

type piece struct {
	kind pieceKind
	cp   rune
	b    []byte
}

// Rope is an append-only piecewise string builder. It accepts code points
// and byte slices (owned or borrowed — Go slices make no distinction) and
// flattens to an owned string only once, on String/Bytes. No normalization
// is performed; the byte length of a Rope is exactly the sum of its pieces.
type Rope struct {
	pieces []piece
	n      int // running byte length
}

// WriteRune appends a single code point.
func (r *Rope) WriteRune(cp rune) {
	r.pieces = append(r.pieces, piece{kind: pieceCodePoint, cp: cp})
	r.n += runeByteWidth(cp)
}

// WriteBytes appends a (possibly borrowed) byte slice. Empty slices are
// dropped, matching the original rope's is_empty guard on append.
func (r *Rope) WriteBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	r.pieces = append(r.pieces, piece{kind: pieceBytes, b: b})
	r.n += len(b)
}

// WriteString appends a string's bytes.
func (r *Rope) WriteString(s string) {
	if s == "" {
		return
	}
	r.WriteBytes([]byte(s))
}

// Len returns the total byte count once flattened.
func (r *Rope) Len() int { return r.n }

// Bytes flattens the rope into a single owned byte slice.
func (r *Rope) Bytes() []byte {
	out := make([]byte, 0, r.n)
	for _, p := range r.pieces {
		switch p.kind {
		case pieceCodePoint:
			out = appendRune(out, p.cp)
		case pieceBytes:
			out = append(out, p.b...)
		}
	}
	return out
}

// String flattens the rope into an owned string.
func (r *Rope) String() string {
	var b strings.Builder
	b.Grow(r.n)
	for _, p := range r.pieces {
		switch p.kind {
		case pieceCodePoint:
			b.WriteRune(p.cp)
		case pieceBytes:
			b.Write(p.b)
		}
	}
	return b.String()
}

func runeByteWidth(r rune) int {
	return len(string(r))
}

func appendRune(out []byte, r rune) []byte {
	return append(out, []byte(string(r))...)
}
