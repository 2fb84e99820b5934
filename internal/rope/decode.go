package rope

import "unicode/utf8"

// ByteRange is a half-open `[Begin, End)` window expressed as byte offsets
// relative to the buffer that was decoded. Callers translate these into
// absolute source offsets (e.g. by adding a view's starting offset).
type ByteRange struct {
	Begin int
	End   int
}

func (r ByteRange) Len() int { return r.End - r.Begin }

// ItemKind discriminates the two DecodedItem variants.
type ItemKind uint8

const (
	// ItemCodePoint is a successfully decoded Unicode scalar value.
	ItemCodePoint ItemKind = iota
	// ItemError is a byte (or run of bytes) that could not be decoded.
	ItemError
)

// DecodedItem is one unit produced by Decode: either a code point or a
// decode error, each carrying the exact input bytes it consumed.
type DecodedItem struct {
	Kind  ItemKind
	Input ByteRange
	CP    CodePoint // valid only when Kind == ItemCodePoint
}

// Decode walks buf and yields a DecodedItem per code point or decode error,
// in order, with each item's Input covering exactly the bytes it consumed.
// A malformed multi-byte sequence (valid lead byte, invalid or truncated
// continuation) is reported as a single multi-byte error rather than one
// error per byte; a stray continuation byte with no lead is a one-byte
// error. Both shapes are required by the escaper's hex-bracket rendering.
func Decode(buf []byte) []DecodedItem {
	var items []DecodedItem
	i := 0
	for i < len(buf) {
		b := buf[i]
		if b < utf8.RuneSelf {
			items = append(items, DecodedItem{
				Kind:  ItemCodePoint,
				Input: ByteRange{Begin: i, End: i + 1},
				CP:    CodePoint{V: rune(b)},
			})
			i++
			continue
		}

		r, size := utf8.DecodeRune(buf[i:])
		if r != utf8.RuneError || size > 1 {
			items = append(items, DecodedItem{
				Kind:  ItemCodePoint,
				Input: ByteRange{Begin: i, End: i + size},
				CP:    CodePoint{V: r},
			})
			i += size
			continue
		}

		// Invalid byte at i. If it looks like the lead byte of a
		// multi-byte sequence, swallow as many of its expected
		// continuation bytes as are actually present so the whole
		// malformed sequence becomes one error, not one per byte.
		end := i + 1
		if want := leadSequenceLength(b); want > 1 {
			end = i + 1
			for end < len(buf) && end < i+want && isContinuationByte(buf[end]) {
				end++
			}
			if end == i+1 {
				end = i + 1 // lone lead byte, no continuations at all
			}
		}
		items = append(items, DecodedItem{
			Kind:  ItemError,
			Input: ByteRange{Begin: i, End: end},
		})
		i = end
	}
	return items
}

func isContinuationByte(b byte) bool { return b&0xC0 == 0x80 }

// leadSequenceLength returns the number of bytes a well-formed UTF-8
// sequence starting with b would occupy, or 0 if b cannot start one.
func leadSequenceLength(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}
