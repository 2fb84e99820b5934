package rope

import "testing"

func TestDecode_AsciiRoundTrip(t *testing.T) {
	items := Decode([]byte("ab"))
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for i, want := range []rune{'a', 'b'} {
		if items[i].Kind != ItemCodePoint || items[i].CP.V != want {
			t.Fatalf("item %d: want code point %q, got %+v", i, want, items[i])
		}
	}
}

func TestDecode_SingleInvalidByte(t *testing.T) {
	// "ab\xFFcd" — lone 0xFF is never a valid lead byte.
	items := Decode([]byte("ab\xffcd"))
	var errs int
	for _, it := range items {
		if it.Kind == ItemError {
			errs++
			if it.Input.Len() != 1 {
				t.Fatalf("expected single-byte error, got range %+v", it.Input)
			}
		}
	}
	if errs != 1 {
		t.Fatalf("expected exactly one decode error, got %d", errs)
	}
}

func TestDecode_TruncatedMultiByteSequenceIsOneError(t *testing.T) {
	// 0xE0 declares a 3-byte sequence but only one continuation byte follows.
	buf := []byte{'a', 0xE0, 0x80, 'z'}
	items := Decode(buf)
	if len(items) != 3 {
		t.Fatalf("expected 3 items (a, error, z), got %d: %+v", len(items), items)
	}
	if items[1].Kind != ItemError || items[1].Input != (ByteRange{Begin: 1, End: 3}) {
		t.Fatalf("expected one 2-byte error at [1,3), got %+v", items[1])
	}
}

func TestDecode_ValidMultiByteCodePoint(t *testing.T) {
	items := Decode([]byte("é")) // U+00E9, 2 bytes
	if len(items) != 1 || items[0].Kind != ItemCodePoint || items[0].CP.V != 'é' {
		t.Fatalf("unexpected decode of 'é': %+v", items)
	}
	if items[0].Input != (ByteRange{Begin: 0, End: 2}) {
		t.Fatalf("expected 2-byte span, got %+v", items[0].Input)
	}
}
