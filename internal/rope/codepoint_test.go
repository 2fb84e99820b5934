package rope

import "testing"

func TestCodePoint_Classification(t *testing.T) {
	cases := []struct {
		r            rune
		control      bool
		combining    bool
		nonCharacter bool
	}{
		{r: 'a', control: false, combining: false, nonCharacter: false},
		{r: 0x09, control: true},
		{r: 0x0301, combining: true}, // COMBINING ACUTE ACCENT
		{r: 0xFFFE, nonCharacter: true},
		{r: 0xFDD0, nonCharacter: true},
	}
	for _, c := range cases {
		cp := CodePoint{V: c.r}
		if got := cp.IsControl(); got != c.control {
			t.Errorf("rune %U: IsControl() = %v, want %v", c.r, got, c.control)
		}
		if got := cp.IsCombiningMark(); got != c.combining {
			t.Errorf("rune %U: IsCombiningMark() = %v, want %v", c.r, got, c.combining)
		}
		if got := cp.IsNonCharacter(); got != c.nonCharacter {
			t.Errorf("rune %U: IsNonCharacter() = %v, want %v", c.r, got, c.nonCharacter)
		}
	}
}

func TestCodePoint_Utf8ByteWidth(t *testing.T) {
	if w := (CodePoint{V: 'a'}).Utf8ByteWidth(); w != 1 {
		t.Errorf("ascii width = %d, want 1", w)
	}
	if w := (CodePoint{V: 'é'}).Utf8ByteWidth(); w != 2 {
		t.Errorf("'é' width = %d, want 2", w)
	}
}
