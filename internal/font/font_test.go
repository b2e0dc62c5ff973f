package font

import (
	"strings"
	"testing"
)

func TestColumnsLength(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"A", CharWidth},
		{"Hi", 2 * CharWidth},
		{"hello!", 6 * CharWidth},
	}
	for _, tt := range tests {
		if got := Columns(tt.text); len(got) != tt.want {
			t.Errorf("Columns(%q) len = %d, want %d", tt.text, len(got), tt.want)
		}
	}
}

func TestColumnsGlyphs(t *testing.T) {
	cols := Columns("A")
	if cols[0] != 0x7e {
		t.Errorf("first column of 'A' = %#x, want 0x7e", cols[0])
	}
	if cols[GlyphWidth] != 0 {
		t.Error("spacer column not blank")
	}
}

func TestColumnsNonPrintable(t *testing.T) {
	for _, text := range []string{"\x01", "é", "\n"} {
		for i, c := range Columns(text) {
			if c != 0 {
				t.Errorf("Columns(%q)[%d] = %#x, want blank", text, i, c)
			}
		}
	}
}

func TestColumnsBounded(t *testing.T) {
	long := strings.Repeat("x", MaxChars+50)
	if got := Columns(long); len(got) != MaxChars*CharWidth {
		t.Errorf("long string rendered %d columns, want %d", len(got), MaxChars*CharWidth)
	}
}

func TestGlyphsFitRows(t *testing.T) {
	for i, g := range glyphs {
		for _, col := range g {
			if col&0x80 != 0 {
				t.Errorf("glyph %d uses bit 7; glyphs are %d rows tall", i, GlyphRows)
			}
		}
	}
}
