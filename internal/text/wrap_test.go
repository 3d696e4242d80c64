package text

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fixed advances every rune by 1 unit
var fixed = MeasureFunc(func(s string) float64 {
	return float64(len([]rune(s)))
})

func TestSplitTextToLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"empty", "", 10, []string{""}},
		{"blank", "   \t ", 10, []string{""}},
		{"fits", "short line", 20, []string{"short line"}},
		{"exact", "abcde fghij", 11, []string{"abcde fghij"}},
		{"wraps", "the quick brown fox jumps", 10, []string{"the quick", "brown fox", "jumps"}},
		{"collapses whitespace", "a   b\n\nc", 10, []string{"a b c"}},
		{"long word", "abcdefghij xy", 4, []string{"abcd", "efgh", "ij", "xy"}},
		{"long word tail", "abcdefg hi", 4, []string{"abcd", "efg", "hi"}},
		{"long word joins tail", "abcdef g", 4, []string{"abcd", "ef g"}},
		{"no width", "one two", 0, []string{"one two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTextToLines(tt.text, fixed, tt.maxWidth)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitTextToLines(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestSplitTextToLinesKeepsWordsInOrder(t *testing.T) {
	src := "Stickball turns financial literacy, workforce readiness and everyday life skills into short, game-based lessons that learners actually finish."
	for _, width := range []float64{12, 25, 40, 80, 200} {
		lines := SplitTextToLines(src, fixed, width)
		for _, l := range lines {
			if w := fixed.Width(l); w > width {
				t.Errorf("width %v: line %q is %v wide", width, l, w)
			}
		}
		if got, want := strings.Join(lines, " "), strings.Join(strings.Fields(src), " "); got != want {
			t.Errorf("width %v: rejoined text differs\n got %q\nwant %q", width, got, want)
		}
	}
}

func TestToWinAnsi(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"Educación", "Educaci\xf3n"},
		{"e\u0301", "\xe9"},
		{"• item", "\x95 item"},
		{"— author", "\x97 author"},
		{"日本", "??"},
	}
	for _, tt := range tests {
		if got := ToWinAnsi(tt.in); got != tt.want {
			t.Errorf("ToWinAnsi(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
