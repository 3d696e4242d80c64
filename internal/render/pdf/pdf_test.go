package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/stickball/presskit/internal/layout"
	"github.com/stickball/presskit/internal/pagination"
)

var fixedDate = time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

func draw(t *testing.T, logo *Logo) []byte {
	t.Helper()
	d := NewDocument(Options{
		PageSize:     pagination.PageSizeA4,
		Title:        "Stickball Press Kit",
		Producer:     "presskit",
		CreationDate: fixedDate,
		Logo:         logo,
	})
	d.AddPage()
	d.SetFillColor("#616DED")
	d.RoundedRect(25, 25, 160, 15, 2)
	d.SetFont(layout.Bold, 18)
	d.SetTextColor("#FFFFFF")
	d.Text(33, 35, "Stickball")
	d.DrawLogo(177, 28, 9)
	d.AddPage()
	d.SetFont(layout.Italic, 10)
	d.SetTextColor("#1F2937")
	d.Text(25, 25, "Educação financeira — “para todos”")
	d.SetPage(1)
	d.SetDrawColor("#6B7280")
	d.SetLineWidth(0.5)
	d.Line(25, 50, 185, 50)

	if got := d.PageCount(); got != 2 {
		t.Errorf("PageCount() = %d, want 2", got)
	}
	var buf bytes.Buffer
	if err := d.Output(&buf); err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	return buf.Bytes()
}

func TestDocumentOutput(t *testing.T) {
	out := draw(t, nil)
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output starts with %q", out[:min(8, len(out))])
	}
	if !bytes.Contains(out, []byte("%%EOF")) {
		t.Error("output has no EOF marker")
	}
}

func TestDocumentDeterministic(t *testing.T) {
	logo := testLogo(t, 40, 20)
	a := draw(t, logo)
	b := draw(t, logo)
	if !bytes.Equal(a, b) {
		t.Error("identical drawing produced different bytes")
	}
}

func TestStringWidth(t *testing.T) {
	d := NewDocument(Options{CreationDate: fixedDate})
	d.AddPage()
	d.SetFont(layout.Regular, 10)

	if got := d.StringWidth(""); got != 0 {
		t.Errorf("StringWidth(\"\") = %v", got)
	}
	short, long := d.StringWidth("ab"), d.StringWidth("abab")
	if short <= 0 || long <= short {
		t.Errorf("StringWidth(ab)=%v StringWidth(abab)=%v", short, long)
	}
	// precomposed and decomposed forms measure the same
	if a, b := d.StringWidth("\u00e9"), d.StringWidth("e\u0301"); a != b {
		t.Errorf("é widths differ: %v vs %v", a, b)
	}

	d.SetFont(layout.Regular, 20)
	if got := d.StringWidth("ab"); got <= short {
		t.Errorf("StringWidth at 20pt = %v, not wider than %v at 10pt", got, short)
	}
}

func TestDrawLogo(t *testing.T) {
	d := NewDocument(Options{CreationDate: fixedDate, Logo: testLogo(t, 40, 20)})
	d.AddPage()
	if got := d.DrawLogo(180, 28, 9); got != 18 {
		t.Errorf("DrawLogo() width = %v, want 18", got)
	}

	none := NewDocument(Options{CreationDate: fixedDate})
	none.AddPage()
	if got := none.DrawLogo(180, 28, 9); got != 0 {
		t.Errorf("DrawLogo() without logo = %v, want 0", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want [3]int
		ok   bool
	}{
		{"#616DED", [3]int{0x61, 0x6d, 0xed}, true},
		{"8b5cf6", [3]int{0x8b, 0x5c, 0xf6}, true},
		{"#fff", [3]int{255, 255, 255}, true},
		{" #1F2937 ", [3]int{0x1f, 0x29, 0x37}, true},
		{"#12345", [3]int{}, false},
		{"#gggggg", [3]int{}, false},
		{"", [3]int{}, false},
	}
	for _, tt := range tests {
		r, g, b, ok := parseHexColor(tt.in)
		if ok != tt.ok {
			t.Errorf("parseHexColor(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if diff := cmp.Diff(tt.want, [3]int{r, g, b}); ok && diff != "" {
			t.Errorf("parseHexColor(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func testLogo(t *testing.T, w, h int) *Logo {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0x61, 0x6d, 0xed, 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	logo, err := DecodeLogo(buf.Bytes(), "image/png")
	if err != nil {
		t.Fatalf("DecodeLogo() error = %v", err)
	}
	return logo
}
