package api

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/tabula"

	"github.com/stickball/presskit/internal/i18n"
	"github.com/stickball/presskit/internal/layout"
)

var fixed = time.Date(2025, 3, 7, 23, 30, 0, 0, time.UTC)

func newTestGenerator(opts ...Option) *Generator {
	o := DefaultOptions()
	o.Clock = func() time.Time { return fixed }
	for _, opt := range opts {
		opt(&o)
	}
	return NewWithOptions(o)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		lang string
		at   time.Time
		want string
	}{
		{"en", fixed, "Stickball_Press_Kit_EN_2025-03-07.pdf"},
		{"pt", fixed, "Stickball_Press_Kit_PT_2025-03-07.pdf"},
		{"es", time.Date(2025, 3, 7, 1, 0, 0, 0, time.UTC), "Stickball_Press_Kit_ES_2025-03-07.pdf"},
		// 20:30 in New York on the 7th is already the 8th in UTC
		{"en", time.Date(2025, 3, 7, 20, 30, 0, 0, time.FixedZone("EST", -5*3600)), "Stickball_Press_Kit_EN_2025-03-08.pdf"},
	}
	for _, tt := range tests {
		if got := FileName(tt.lang, tt.at); got != tt.want {
			t.Errorf("FileName(%s, %v) = %s, want %s", tt.lang, tt.at, got, tt.want)
		}
	}
	if FileName("en", fixed) != FileName("en", fixed.Add(-time.Hour)) {
		t.Error("same day produced different names")
	}
}

func TestGenerateBytesDeterministic(t *testing.T) {
	ctx := context.Background()
	for _, lang := range []string{"en", "es", "pt"} {
		t.Run(lang, func(t *testing.T) {
			a, ra, err := newTestGenerator().GenerateBytes(ctx, lang)
			if err != nil {
				t.Fatalf("GenerateBytes() error = %v", err)
			}
			b, rb, err := newTestGenerator().GenerateBytes(ctx, lang)
			if err != nil {
				t.Fatalf("GenerateBytes() error = %v", err)
			}
			if !bytes.HasPrefix(a, []byte("%PDF-")) {
				t.Fatal("output is not a PDF")
			}
			if !bytes.Equal(a, b) {
				t.Error("identical input produced different bytes")
			}
			if diff := cmp.Diff(ra.Breaks, rb.Breaks); diff != "" {
				t.Errorf("page breaks differ (-first +second):\n%s", diff)
			}
			if ra.PageCount() < 2 {
				t.Errorf("PageCount() = %d, the full press kit needs more than one page", ra.PageCount())
			}
		})
	}
}

func TestGenerateUnsupportedLocale(t *testing.T) {
	var buf bytes.Buffer
	_, err := newTestGenerator().GenerateLocale(context.Background(), "fr", &buf)
	if !errors.Is(err, i18n.ErrUnsupportedLocale) {
		t.Errorf("GenerateLocale(fr) error = %v, want ErrUnsupportedLocale", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for a failed generation", buf.Len())
	}
}

func TestGenerateInvalidBundleWritesNothing(t *testing.T) {
	g := newTestGenerator()
	var buf bytes.Buffer
	if _, err := g.Generate(context.Background(), nil, &buf); err == nil {
		t.Fatal("Generate(nil) succeeded")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for a failed generation", buf.Len())
	}
}

func TestGenerateToFileReadBack(t *testing.T) {
	dir := t.TempDir()
	path, result, err := newTestGenerator().GenerateToFile(context.Background(), "en", dir)
	if err != nil {
		t.Fatalf("GenerateToFile() error = %v", err)
	}
	if want := filepath.Join(dir, "Stickball_Press_Kit_EN_2025-03-07.pdf"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, temporary files left behind", len(entries))
	}

	n, err := tabula.Open(path).PageCount()
	if err != nil {
		t.Fatalf("PageCount() error = %v", err)
	}
	if n != result.PageCount() {
		t.Errorf("PDF has %d pages, layout reported %d", n, result.PageCount())
	}

	text, _, err := tabula.Open(path).Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if !strings.Contains(text, "Stickball") {
		t.Error("extracted text does not mention Stickball")
	}
}

func TestMessagesFileOverride(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "en.json")
	if err := os.WriteFile(override, []byte(`{"pressKit":{"title":"Media Kit"}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	g := newTestGenerator(WithMessagesFile(override))
	b, err := g.Bundle(context.Background(), "en")
	if err != nil {
		t.Fatalf("Bundle() error = %v", err)
	}
	if b.PressKit.Title != "Media Kit" {
		t.Errorf("PressKit.Title = %q, want the override", b.PressKit.Title)
	}

	bad := newTestGenerator(WithMessagesFile(filepath.Join(dir, "missing.json")))
	if _, err := bad.Bundle(context.Background(), "en"); err == nil {
		t.Error("missing messages file was ignored")
	}
}

func TestLogoFromDataURL(t *testing.T) {
	svg := `data:image/svg+xml,<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 40 20"><rect width="40" height="20" fill="white"/></svg>`
	if _, _, err := newTestGenerator(WithLogo(svg)).GenerateBytes(context.Background(), "en"); err != nil {
		t.Errorf("GenerateBytes() with logo error = %v", err)
	}
	if _, _, err := newTestGenerator(WithLogo("data:text/plain,nope")).GenerateBytes(context.Background(), "en"); err == nil {
		t.Error("non-image logo accepted")
	}
}

func TestLayoutConfig(t *testing.T) {
	g := newTestGenerator(WithPageSizeLetter(), WithPageOrientation(PageOrientationLandscape), WithMargin(40), WithWordmark("SB"))
	cfg := g.layoutConfig(fixed)
	got := []float64{cfg.PageSize.Width, cfg.PageSize.Height, cfg.Margin}
	if diff := cmp.Diff([]float64{PageSizeLetterHeight, PageSizeLetterWidth, 40}, got); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
	if cfg.Wordmark != "SB" || !cfg.Date.Equal(fixed) {
		t.Errorf("Wordmark = %q, Date = %v", cfg.Wordmark, cfg.Date)
	}

	// margins that leave no content width are ignored
	if cfg := newTestGenerator(WithMargin(200)).layoutConfig(fixed); cfg.Margin != DefaultMargin {
		t.Errorf("Margin = %v, want %v", cfg.Margin, DefaultMargin)
	}

	// A5 landscape is 148mm tall: 80mm margins leave no room below the top one
	a5 := []Option{WithPageSize(PageSizeA5Width, PageSizeA5Height), WithPageOrientation(PageOrientationLandscape)}
	if cfg := newTestGenerator(append(a5, WithMargin(80))...).layoutConfig(fixed); cfg.Margin != DefaultMargin {
		t.Errorf("Margin = %v on a %vmm tall page, want %v", cfg.Margin, cfg.PageSize.Height, DefaultMargin)
	}
	if cfg := newTestGenerator(append(a5, WithMargin(40))...).layoutConfig(fixed); cfg.Margin != 40 {
		t.Errorf("Margin = %v, want 40", cfg.Margin)
	}
}

func TestGenerateTallMarginStaysInsidePage(t *testing.T) {
	g := newTestGenerator(WithPageSize(PageSizeA5Width, PageSizeA5Height),
		WithPageOrientation(PageOrientationLandscape), WithMargin(80))
	_, result, err := g.GenerateBytes(context.Background(), "en")
	if err != nil {
		t.Fatalf("GenerateBytes() error = %v", err)
	}
	cfg := g.layoutConfig(fixed)
	for _, run := range result.Runs {
		if run.Role == layout.RoleFooter {
			continue
		}
		if run.Y < cfg.Margin || run.Y > cfg.PageSize.Height-cfg.Margin {
			t.Errorf("page %d: %q at y=%v outside the margins [%v, %v]",
				run.Page, run.Text, run.Y, cfg.Margin, cfg.PageSize.Height-cfg.Margin)
		}
	}
}

func TestWithOptionDoesNotShareState(t *testing.T) {
	g := newTestGenerator(WithResourcePath("a"))
	h := g.WithOption(WithResourcePath("b"))
	if diff := cmp.Diff([]string{"a"}, g.Options().ResourcePaths); diff != "" {
		t.Errorf("original options changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, h.Options().ResourcePaths); diff != "" {
		t.Errorf("derived options mismatch (-want +got):\n%s", diff)
	}
}
