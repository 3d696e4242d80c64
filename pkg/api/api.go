package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/stickball/presskit/internal/content"
	"github.com/stickball/presskit/internal/i18n"
	"github.com/stickball/presskit/internal/layout"
	"github.com/stickball/presskit/internal/pagination"
	"github.com/stickball/presskit/internal/render/pdf"
	"github.com/stickball/presskit/internal/res"
)

// Generator is the main API for producing press-kit PDFs. A Generator is
// safe for concurrent use; every generation gets its own layout engine
// and document.
type Generator struct {
	options Options
	loader  *res.Loader

	once    sync.Once
	catalog *i18n.Catalog
	logo    *pdf.Logo
	err     error
}

// New creates a new generator with default options
func New() *Generator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new generator with the specified options
func NewWithOptions(options Options) *Generator {
	options = options.clone()
	loader := res.NewLoader("")
	for _, p := range options.ResourcePaths {
		loader.AddSearchPath(p)
	}
	return &Generator{
		options: options,
		loader:  loader,
	}
}

// Options returns a copy of the generator options
func (g *Generator) Options() Options {
	return g.options.clone()
}

// prepare loads the catalogs and the logo once
func (g *Generator) prepare(ctx context.Context) error {
	g.once.Do(func() {
		g.catalog, g.err = i18n.NewCatalog()
		if g.err != nil {
			return
		}
		for _, loc := range g.options.MessagesFiles {
			r, err := g.loader.LoadMessages(ctx, loc)
			if err != nil {
				g.err = fmt.Errorf("failed to load messages %s: %w", loc, err)
				return
			}
			lang := strings.TrimSuffix(path.Base(filepath.ToSlash(loc)), ".json")
			if err := g.catalog.Add(lang, r.Data); err != nil {
				g.err = err
				return
			}
			if g.options.Debug {
				log.Debugf("merged messages %s into %s", loc, lang)
			}
		}

		if g.options.Logo != "" {
			r, err := g.loader.LoadImage(ctx, g.options.Logo)
			if err != nil {
				g.err = fmt.Errorf("failed to load logo: %w", err)
				return
			}
			if g.logo, err = pdf.DecodeLogo(r.Data, r.MimeType); err != nil {
				g.err = err
				return
			}
		}
	})
	return g.err
}

// Catalog returns the message catalogs, built-in plus MessagesFiles
func (g *Generator) Catalog(ctx context.Context) (*i18n.Catalog, error) {
	if err := g.prepare(ctx); err != nil {
		return nil, err
	}
	return g.catalog, nil
}

// Bundle extracts the press-kit content of an exactly supported locale
func (g *Generator) Bundle(ctx context.Context, lang string) (*content.Bundle, error) {
	c, err := g.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Bundle(lang)
}

// Now returns the generation time from the configured clock
func (g *Generator) Now() time.Time {
	if g.options.Clock != nil {
		return g.options.Clock()
	}
	return time.Now()
}

// layoutConfig derives the layout geometry from the options
func (g *Generator) layoutConfig(now time.Time) layout.Config {
	cfg := layout.DefaultConfig()

	w, h := g.options.PageWidth, g.options.PageHeight
	if w > 0 && h > 0 {
		switch g.options.PageOrientation {
		case PageOrientationLandscape:
			if w < h {
				w, h = h, w
			}
		default:
			if w > h {
				w, h = h, w
			}
		}
		cfg.PageSize = pagination.PageSize{Width: w, Height: h, Name: "custom"}
	}
	// a margin must leave room for content across and for a section down
	m := g.options.Margin
	if m > 0 && 2*m < cfg.PageSize.Width && 2*m+cfg.Thresholds.Section < cfg.PageSize.Height {
		cfg.Margin = m
	}
	if g.options.Wordmark != "" {
		cfg.Wordmark = g.options.Wordmark
		cfg.ProductName = g.options.Wordmark
	}
	cfg.Date = now
	return cfg
}

// Generate lays out b and writes the PDF to output. Nothing is written to
// output unless the whole document was produced.
func (g *Generator) Generate(ctx context.Context, b *content.Bundle, output io.Writer) (*layout.Result, error) {
	return g.generate(ctx, b, output, g.Now())
}

func (g *Generator) generate(ctx context.Context, b *content.Bundle, output io.Writer, now time.Time) (*layout.Result, error) {
	if err := g.prepare(ctx); err != nil {
		return nil, err
	}
	cfg := g.layoutConfig(now)

	title := g.options.Title
	if title == "" && b != nil {
		title = b.PressKit.Title
	}
	doc := pdf.NewDocument(pdf.Options{
		PageSize:     cfg.PageSize,
		Title:        title,
		Author:       g.options.Author,
		Subject:      g.options.Subject,
		Keywords:     g.options.Keywords,
		Creator:      cfg.ProductName,
		Producer:     "presskit",
		CreationDate: now,
		Compress:     true,
		Logo:         g.logo,
	})
	doc.Debug = g.options.Debug

	engine := layout.NewEngine(cfg, doc)
	engine.Debug = g.options.Debug
	result, err := engine.Layout(b)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out press kit: %w", err)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := io.Copy(output, &buf); err != nil {
		return nil, fmt.Errorf("failed to copy PDF to output: %w", err)
	}
	return result, nil
}

// GenerateLocale generates the press kit of lang from the catalogs
func (g *Generator) GenerateLocale(ctx context.Context, lang string, output io.Writer) (*layout.Result, error) {
	b, err := g.Bundle(ctx, lang)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, b, output)
}

// GenerateBytes generates the press kit of lang into memory
func (g *Generator) GenerateBytes(ctx context.Context, lang string) ([]byte, *layout.Result, error) {
	var buf bytes.Buffer
	result, err := g.GenerateLocale(ctx, lang, &buf)
	if err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), result, nil
}

// GenerateAt generates b into memory as of now. Equal bundles and times
// give equal bytes; FileName(lang, now) names the result.
func (g *Generator) GenerateAt(ctx context.Context, b *content.Bundle, now time.Time) ([]byte, *layout.Result, error) {
	var buf bytes.Buffer
	result, err := g.generate(ctx, b, &buf, now)
	if err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), result, nil
}

// GenerateToFile writes the press kit of lang into dir under FileName and
// returns the file path. The file appears atomically.
func (g *Generator) GenerateToFile(ctx context.Context, lang, dir string) (string, *layout.Result, error) {
	b, err := g.Bundle(ctx, lang)
	if err != nil {
		return "", nil, err
	}
	// one timestamp for the footer and the file name
	now := g.Now()
	data, result, err := g.GenerateAt(ctx, b, now)
	if err != nil {
		return "", nil, err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".presskit-*.pdf")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	target := filepath.Join(dir, FileName(lang, now))
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", nil, fmt.Errorf("failed to move PDF into place: %w", err)
	}
	return target, result, nil
}

// FileName returns the download name of a press kit, e.g.
// Stickball_Press_Kit_EN_2025-03-07.pdf. The date is the UTC calendar day.
func FileName(lang string, t time.Time) string {
	return fmt.Sprintf("Stickball_Press_Kit_%s_%s.pdf", strings.ToUpper(lang), t.UTC().Format("2006-01-02"))
}

// WithOptions returns a new generator with the specified options
func (g *Generator) WithOptions(options Options) *Generator {
	return NewWithOptions(options)
}

// WithOption returns a new generator with the specified option set
func (g *Generator) WithOption(option Option) *Generator {
	newOptions := g.options.clone()
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// AddResourcePath adds a path to search for resources
func (g *Generator) AddResourcePath(path string) *Generator {
	return g.WithOption(WithResourcePath(path))
}

// SetPageSize sets the page size
func (g *Generator) SetPageSize(width, height float64) *Generator {
	return g.WithOption(WithPageSize(width, height))
}

// SetMargin sets the page margin
func (g *Generator) SetMargin(margin float64) *Generator {
	return g.WithOption(WithMargin(margin))
}

// SetDebug sets the debug mode
func (g *Generator) SetDebug(debug bool) *Generator {
	return g.WithOption(WithDebug(debug))
}
