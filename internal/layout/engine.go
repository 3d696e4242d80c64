package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"

	"github.com/stickball/presskit/internal/content"
	"github.com/stickball/presskit/internal/pagination"
	"github.com/stickball/presskit/internal/text"
)

// ErrEngineUsed is returned when Layout is called twice on one Engine
var ErrEngineUsed = errors.New("layout engine already used")

// Role tags a placed text run with what it shows
type Role string

const (
	RoleWordmark   Role = "wordmark"
	RoleTitle      Role = "title"
	RoleSubtitle   Role = "subtitle"
	RoleHeadline   Role = "headline"
	RoleLead       Role = "lead"
	RoleCTA        Role = "cta"
	RoleItemTitle  Role = "item-title"
	RoleBody       Role = "body"
	RoleQuote      Role = "quote"
	RoleAuthor     Role = "author"
	RoleCaption    Role = "caption"
	RoleRetention  Role = "retention"
	RoleBullet     Role = "bullet"
	RoleStatNumber Role = "stat-number"
	RoleStatLabel  Role = "stat-label"
	RoleFooter     Role = "footer"
)

// Run is one piece of text placed on a page
type Run struct {
	Page int
	X    float64
	Y    float64
	Role Role
	Text string
}

// Result describes a finished layout
type Result struct {
	Pages  []pagination.Page
	Breaks []pagination.Break
	Runs   []Run
}

// PageCount returns the number of pages
func (r *Result) PageCount() int {
	return len(r.Pages)
}

// Text joins every run in placement order, separated by single spaces
func (r *Result) Text() string {
	parts := make([]string, 0, len(r.Runs))
	for _, run := range r.Runs {
		if run.Text != "" {
			parts = append(parts, run.Text)
		}
	}
	return strings.Join(parts, " ")
}

// RunsOn returns the runs placed on page n
func (r *Result) RunsOn(n int) []Run {
	var out []Run
	for _, run := range r.Runs {
		if run.Page == n {
			out = append(out, run)
		}
	}
	return out
}

// Engine lays out one content bundle onto a Surface. An Engine is single
// use and must not be shared between goroutines.
type Engine struct {
	config  Config
	surface Surface
	cursor  *pagination.Cursor
	runs    []Run
	used    bool

	// Debug logs page breaks and a summary
	Debug bool
}

// NewEngine creates a layout engine drawing on surface
func NewEngine(config Config, surface Surface) *Engine {
	return &Engine{
		config:  config,
		surface: surface,
	}
}

// Layout places the whole bundle: header, press-kit title, hero, features,
// methodology, who we serve, testimonials, about, contact, and finally the
// footer on every page. The bundle is validated first; nothing is drawn
// when it is invalid.
func (e *Engine) Layout(b *content.Bundle) (*Result, error) {
	if e.used {
		return nil, ErrEngineUsed
	}
	e.used = true

	if err := b.Validate(); err != nil {
		return nil, err
	}
	if e.surface == nil {
		return nil, errors.New("layout engine has no surface")
	}

	e.surface.AddPage()
	e.cursor = pagination.NewCursor(pagination.Options{
		PageSize: e.config.PageSize,
		Margin:   e.config.Margin,
	}, func(page int) {
		e.surface.AddPage()
		if e.Debug {
			log.Debugf("page %d started at break after y=%.2f", page, e.lastBreak().At)
		}
	})

	e.addHeader()
	e.addPressKitTitle(b.PressKit)
	e.addHero(b.Hero)
	e.addFeatures(b.Features)
	e.addMethodology(b.Methodology)
	e.addWhoWeServe(b.WhoWeServe)
	e.addTestimonials(b.Testimonials)
	e.addAbout(b.About)
	e.addContact(b.Contact)
	e.addFooters(b.PressKit.DateLayout)

	res := &Result{
		Breaks: append([]pagination.Break(nil), e.cursor.Breaks()...),
		Runs:   e.runs,
	}
	for _, p := range e.cursor.Pages() {
		res.Pages = append(res.Pages, *p)
	}
	if e.Debug {
		log.Debugf("layout finished: %d pages, %d text runs, %d breaks",
			len(res.Pages), len(res.Runs), len(res.Breaks))
	}
	return res, nil
}

func (e *Engine) lastBreak() pagination.Break {
	breaks := e.cursor.Breaks()
	if len(breaks) == 0 {
		return pagination.Break{}
	}
	return breaks[len(breaks)-1]
}

func (e *Engine) font(style FontStyle, size float64, color string) {
	e.surface.SetFont(style, size)
	e.surface.SetTextColor(color)
}

// textAt draws s at an explicit position on the current page
func (e *Engine) textAt(x, y float64, s string, role Role) {
	e.surface.Text(x, y, s)
	e.runs = append(e.runs, Run{Page: e.cursor.Page(), X: x, Y: y, Role: role, Text: s})
}

// line draws a single unwrapped line at the cursor and advances by dy
func (e *Engine) line(x float64, s string, role Role, dy float64) {
	e.cursor.EnsureLine(string(role))
	e.textAt(x, e.cursor.Y(), s, role)
	e.cursor.Advance(dy)
}

// block wraps s to width and draws it line by line at x, advancing
// lineHeight per line. It returns the number of lines.
func (e *Engine) block(x, width float64, s string, role Role, lineHeight float64) int {
	lines := text.SplitTextToLines(s, text.MeasureFunc(e.surface.StringWidth), width)
	for _, l := range lines {
		e.line(x, l, role, lineHeight)
	}
	return len(lines)
}

func (e *Engine) addFooters(dateLayout string) {
	if dateLayout == "" {
		dateLayout = e.config.DateLayout
	}
	// the UTC day, as in the download file name
	date := e.config.Date.UTC().Format(dateLayout)
	y := e.config.PageSize.Height - e.config.Spacing.FooterOffset

	for _, p := range e.cursor.Pages() {
		e.surface.SetPage(p.Number)
		e.font(Regular, e.config.Fonts.Footer, e.config.Palette.Muted)

		e.surface.Text(e.config.Margin, y, e.config.ProductName)
		e.runs = append(e.runs, Run{Page: p.Number, X: e.config.Margin, Y: y, Role: RoleFooter, Text: e.config.ProductName})

		x := e.config.PageSize.Width - e.config.Margin - e.surface.StringWidth(date)
		e.surface.Text(x, y, date)
		e.runs = append(e.runs, Run{Page: p.Number, X: x, Y: y, Role: RoleFooter, Text: date})
	}
}

func ordinal(i int, s string) string {
	return fmt.Sprintf("%d. %s", i+1, s)
}
