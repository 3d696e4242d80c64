package pagination

// PageSize represents standard page sizes
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in millimetres
var (
	PageSizeA4     = PageSize{Width: 210, Height: 297, Name: "A4"}
	PageSizeLetter = PageSize{Width: 215.9, Height: 279.4, Name: "Letter"}
	PageSizeLegal  = PageSize{Width: 215.9, Height: 355.6, Name: "Legal"}
	PageSizeA3     = PageSize{Width: 297, Height: 420, Name: "A3"}
	PageSizeA5     = PageSize{Width: 148, Height: 210, Name: "A5"}
)

// Options represents options for the cursor
type Options struct {
	PageSize PageSize
	// Margin applies to all four sides
	Margin float64
}

// Page represents a single page in the document
type Page struct {
	Number int
	Width  float64
	Height float64
	// MaxY is the lowest write position reached on the page
	MaxY float64
}

// Break records one page transition
type Break struct {
	// From is the page that was closed
	From int
	// At is the cursor position that triggered the break
	At        float64
	Threshold float64
	Reason    string
}

// Cursor tracks the vertical write position over a growing list of pages.
// Positions only move down within a page and reset to the top margin on
// every new page.
type Cursor struct {
	options   Options
	y         float64
	pages     []*Page
	breaks    []Break
	onNewPage func(page int)
}

// NewCursor creates a cursor positioned at the top margin of page 1.
// onNewPage is called for every page after the first one.
func NewCursor(options Options, onNewPage func(page int)) *Cursor {
	c := &Cursor{
		options:   options,
		onNewPage: onNewPage,
	}
	c.addPage()
	return c
}

func (c *Cursor) addPage() {
	c.pages = append(c.pages, &Page{
		Number: len(c.pages) + 1,
		Width:  c.options.PageSize.Width,
		Height: c.options.PageSize.Height,
		MaxY:   c.options.Margin,
	})
	c.y = c.options.Margin
}

// Y returns the current write position
func (c *Cursor) Y() float64 { return c.y }

// Page returns the current page number, starting at 1
func (c *Cursor) Page() int { return len(c.pages) }

// Pages returns all pages opened so far
func (c *Cursor) Pages() []*Page { return c.pages }

// Breaks returns the page-break log
func (c *Cursor) Breaks() []Break { return c.breaks }

// Margin returns the uniform page margin
func (c *Cursor) Margin() float64 { return c.options.Margin }

// PageWidth returns the page width
func (c *Cursor) PageWidth() float64 { return c.options.PageSize.Width }

// PageHeight returns the page height
func (c *Cursor) PageHeight() float64 { return c.options.PageSize.Height }

// ContentWidth is the page width minus both side margins
func (c *Cursor) ContentWidth() float64 {
	return c.options.PageSize.Width - 2*c.options.Margin
}

// Limit is the lowest position content may start at
func (c *Cursor) Limit() float64 {
	return c.options.PageSize.Height - c.options.Margin
}

// Ensure starts a new page when the cursor is below pageHeight-threshold.
// It reports whether a page break happened.
func (c *Cursor) Ensure(threshold float64, reason string) bool {
	if c.y <= c.options.PageSize.Height-threshold {
		return false
	}
	c.Break(threshold, reason)
	return true
}

// EnsureLine breaks the page when the cursor has passed the bottom margin
func (c *Cursor) EnsureLine(reason string) bool {
	return c.Ensure(c.options.Margin, reason)
}

// Break unconditionally closes the current page and opens the next one
func (c *Cursor) Break(threshold float64, reason string) {
	c.breaks = append(c.breaks, Break{
		From:      len(c.pages),
		At:        c.y,
		Threshold: threshold,
		Reason:    reason,
	})
	c.addPage()
	if c.onNewPage != nil {
		c.onNewPage(len(c.pages))
	}
}

// Advance moves the cursor down by dy. Negative values are ignored.
func (c *Cursor) Advance(dy float64) {
	if dy <= 0 {
		return
	}
	c.y += dy
	if p := c.pages[len(c.pages)-1]; c.y > p.MaxY {
		p.MaxY = c.y
	}
}
