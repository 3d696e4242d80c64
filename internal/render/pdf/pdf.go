package pdf

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"github.com/gofiber/fiber/v2/log"

	"github.com/stickball/presskit/internal/layout"
	"github.com/stickball/presskit/internal/pagination"
	"github.com/stickball/presskit/internal/text"
)

// FontFamily is the core font every run is set in
const FontFamily = "Helvetica"

// Options contains the document settings
type Options struct {
	PageSize pagination.PageSize

	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string

	// CreationDate is stamped in the document info. Identical options and
	// drawing produce identical bytes.
	CreationDate time.Time
	Compress     bool

	// Logo is drawn in the header banner when set
	Logo *Logo
}

// Document is a layout.Surface writing to an fpdf document in millimetres
type Document struct {
	pdf  *fpdf.Fpdf
	logo *Logo

	// Debug logs colour fallbacks
	Debug bool
}

var _ layout.Surface = (*Document)(nil)

// NewDocument creates an empty document. Pages are added by the layout.
func NewDocument(options Options) *Document {
	size := options.PageSize
	if size.Width <= 0 || size.Height <= 0 {
		size = pagination.PageSizeA4
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	// the layout paginates on its own
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCompression(options.Compress)
	pdf.SetCatalogSort(true)

	created := options.CreationDate
	if created.IsZero() {
		created = time.Now()
	}
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)

	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetProducer(options.Producer, true)
	pdf.SetFont(FontFamily, "", 12)

	d := &Document{pdf: pdf, logo: options.Logo}
	if d.logo != nil {
		d.logo.register(pdf)
	}
	return d
}

func (d *Document) AddPage() {
	d.pdf.AddPage()
}

func (d *Document) SetPage(n int) {
	d.pdf.SetPage(n)
}

func (d *Document) SetFont(style layout.FontStyle, size float64) {
	d.pdf.SetFont(FontFamily, string(style), size)
}

func (d *Document) SetTextColor(hex string) {
	r, g, b := d.color(hex)
	d.pdf.SetTextColor(r, g, b)
}

func (d *Document) SetFillColor(hex string) {
	r, g, b := d.color(hex)
	d.pdf.SetFillColor(r, g, b)
}

func (d *Document) SetDrawColor(hex string) {
	r, g, b := d.color(hex)
	d.pdf.SetDrawColor(r, g, b)
}

func (d *Document) SetLineWidth(w float64) {
	d.pdf.SetLineWidth(w)
}

// Text draws s with its baseline at y. The core fonts are WinAnsi encoded,
// so s is converted and unsupported runes become '?'.
func (d *Document) Text(x, y float64, s string) {
	if s == "" {
		return
	}
	d.pdf.Text(x, y, text.ToWinAnsi(s))
}

func (d *Document) Line(x1, y1, x2, y2 float64) {
	d.pdf.Line(x1, y1, x2, y2)
}

// RoundedRect fills a rectangle with all four corners rounded
func (d *Document) RoundedRect(x, y, w, h, r float64) {
	d.pdf.RoundedRect(x, y, w, h, r, "1234", "F")
}

// StringWidth measures s as it will be drawn
func (d *Document) StringWidth(s string) float64 {
	return d.pdf.GetStringWidth(text.ToWinAnsi(s))
}

// DrawLogo draws the logo scaled to height h with its right edge at x
func (d *Document) DrawLogo(x, y, h float64) float64 {
	if d.logo == nil || h <= 0 {
		return 0
	}
	w := d.logo.WidthFor(h)
	d.pdf.ImageOptions(d.logo.name, x-w, y, w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return w
}

// PageCount returns the number of pages added so far
func (d *Document) PageCount() int {
	return d.pdf.PageCount()
}

// Err returns the first error recorded by the underlying document
func (d *Document) Err() error {
	if d.pdf.Err() {
		return d.pdf.Error()
	}
	return nil
}

// Output writes the finished document to w. The document is closed
// afterwards and cannot be drawn on again.
func (d *Document) Output(w io.Writer) error {
	if err := d.Err(); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (d *Document) color(hex string) (int, int, int) {
	if r, g, b, ok := parseHexColor(hex); ok {
		return r, g, b
	}
	if d.Debug {
		log.Debugf("invalid colour %q, using black", hex)
	}
	return 0, 0, 0
}

// parseHexColor parses #RRGGBB and #RGB
func parseHexColor(s string) (int, int, int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
