package layout

// FontStyle selects the face of the document font
type FontStyle string

const (
	Regular FontStyle = ""
	Bold    FontStyle = "B"
	Italic  FontStyle = "I"
)

// Surface is the drawing target of the engine. Coordinates are page units
// from the top-left corner; Text places a baseline at y. Pages are numbered
// from 1 and SetPage moves back to an already added page.
type Surface interface {
	AddPage()
	SetPage(n int)
	SetFont(style FontStyle, size float64)
	SetTextColor(hex string)
	SetFillColor(hex string)
	SetDrawColor(hex string)
	SetLineWidth(w float64)
	Text(x, y float64, s string)
	Line(x1, y1, x2, y2 float64)
	RoundedRect(x, y, w, h, r float64)
	// StringWidth measures s in the current font
	StringWidth(s string) float64
	// DrawLogo draws the configured logo with height h, right edge at x and
	// top at y, returning the drawn width (0 when there is no logo).
	DrawLogo(x, y, h float64) float64
}
