package layout

import (
	"time"

	"github.com/stickball/presskit/internal/pagination"
)

// Palette holds hex colours (#RRGGBB)
type Palette struct {
	Primary   string
	Secondary string
	Text      string
	Muted     string
	Inverse   string
}

// FontSizes in points
type FontSizes struct {
	Wordmark      float64
	PressKitTitle float64
	Headline      float64
	SectionTitle  float64
	StepTitle     float64
	ItemTitle     float64
	Lead          float64
	Subtitle      float64
	Quote         float64
	Strength      float64
	Body          float64
	Caption       float64
	Stat          float64
	Footer        float64
}

// Spacing holds vertical advances and offsets in page units (mm)
type Spacing struct {
	HeaderHeight  float64
	HeaderRadius  float64
	WordmarkX     float64
	WordmarkY     float64
	HeaderAdvance float64

	PressKitTitleAdvance float64
	PressKitLineHeight   float64
	PressKitGap          float64

	HeadlineAdvance  float64
	Headline2Advance float64
	LeadLineHeight   float64

	SectionLead        float64
	TitleAdvance       float64
	SubtitleLineHeight float64
	NoSubtitleAdvance  float64
	SeparatorWidth     float64
	SeparatorGap       float64

	Indent           float64
	ItemTitleAdvance float64
	BodyLineHeight   float64
	FeatureGap       float64
	AudienceGap      float64
	SectionTrailer   float64

	QuoteIndent    float64
	QuoteGap       float64
	AuthorAdvance  float64
	TestimonialGap float64

	StepTitleAdvance float64
	RetentionOffset  float64
	StepBodyGap      float64
	StepGap          float64

	HeadingAdvance   float64
	MissionGap       float64
	StrengthAdvance  float64
	StrengthGap      float64
	StatColumnWidth  float64
	StatLabelOffset  float64
	StatRowAdvance   float64
	ContactDetailGap float64

	FooterOffset float64
}

// Thresholds are the minimum free heights (measured from the page bottom)
// an element needs before it is placed; below them a new page is started.
type Thresholds struct {
	Section float64
	Feature float64
	Quote   float64
	Step    float64
	Stat    float64
}

// Config fixes every geometric and visual constant of a generation. It is
// read-only for the lifetime of an Engine.
type Config struct {
	PageSize   pagination.PageSize
	Margin     float64
	Palette    Palette
	Fonts      FontSizes
	Spacing    Spacing
	Thresholds Thresholds

	Wordmark    string
	ProductName string

	// Date is stamped in the footer as a UTC day using DateLayout
	Date       time.Time
	DateLayout string
}

// DefaultConfig returns the A4 portrait press-kit layout with a 25mm margin
func DefaultConfig() Config {
	return Config{
		PageSize: pagination.PageSizeA4,
		Margin:   25,
		Palette: Palette{
			Primary:   "#616DED",
			Secondary: "#8B5CF6",
			Text:      "#1F2937",
			Muted:     "#6B7280",
			Inverse:   "#FFFFFF",
		},
		Fonts: FontSizes{
			Wordmark:      18,
			PressKitTitle: 22,
			Headline:      20,
			SectionTitle:  16,
			StepTitle:     13,
			ItemTitle:     12,
			Lead:          11,
			Subtitle:      10,
			Quote:         10,
			Strength:      10,
			Body:          9,
			Caption:       8,
			Stat:          14,
			Footer:        7,
		},
		Spacing: Spacing{
			HeaderHeight:  15,
			HeaderRadius:  2,
			WordmarkX:     8,
			WordmarkY:     10,
			HeaderAdvance: 25,

			PressKitTitleAdvance: 9,
			PressKitLineHeight:   4.5,
			PressKitGap:          6,

			HeadlineAdvance:  6,
			Headline2Advance: 8,
			LeadLineHeight:   4,

			SectionLead:        8,
			TitleAdvance:       6,
			SubtitleLineHeight: 4,
			NoSubtitleAdvance:  6,
			SeparatorWidth:     0.5,
			SeparatorGap:       8,

			Indent:           8,
			ItemTitleAdvance: 5,
			BodyLineHeight:   3.5,
			FeatureGap:       4,
			AudienceGap:      6,
			SectionTrailer:   8,

			QuoteIndent:    4,
			QuoteGap:       6,
			AuthorAdvance:  4,
			TestimonialGap: 10,

			StepTitleAdvance: 6,
			RetentionOffset:  25,
			StepBodyGap:      4,
			StepGap:          8,

			HeadingAdvance:   6,
			MissionGap:       10,
			StrengthAdvance:  4,
			StrengthGap:      6,
			StatColumnWidth:  35,
			StatLabelOffset:  8,
			StatRowAdvance:   15,
			ContactDetailGap: 6,

			FooterOffset: 15,
		},
		Thresholds: Thresholds{
			Section: 50,
			Feature: 30,
			Quote:   40,
			Step:    40,
			Stat:    20,
		},
		Wordmark:    "Stickball",
		ProductName: "Stickball",
		DateLayout:  "2006-01-02",
	}
}

// ContentWidth is the page width minus both margins
func (c Config) ContentWidth() float64 {
	return c.PageSize.Width - 2*c.Margin
}
