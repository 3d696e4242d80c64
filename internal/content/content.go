package content

// Item is one entry of a Section. The concrete types are FeatureItem,
// QuoteItem, StepItem, StatItem and ContactItem.
type Item interface {
	item()
}

// FeatureItem is a titled paragraph (features, audiences, core strengths)
type FeatureItem struct {
	Title       string
	Description string
}

// QuoteItem is a testimonial
type QuoteItem struct {
	Quote  string
	Author string
	Title  string
}

// StepItem is one methodology phase
type StepItem struct {
	Phase          string
	RetentionLabel string
	Description    string
	Features       []string
}

// StatItem is an impact statistic. Stats are laid out in a row.
type StatItem struct {
	Number string
	Label  string
}

// ContactItem is a contact method with its detail lines
type ContactItem struct {
	Title   string
	Details []string
}

func (FeatureItem) item() {}
func (QuoteItem) item()   {}
func (StepItem) item()    {}
func (StatItem) item()    {}
func (ContactItem) item() {}

// Section is a titled block of items. An empty Subtitle means none.
type Section struct {
	Title    string
	Subtitle string
	Items    []Item
}

// PressKit holds the document title block
type PressKit struct {
	Title    string
	Subtitle string
	// DateLayout is a Go time layout for the footer date
	DateLayout string
}

// Hero holds the landing page headline copy
type Hero struct {
	Headline1   string
	Headline2   string
	Subheadline string
	CTAButton   string
}

// About is the about section. Features are FeatureItems, Stats are StatItems.
type About struct {
	Section
	Mission            string
	MissionDescription string
	CoreStrengths      string
	MeasurableImpact   string
	Stats              []Item
}

// Bundle is the complete, already translated input of one press kit.
// It must not be modified once handed to the layout engine.
type Bundle struct {
	PressKit     PressKit
	Hero         Hero
	Features     Section
	WhoWeServe   Section
	Testimonials Section
	Methodology  Section
	About        About
	Contact      Section
}
