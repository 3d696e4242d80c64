package content

import (
	"fmt"
)

// Resolver looks up translated copy by dot-separated key,
// e.g. "methodology.steps.learn.features".
type Resolver interface {
	Resolve(key string) (string, error)
	ResolveList(key string) ([]string, error)
}

var (
	featureKeys     = []string{"customizable", "fastDeploy", "anyLanguage", "accessible", "mobileFriendly"}
	audienceKeys    = []string{"financialLiteracy", "workforceReadiness", "healthcare101", "communityWellness", "aiLiteracy"}
	testimonialKeys = []string{"alfred", "jenn", "nathan"}
	stepKeys        = []string{"learn", "practice", "apply"}
	strengthKeys    = []string{"educationTechnology", "communityCentered", "multiLanguage", "personalizedLearning", "inclusiveDesign", "fastImplementation"}
	statKeys        = []string{"statesServed", "learnersImpacted", "communityPartners", "satisfactionRate"}
	contactKeys     = []string{"email", "phone", "office"}
)

// extractor remembers the first failed lookup so the extraction code can
// read straight through; later lookups become no-ops.
type extractor struct {
	r   Resolver
	err error
}

func (x *extractor) s(key string) string {
	if x.err != nil {
		return ""
	}
	v, err := x.r.Resolve(key)
	if err != nil {
		x.err = precondition(key, err)
		return ""
	}
	return v
}

func (x *extractor) list(key string) []string {
	if x.err != nil {
		return nil
	}
	v, err := x.r.ResolveList(key)
	if err != nil {
		x.err = precondition(key, err)
		return nil
	}
	if v == nil {
		v = []string{}
	}
	return v
}

func (x *extractor) features(prefix string, ids []string) []Item {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, FeatureItem{
			Title:       x.s(prefix + "." + id + ".title"),
			Description: x.s(prefix + "." + id + ".description"),
		})
	}
	return items
}

// Extract builds a Bundle from translated copy. Any missing key aborts the
// extraction with a *PreconditionError naming the key.
func Extract(r Resolver) (*Bundle, error) {
	if r == nil {
		return nil, precondition("resolver", fmt.Errorf("%w: nil resolver", ErrInvalidBundle))
	}
	x := &extractor{r: r}
	b := &Bundle{}

	b.PressKit = PressKit{
		Title:      x.s("pressKit.title"),
		Subtitle:   x.s("pressKit.subtitle"),
		DateLayout: x.s("pressKit.dateLayout"),
	}

	b.Hero = Hero{
		Headline1:   x.s("hero.headline1"),
		Headline2:   x.s("hero.headline2"),
		Subheadline: x.s("hero.subheadline"),
		CTAButton:   x.s("hero.ctaButton"),
	}

	b.Features = Section{
		Title:    x.s("featureTiles.title"),
		Subtitle: x.s("featureTiles.subtitle"),
		Items:    x.features("featureTiles.features", featureKeys),
	}

	b.WhoWeServe = Section{
		Title: fmt.Sprintf("%s - %s %s",
			x.s("whoWeServe.audience"), x.s("whoWeServe.title"), x.s("whoWeServe.titleHighlight")),
		Subtitle: x.s("whoWeServe.subtitle"),
		Items:    x.features("whoWeServe.audiences", audienceKeys),
	}

	quotes := make([]Item, 0, len(testimonialKeys))
	for _, id := range testimonialKeys {
		p := "testimonials.items." + id
		quotes = append(quotes, QuoteItem{
			Quote:  x.s(p + ".quote"),
			Author: x.s(p + ".author"),
			Title:  x.s(p + ".title"),
		})
	}
	b.Testimonials = Section{
		Title:    x.s("testimonials.title"),
		Subtitle: x.s("testimonials.subtitle"),
		Items:    quotes,
	}

	steps := make([]Item, 0, len(stepKeys))
	for _, id := range stepKeys {
		p := "methodology.steps." + id
		steps = append(steps, StepItem{
			Phase:          x.s(p + ".phase"),
			RetentionLabel: x.s(p + ".retention"),
			Description:    x.s(p + ".description"),
			Features:       x.list(p + ".features"),
		})
	}
	b.Methodology = Section{
		Title:    x.s("methodology.title"),
		Subtitle: x.s("methodology.description"),
		Items:    steps,
	}

	stats := make([]Item, 0, len(statKeys))
	for _, id := range statKeys {
		p := "about.stats." + id
		stats = append(stats, StatItem{
			Number: x.s(p + ".number"),
			Label:  x.s(p + ".label"),
		})
	}
	b.About = About{
		Section: Section{
			Title:    x.s("about.title"),
			Subtitle: x.s("about.subtitle"),
			Items:    x.features("about.features", strengthKeys),
		},
		Mission:            x.s("about.mission"),
		MissionDescription: x.s("about.missionDescription"),
		CoreStrengths:      x.s("about.coreStrengths"),
		MeasurableImpact:   x.s("about.measurableImpact"),
		Stats:              stats,
	}

	methods := make([]Item, 0, len(contactKeys))
	for _, id := range contactKeys {
		p := "contact.methods." + id
		methods = append(methods, ContactItem{
			Title:   x.s(p + ".title"),
			Details: x.list(p + ".details"),
		})
	}
	b.Contact = Section{
		Title:    fmt.Sprintf("%s %s", x.s("contact.title"), x.s("contact.titleHighlight")),
		Subtitle: x.s("contact.subtitle"),
		Items:    methods,
	}

	if x.err != nil {
		return nil, x.err
	}
	return b, nil
}

// Strings returns every string of the bundle. It is the reference set for
// checking that a rendered document lost no content.
func (b *Bundle) Strings() []string {
	out := []string{
		b.PressKit.Title, b.PressKit.Subtitle,
		b.Hero.Headline1, b.Hero.Headline2, b.Hero.Subheadline, b.Hero.CTAButton,
		b.About.Mission, b.About.MissionDescription,
		b.About.CoreStrengths, b.About.MeasurableImpact,
	}
	sections := []Section{b.Features, b.Methodology, b.WhoWeServe, b.Testimonials, b.About.Section, b.Contact}
	for _, s := range sections {
		out = append(out, s.Title, s.Subtitle)
		for _, it := range s.Items {
			out = append(out, itemStrings(it)...)
		}
	}
	for _, it := range b.About.Stats {
		out = append(out, itemStrings(it)...)
	}
	return out
}

func itemStrings(it Item) []string {
	switch v := it.(type) {
	case FeatureItem:
		return []string{v.Title, v.Description}
	case QuoteItem:
		return []string{v.Quote, v.Author, v.Title}
	case StepItem:
		return append([]string{v.Phase, v.RetentionLabel, v.Description}, v.Features...)
	case StatItem:
		return []string{v.Number, v.Label}
	case ContactItem:
		return append([]string{v.Title}, v.Details...)
	}
	return nil
}
