package layout

import (
	"math"

	"github.com/stickball/presskit/internal/content"
	"github.com/stickball/presskit/internal/text"
)

// addHeader draws the banner with the wordmark on page 1
func (e *Engine) addHeader() {
	c, sp := e.config, e.config.Spacing
	e.surface.SetFillColor(c.Palette.Primary)
	e.surface.RoundedRect(c.Margin, c.Margin, c.ContentWidth(), sp.HeaderHeight, sp.HeaderRadius)

	logoH := sp.HeaderHeight * 0.6
	e.surface.DrawLogo(c.Margin+c.ContentWidth()-sp.WordmarkX, c.Margin+(sp.HeaderHeight-logoH)/2, logoH)

	e.font(Bold, c.Fonts.Wordmark, c.Palette.Inverse)
	e.textAt(c.Margin+sp.WordmarkX, c.Margin+sp.WordmarkY, c.Wordmark, RoleWordmark)

	e.cursor.Advance(sp.HeaderAdvance)
}

func (e *Engine) addPressKitTitle(p content.PressKit) {
	c, sp := e.config, e.config.Spacing
	e.font(Bold, c.Fonts.PressKitTitle, c.Palette.Text)
	e.block(c.Margin, c.ContentWidth(), p.Title, RoleTitle, sp.PressKitTitleAdvance)

	if p.Subtitle != "" {
		e.font(Regular, c.Fonts.Lead, c.Palette.Muted)
		e.block(c.Margin, c.ContentWidth(), p.Subtitle, RoleSubtitle, sp.PressKitLineHeight)
	}
	e.cursor.Advance(sp.PressKitGap)
}

func (e *Engine) addHero(h content.Hero) {
	c, sp := e.config, e.config.Spacing
	e.font(Bold, c.Fonts.Headline, c.Palette.Text)
	e.block(c.Margin, c.ContentWidth(), h.Headline1, RoleHeadline, sp.HeadlineAdvance)

	e.surface.SetTextColor(c.Palette.Primary)
	e.block(c.Margin, c.ContentWidth(), h.Headline2, RoleHeadline, sp.Headline2Advance)

	e.font(Regular, c.Fonts.Lead, c.Palette.Text)
	e.block(c.Margin, c.ContentWidth(), h.Subheadline, RoleLead, sp.LeadLineHeight)

	if h.CTAButton != "" {
		e.cursor.Advance(sp.LeadLineHeight)
		e.font(Bold, c.Fonts.Lead, c.Palette.Primary)
		e.block(c.Margin, c.ContentWidth(), h.CTAButton, RoleCTA, sp.LeadLineHeight)
	}
}

// addSectionTitle starts a section: title, optional subtitle and a rule
func (e *Engine) addSectionTitle(title, subtitle string) {
	c, sp := e.config, e.config.Spacing
	e.cursor.Ensure(c.Thresholds.Section, "section "+title)
	e.cursor.Advance(sp.SectionLead)

	e.font(Bold, c.Fonts.SectionTitle, c.Palette.Primary)
	e.block(c.Margin, c.ContentWidth(), title, RoleTitle, sp.TitleAdvance)

	if subtitle != "" {
		e.font(Regular, c.Fonts.Subtitle, c.Palette.Muted)
		e.block(c.Margin, c.ContentWidth(), subtitle, RoleSubtitle, sp.SubtitleLineHeight)
	} else {
		e.cursor.Advance(sp.NoSubtitleAdvance)
	}

	e.cursor.EnsureLine("separator")
	y := e.cursor.Y()
	e.surface.SetDrawColor(c.Palette.Muted)
	e.surface.SetLineWidth(sp.SeparatorWidth)
	e.surface.Line(c.Margin, y, c.Margin+c.ContentWidth(), y)
	e.cursor.Advance(sp.SeparatorGap)
}

// addNumberedItems renders a numbered list of titled paragraphs, used by
// the features and who-we-serve sections.
func (e *Engine) addNumberedItems(items []content.Item, gap float64) {
	c, sp := e.config, e.config.Spacing
	for i, it := range items {
		f := it.(content.FeatureItem)
		e.cursor.Ensure(c.Thresholds.Feature, "feature")

		e.font(Bold, c.Fonts.ItemTitle, c.Palette.Primary)
		e.block(c.Margin, c.ContentWidth(), ordinal(i, f.Title), RoleItemTitle, sp.ItemTitleAdvance)

		e.font(Regular, c.Fonts.Body, c.Palette.Text)
		e.block(c.Margin+sp.Indent, c.ContentWidth()-sp.Indent, f.Description, RoleBody, sp.BodyLineHeight)
		e.cursor.Advance(gap)
	}
}

func (e *Engine) addFeatures(s content.Section) {
	e.addSectionTitle(s.Title, s.Subtitle)
	e.addNumberedItems(s.Items, e.config.Spacing.FeatureGap)
}

func (e *Engine) addWhoWeServe(s content.Section) {
	e.addSectionTitle(s.Title, s.Subtitle)
	e.addNumberedItems(s.Items, e.config.Spacing.AudienceGap)
	e.cursor.Advance(e.config.Spacing.SectionTrailer)
}

func (e *Engine) addTestimonials(s content.Section) {
	c, sp := e.config, e.config.Spacing
	e.addSectionTitle(s.Title, s.Subtitle)

	for _, it := range s.Items {
		q := it.(content.QuoteItem)
		e.cursor.Ensure(c.Thresholds.Quote, "testimonial")

		e.font(Italic, c.Fonts.Quote, c.Palette.Text)
		e.block(c.Margin+sp.QuoteIndent, c.ContentWidth()-2*sp.QuoteIndent, "“"+q.Quote+"”", RoleQuote, sp.BodyLineHeight)
		e.cursor.Advance(sp.QuoteGap)

		e.font(Bold, c.Fonts.Body, c.Palette.Primary)
		e.block(c.Margin, c.ContentWidth(), "— "+q.Author, RoleAuthor, sp.AuthorAdvance)

		e.font(Regular, c.Fonts.Caption, c.Palette.Muted)
		e.block(c.Margin, c.ContentWidth(), q.Title, RoleCaption, sp.TestimonialGap)
	}
}

func (e *Engine) addMethodology(s content.Section) {
	c, sp := e.config, e.config.Spacing
	e.addSectionTitle(s.Title, s.Subtitle)

	for _, it := range s.Items {
		step := it.(content.StepItem)
		e.cursor.Ensure(c.Thresholds.Step, "step")
		e.cursor.EnsureLine("step")
		y := e.cursor.Y()

		e.font(Bold, c.Fonts.StepTitle, c.Palette.Primary)
		e.textAt(c.Margin, y, step.Phase, RoleItemTitle)
		// keep the retention label clear of long phase names
		offset := math.Max(sp.RetentionOffset, e.surface.StringWidth(step.Phase)+3)

		e.font(Regular, c.Fonts.Subtitle, c.Palette.Secondary)
		e.textAt(c.Margin+offset, y, "("+step.RetentionLabel+")", RoleRetention)
		e.cursor.Advance(sp.StepTitleAdvance)

		e.font(Regular, c.Fonts.Body, c.Palette.Text)
		e.block(c.Margin, c.ContentWidth(), step.Description, RoleBody, sp.BodyLineHeight)
		e.cursor.Advance(sp.StepBodyGap)

		e.font(Regular, c.Fonts.Caption, c.Palette.Muted)
		for _, f := range step.Features {
			e.block(c.Margin+sp.Indent, c.ContentWidth()-sp.Indent, "• "+f, RoleBullet, sp.BodyLineHeight)
		}
		e.cursor.Advance(sp.StepGap)
	}
}

// addHeading draws an in-section heading. It is kept on the same page as
// the first element below it, which needs `next` free height.
func (e *Engine) addHeading(s string, next float64) {
	c := e.config
	e.cursor.Ensure(next+c.Spacing.HeadingAdvance, "heading")
	e.font(Bold, c.Fonts.ItemTitle, c.Palette.Primary)
	e.block(c.Margin, c.ContentWidth(), s, RoleItemTitle, c.Spacing.HeadingAdvance)
}

func (e *Engine) addAbout(a content.About) {
	c, sp := e.config, e.config.Spacing
	e.addSectionTitle(a.Title, a.Subtitle)

	e.addHeading(a.Mission, c.Thresholds.Feature)
	e.font(Regular, c.Fonts.Body, c.Palette.Text)
	e.block(c.Margin, c.ContentWidth(), a.MissionDescription, RoleBody, sp.BodyLineHeight)
	e.cursor.Advance(sp.MissionGap)

	e.addHeading(a.CoreStrengths, c.Thresholds.Feature)
	for _, it := range a.Items {
		f := it.(content.FeatureItem)
		e.cursor.Ensure(c.Thresholds.Feature, "strength")

		e.font(Bold, c.Fonts.Strength, c.Palette.Text)
		e.block(c.Margin, c.ContentWidth(), "• "+f.Title, RoleItemTitle, sp.StrengthAdvance)

		e.font(Regular, c.Fonts.Caption, c.Palette.Muted)
		e.block(c.Margin+sp.Indent, c.ContentWidth()-sp.Indent, f.Description, RoleBody, sp.BodyLineHeight)
		e.cursor.Advance(sp.StrengthGap)
	}
	e.cursor.Advance(sp.SectionTrailer)

	e.addHeading(a.MeasurableImpact, c.Thresholds.Stat)
	e.addStats(a.Stats)
}

// StatColumn returns the column width used for n stats: the configured
// fixed width, narrowed when n columns would not fit the content width.
func (c Config) StatColumn(n int) float64 {
	if n <= 0 {
		return c.Spacing.StatColumnWidth
	}
	return math.Min(c.Spacing.StatColumnWidth, c.ContentWidth()/float64(n))
}

// addStats lays the stats out as a single row of fixed-width columns:
// numbers on one baseline, labels StatLabelOffset below.
func (e *Engine) addStats(stats []content.Item) {
	c, sp := e.config, e.config.Spacing
	if len(stats) == 0 {
		return
	}
	col := c.StatColumn(len(stats))

	e.font(Regular, c.Fonts.Caption, c.Palette.Muted)
	labels := make([][]string, len(stats))
	rows := 1
	for i, it := range stats {
		labels[i] = text.SplitTextToLines(it.(content.StatItem).Label, text.MeasureFunc(e.surface.StringWidth), col-2)
		rows = max(rows, len(labels[i]))
	}

	// the whole row, labels included, stays above the bottom margin
	need := sp.StatLabelOffset + float64(rows)*sp.BodyLineHeight
	e.cursor.Ensure(max(c.Thresholds.Stat, need+c.Margin), "stats")
	y := e.cursor.Y()

	e.font(Bold, c.Fonts.Stat, c.Palette.Secondary)
	for i, it := range stats {
		e.textAt(c.Margin+float64(i)*col, y, it.(content.StatItem).Number, RoleStatNumber)
	}

	e.font(Regular, c.Fonts.Caption, c.Palette.Muted)
	for j := 0; j < rows; j++ {
		for i := range stats {
			if j < len(labels[i]) {
				e.textAt(c.Margin+float64(i)*col, y+sp.StatLabelOffset+float64(j)*sp.BodyLineHeight, labels[i][j], RoleStatLabel)
			}
		}
	}
	e.cursor.Advance(sp.StatRowAdvance + float64(rows-1)*sp.BodyLineHeight)
}

func (e *Engine) addContact(s content.Section) {
	c, sp := e.config, e.config.Spacing
	e.addSectionTitle(s.Title, s.Subtitle)

	for _, it := range s.Items {
		ci := it.(content.ContactItem)
		e.cursor.Ensure(c.Thresholds.Feature, "contact")

		e.font(Bold, c.Fonts.ItemTitle, c.Palette.Primary)
		e.block(c.Margin, c.ContentWidth(), ci.Title, RoleItemTitle, sp.ItemTitleAdvance)

		e.font(Regular, c.Fonts.Body, c.Palette.Text)
		for _, d := range ci.Details {
			e.block(c.Margin+sp.Indent, c.ContentWidth()-sp.Indent, d, RoleBody, sp.BodyLineHeight)
		}
		e.cursor.Advance(sp.ContactDetailGap)
	}
}
