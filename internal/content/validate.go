package content

import (
	"fmt"
)

// Validate checks that every section only carries the item kind its
// renderer understands and that no item is nil. Empty strings are allowed.
func (b *Bundle) Validate() error {
	if b == nil {
		return precondition("bundle", fmt.Errorf("%w: nil bundle", ErrInvalidBundle))
	}

	checks := []struct {
		field string
		items []Item
		kind  func(Item) bool
	}{
		{"features.items", b.Features.Items, isFeature},
		{"whoWeServe.audiences", b.WhoWeServe.Items, isFeature},
		{"testimonials.items", b.Testimonials.Items, isQuote},
		{"methodology.steps", b.Methodology.Items, isStep},
		{"about.features", b.About.Items, isFeature},
		{"about.stats", b.About.Stats, isStat},
		{"contact.methods", b.Contact.Items, isContact},
	}

	for _, c := range checks {
		for i, it := range c.items {
			field := fmt.Sprintf("%s[%d]", c.field, i)
			if it == nil {
				return precondition(field, fmt.Errorf("%w: nil item", ErrInvalidBundle))
			}
			if !c.kind(it) {
				return precondition(field, fmt.Errorf("%w: unexpected item type %T", ErrInvalidBundle, it))
			}
		}
	}
	return nil
}

func isFeature(it Item) bool {
	_, ok := it.(FeatureItem)
	return ok
}

func isQuote(it Item) bool {
	_, ok := it.(QuoteItem)
	return ok
}

func isStep(it Item) bool {
	_, ok := it.(StepItem)
	return ok
}

func isStat(it Item) bool {
	_, ok := it.(StatItem)
	return ok
}

func isContact(it Item) bool {
	_, ok := it.(ContactItem)
	return ok
}
