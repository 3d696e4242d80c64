package api

import (
	"time"
)

// Options represents configuration options for press-kit generation
type Options struct {
	// Page dimensions in millimetres
	PageWidth  float64
	PageHeight float64
	// Page orientation: portrait or landscape
	PageOrientation PageOrientation

	// Margin applies to all four sides, in millimetres
	Margin float64

	// Debug logs page breaks and placement counts
	Debug bool

	// Logo is a path, URL or data URL of the header logo; empty for none
	Logo string

	// Resource paths searched for the logo and message files by name
	ResourcePaths []string

	// MessagesFiles are JSON catalogs merged over the built-in ones. The
	// locale is taken from the file name, e.g. "es.json".
	MessagesFiles []string

	// Document metadata. An empty Title uses the localized press-kit title.
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Wordmark is drawn in the header banner
	Wordmark string

	// Clock supplies the generation time for the footer date, the file
	// name and the document info
	Clock func() time.Time
}

// Option is a function that modifies Options
type Option func(*Options)

// PageOrientation represents page orientation
type PageOrientation string

const (
	// PageOrientationPortrait sets the page to portrait orientation
	PageOrientationPortrait PageOrientation = "portrait"
	// PageOrientationLandscape sets the page to landscape orientation
	PageOrientationLandscape PageOrientation = "landscape"
)

// DefaultMargin is the page margin in millimetres
const DefaultMargin = 25

// DefaultOptions returns A4 portrait with a 25mm margin
func DefaultOptions() Options {
	return Options{
		PageWidth:       PageSizeA4Width,
		PageHeight:      PageSizeA4Height,
		PageOrientation: PageOrientationPortrait,
		Margin:          DefaultMargin,
		Author:          "Stickball",
		Subject:         "Press kit",
		Keywords:        "Stickball, press kit, financial literacy",
		Wordmark:        "Stickball",
		Clock:           time.Now,
	}
}

// clone copies o so the slices are not shared
func (o Options) clone() Options {
	o.ResourcePaths = append([]string(nil), o.ResourcePaths...)
	o.MessagesFiles = append([]string(nil), o.MessagesFiles...)
	return o
}

// WithPageSize sets the page size in millimetres
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithMargin sets the page margin
func WithMargin(margin float64) Option {
	return func(o *Options) {
		o.Margin = margin
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithLogo sets the header logo location
func WithLogo(location string) Option {
	return func(o *Options) {
		o.Logo = location
	}
}

// WithResourcePath adds a path to search for resources
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithMessagesFile adds a message catalog override
func WithMessagesFile(location string) Option {
	return func(o *Options) {
		o.MessagesFiles = append(o.MessagesFiles, location)
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// WithWordmark sets the header wordmark
func WithWordmark(wordmark string) Option {
	return func(o *Options) {
		o.Wordmark = wordmark
	}
}

// WithClock sets the time source
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

// WithPageOrientation sets the page orientation
func WithPageOrientation(orientation PageOrientation) Option {
	return func(o *Options) {
		o.PageOrientation = orientation
	}
}

// Standard page sizes in millimetres
const (
	PageSizeA3Width  = 297
	PageSizeA3Height = 420
	PageSizeA4Width  = 210
	PageSizeA4Height = 297
	PageSizeA5Width  = 148
	PageSizeA5Height = 210

	// US Letter and Legal
	PageSizeLetterWidth  = 215.9
	PageSizeLetterHeight = 279.4
	PageSizeLegalWidth   = 215.9
	PageSizeLegalHeight  = 355.6
)

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}

// PageSizeByName returns the dimensions of a named size: a3, a4, a5,
// letter or legal
func PageSizeByName(name string) (width, height float64, ok bool) {
	switch name {
	case "a3", "A3":
		return PageSizeA3Width, PageSizeA3Height, true
	case "a4", "A4":
		return PageSizeA4Width, PageSizeA4Height, true
	case "a5", "A5":
		return PageSizeA5Width, PageSizeA5Height, true
	case "letter", "Letter":
		return PageSizeLetterWidth, PageSizeLetterHeight, true
	case "legal", "Legal":
		return PageSizeLegalWidth, PageSizeLegalHeight, true
	}
	return 0, 0, false
}
