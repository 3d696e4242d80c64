package presskit

import (
	"time"

	"github.com/stickball/presskit/internal/content"
	"github.com/stickball/presskit/internal/layout"
	"github.com/stickball/presskit/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option
type PageOrientation = api.PageOrientation
type Bundle = content.Bundle
type Result = layout.Result

func New() *Generator                           { return api.New() }
func NewWithOptions(options Options) *Generator { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }
func FileName(lang string, t time.Time) string  { return api.FileName(lang, t) }

var (
	WithPageSize        = api.WithPageSize
	WithMargin          = api.WithMargin
	WithDebug           = api.WithDebug
	WithLogo            = api.WithLogo
	WithResourcePath    = api.WithResourcePath
	WithMessagesFile    = api.WithMessagesFile
	WithTitle           = api.WithTitle
	WithAuthor          = api.WithAuthor
	WithSubject         = api.WithSubject
	WithKeywords        = api.WithKeywords
	WithWordmark        = api.WithWordmark
	WithClock           = api.WithClock
	WithPageSizeA4      = api.WithPageSizeA4
	WithPageSizeLetter  = api.WithPageSizeLetter
	WithPageSizeLegal   = api.WithPageSizeLegal
	WithPageOrientation = api.WithPageOrientation
	PageSizeByName      = api.PageSizeByName
)

const (
	PageSizeA3Width  = api.PageSizeA3Width
	PageSizeA3Height = api.PageSizeA3Height
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height
	PageSizeA5Width  = api.PageSizeA5Width
	PageSizeA5Height = api.PageSizeA5Height

	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight

	PageOrientationPortrait  = api.PageOrientationPortrait
	PageOrientationLandscape = api.PageOrientationLandscape

	DefaultMargin = api.DefaultMargin
)
