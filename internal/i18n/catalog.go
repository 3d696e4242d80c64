package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/exp/maps"
	"golang.org/x/text/language"

	"github.com/stickball/presskit/internal/content"
)

// DefaultLocale is served when nothing better matches
const DefaultLocale = "en"

// ErrUnsupportedLocale is returned for locales without a catalog
var ErrUnsupportedLocale = errors.New("unsupported locale")

//go:embed messages/*.json
var embedded embed.FS

// Catalog holds the message trees of every supported locale.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]any
	matcher  language.Matcher
	tags     []language.Tag
}

// NewCatalog returns a catalog loaded with the embedded en, es and pt messages
func NewCatalog() (*Catalog, error) {
	c := &Catalog{messages: make(map[string]map[string]any)}

	entries, err := embedded.ReadDir("messages")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded messages: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if path.Ext(name) != ".json" {
			continue
		}
		data, err := embedded.ReadFile("messages/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := c.Add(strings.TrimSuffix(name, ".json"), data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add merges a JSON message tree into the locale's catalog. Keys present in
// data replace existing leaves; a new locale is registered as supported.
func (c *Catalog) Add(lang string, data []byte) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("failed to parse locale %q: %w", lang, err)
	}
	base, _ := tag.Base()
	lang = base.String()

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to parse messages for %s: %w", lang, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.messages[lang]; ok {
		merge(existing, tree)
	} else {
		c.messages[lang] = tree
		log.Debugf("registered locale %s", lang)
	}
	c.rebuildMatcher()
	return nil
}

func (c *Catalog) rebuildMatcher() {
	locales := maps.Keys(c.messages)
	slices.Sort(locales)
	// the default goes first so the matcher falls back to it
	if i := slices.Index(locales, DefaultLocale); i > 0 {
		locales = append([]string{DefaultLocale}, slices.Delete(locales, i, i+1)...)
	}
	c.tags = c.tags[:0]
	for _, l := range locales {
		c.tags = append(c.tags, language.Make(l))
	}
	c.matcher = language.NewMatcher(c.tags)
}

func merge(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		if cur, ok := dst[k].(map[string]any); ok {
			merge(cur, sub)
			continue
		}
		dst[k] = sub
	}
}

// Locales returns the supported locale codes, sorted
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	locales := maps.Keys(c.messages)
	slices.Sort(locales)
	return locales
}

// Supports reports whether lang has a catalog of its own
func (c *Catalog) Supports(lang string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.messages[strings.ToLower(lang)]
	return ok
}

// Match negotiates the best supported locale for an Accept-Language header
// value or a list of language tags. It falls back to DefaultLocale.
func (c *Catalog) Match(prefs ...string) string {
	var wanted []language.Tag
	for _, p := range prefs {
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		wanted = append(wanted, tags...)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(wanted) == 0 || c.matcher == nil {
		return DefaultLocale
	}
	_, idx, conf := c.matcher.Match(wanted...)
	if conf == language.No {
		return DefaultLocale
	}
	base, _ := c.tags[idx].Base()
	return base.String()
}

// Lookup returns the resolver of an exactly supported locale
func (c *Catalog) Lookup(lang string) (*Messages, error) {
	lang = strings.ToLower(lang)
	c.mu.RLock()
	defer c.mu.RUnlock()
	tree, ok := c.messages[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, lang)
	}
	return &Messages{lang: lang, root: tree, mu: &c.mu}, nil
}

// Bundle extracts the press-kit content for lang
func (c *Catalog) Bundle(lang string) (*content.Bundle, error) {
	m, err := c.Lookup(lang)
	if err != nil {
		return nil, err
	}
	return content.Extract(m)
}
