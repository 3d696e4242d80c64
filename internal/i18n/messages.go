package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/stickball/presskit/internal/content"
)

// Messages resolves dot-separated keys against one locale's message tree.
type Messages struct {
	lang string
	root map[string]any
	mu   *sync.RWMutex
}

// Lang returns the locale code
func (m *Messages) Lang() string {
	return m.lang
}

func (m *Messages) lookup(key string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var node any = m.root
	for _, part := range strings.Split(key, ".") {
		tree, ok := node.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s/%s", content.ErrMissingKey, m.lang, key)
		}
		if node, ok = tree[part]; !ok {
			return nil, fmt.Errorf("%w: %s/%s", content.ErrMissingKey, m.lang, key)
		}
	}
	return node, nil
}

// Resolve returns the string at key
func (m *Messages) Resolve(key string) (string, error) {
	v, err := m.lookup(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("key %s/%s holds %T, not a string", m.lang, key, v)
	}
	return s, nil
}

// ResolveList returns the string array at key. Non-string entries are
// rejected here so callers only ever see typed data.
func (m *Messages) ResolveList(key string) ([]string, error) {
	v, err := m.lookup(key)
	if err != nil {
		return nil, err
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("key %s/%s holds %T, not a list", m.lang, key, v)
	}
	out := make([]string, 0, len(raw))
	for i, e := range raw {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("key %s/%s[%d] holds %T, not a string", m.lang, key, i, e)
		}
		out = append(out, s)
	}
	return out, nil
}
