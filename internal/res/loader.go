package res

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Kind classifies a loaded resource
type Kind int

const (
	KindUnknown Kind = iota
	// KindImage is a raster or SVG logo
	KindImage
	// KindMessages is a JSON message catalog
	KindMessages
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindMessages:
		return "messages"
	case KindOther:
		return "other"
	}
	return "unknown"
}

// MaxSize caps the bytes read from any single resource
const MaxSize = 8 << 20

// ErrNotFound is returned when neither the path nor the search paths hold
// the resource
var ErrNotFound = errors.New("resource not found")

// Resource is a loaded file, remote document or data URL
type Resource struct {
	URL      string
	Kind     Kind
	Data     []byte
	MimeType string
}

// Reader returns a reader over the resource data
func (r *Resource) Reader() *bytes.Reader {
	return bytes.NewReader(r.Data)
}

// Loader fetches logos and message catalogs from local paths, search
// directories, http(s) URLs and data URLs. Results are cached by the
// requested location; a Loader is safe for concurrent use.
type Loader struct {
	// BaseURL resolves relative locations: a directory, a file or an
	// http(s) URL
	BaseURL string

	cache       map[string]*Resource
	cacheLock   sync.RWMutex
	searchPaths []string
	client      *http.Client
}

// NewLoader creates a loader resolving relative locations against baseURL
func NewLoader(baseURL string) *Loader {
	return &Loader{
		BaseURL: baseURL,
		cache:   make(map[string]*Resource),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// AddSearchPath adds a directory that is searched, by file name, when a
// local resource does not exist at its resolved path
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// SetHTTPClient replaces the client used for remote resources
func (l *Loader) SetHTTPClient(c *http.Client) {
	l.client = c
}

// Load fetches a resource
func (l *Loader) Load(ctx context.Context, location string) (*Resource, error) {
	l.cacheLock.RLock()
	if r, ok := l.cache[location]; ok {
		l.cacheLock.RUnlock()
		return r, nil
	}
	l.cacheLock.RUnlock()

	var (
		r   *Resource
		err error
	)
	if strings.HasPrefix(location, "data:") {
		r, err = parseDataURL(location)
	} else {
		var resolved string
		resolved, err = l.resolve(location)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", location, err)
		}
		if isRemote(resolved) {
			r, err = l.loadRemote(ctx, resolved)
		} else {
			r, err = l.loadLocal(resolved)
		}
	}
	if err != nil {
		return nil, err
	}

	l.cacheLock.Lock()
	l.cache[location] = r
	l.cacheLock.Unlock()
	return r, nil
}

// LoadImage fetches a resource and checks it is an image
func (l *Loader) LoadImage(ctx context.Context, location string) (*Resource, error) {
	r, err := l.Load(ctx, location)
	if err != nil {
		return nil, err
	}
	if r.Kind != KindImage {
		return nil, fmt.Errorf("resource is not an image: %s (%s)", location, r.MimeType)
	}
	return r, nil
}

// LoadMessages fetches a resource and checks it is a JSON catalog
func (l *Loader) LoadMessages(ctx context.Context, location string) (*Resource, error) {
	r, err := l.Load(ctx, location)
	if err != nil {
		return nil, err
	}
	if r.Kind != KindMessages {
		return nil, fmt.Errorf("resource is not a message catalog: %s (%s)", location, r.MimeType)
	}
	return r, nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// parseDataURL decodes an RFC 2397 data URL, e.g.
//
//	data:image/png;base64,<base64>
//	data:application/json,%7B%7D
func parseDataURL(u string) (*Resource, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(u, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("invalid data URL")
	}

	mime := "text/plain"
	isBase64 := false
	comps := strings.Split(meta, ";")
	if comps[0] != "" {
		mime = strings.ToLower(comps[0])
	}
	for _, c := range comps[1:] {
		if strings.EqualFold(strings.TrimSpace(c), "base64") {
			isBase64 = true
		}
	}

	var data []byte
	if isBase64 {
		d, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 data URL: %w", err)
		}
		data = d
	} else if d, err := url.PathUnescape(payload); err == nil {
		data = []byte(d)
	} else {
		data = []byte(payload)
	}

	return &Resource{URL: "data:" + mime, Data: data, MimeType: mime, Kind: kindOf(mime, "")}, nil
}

// resolve makes location absolute against BaseURL
func (l *Loader) resolve(location string) (string, error) {
	if isRemote(location) || filepath.IsAbs(location) {
		return location, nil
	}

	if !isRemote(l.BaseURL) {
		base := l.BaseURL
		if fi, err := os.Stat(base); err != nil || !fi.IsDir() {
			base = filepath.Dir(base)
		}
		return filepath.Join(base, location), nil
	}

	base, err := url.Parse(l.BaseURL)
	if err != nil {
		return "", err
	}
	rel, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(rel).String(), nil
}

func (l *Loader) loadRemote(ctx context.Context, u string) (*Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", u, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, u)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: HTTP %s", u, resp.Status)
	}

	data, err := readLimited(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", u, err)
	}

	mime, _, _ := strings.Cut(resp.Header.Get("Content-Type"), ";")
	mime = strings.ToLower(strings.TrimSpace(mime))
	if mime == "" || mime == "application/octet-stream" || mime == "text/plain" {
		mime = mimeOf(u)
	}
	return &Resource{URL: u, Data: data, MimeType: mime, Kind: kindOf(mime, u)}, nil
}

func (l *Loader) loadLocal(path string) (*Resource, error) {
	data, err := readFile(path)
	if errors.Is(err, os.ErrNotExist) {
		for _, dir := range l.searchPaths {
			candidate := filepath.Join(dir, filepath.Base(path))
			if data, err = readFile(candidate); err == nil {
				path = candidate
				break
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	mime := mimeOf(path)
	return &Resource{URL: path, Data: data, MimeType: mime, Kind: kindOf(mime, path)}, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLimited(f)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("resource exceeds %d bytes", MaxSize)
	}
	return data, nil
}

func mimeOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".tiff", ".tif":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	case ".svg":
		return "image/svg+xml"
	case ".json":
		return "application/json"
	}
	return "application/octet-stream"
}

func kindOf(mime, path string) Kind {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return KindImage
	case mime == "application/json" || strings.HasSuffix(mime, "+json"):
		return KindMessages
	}
	if path != "" {
		if m := mimeOf(path); m != "application/octet-stream" {
			return kindOf(m, "")
		}
	}
	return KindOther
}
