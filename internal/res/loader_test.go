package res

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDataURL(t *testing.T) {
	l := NewLoader("")
	tests := []struct {
		url  string
		mime string
		kind Kind
		data string
	}{
		{"data:application/json,%7B%22a%22%3A1%7D", "application/json", KindMessages, `{"a":1}`},
		{"data:image/png;base64,aGVsbG8=", "image/png", KindImage, "hello"},
		{"data:,plain%20text", "text/plain", KindOther, "plain text"},
	}
	for _, tt := range tests {
		r, err := l.Load(context.Background(), tt.url)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", tt.url, err)
		}
		got := []any{r.MimeType, r.Kind, string(r.Data)}
		if diff := cmp.Diff([]any{tt.mime, tt.kind, tt.data}, got); diff != "" {
			t.Errorf("Load(%s) mismatch (-want +got):\n%s", tt.url, diff)
		}
	}

	if _, err := l.Load(context.Background(), "data:image/png;base64,!!!"); err == nil {
		t.Error("Load accepted invalid base64")
	}
	if _, err := l.Load(context.Background(), "data:nocomma"); err == nil {
		t.Error("Load accepted a data URL without payload")
	}
}

func TestLoadLocalAndSearchPaths(t *testing.T) {
	dir := t.TempDir()
	assets := filepath.Join(dir, "assets")
	if err := os.Mkdir(assets, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(assets, "logo.svg"), []byte(`<svg/>`), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(dir)
	l.AddSearchPath(assets)
	ctx := context.Background()

	m, err := l.LoadMessages(ctx, "en.json")
	if err != nil {
		t.Fatalf("LoadMessages(en.json) error = %v", err)
	}
	if m.URL != filepath.Join(dir, "en.json") {
		t.Errorf("URL = %s", m.URL)
	}

	logo, err := l.LoadImage(ctx, "logo.svg")
	if err != nil {
		t.Fatalf("LoadImage(logo.svg) error = %v", err)
	}
	if logo.MimeType != "image/svg+xml" || logo.URL != filepath.Join(assets, "logo.svg") {
		t.Errorf("got %s from %s", logo.MimeType, logo.URL)
	}

	if _, err := l.LoadImage(ctx, "en.json"); err == nil {
		t.Error("LoadImage accepted a catalog")
	}
	if _, err := l.Load(ctx, "missing.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing.png) error = %v, want ErrNotFound", err)
	}
}

func TestLoadRemoteCached(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/messages/es.json":
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Write([]byte(`{"hero":{}}`))
		case "/logo.png":
			// some servers send a generic type
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Write([]byte{0x89, 'P', 'N', 'G'})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := NewLoader(srv.URL + "/messages/")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		r, err := l.LoadMessages(ctx, "es.json")
		if err != nil {
			t.Fatalf("LoadMessages(es.json) error = %v", err)
		}
		if r.URL != srv.URL+"/messages/es.json" {
			t.Errorf("URL = %s", r.URL)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hit %d times, want 1", got)
	}

	logo, err := l.LoadImage(ctx, srv.URL+"/logo.png")
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if logo.MimeType != "image/png" {
		t.Errorf("MimeType = %s, want image/png", logo.MimeType)
	}

	if _, err := l.Load(ctx, "pt.json"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(pt.json) error = %v, want ErrNotFound", err)
	}
}

func TestKindString(t *testing.T) {
	got := []string{KindUnknown.String(), KindImage.String(), KindMessages.String(), KindOther.String()}
	if diff := cmp.Diff([]string{"unknown", "image", "messages", "other"}, got); diff != "" {
		t.Errorf("Kind.String() mismatch (-want +got):\n%s", diff)
	}
}
