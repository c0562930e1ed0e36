package svgmerge

// Notes:
// - cacheKey / cachePath: deterministic hash-derived filenames
// - readCached: best-effort cache reads
// - Prefetch: one cache file per distinct remote reference, warnings on failure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

// ---------------------------------------------------------------------------
// TestCacheKey - Deterministic Filenames
// ---------------------------------------------------------------------------

func TestCacheKey(t *testing.T) {
	t.Parallel()

	a := cacheKey("https://example.com/a.svg")
	b := cacheKey("https://example.com/b.svg")

	if len(a) != 40 || strings.ToLower(a) != a {
		t.Errorf("cacheKey() = %q, want 40 lowercase hex chars", a)
	}
	if a != cacheKey("https://example.com/a.svg") {
		t.Error("cacheKey() is not deterministic")
	}
	if a == b {
		t.Error("distinct references produced the same key")
	}

	path := cachePath("/var/cache", "https://example.com/a.svg")
	if path != filepath.Join("/var/cache", a+".svg") {
		t.Errorf("cachePath() = %q", path)
	}
}

func TestReadCached(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	url := "https://example.com/a.svg"

	if _, ok := readCached(dir, url); ok {
		t.Error("expected miss for absent entry")
	}

	if err := os.WriteFile(cachePath(dir, url), []byte("not svg"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := readCached(dir, url); ok {
		t.Error("expected miss for non-SVG entry")
	}

	if err := os.WriteFile(cachePath(dir, url), []byte(sampleSVG), 0o644); err != nil {
		t.Fatal(err)
	}
	if text, ok := readCached(dir, url); !ok || text != sampleSVG {
		t.Errorf("readCached() = (%q, %v), want cached SVG", text, ok)
	}
}

// ---------------------------------------------------------------------------
// TestPrefetch - Cache Population
// ---------------------------------------------------------------------------

func TestPrefetch(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/ok.svg":
			_, _ = w.Write([]byte(sampleSVG))
		case "/plain.txt":
			_, _ = w.Write([]byte("hello"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cacheDir := filepath.Join(t.TempDir(), "cache")
	svc := New(WithCacheDir(cacheDir), WithLogger(func(string, ...any) {}))

	layout := &Layout{
		Canvas: Canvas{Width: 100, Height: 100},
		Elements: []Element{
			{Name: "one", URL: srv.URL + "/ok.svg"},
			{Name: "dup", URL: srv.URL + "/ok.svg"},
			{Name: "gone", URL: srv.URL + "/missing.svg"},
			{Name: "text", URL: srv.URL + "/plain.txt"},
			{Name: "local", File: "unrelated.svg"},
		},
	}

	result, err := svc.Prefetch(context.Background(), layout)
	if err != nil {
		t.Fatalf("Prefetch() error = %v", err)
	}

	if len(result.Fetched) != 1 || result.Fetched[0] != srv.URL+"/ok.svg" {
		t.Errorf("Fetched = %v, want exactly the ok reference", result.Fetched)
	}
	if len(result.Warnings) != 2 {
		t.Errorf("Warnings = %v, want two (404 and non-SVG)", result.Warnings)
	}
	if hits.Load() != 3 {
		t.Errorf("server hits = %d, want 3 (duplicate deduplicated)", hits.Load())
	}

	data, err := os.ReadFile(cachePath(cacheDir, srv.URL+"/ok.svg"))
	if err != nil {
		t.Fatalf("cache file not written: %v", err)
	}
	if string(data) != sampleSVG {
		t.Errorf("cache content = %q, want sample SVG", data)
	}
}
