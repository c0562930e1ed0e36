package svgmerge

import (
	"context"
	"crypto/sha1" // #nosec G505 -- cache key, not a security boundary
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-svgmerge/internal/fileutil"
)

// cacheKey derives the deterministic cache file stem for a remote
// reference. SHA-1 keeps keys stable across runs and hosts; this is a
// filename scheme, not a security boundary.
func cacheKey(ref string) string {
	sum := sha1.Sum([]byte(ref)) // #nosec G401
	return hex.EncodeToString(sum[:])
}

// cachePath returns the cache file location for a remote reference.
func cachePath(dir, ref string) string {
	return filepath.Join(dir, cacheKey(ref)+".svg")
}

// readCached returns the cached copy of a remote reference, if present and
// still recognizable as SVG. A missing or unreadable entry is a miss, not
// an error.
func readCached(dir, ref string) (string, bool) {
	data, err := os.ReadFile(cachePath(dir, ref)) // #nosec G304 -- path is hash-derived
	if err != nil {
		return "", false
	}
	text := string(data)
	if !hasSVGRoot(text) {
		return "", false
	}
	return text, true
}

// PrefetchResult reports the outcome of a prefetch pass.
type PrefetchResult struct {
	Fetched  []string // remote references written to the cache
	Warnings []string // one line per reference that could not be fetched
}

// Prefetch fetches every distinct remote reference in the layout and writes
// each body to the cache directory as <sha1(url)>.svg. Individual fetch
// failures become warnings; the pass continues. Prefetch is the only cache
// writer: Merge consumes the cache read-only, so an entry can serve stale
// content if the remote changed since the last prefetch.
func (s *Service) Prefetch(ctx context.Context, layout *Layout) (*PrefetchResult, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	result := &PrefetchResult{}
	seen := make(map[string]bool)
	for i, el := range layout.Elements {
		if el.URL == "" || !isHTTPURL(el.URL) || seen[el.URL] {
			continue
		}
		seen[el.URL] = true

		body, err := s.fetcher.Fetch(ctx, el.URL)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", el.Label(i), err))
			continue
		}
		if !hasSVGRoot(body) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s is not SVG", el.Label(i), el.URL))
			continue
		}

		path := cachePath(s.cfg.cacheDir, el.URL)
		if err := fileutil.WriteFile(path, []byte(body)); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: caching %s: %v", el.Label(i), el.URL, err))
			continue
		}
		result.Fetched = append(result.Fetched, el.URL)
	}

	for _, w := range result.Warnings {
		s.cfg.logf("warning: %s\n", w)
	}
	return result, nil
}
