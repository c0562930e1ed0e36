package svgmerge

import (
	"context"
	"os"
	"path/filepath"
)

// sourceResolver defines the contract for turning an element descriptor
// into raw SVG text.
type sourceResolver interface {
	// Resolve returns the element's SVG text, the name of the strategy that
	// produced it, and true - or false when no strategy produced usable
	// content. Resolution never fails hard.
	Resolve(ctx context.Context, el Element) (text, via string, ok bool)
}

// resolveStrategy is one way of obtaining an element's SVG text. Strategies
// return false to fall through silently to the next one.
type resolveStrategy struct {
	name    string
	resolve func(ctx context.Context, el Element) (string, bool)
}

// strategyResolver tries an ordered table of strategies until one succeeds.
// The table, rather than nested conditionals, keeps the order explicit and
// each strategy testable in isolation.
type strategyResolver struct {
	strategies []resolveStrategy
}

// newStrategyResolver builds the resolution chain:
// data URI, live remote fetch, local file, cached remote copy, inline
// content. First success wins; every failure falls through.
func newStrategyResolver(fetcher remoteFetcher, cacheDir, workDir string) *strategyResolver {
	r := &strategyResolver{}
	r.strategies = []resolveStrategy{
		{name: "data-uri", resolve: func(_ context.Context, el Element) (string, bool) {
			if el.URL == "" {
				return "", false
			}
			text, ok := decodeDataURI(el.URL)
			if !ok || !hasSVGRoot(text) {
				return "", false
			}
			return text, true
		}},
		{name: "remote", resolve: func(ctx context.Context, el Element) (string, bool) {
			if !isHTTPURL(el.URL) {
				return "", false
			}
			text, err := fetcher.Fetch(ctx, el.URL)
			if err != nil || !hasSVGRoot(text) {
				return "", false
			}
			return text, true
		}},
		{name: "file", resolve: func(_ context.Context, el Element) (string, bool) {
			if el.File == "" {
				return "", false
			}
			path := el.File
			if !filepath.IsAbs(path) {
				path = filepath.Join(workDir, path)
			}
			data, err := os.ReadFile(path) // #nosec G304 -- element file path is user-provided
			if err != nil || !hasSVGRoot(string(data)) {
				return "", false
			}
			return string(data), true
		}},
		{name: "cache", resolve: func(_ context.Context, el Element) (string, bool) {
			if !isHTTPURL(el.URL) {
				return "", false
			}
			return readCached(cacheDir, el.URL)
		}},
		{name: "inline", resolve: func(_ context.Context, el Element) (string, bool) {
			if el.Content == "" {
				return "", false
			}
			if decoded, ok := decodeBase64(el.Content); ok && hasSVGRoot(decoded) {
				return decoded, true
			}
			if hasSVGRoot(el.Content) {
				return el.Content, true
			}
			return "", false
		}},
	}
	return r
}

func (r *strategyResolver) Resolve(ctx context.Context, el Element) (string, string, bool) {
	for _, st := range r.strategies {
		if text, ok := st.resolve(ctx, el); ok {
			return text, st.name, true
		}
	}
	return "", "", false
}
