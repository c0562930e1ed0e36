package svgmerge

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/alnah/go-svgmerge/internal/fileutil"
)

// Service orchestrates the merge pipeline.
type Service struct {
	cfg      serviceConfig
	fetcher  remoteFetcher
	resolver sourceResolver
}

// Result holds the outcome of a merge.
type Result struct {
	Document string   // the merged SVG document
	Rendered int      // elements that made it into the document
	Warnings []string // one line per skipped element
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithFetchTimeout, WithCacheDir).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			fetchTimeout: defaultFetchTimeout,
			cacheDir:     DefaultCacheDir,
			logf: func(format string, args ...any) {
				fmt.Fprintf(os.Stderr, format, args...)
			},
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.httpClient == nil {
		s.cfg.httpClient = &http.Client{}
	}

	// Create pipeline collaborators if not injected (e.g., by tests)
	if s.fetcher == nil {
		s.fetcher = &httpFetcher{client: s.cfg.httpClient, timeout: s.cfg.fetchTimeout}
	}
	if s.resolver == nil {
		s.resolver = newStrategyResolver(s.fetcher, s.cfg.cacheDir, s.cfg.workDir)
	}

	return s
}

// Merge runs the full pipeline over a layout and returns the merged
// document. Per-element failures (unresolvable source, malformed root)
// become warnings and the element is omitted; they never fail the merge.
// The context bounds each element's remote fetch.
func (s *Service) Merge(ctx context.Context, layout *Layout) (*Result, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}
	frags := make([]renderedFragment, 0, len(layout.Elements))
	for i, el := range layout.Elements {
		text, via, ok := s.resolver.Resolve(ctx, el)
		if !ok {
			s.warn(result, "%s: no resolvable source, skipping", el.Label(i))
			continue
		}

		frag, err := parseSVG(text)
		if err != nil {
			s.warn(result, "%s: %v, skipping", el.Label(i), err)
			continue
		}

		s.cfg.logf("resolved %s via %s\n", el.Label(i), via)
		frags = append(frags, renderedFragment{
			placement: resolveGeometry(frag.Attrs, el),
			inner:     sanitizeAnimations(frag.Inner),
		})
	}

	result.Document = composeDocument(layout.Canvas, frags)
	result.Rendered = len(frags)
	return result, nil
}

// MergeFile loads a layout file, merges it, and writes the document to
// outputPath, creating parent directories as needed and overwriting any
// previous output.
func (s *Service) MergeFile(ctx context.Context, layoutPath, outputPath string) (*Result, error) {
	layout, err := LoadLayout(layoutPath)
	if err != nil {
		return nil, err
	}

	result, err := s.Merge(ctx, layout)
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFile(outputPath, []byte(result.Document)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return result, nil
}

// warn records a per-element warning and mirrors it to the diagnostics sink.
func (s *Service) warn(result *Result, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	result.Warnings = append(result.Warnings, line)
	s.cfg.logf("warning: %s\n", line)
}
