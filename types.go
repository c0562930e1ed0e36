package svgmerge

import (
	"fmt"
	"net/http"
	"time"
)

// Canvas defaults, in pixels.
const (
	DefaultCanvasWidth  = 800.0
	DefaultCanvasHeight = 200.0
)

// DefaultBackgroundColor is used when the canvas declares no color.
const DefaultBackgroundColor = "#ffffff"

// Layout is the top-level descriptor consumed by Merge. Element order is
// paint order: later elements are drawn on top.
type Layout struct {
	Canvas   Canvas    `json:"canvas" yaml:"canvas"`
	Elements []Element `json:"elements" yaml:"elements"`
}

// Canvas configures the outer document dimensions and background.
type Canvas struct {
	Width           float64  `json:"width" yaml:"width"`
	Height          float64  `json:"height" yaml:"height"`
	BackgroundColor string   `json:"backgroundColor" yaml:"backgroundColor"`
	Transparency    *float64 `json:"transparency,omitempty" yaml:"transparency,omitempty"`
}

// Element describes one fragment: where its SVG comes from and where it
// lands on the canvas. URL, File, and Content are alternative sources; the
// resolver tries them in a fixed order and the first success wins.
type Element struct {
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	URL     string   `json:"url,omitempty" yaml:"url,omitempty"`
	File    string   `json:"file,omitempty" yaml:"file,omitempty"`
	Content string   `json:"content,omitempty" yaml:"content,omitempty"`
	X       float64  `json:"x" yaml:"x"`
	Y       float64  `json:"y" yaml:"y"`
	Width   *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height  *float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

// Label returns the element's name for diagnostics, falling back to its
// index in the layout.
func (e Element) Label(index int) string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("element %d", index)
}

// Validate checks layout values that would produce a nonsensical document.
// Resolution failures are not validation errors; they surface later as
// per-element warnings.
func (l *Layout) Validate() error {
	if l.Canvas.Width < 0 || l.Canvas.Height < 0 {
		return fmt.Errorf("%w: %.0fx%.0f", ErrInvalidCanvasSize, l.Canvas.Width, l.Canvas.Height)
	}
	if t := l.Canvas.Transparency; t != nil && (*t < 0 || *t > 1) {
		return fmt.Errorf("%w: %v (must be between 0 and 1)", ErrInvalidTransparency, *t)
	}
	if len(l.Elements) == 0 {
		return ErrEmptyLayout
	}
	return nil
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	fetchTimeout time.Duration
	cacheDir     string
	workDir      string
	httpClient   *http.Client
	logf         func(format string, args ...any)
}

// defaultFetchTimeout bounds each element's remote fetch. A timeout falls
// through to the next resolution strategy; it never aborts the run.
const defaultFetchTimeout = 10 * time.Second

// DefaultCacheDir is the cache location used when none is configured.
const DefaultCacheDir = "svg-cache"

// WithFetchTimeout sets the per-element remote fetch timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithFetchTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("svgmerge: WithFetchTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.fetchTimeout = d
	}
}

// WithCacheDir sets the directory holding prefetched remote content.
func WithCacheDir(dir string) Option {
	return func(s *Service) {
		s.cfg.cacheDir = dir
	}
}

// WithWorkDir sets the directory local file references are resolved against.
// Defaults to the process working directory.
func WithWorkDir(dir string) Option {
	return func(s *Service) {
		s.cfg.workDir = dir
	}
}

// WithHTTPClient replaces the HTTP client used for remote fetches.
// Mainly useful for tests and for callers with proxy requirements.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) {
		s.cfg.httpClient = c
	}
}

// WithLogger sets the diagnostics sink. The default writes to stderr.
// Pass a no-op function to silence progress and warning lines.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(s *Service) {
		s.cfg.logf = logf
	}
}
