package svgmerge

// Notes:
// - parseSVG: root tag location, attribute extraction, inner markup slicing
// - attrName: namespace prefix reconstruction for root attributes
// - hasSVGRoot: the resolver's cheap validity probe

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseSVG - Root Tag Parsing
// ---------------------------------------------------------------------------

func TestParseSVG(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantAttrs map[string]string
		wantInner string
	}{
		{
			name:      "minimal document",
			input:     `<svg viewBox="0 0 10 10"><rect width="10" height="10"/></svg>`,
			wantAttrs: map[string]string{"viewBox": "0 0 10 10"},
			wantInner: `<rect width="10" height="10"/>`,
		},
		{
			name:  "xml prolog stripped before scanning",
			input: `<?xml version="1.0" encoding="UTF-8"?><svg width="5" height="5"><g/></svg>`,
			wantAttrs: map[string]string{
				"width":  "5",
				"height": "5",
			},
			wantInner: `<g/>`,
		},
		{
			name:      "BOM tolerated",
			input:     "\ufeff<svg viewBox=\"0 0 1 1\"></svg>",
			wantAttrs: map[string]string{"viewBox": "0 0 1 1"},
			wantInner: "",
		},
		{
			name:      "non-utf8 prolog transcoded before slicing",
			input:     "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg width=\"2\"><text>caf\xe9</text></svg>",
			wantAttrs: map[string]string{"width": "2"},
			wantInner: "<text>café</text>",
		},
		{
			name:      "leading comment tolerated",
			input:     `<!-- generated --><svg width="4"><path d="M0 0"/></svg>`,
			wantAttrs: map[string]string{"width": "4"},
			wantInner: `<path d="M0 0"/>`,
		},
		{
			name:  "namespaced attributes preserved",
			input: `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 2 2"></svg>`,
			wantAttrs: map[string]string{
				"xmlns":       "http://www.w3.org/2000/svg",
				"xmlns:xlink": "http://www.w3.org/1999/xlink",
				"viewBox":     "0 0 2 2",
			},
			wantInner: "",
		},
		{
			name:      "quoted angle bracket inside attribute value",
			input:     `<svg data-title="a > b" width="3"><text>hi</text></svg>`,
			wantAttrs: map[string]string{"data-title": "a > b", "width": "3"},
			wantInner: `<text>hi</text>`,
		},
		{
			name:      "missing close tag degrades to rest of document",
			input:     `<svg width="9"><circle r="4"/>`,
			wantAttrs: map[string]string{"width": "9"},
			wantInner: `<circle r="4"/>`,
		},
		{
			name:      "self closing root has empty inner markup",
			input:     `<svg width="7"/>`,
			wantAttrs: map[string]string{"width": "7"},
			wantInner: "",
		},
		{
			name:      "duplicate attribute last occurrence wins",
			input:     `<svg width="1" width="2"></svg>`,
			wantAttrs: map[string]string{"width": "2"},
			wantInner: "",
		},
		{
			name: "inner markup preserved byte for byte",
			input: `<svg viewBox="0 0 8 8"><defs><style>
.a { fill: red; }
@keyframes spin { to { transform: rotate(360deg); } }
</style></defs><g class="a"><rect/></g></svg>`,
			wantAttrs: map[string]string{"viewBox": "0 0 8 8"},
			wantInner: `<defs><style>
.a { fill: red; }
@keyframes spin { to { transform: rotate(360deg); } }
</style></defs><g class="a"><rect/></g>`,
		},
		{
			name:      "nested svg close tags belong to inner markup",
			input:     `<svg width="6"><svg x="1"><rect/></svg></svg>`,
			wantAttrs: map[string]string{"width": "6"},
			wantInner: `<svg x="1"><rect/></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			frag, err := parseSVG(tt.input)
			if err != nil {
				t.Fatalf("parseSVG() error = %v", err)
			}
			if frag.Inner != tt.wantInner {
				t.Errorf("inner = %q, want %q", frag.Inner, tt.wantInner)
			}
			for k, want := range tt.wantAttrs {
				if got := frag.Attrs[k]; got != want {
					t.Errorf("attr %q = %q, want %q", k, got, want)
				}
			}
		})
	}
}

func TestParseSVGMissingRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "plain text", input: "not an svg at all"},
		{name: "different root element", input: `<html><body/></html>`},
		{name: "prolog only", input: `<?xml version="1.0"?>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseSVG(tt.input)
			if !errors.Is(err, ErrMalformedSVG) {
				t.Errorf("parseSVG(%q) error = %v, want ErrMalformedSVG", tt.input, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHasSVGRoot - Validity Probe
// ---------------------------------------------------------------------------

func TestHasSVGRoot(t *testing.T) {
	t.Parallel()

	if !hasSVGRoot(`<?xml version="1.0"?><svg/>`) {
		t.Error("expected prologed document to count as SVG")
	}
	if hasSVGRoot("<html></html>") {
		t.Error("expected non-SVG markup to be rejected")
	}
	if hasSVGRoot(strings.Repeat("x", 64)) {
		t.Error("expected plain text to be rejected")
	}
}
