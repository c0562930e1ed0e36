package svgmerge

// Notes:
// - resolveGeometry: viewBox precedence, size precedence, placement defaults
// - parseLength: unit suffix tolerance
// - formatNumber: whole-pixel rendering

import "testing"

func floatPtr(f float64) *float64 { return &f }

// ---------------------------------------------------------------------------
// TestResolveGeometry - Placement and Effective ViewBox
// ---------------------------------------------------------------------------

func TestResolveGeometry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attrs map[string]string
		el    Element
		want  placement
	}{
		{
			name:  "declared viewBox preserved verbatim including non-zero origin",
			attrs: map[string]string{"viewBox": "-5 -5 50 50", "width": "100", "height": "100"},
			el:    Element{X: 10, Y: 20, Width: floatPtr(200), Height: floatPtr(200)},
			want:  placement{X: 10, Y: 20, Width: 200, Height: 200, ViewBox: "-5 -5 50 50"},
		},
		{
			name:  "viewBox derived from intrinsic size",
			attrs: map[string]string{"width": "128", "height": "32"},
			el:    Element{},
			want:  placement{Width: 128, Height: 32, ViewBox: "0 0 128 32"},
		},
		{
			name:  "viewBox derived from target dimensions",
			attrs: map[string]string{},
			el:    Element{Width: floatPtr(64), Height: floatPtr(16)},
			want:  placement{Width: 64, Height: 16, ViewBox: "0 0 64 16"},
		},
		{
			name:  "lone intrinsic width mixed into derived viewBox",
			attrs: map[string]string{"width": "128"},
			el:    Element{},
			want:  placement{Width: 128, Height: 100, ViewBox: "0 0 128 100"},
		},
		{
			name:  "intrinsic height mixed with target width",
			attrs: map[string]string{"height": "32"},
			el:    Element{Width: floatPtr(64)},
			want:  placement{Width: 64, Height: 32, ViewBox: "0 0 64 32"},
		},
		{
			name:  "absolute fallback viewBox and size",
			attrs: map[string]string{},
			el:    Element{},
			want:  placement{Width: 100, Height: 100, ViewBox: "0 0 100 100"},
		},
		{
			name:  "target dimensions win over intrinsic size",
			attrs: map[string]string{"width": "10", "height": "10"},
			el:    Element{Width: floatPtr(40), Height: floatPtr(80)},
			want:  placement{Width: 40, Height: 80, ViewBox: "0 0 10 10"},
		},
		{
			name:  "unit suffixes tolerated on intrinsic size",
			attrs: map[string]string{"width": "24px", "height": "12px"},
			el:    Element{},
			want:  placement{Width: 24, Height: 12, ViewBox: "0 0 24 12"},
		},
		{
			name:  "preserveAspectRatio passed through verbatim",
			attrs: map[string]string{"viewBox": "0 0 4 4", "preserveAspectRatio": "xMidYMid meet"},
			el:    Element{},
			want:  placement{Width: 100, Height: 100, ViewBox: "0 0 4 4", PreserveAspectRatio: "xMidYMid meet"},
		},
		{
			name:  "position defaults to origin",
			attrs: map[string]string{"viewBox": "0 0 1 1"},
			el:    Element{Width: floatPtr(5), Height: floatPtr(5)},
			want:  placement{Width: 5, Height: 5, ViewBox: "0 0 1 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveGeometry(tt.attrs, tt.el)
			if got != tt.want {
				t.Errorf("resolveGeometry() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseLength - SVG Length Attributes
// ---------------------------------------------------------------------------

func TestParseLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"128", 128, true},
		{"128px", 128, true},
		{"12.5", 12.5, true},
		{" 64 ", 64, true},
		{"80%", 80, true},
		{"", 0, false},
		{"auto", 0, false},
		{"px", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, ok := parseLength(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("parseLength(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	if got := formatNumber(128); got != "128" {
		t.Errorf("formatNumber(128) = %q, want %q", got, "128")
	}
	if got := formatNumber(12.5); got != "12.5" {
		t.Errorf("formatNumber(12.5) = %q, want %q", got, "12.5")
	}
}
