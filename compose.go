package svgmerge

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// renderedFragment pairs a fragment's resolved geometry with its inner
// markup, ready for embedding.
type renderedFragment struct {
	placement placement
	inner     string
}

// composeDocument assembles the final SVG: one root sized to the canvas,
// the background rectangle first, then one nested sub-document per fragment
// in input order. Inner markup is embedded unmodified.
func composeDocument(canvas Canvas, frags []renderedFragment) string {
	w := roundedDimension(canvas.Width, DefaultCanvasWidth)
	h := roundedDimension(canvas.Height, DefaultCanvasHeight)
	fill := backgroundFill(canvas)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, h, w, h)
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", w, h, fill)
	for _, f := range frags {
		p := f.placement
		fmt.Fprintf(&b, `  <svg x="%s" y="%s" width="%s" height="%s" viewBox="%s"`,
			formatNumber(p.X), formatNumber(p.Y), formatNumber(p.Width), formatNumber(p.Height), p.ViewBox)
		if p.PreserveAspectRatio != "" {
			fmt.Fprintf(&b, ` preserveAspectRatio="%s"`, p.PreserveAspectRatio)
		}
		b.WriteString(">")
		b.WriteString(f.inner)
		b.WriteString("</svg>\n")
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// roundedDimension rounds a canvas dimension to whole pixels, substituting
// the default when the layout leaves it unset.
func roundedDimension(v, fallback float64) int {
	if v <= 0 {
		return int(fallback)
	}
	return int(math.Round(v))
}

// backgroundFill renders the background color. With a transparency fraction
// the hex color becomes an alpha-blended rgba() value; an unparseable color
// falls back to white at the requested alpha.
func backgroundFill(canvas Canvas) string {
	color := canvas.BackgroundColor
	if color == "" {
		color = DefaultBackgroundColor
	}
	if canvas.Transparency == nil {
		return color
	}

	alpha := math.Min(math.Max(*canvas.Transparency, 0), 1)
	r, g, b, ok := parseHexColor(color)
	if !ok {
		r, g, b = 255, 255, 255
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatNumber(alpha))
}

// parseHexColor parses #rgb and #rrggbb notations into an RGB triplet.
func parseHexColor(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
