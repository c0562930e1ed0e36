package svgmerge

import (
	"fmt"
	"strconv"
	"strings"
)

// fallbackSize is the absolute last resort for fragments that declare no
// geometry at all and have no target dimensions either.
const fallbackSize = 100.0

// placement is the resolved geometry for one fragment: where it goes on the
// canvas and which coordinate system its inner markup runs in.
type placement struct {
	X, Y                float64
	Width, Height       float64
	ViewBox             string
	PreserveAspectRatio string
}

// resolveGeometry computes target placement and the effective viewBox for a
// fragment. A declared viewBox is preserved verbatim (including a non-zero
// origin): the fragment keeps its own coordinate system, which is what keeps
// coordinate-relative animations correct. Sizing happens through the nested
// sub-document's width/height, never through a scale() transform, because
// some animation systems compute relative to the element's own coordinate
// box and a wrapping scale would shift that.
func resolveGeometry(attrs map[string]string, el Element) placement {
	intrinsicW, hasW := parseLength(attrs["width"])
	intrinsicH, hasH := parseLength(attrs["height"])

	p := placement{
		X:                   el.X,
		Y:                   el.Y,
		PreserveAspectRatio: attrs["preserveAspectRatio"],
	}

	// Effective width/height: layout target first, then the fragment's own
	// intrinsic size, then the fixed fallback.
	switch {
	case el.Width != nil:
		p.Width = *el.Width
	case hasW:
		p.Width = intrinsicW
	default:
		p.Width = fallbackSize
	}
	switch {
	case el.Height != nil:
		p.Height = *el.Height
	case hasH:
		p.Height = intrinsicH
	default:
		p.Height = fallbackSize
	}

	// Effective viewBox: declared verbatim, else derived per axis from the
	// intrinsic size, then the target dimension, then the fixed fallback.
	// Resolving each axis independently keeps a lone width="..." (or
	// height="...") in play instead of discarding it.
	if strings.TrimSpace(attrs["viewBox"]) != "" {
		p.ViewBox = attrs["viewBox"]
	} else {
		vw, vh := fallbackSize, fallbackSize
		switch {
		case hasW:
			vw = intrinsicW
		case el.Width != nil:
			vw = *el.Width
		}
		switch {
		case hasH:
			vh = intrinsicH
		case el.Height != nil:
			vh = *el.Height
		}
		p.ViewBox = fmt.Sprintf("0 0 %s %s", formatNumber(vw), formatNumber(vh))
	}

	return p
}

// parseLength parses an SVG length attribute, tolerating a unit suffix
// (px, pt, %, em, ...). Returns false for empty or non-numeric values.
func parseLength(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	end := len(v)
	for end > 0 {
		r := v[end-1]
		if (r >= '0' && r <= '9') || r == '.' {
			break
		}
		end--
	}
	if end == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(v[:end], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// formatNumber renders a float without a trailing ".0" so that whole-pixel
// values stay whole in the output document.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
