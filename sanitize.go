package svgmerge

import (
	"regexp"
	"strings"
)

// Precompiled patterns for zero-duration animation overrides. Some upstream
// generators inject these to force a static preview frame; left in place
// they freeze every animation in the merged document.
var (
	// Universal-selector rule whose body forces animation duration or
	// delay to zero, e.g. * { animation-duration: 0s !important; }.
	zeroAnimUniversalRule = regexp.MustCompile(`\*\s*\{[^{}]*animation-(?:duration|delay)\s*:\s*0(?:\.0+)?m?s[^{}]*\}`)

	// Standalone zero duration/delay declaration, wherever it appears.
	zeroAnimDeclaration = regexp.MustCompile(`animation-(?:duration|delay)\s*:\s*0(?:\.0+)?m?s[^;}<]*;?`)

	// Any animation shorthand declaration; zero-second detection on the
	// value list happens in hasZeroSecondToken. The property match cannot
	// hit longhands (animation-duration:) because of the trailing colon.
	animShorthand = regexp.MustCompile(`animation\s*:\s*[^;}<]*;?`)
)

// sanitizeAnimations strips CSS that forces animation duration or delay to
// zero, leaving all other CSS untouched. Pure text transform, idempotent;
// order matters: whole rules first, then longhand declarations, then
// shorthands with a zero-second token.
func sanitizeAnimations(markup string) string {
	markup = zeroAnimUniversalRule.ReplaceAllString(markup, "")
	markup = zeroAnimDeclaration.ReplaceAllString(markup, "")
	markup = animShorthand.ReplaceAllStringFunc(markup, func(decl string) string {
		if hasZeroSecondToken(decl) {
			return ""
		}
		return decl
	})
	return markup
}

// hasZeroSecondToken reports whether an animation shorthand value contains
// a zero time token (0s, 0ms, 0.0s, ...). Non-zero durations must survive.
func hasZeroSecondToken(decl string) bool {
	_, value, ok := strings.Cut(decl, ":")
	if !ok {
		return false
	}
	value = strings.TrimSuffix(strings.TrimSpace(value), ";")
	for _, tok := range strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	}) {
		if isZeroTime(tok) {
			return true
		}
	}
	return false
}

// isZeroTime reports whether tok is a CSS time literal equal to zero.
func isZeroTime(tok string) bool {
	tok = strings.ToLower(tok)
	switch {
	case strings.HasSuffix(tok, "ms"):
		tok = strings.TrimSuffix(tok, "ms")
	case strings.HasSuffix(tok, "s"):
		tok = strings.TrimSuffix(tok, "s")
	default:
		return false
	}
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r != '0' && r != '.' {
			return false
		}
	}
	return true
}
