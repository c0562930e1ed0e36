package svgmerge

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

// svgRootMarker is the cheap validity probe used by the source resolver:
// resolved text only counts as SVG when it contains a root open tag.
const svgRootMarker = "<svg"

// hasSVGRoot reports whether text looks like an SVG document.
func hasSVGRoot(text string) bool {
	return strings.Contains(text, svgRootMarker)
}

// fragment is a parsed SVG source: the root tag's attributes and the inner
// markup between the root open and close tags, preserved byte for byte.
// Constructed per element and discarded after compositing.
type fragment struct {
	Attrs map[string]string
	Inner string
}

// parseSVG locates the root <svg> tag and splits the document into root
// attributes and inner markup. A missing root is the only hard error;
// a missing close tag degrades to treating the rest of the document as
// inner content.
//
// The root tag is scanned with encoding/xml rather than regexes so that
// quoted '>' characters, irregular whitespace, and namespaced attributes
// are handled correctly. Inner markup is sliced out of the raw text, not
// re-serialized, so defs, styles, and keyframes pass through untouched.
func parseSVG(raw string) (*fragment, error) {
	raw = strings.TrimPrefix(raw, "\ufeff")
	raw = normalizeCharset(raw)

	dec := xml.NewDecoder(strings.NewReader(raw))
	dec.Strict = false
	// The document is UTF-8 after normalizeCharset; the prolog may still
	// carry the original label, so the decoder must not transcode again.
	// Keeping the stream untouched keeps InputOffset aligned with raw.
	dec.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }

	var root xml.StartElement
	found := false
	for !found {
		tok, err := dec.Token()
		if err != nil {
			// EOF or a syntax error before any root tag: no usable root.
			return nil, fmt.Errorf("%w: %v", ErrMalformedSVG, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			if start.Name.Local != "svg" {
				return nil, fmt.Errorf("%w: root element is <%s>", ErrMalformedSVG, start.Name.Local)
			}
			root = start
			found = true
		}
	}
	openEnd := int(dec.InputOffset())

	// Duplicated attributes: last occurrence wins. Documented edge case,
	// not corrected.
	attrs := make(map[string]string, len(root.Attr))
	for _, a := range root.Attr {
		attrs[attrName(a.Name)] = a.Value
	}

	// A self-closing root yields an immediate EndElement at the same offset.
	if tok, err := dec.Token(); err == nil {
		if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "svg" && int(dec.InputOffset()) == openEnd {
			return &fragment{Attrs: attrs, Inner: ""}, nil
		}
	}

	rest := raw[openEnd:]
	if idx := strings.LastIndex(rest, "</svg"); idx >= 0 {
		rest = rest[:idx]
	}
	return &fragment{Attrs: attrs, Inner: rest}, nil
}

// prologEncodingRE pulls the encoding label out of an XML prolog.
var prologEncodingRE = regexp.MustCompile(`(?i)<\?xml[^>]*\bencoding=["']([^"']+)["']`)

// normalizeCharset transcodes a document whose prolog declares a non-UTF-8
// encoding. Transcoding happens before tokenizing so that decoder offsets
// index into the same string the inner markup is sliced from; a document
// with an unknown label is left as-is and parsed on a best-effort basis.
func normalizeCharset(raw string) string {
	head := raw
	if len(head) > 256 {
		head = head[:256]
	}
	m := prologEncodingRE.FindStringSubmatch(head)
	if m == nil || strings.EqualFold(m[1], "utf-8") {
		return raw
	}
	r, err := charset.NewReaderLabel(m[1], strings.NewReader(raw))
	if err != nil {
		return raw
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return raw
	}
	return string(decoded)
}

// attrName rebuilds a readable attribute name from encoding/xml's resolved
// form. Namespace prefixes on root attributes (xmlns:xlink, xml:space) are
// preserved so they can be re-emitted verbatim.
func attrName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case "xmlns", "http://www.w3.org/2000/xmlns/":
		return "xmlns:" + n.Local
	case "xml", "http://www.w3.org/XML/1998/namespace":
		return "xml:" + n.Local
	case "http://www.w3.org/1999/xlink":
		return "xlink:" + n.Local
	}
	return n.Space + ":" + n.Local
}
