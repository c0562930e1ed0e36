package svgmerge

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxFetchBody caps a remote response body to keep a hostile or
// misconfigured server from exhausting memory.
const maxFetchBody = 8 << 20 // 8MB

// remoteFetcher defines the contract for fetching a remote reference.
type remoteFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// httpFetcher fetches over HTTP(S) with a bounded per-request timeout.
// Redirects are followed (http.Client default). A timeout or non-2xx
// status is an ordinary strategy failure, not an exceptional path.
type httpFetcher struct {
	client  *http.Client
	timeout time.Duration
}

func (f *httpFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: status %s", rawURL, resp.Status)
	}

	// Read one byte past the cap so an over-limit body is rejected rather
	// than silently truncated into the composite.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBody+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", rawURL, err)
	}
	if len(body) > maxFetchBody {
		return "", fmt.Errorf("fetching %s: body exceeds %d bytes", rawURL, maxFetchBody)
	}
	return string(body), nil
}

// decodeDataURI decodes a data: URI payload, handling both base64 and
// percent-encoded forms. Returns false when the URI cannot be decoded.
func decodeDataURI(uri string) (string, bool) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", false
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", false
	}
	if strings.Contains(meta, ";base64") {
		return decodeBase64(payload)
	}
	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return "", false
	}
	return decoded, true
}

// decodeBase64 tries the standard and URL-safe alphabets, padded and raw.
// Inline content in the wild mixes all four.
func decodeBase64(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.RawURLEncoding,
	} {
		if b, err := enc.DecodeString(s); err == nil {
			return string(b), true
		}
	}
	return "", false
}

// isHTTPURL reports whether s is an http:// or https:// reference.
// Any other scheme in the remote slot is a non-fatal skip.
func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
