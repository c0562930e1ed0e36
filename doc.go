// Package svgmerge composes independent SVG fragments onto a single
// background canvas, producing one merged SVG document.
//
// # Quick Start
//
// Create a service, load a layout, and merge:
//
//	svc := svgmerge.New()
//
//	layout, err := svgmerge.LoadLayout("layout.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := svc.Merge(ctx, layout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("merged.svg", []byte(result.Document), 0644)
//
// The result contains the merged document (result.Document) plus one warning
// line per element that could not be resolved (result.Warnings). Skipped
// elements are never fatal: a single bad or unreachable asset must not break
// the whole composite.
//
// # Merge Pipeline
//
// Each element goes through these stages, strictly in layout order:
//
//  1. Source resolution (data URI, remote fetch, local file, cached fetch,
//     inline content - first strategy that succeeds wins)
//  2. Root tag parsing (viewBox, width, height, preserveAspectRatio, and the
//     inner markup preserved byte for byte)
//  3. Animation sanitizing (drops zero-duration overrides injected by some
//     generators to force static previews)
//  4. Geometry resolution (placement and an effective viewBox that keeps the
//     fragment's own coordinate system, and with it any animation, intact)
//  5. Compositing as a nested sub-document on the background canvas
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := svgmerge.New(
//	    svgmerge.WithFetchTimeout(12 * time.Second),
//	    svgmerge.WithCacheDir("/var/cache/svgmerge"),
//	    svgmerge.WithWorkDir("/srv/layouts"),
//	)
//
// # Prefetching
//
// Remote references can be fetched ahead of time into the cache directory:
//
//	fetched, err := svc.Prefetch(ctx, layout)
//
// Cache files are named by the SHA-1 of the remote reference and are consumed
// read-only during a merge, as a fallback when the live fetch fails.
package svgmerge
