// Package mimetype determines a content type from a file path and an
// optional byte prefix, without touching the filesystem.
//
// Detection runs an ordered list of strategies and returns the first
// confident match:
//
//  1. Extension — static extension→type lookup, cheapest and usually right.
//  2. Sniff — magic-byte signatures, catches mislabeled or extensionless
//     binary files.
//  3. Text — valid UTF-8 without NUL bytes classifies as
//     "text/plain; charset=utf-8".
//
// Anything else falls back to "application/octet-stream".
//
//	detector := mimetype.New()
//	mt := detector.Detect("logo", pngHeader)
//	// mt.Value == "image/png", mt.Source == mimetype.SourceSniff
//
// Strategies can be disabled or reordered without touching the dispatch
// logic:
//
//	detector := mimetype.New(
//		mimetype.WithStrategies(mimetype.Sniff{}, mimetype.Text{}),
//		mimetype.WithSampleSize(1024),
//	)
package mimetype
