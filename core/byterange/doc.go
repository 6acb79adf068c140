// Package byterange parses single-range HTTP Range headers (RFC 9110 §14.1.2)
// against a known resource length.
//
// Only the single-range forms "bytes=start-end", "bytes=start-", and the
// suffix form "bytes=-N" are supported. Multi-range headers, absent headers,
// and unknown range units all degrade to "no range": the caller serves the
// full resource, which is spec-compliant behavior for an unsupported range
// set.
//
//	rng, ok, err := byterange.Parse(r.Header.Get("Range"), uint64(info.Size()))
//	switch {
//	case errors.Is(err, byterange.ErrUnsatisfiable):
//		w.Header().Set("Content-Range", byterange.Unsatisfiable(uint64(info.Size())))
//		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
//	case err != nil:
//		// malformed header: serve the full resource or reject, caller's choice
//	case ok:
//		w.Header().Set("Content-Range", rng.ContentRange())
//		w.WriteHeader(http.StatusPartialContent)
//		// serve rng.Length() bytes starting at rng.Start
//	default:
//		// no range requested, serve everything
//	}
package byterange
