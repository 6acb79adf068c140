package byterange

import (
	"fmt"
	"strconv"
	"strings"
)

const unitPrefix = "bytes="

// Range is a validated inclusive byte interval within a resource.
// Invariant: Start <= End < Size.
type Range struct {
	// Start is the first byte offset, zero-based.
	Start uint64
	// End is the last byte offset, inclusive.
	End uint64
	// Size is the total resource length the range was validated against.
	Size uint64
}

// Length returns the number of bytes the range covers.
func (r Range) Length() uint64 {
	return r.End - r.Start + 1
}

// ContentRange returns the Content-Range header value for a 206 response,
// e.g. "bytes 0-99/1000".
func (r Range) ContentRange() string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, r.Size)
}

// Unsatisfiable returns the Content-Range header value for a 416 response,
// e.g. "bytes */1000".
func Unsatisfiable(size uint64) string {
	return fmt.Sprintf("bytes */%d", size)
}

// Parse parses a Range header value against the resource length.
//
// The returned bool reports whether a range was selected. It is false with a
// nil error when the header is absent, uses a unit other than "bytes", or
// lists multiple ranges; the caller then serves the full resource.
//
// Errors distinguish syntax from bounds: ErrMalformed for invalid syntax,
// a start after the end, or a zero-length suffix; ErrUnsatisfiable for a
// well-formed range outside the resource, including any range against an
// empty resource.
func Parse(header string, size uint64) (Range, bool, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Range{}, false, nil
	}

	spec, found := strings.CutPrefix(header, unitPrefix)
	if !found {
		// Unknown range unit: ignore rather than error, per RFC 9110.
		return Range{}, false, nil
	}
	if strings.Contains(spec, ",") {
		// Multi-range is unsupported; fall back to the full resource.
		return Range{}, false, nil
	}

	startStr, endStr, found := strings.Cut(strings.TrimSpace(spec), "-")
	if !found {
		return Range{}, false, fmt.Errorf("%w: %q", ErrMalformed, header)
	}

	if startStr == "" {
		return parseSuffix(header, endStr, size)
	}

	start, err := strconv.ParseUint(startStr, 10, 64)
	if err != nil {
		return Range{}, false, fmt.Errorf("%w: %q", ErrMalformed, header)
	}

	end := uint64(0)
	hasEnd := endStr != ""
	if hasEnd {
		end, err = strconv.ParseUint(endStr, 10, 64)
		if err != nil {
			return Range{}, false, fmt.Errorf("%w: %q", ErrMalformed, header)
		}
		if start > end {
			return Range{}, false, fmt.Errorf("%w: %q", ErrMalformed, header)
		}
	}

	if size == 0 || start >= size {
		return Range{}, false, fmt.Errorf("%w: %q against %d bytes", ErrUnsatisfiable, header, size)
	}
	if !hasEnd || end > size-1 {
		end = size - 1
	}

	return Range{Start: start, End: end, Size: size}, true, nil
}

// parseSuffix handles the "bytes=-N" form selecting the final N bytes.
func parseSuffix(header, suffixStr string, size uint64) (Range, bool, error) {
	n, err := strconv.ParseUint(suffixStr, 10, 64)
	if err != nil || n == 0 {
		return Range{}, false, fmt.Errorf("%w: %q", ErrMalformed, header)
	}
	if size == 0 {
		return Range{}, false, fmt.Errorf("%w: %q against 0 bytes", ErrUnsatisfiable, header)
	}

	start := uint64(0)
	if n < size {
		start = size - n
	}

	return Range{Start: start, End: size - 1, Size: size}, true, nil
}
