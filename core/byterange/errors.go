package byterange

import "errors"

var (
	// ErrMalformed is returned for a syntactically invalid bytes range.
	// Callers may either ignore the header and serve the full resource or
	// reject the request; both are acceptable.
	ErrMalformed = errors.New("malformed range header")
	// ErrUnsatisfiable is returned for a syntactically valid range that lies
	// outside the resource. Callers must answer with 416 and the total
	// resource length.
	ErrUnsatisfiable = errors.New("range not satisfiable")
)
