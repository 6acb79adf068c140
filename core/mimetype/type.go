package mimetype

// Source identifies which strategy produced a detected type. It is
// diagnostic metadata and deliberately excluded from equality.
type Source string

const (
	// SourceExtension means the type came from the extension table.
	SourceExtension Source = "extension"
	// SourceSniff means the type came from a magic-byte signature.
	SourceSniff Source = "sniff"
	// SourceHeuristic means the type came from the UTF-8 text heuristic.
	SourceHeuristic Source = "heuristic"
	// SourceFallback means no strategy matched.
	SourceFallback Source = "fallback"
)

// Fallback is the type returned when no strategy produces a match.
const Fallback = "application/octet-stream"

// Type is a detected content type of the form "type/subtype[; charset=...]".
type Type struct {
	// Value is the media type string, safe to place in a Content-Type header.
	Value string
	// Source records the strategy that produced the value.
	Source Source
}

// Equal compares two types by value, ignoring the detection source.
func (t Type) Equal(other Type) bool {
	return t.Value == other.Value
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return t.Value
}
