package mimetype

// Strategy is one independent detection mechanism. It reports a concrete
// type and true on a confident match, or false to pass to the next strategy.
type Strategy interface {
	Detect(path string, sample []byte) (Type, bool)
}

// DefaultSampleSize bounds how many leading bytes strategies inspect.
const DefaultSampleSize = 512

// Detector runs an ordered list of strategies over a path and byte prefix.
// It is immutable after construction and safe for concurrent use.
type Detector struct {
	strategies []Strategy
	sampleSize int
}

// Option configures a Detector.
type Option func(*Detector)

// WithStrategies replaces the default strategy order. Passing a subset
// disables the omitted strategies.
func WithStrategies(strategies ...Strategy) Option {
	return func(d *Detector) {
		d.strategies = strategies
	}
}

// WithSampleSize bounds how many leading bytes of the sample are inspected.
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a Detector with all strategies enabled in the default order:
// extension lookup, magic-byte sniffing, UTF-8 heuristic.
func New(opts ...Option) *Detector {
	d := &Detector{
		strategies: []Strategy{Extension{}, Sniff{}, Text{}},
		sampleSize: DefaultSampleSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect determines the content type for path given an optional leading
// sample of its bytes. It never reads the filesystem; identical inputs
// always produce identical results.
func (d *Detector) Detect(path string, sample []byte) Type {
	if len(sample) > d.sampleSize {
		sample = sample[:d.sampleSize]
	}

	for _, s := range d.strategies {
		if t, ok := s.Detect(path, sample); ok {
			return t
		}
	}

	return Type{Value: Fallback, Source: SourceFallback}
}
