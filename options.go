package tapejson

// Option configures a Scan call. Each Option is a function that mutates
// the scanner's settings.
type Option func(*settings)

type settings struct {
	backend Backend
	checked bool
	reuse   *Document
}

// WithBackend forces a specific block-classifier Backend instead of the
// cpuid-driven BackendAuto default. Primarily useful for testing that the
// vector and scalar backends agree (see the "byte-identical tapes"
// invariant in the scanner's test suite).
func WithBackend(b Backend) Option {
	return func(s *settings) { s.backend = b }
}

// WithChecked enables checked-mode indexing: every offset computation the
// builder performs is additionally bounds-validated and panics instead of
// silently reading past the buffer. Intended for debug builds and the fuzz
// harness (FuzzScan always runs checked).
func WithChecked(checked bool) Option {
	return func(s *settings) { s.checked = checked }
}

// WithReuse supplies a previously-returned Document whose Tape backing
// array should be reused to reduce allocations. The supplied Document's
// contents are discarded; only its capacity is kept.
func WithReuse(d *Document) Option {
	return func(s *settings) { s.reuse = d }
}

func newSettings(opts ...Option) settings {
	s := settings{backend: BackendAuto}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
