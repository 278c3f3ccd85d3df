package region

import "errors"

// Sentinel errors for the similarity engine's four error kinds. Wrap with
// fmt.Errorf("...: %w", Err...) to attach context; callers distinguish
// kinds with errors.Is.
var (
	// ErrConfig marks a missing or out-of-range threshold, or a
	// signature length not evenly divisible by the band count. Fatal.
	ErrConfig = errors.New("region: configuration error")

	// ErrIO marks a file that could not be read while extracting the
	// original text for a region's code_a/code_b fields. Not classified
	// fatal (IsFatal reports false), but Detect returns it without any
	// regions or result.
	ErrIO = errors.New("region: io error")

	// ErrNormalization marks a per-file normalization failure. The
	// offending file is skipped; the run continues.
	ErrNormalization = errors.New("region: normalization warning")

	// ErrInvariant marks a violated internal invariant (signature
	// length mismatch, dangling prev/next id). Indicates a bug. Fatal.
	ErrInvariant = errors.New("region: invariant violation")
)

// fatalError wraps an error that must abort the run rather than degrade
// gracefully; it implements Fataler.
type fatalError struct {
	err error
}

func (f *fatalError) Error() string { return f.err.Error() }
func (f *fatalError) Unwrap() error { return f.err }
func (f *fatalError) Fatal() bool   { return true }

// Fatal wraps err so that errors.As(err, &Fataler) reports true. Used for
// ErrConfig and ErrInvariant occurrences.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &fatalError{err: err}
}

// Fataler is implemented by errors that carry fatal/non-fatal
// classification, so callers can decide exit behavior without matching
// on error text.
type Fataler interface {
	Fatal() bool
}

// IsFatal reports whether err (or any error it wraps) is classified as
// fatal. Unclassified errors are treated as non-fatal.
func IsFatal(err error) bool {
	var f Fataler
	if errors.As(err, &f) {
		return f.Fatal()
	}
	return false
}
