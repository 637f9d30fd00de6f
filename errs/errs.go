// Package errs defines the error kinds surfaced by the gridxform numerical
// core. None of these are swallowed internally; every public slice request
// either returns a value or an error wrapping one of these sentinels.
package errs

import (
	"errors"
	"fmt"
)

// Kind categorizes a core error for callers that want to branch on it with
// errors.Is, e.g. `errors.Is(err, errs.DomainError)`.
type Kind error

var (
	// ConfigurationError signals a bad projection descriptor or
	// internally-inconsistent axis/grid construction.
	ConfigurationError Kind = errors.New("configuration error")
	// MissingInput signals a referenced variable or field is absent.
	MissingInput Kind = errors.New("missing input")
	// ShapeMismatch signals a slice shape inconsistent with a declared shape.
	ShapeMismatch Kind = errors.New("shape mismatch")
	// DomainError signals a non-recoverable numeric domain violation, e.g. a
	// non-positive argument to a log kernel.
	DomainError Kind = errors.New("domain error")
	// ProjectionFailure signals the underlying cartographic transform failed.
	ProjectionFailure Kind = errors.New("projection failure")
	// UnitConversionFailure signals incompatible or unparsable unit strings.
	UnitConversionFailure Kind = errors.New("unit conversion failure")
	// Cancelled signals a slice request was cancelled at a reader callback.
	Cancelled Kind = errors.New("cancelled")
	// Internal signals an assertion-style invariant was broken.
	Internal Kind = errors.New("internal error")
)

// Wrap annotates err with kind and msg so that errors.Is(result, kind) holds.
func Wrap(kind Kind, msg string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(msg, args...), kind)
}
