// Package errs defines the sentinel errors shared by the physchem engines.
//
// Engines wrap these sentinels with fmt.Errorf("%w: ...", ...) to name the
// offending quantity or condition, so callers can classify a failure with
// errors.Is while still receiving a descriptive message.
package errs

import "errors"

var (
	// ErrMissingParameter indicates a quantity required by the selected
	// calculation mode was not supplied.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidParameter indicates a supplied quantity violates its domain
	// constraint, such as a non-positive path length, a negative absorbance,
	// or a non-positive temperature or equilibrium constant.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNonPhysicalResult indicates a derived quantity fell outside physical
	// bounds, such as a computed temperature at or below 0 K.
	ErrNonPhysicalResult = errors.New("non-physical result")

	// ErrInsufficientData indicates a regression over fewer than two points.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateInput indicates a regression input whose x values are all
	// identical, leaving the slope undefined.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrUnknownMode indicates an unrecognized calculation mode tag.
	ErrUnknownMode = errors.New("unknown calculation mode")
)
