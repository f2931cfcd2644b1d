package beerlambert

import (
	"fmt"

	"github.com/lumoslab/physchem/errs"
	"github.com/lumoslab/physchem/internal/options"
)

// Solve computes the quantity selected by mode from the known quantities
// supplied through opts.
//
// Required inputs per mode:
//   - ModeAbsorbance: ε, l, c
//   - ModeConcentration: A, ε, l
//   - ModeEpsilon: A, l, c
//   - ModePathLength: A, ε, c
//
// Presence is validated before domain constraints: a missing quantity fails
// with errs.ErrMissingParameter naming the quantity; a supplied quantity that
// violates its constraint (ε, l, c strictly positive; A non-negative) fails
// with errs.ErrInvalidParameter. All inversions are exact algebra, so a valid
// request never produces NaN or Inf.
//
// Example:
//
//	a, err := beerlambert.Solve(beerlambert.ModeAbsorbance,
//	    beerlambert.WithEpsilon(55000),
//	    beerlambert.WithPathLength(1.0),
//	    beerlambert.WithConcentration(1e-6),
//	)
func Solve(mode Mode, opts ...Option) (float64, error) {
	var in Input
	if err := options.Apply(&in, opts...); err != nil {
		return 0, err
	}

	switch mode {
	case ModeAbsorbance:
		if err := requireAll(mode,
			required{"epsilon", in.hasEpsilon},
			required{"path length", in.hasPathLength},
			required{"concentration", in.hasConcentration},
		); err != nil {
			return 0, err
		}
		if err := firstErr(
			positive("epsilon", in.epsilon),
			positive("path length", in.pathLength),
			positive("concentration", in.concentration),
		); err != nil {
			return 0, err
		}

		return in.epsilon * in.pathLength * in.concentration, nil

	case ModeConcentration:
		if err := requireAll(mode,
			required{"absorbance", in.hasAbsorbance},
			required{"epsilon", in.hasEpsilon},
			required{"path length", in.hasPathLength},
		); err != nil {
			return 0, err
		}
		if err := firstErr(
			nonNegative("absorbance", in.absorbance),
			positive("epsilon", in.epsilon),
			positive("path length", in.pathLength),
		); err != nil {
			return 0, err
		}

		return in.absorbance / (in.epsilon * in.pathLength), nil

	case ModeEpsilon:
		if err := requireAll(mode,
			required{"absorbance", in.hasAbsorbance},
			required{"path length", in.hasPathLength},
			required{"concentration", in.hasConcentration},
		); err != nil {
			return 0, err
		}
		if err := firstErr(
			nonNegative("absorbance", in.absorbance),
			positive("path length", in.pathLength),
			positive("concentration", in.concentration),
		); err != nil {
			return 0, err
		}

		return in.absorbance / (in.pathLength * in.concentration), nil

	case ModePathLength:
		if err := requireAll(mode,
			required{"absorbance", in.hasAbsorbance},
			required{"epsilon", in.hasEpsilon},
			required{"concentration", in.hasConcentration},
		); err != nil {
			return 0, err
		}
		if err := firstErr(
			nonNegative("absorbance", in.absorbance),
			positive("epsilon", in.epsilon),
			positive("concentration", in.concentration),
		); err != nil {
			return 0, err
		}

		return in.absorbance / (in.epsilon * in.concentration), nil

	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrUnknownMode, int(mode))
	}
}

// required pairs a quantity name with its presence flag for validation.
type required struct {
	name    string
	present bool
}

// requireAll fails with ErrMissingParameter for the first absent quantity.
// Presence is always checked before domain constraints.
func requireAll(mode Mode, reqs ...required) error {
	for _, r := range reqs {
		if !r.present {
			return fmt.Errorf("%w: %s is required to calculate %s", errs.ErrMissingParameter, r.name, mode)
		}
	}

	return nil
}

func positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %g", errs.ErrInvalidParameter, name, v)
	}

	return nil
}

func nonNegative(name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: %s cannot be negative, got %g", errs.ErrInvalidParameter, name, v)
	}

	return nil
}

func firstErr(errors ...error) error {
	for _, err := range errors {
		if err != nil {
			return err
		}
	}

	return nil
}
