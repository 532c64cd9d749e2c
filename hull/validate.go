package hull

import "github.com/pkg/errors"

// ErrInvalidInput means some input coordinate was NaN or infinite. Returned
// errors wrap it with the index and value of the first offender; test with
// errors.Is.
var ErrInvalidInput = errors.New("point coordinates must be finite")

// Validate checks every coordinate for NaN and ±Inf. This package's
// algorithms assume it has already passed: a NaN smuggled into the polar
// sort or the side tests would corrupt their ordering invariants silently.
// The root package's entry points call it on every input.
func Validate(points []Point) error {
	for i, p := range points {
		if !p.IsFinite() {
			return errors.Wrapf(ErrInvalidInput, "point %d %s", i, p)
		}
	}
	return nil
}
