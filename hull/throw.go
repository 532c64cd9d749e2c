package hull

import "github.com/pkg/errors"

// The hull algorithms cannot fail on validated input, so the few internal
// invariant checks panic rather than threading error returns through the
// sweep and work-list code. The public API at the module root recovers and
// converts to an error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
