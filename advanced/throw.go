package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// Open paths have no interior to offset away from.
var ErrOpenPath = errors.New("path is open")

// Validation happens deep inside the path helpers, and the offset routines
// themselves have no error return. Instead, we use panics, and the public API
// recovers to convert to an error.

// Runtime errors are errors too, so the panic value gets its own type to keep
// them from being mistaken for validation failures.
type KerfError struct {
	error
}

func (e KerfError) Unwrap() error {
	return e.error
}

// Panic with a KerfError.
func fatalf(format string, args ...interface{}) {
	panic(KerfError{errors.Errorf(format, args...)})
}

func HandleKerfPanicRecover(r interface{}) error {
	if r != nil {
		if kerfError, ok := r.(KerfError); ok {
			return kerfError
		}
		panic(r)
	}
	return nil
}

// Panics with a KerfError if the path cannot be offset meaningfully: it must
// have at least one point, and every coordinate and the offset must be finite.
func MustValidate(points []Point, k float64) {
	if len(points) == 0 {
		fatalf("path has no points")
	}
	if !isFinite(k) {
		fatalf("offset %v is not finite", k)
	}
	for i, p := range points {
		if !p.IsFinite() {
			fatalf("point %d (%v, %v) is not finite", i, p.X, p.Y)
		}
	}
}

func MustValidateLimit(maxDisplacement float64) {
	if math.IsNaN(maxDisplacement) || maxDisplacement < 0 {
		fatalf("maximum displacement %v must not be negative", maxDisplacement)
	}
}
