// Kerf compensation for cut paths.
//
// A laser or other subtractive cutter removes a strip of material along every
// cut. To leave the finished edge where it was drawn, the cutter has to follow
// a path offset from the drawing. This package computes that offset for
// polylines and polygons with a miter construction: each vertex moves along
// the bisector of its adjacent edge normals, far enough to stay at the offset
// distance from both edges.
//
// Curves are not offset, and the result is not checked for self intersection.
package kerf

import "github.com/osuushi/kerf/advanced"

type Point = advanced.Point
type Vector = advanced.Vector
type Path = advanced.Path
type Matrix = advanced.Matrix

// Offset a list of points by k. For a counterclockwise path, positive k moves
// outward.
//
// The points must be finite and there must be at least one of them. Sharp
// reversals in the path are not an error: the offset vertex there is very far
// away, or NaN for an exact reversal. See OffsetClamped.
func Offset(points []Point, k float64, closed bool) (result []Point, err error) {
	defer func() {
		recoveredErr := advanced.HandleKerfPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	advanced.MustValidate(points, k)
	return advanced.Kerf(points, k, closed), nil
}

// Offset a list of points by k, moving no point further than maxDisplacement.
func OffsetClamped(points []Point, k float64, closed bool, maxDisplacement float64) (result []Point, err error) {
	defer func() {
		recoveredErr := advanced.HandleKerfPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	advanced.MustValidate(points, k)
	advanced.MustValidateLimit(maxDisplacement)
	return advanced.KerfClamped(points, k, closed, maxDisplacement), nil
}

// Offset a closed path away from its interior by k, whichever way it winds.
func Outset(path Path, k float64) (result Path, err error) {
	defer func() {
		recoveredErr := advanced.HandleKerfPanicRecover(recover())
		if recoveredErr != nil {
			result = Path{}
			err = recoveredErr
		}
	}()
	advanced.MustValidate(path.Points, k)
	if !path.Closed {
		return Path{}, advanced.ErrOpenPath
	}
	return path.Outset(k), nil
}

// Like Outset, moving no point further than maxDisplacement.
func OutsetClamped(path Path, k float64, maxDisplacement float64) (result Path, err error) {
	defer func() {
		recoveredErr := advanced.HandleKerfPanicRecover(recover())
		if recoveredErr != nil {
			result = Path{}
			err = recoveredErr
		}
	}()
	advanced.MustValidate(path.Points, k)
	advanced.MustValidateLimit(maxDisplacement)
	if !path.Closed {
		return Path{}, advanced.ErrOpenPath
	}
	return path.OutsetClamped(k, maxDisplacement), nil
}
