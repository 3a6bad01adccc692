package advanced

import (
	"math"

	"github.com/pkg/errors"
)

var ErrPointInsideCircle = errors.New("point is inside the circle")

// Scale to unit length. The zero vector has no direction, so it comes back as
// the zero vector instead of failing. Callers that rely on a unit result must
// check for that themselves.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{v.X / l, v.Y / l}
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rescale v to maxLength if it is any longer than that.
func (v Vector) ClipToLength(maxLength float64) Vector {
	l := v.Length()
	if l > maxLength {
		return v.Scale(maxLength / l)
	}
	return v
}

// Vector from p1 to p2
func Difference(p1, p2 Point) Vector {
	return Vector{p2.X - p1.X, p2.Y - p1.Y}
}

func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

func (v Vector) Scale(a float64) Vector {
	return Vector{a * v.X, a * v.Y}
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Rotated 90° counterclockwise
func (v Vector) Orthogonal() Vector {
	return Vector{-v.Y, v.X}
}

func PointOnCircle(r, angle float64) Point {
	return Point{r * math.Cos(angle), r * math.Sin(angle)}
}

// Angle and length of the tangent from (x, y) to the circle of radius r around
// the origin.
//
// A point on the circle (within Tolerance) has a tangent of length zero. A
// point inside the circle has no tangent at all, and gets ErrPointInsideCircle.
func Tangent(x, y, r float64) (angle float64, length float64, err error) {
	l := Vector{x, y}.Length()
	a1 := math.Atan2(y, x)
	if Equal(l, r) {
		return a1 + math.Pi/2, 0, nil
	}
	if l < r {
		return 0, 0, errors.Wrapf(ErrPointInsideCircle, "(%g, %g) is %g from the center of a circle of radius %g", x, y, l, r)
	}
	a2 := math.Asin(r / l)
	return a1 + a2, math.Sqrt(l*l - r*r), nil
}
