package advanced

// Points are plain values. Nothing in this package writes through a caller's
// slice; every operation builds and returns new points.
type Point struct {
	X float64
	Y float64
}

// A Vector is a displacement rather than a location. The type system does not
// tell them apart, so callers have to keep track of which is which.
type Vector = Point

type Path struct {
	Points []Point
	// A closed path has an implicit edge from the last point back to the first.
	// The first and last points do not need to coincide.
	Closed bool
}

// Row major 2x3 affine matrix. The last column is the translation.
type Matrix [2][3]float64
