package advanced

import "math"

func IdentityMatrix() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
	}
}

// Pure rotation by angle radians, counterclockwise.
func RotationMatrix(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		{cos, -sin, 0},
		{sin, cos, 0},
	}
}

func TranslationMatrix(dx, dy float64) Matrix {
	return Matrix{
		{1, 0, dx},
		{0, 1, dy},
	}
}

// Rotate (and scale/shear, if the matrix does that) and then translate.
func (m Matrix) Apply(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

func ApplyTransform(p Point, m Matrix) Point {
	return m.Apply(p)
}

func (m Matrix) ApplyAll(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = m.Apply(p)
	}
	return result
}

// Compose two transforms. Both are treated as 3x3 matrices with an implicit
// [0 0 1] bottom row, and the product is m1·m0, so the result applies m0 first
// and m1 second. m1's translation is part of the product, so
// Multiply(TranslationMatrix(1, 0), TranslationMatrix(0, 2)) translates by
// (1, 2); code ported from routines that only compose the linear parts will
// see (1, 0) there instead.
func Multiply(m0, m1 Matrix) Matrix {
	var result Matrix
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			for k := 0; k < 2; k++ {
				result[row][col] += m1[row][k] * m0[k][col]
			}
		}
		// The implicit bottom row of m0 only contributes to the translation
		result[row][2] += m1[row][2]
	}
	return result
}

// Shorthand for chaining: m.Then(n) applies m, then n.
func (m Matrix) Then(n Matrix) Matrix {
	return Multiply(m, n)
}
