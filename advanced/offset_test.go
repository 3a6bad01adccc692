package advanced

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKerf(t *testing.T) {
	t.Run("unit square", func(t *testing.T) {
		square := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		k := 0.1
		result := Kerf(square, k, true)
		require.Len(t, result, 4)

		// Every corner is a right angle, so every corner moves k/cos(45°) = k√2
		// along the outward diagonal
		expected := []Point{{-k, -k}, {1 + k, -k}, {1 + k, 1 + k}, {-k, 1 + k}}
		for i := range square {
			assertPointInDelta(t, expected[i], result[i], "corner %d", i)
			assert.InDelta(t, k*math.Sqrt2, Difference(square[i], result[i]).Length(), Tolerance)
		}
	})

	t.Run("clockwise square moves inward", func(t *testing.T) {
		square := []Point{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
		result := Kerf(square, 0.1, true)
		assertPointInDelta(t, Point{0.1, 0.9}, result[0])
		assertPointInDelta(t, Point{0.9, 0.1}, result[2])
	})

	t.Run("open segment", func(t *testing.T) {
		k := 0.25
		result := Kerf([]Point{{0, 0}, {1, 0}}, k, false)
		// The only edge's normal is used at both ends, so cos(α) = 1 and both
		// points move exactly k
		assertPointInDelta(t, Point{0, -k}, result[0])
		assertPointInDelta(t, Point{1, -k}, result[1])
	})

	t.Run("open path ends are perpendicular to their edge", func(t *testing.T) {
		path := []Point{{0, 0}, {10, 0}, {10, 10}}
		result := Kerf(path, 1, false)
		assertPointInDelta(t, Point{0, -1}, result[0])
		assertPointInDelta(t, Point{11, -1}, result[1])
		assertPointInDelta(t, Point{11, 10}, result[2])
	})

	t.Run("closing edge only counts for closed paths", func(t *testing.T) {
		path := []Point{{0, 0}, {10, 0}, {10, 10}}
		open := Kerf(path, 1, false)
		closed := Kerf(path, 1, true)
		assert.False(t, PointsEqual(open[0], closed[0]))
		assertPointInDelta(t, open[1], closed[1])
	})

	t.Run("input is untouched", func(t *testing.T) {
		square := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		Kerf(square, 0.1, true)
		assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, square)
	})

	t.Run("zero offset is identity", func(t *testing.T) {
		path := LoadFixture("finger_joint")
		assert.Equal(t, path.Points, Kerf(path.Points, 0, true))
	})

	t.Run("reversal is singular", func(t *testing.T) {
		// The path turns back on itself at the middle vertex. The miter there is
		// infinitely long, so the result must be non-finite, but computing it must
		// not blow up.
		path := []Point{{0, 0}, {1, 0}, {0, 0}}
		var result []Point
		assert.NotPanics(t, func() {
			result = Kerf(path, 0.1, false)
		})
		require.Len(t, result, 3)
		assert.False(t, result[1].IsFinite())
	})

	t.Run("near reversal is huge", func(t *testing.T) {
		path := []Point{{0, 0}, {1, 0}, {0, 1e-4}}
		result := Kerf(path, 0.1, false)
		require.True(t, result[1].IsFinite())
		assert.Greater(t, Difference(path[1], result[1]).Length(), 1000.0)
	})

	t.Run("repeated point is singular", func(t *testing.T) {
		// The repeated corner has a zero length edge on one side, so it has no
		// normal there and the miter divides by zero
		path := []Point{{0, 0}, {1, 0}, {1, 0}, {1, 1}, {0, 1}}
		result := Kerf(path, 0.1, true)
		require.Len(t, result, 5)
		assert.False(t, result[2].IsFinite())
		assertPointInDelta(t, Point{-0.1, -0.1}, result[0])
	})

	t.Run("single point has no edges", func(t *testing.T) {
		result := Kerf([]Point{{3, 4}}, 0.1, true)
		require.Len(t, result, 1)
		assert.False(t, result[0].IsFinite())
	})
}

func TestKerfRoundTrip(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6, 8, 12, 32} {
		t.Run(fmt.Sprintf("regular %d-gon", n), func(t *testing.T) {
			polygon := RegularPolygon(n, 10)
			for _, k := range []float64{0.05, 0.5, -0.5} {
				outset := polygon.Kerf(k)
				back := outset.Kerf(-k)
				for i, p := range polygon.Points {
					assertPointInDelta(t, p, back.Points[i], "k=%v vertex %d", k, i)
				}
			}
		})
	}

	// Concave fixtures round trip too, as long as k is small compared to their
	// shortest edge
	fixtureNames := []string{
		"square",
		"l_bracket",
		"finger_joint",
		"zigzag",
	}
	for _, fixtureName := range fixtureNames {
		t.Run(fixtureName, func(t *testing.T) {
			path := LoadFixture(fixtureName)
			back := path.Kerf(0.75).Kerf(-0.75)
			require.Len(t, back.Points, len(path.Points))
			for i, p := range path.Points {
				assertPointInDelta(t, p, back.Points[i], "vertex %d", i)
			}
		})
	}
}

func TestKerfDistance(t *testing.T) {
	// Every offset edge is parallel to its original and exactly |k| away from it
	fixtureNames := []string{"l_bracket", "finger_joint"}
	for _, fixtureName := range fixtureNames {
		t.Run(fixtureName, func(t *testing.T) {
			path := LoadFixture(fixtureName)
			k := 1.5
			outset := path.Kerf(k)
			n := len(path.Points)
			for i := range path.Points {
				a, b := path.Points[i], path.Points[CircularIndex(i+1, n)]
				normal := Difference(a, b).Normalize().Orthogonal()
				for _, q := range []Point{outset.Points[i], outset.Points[CircularIndex(i+1, n)]} {
					// Normals point inward for a CCW path, so outward is negative
					assert.InDelta(t, -k, Difference(a, q).Dot(normal), Tolerance, "edge %d", i)
				}
			}
			assert.Greater(t, outset.SignedArea(), path.SignedArea())
		})
	}
}

func TestKerfClamped(t *testing.T) {
	t.Run("matches Kerf when the limit is not reached", func(t *testing.T) {
		path := LoadFixture("finger_joint")
		unclamped := path.Kerf(0.5)
		clamped := path.KerfClamped(0.5, 10)
		for i := range path.Points {
			assertPointInDelta(t, unclamped.Points[i], clamped.Points[i])
		}
	})

	t.Run("limits sharp corners", func(t *testing.T) {
		path := []Point{{0, 0}, {1, 0}, {0, 1e-3}}
		result := KerfClamped(path, 0.1, false, 0.5)
		assert.InDelta(t, 0.5, Difference(path[1], result[1]).Length(), Tolerance)
		// The end points are unaffected by the sharp corner
		assertPointInDelta(t, Point{0, -0.1}, result[0])
	})

	t.Run("repeated point moves with its corner", func(t *testing.T) {
		path := []Point{{0, 0}, {1, 0}, {1, 0}, {1, 1}, {0, 1}}
		result := KerfClamped(path, 0.1, true, 1)
		require.Len(t, result, 5)
		for _, p := range result {
			assert.True(t, p.IsFinite())
		}
		assertPointInDelta(t, Point{1, -0.1}, result[1])
		assertPointInDelta(t, Point{1.1, -0.1}, result[2])
		assertPointInDelta(t, Point{1.1, 1.1}, result[3])
	})

	t.Run("repeated end point of an open path", func(t *testing.T) {
		path := []Point{{0, 0}, {0, 0}, {1, 0}}
		result := KerfClamped(path, 0.1, false, 1)
		assertPointInDelta(t, Point{0, -0.1}, result[0])
		assertPointInDelta(t, Point{0, -0.1}, result[1])
		assertPointInDelta(t, Point{1, -0.1}, result[2])
	})

	t.Run("every point the same", func(t *testing.T) {
		path := []Point{{2, 3}, {2, 3}, {2, 3}}
		result := KerfClamped(path, 0.1, true, 1)
		assert.Equal(t, path, result)
	})

	t.Run("exact reversal follows the incoming edge", func(t *testing.T) {
		path := []Point{{0, 0}, {1, 0}, {0, 0}}
		result := KerfClamped(path, 0.1, false, 0.5)
		require.True(t, result[1].IsFinite())
		assertPointInDelta(t, Point{1.5, 0}, result[1])

		result = KerfClamped(path, -0.1, false, 0.5)
		assertPointInDelta(t, Point{0.5, 0}, result[1])

		result = KerfClamped(path, 0, false, 0.5)
		assertPointInDelta(t, Point{1, 0}, result[1])
	})
}
