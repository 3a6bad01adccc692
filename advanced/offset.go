package advanced

// Kerf compensation by miter offset.
//
// Every vertex moves along the bisector of the normals of its two adjacent
// edges. The distance it moves is k/cos(α), where α is half the angle between
// those normals, so that the new vertex stays exactly k away from both edges.
// Positive k moves the vertices of a counterclockwise path outward; reversing
// the path flips the side.
//
// Sharp reversals are a known limitation of the miter construction: as the
// path turns back on itself cos(α) goes to zero and the displacement grows
// without bound. An exact reversal produces a NaN vertex. Nothing here catches
// that. KerfClamped is the bounded alternative.

// Offset every point by k. The result has exactly one point per input point.
func Kerf(points []Point, k float64, closed bool) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		d, cosAlpha := miter(points, i, closed)
		result[i] = p.Add(d.Scale(-k / cosAlpha))
	}
	return result
}

// Like Kerf, but no point moves further than maxDisplacement.
//
// Where Kerf would produce a non-finite point, the miter is rebuilt from the
// nearest edges of nonzero length, so a repeated point still moves with its
// corner. If that is still singular (an exact reversal), the point moves
// maxDisplacement along its incoming edge, which is where the miter tip runs
// off to.
func KerfClamped(points []Point, k float64, closed bool, maxDisplacement float64) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		d, cosAlpha := miter(points, i, closed)
		displacement := d.Scale(-k / cosAlpha)
		if !displacement.IsFinite() {
			displacement = fallbackDisplacement(points, i, k, closed, maxDisplacement)
		}
		result[i] = p.Add(displacement.ClipToLength(maxDisplacement))
	}
	return result
}

func fallbackDisplacement(points []Point, i int, k float64, closed bool, maxDisplacement float64) Vector {
	incoming, outgoing := nonZeroEdges(points, i, closed)
	if incoming.Length() == 0 {
		incoming = outgoing
	}
	if outgoing.Length() == 0 {
		outgoing = incoming
	}
	v1 := incoming.Normalize().Orthogonal()
	v2 := outgoing.Normalize().Orthogonal()
	d := v1.Add(v2).Normalize()
	displacement := d.Scale(-k / v1.Dot(d))
	if displacement.IsFinite() {
		return displacement
	}
	return incoming.Normalize().Scale(maxDisplacement * sign(k))
}

// Edges into and out of vertex i, skipping over repeated points. Either is zero
// when there is no such edge: at the end of an open path, or when every point
// coincides.
func nonZeroEdges(points []Point, i int, closed bool) (incoming, outgoing Vector) {
	n := len(points)
	p := points[i]
	for j := i - 1; j > i-n; j-- {
		if !closed && j < 0 {
			break
		}
		if edge := Difference(points[CircularIndex(j, n)], p); edge.Length() > 0 {
			incoming = edge
			break
		}
	}
	for j := i + 1; j < i+n; j++ {
		if !closed && j >= n {
			break
		}
		if edge := Difference(p, points[CircularIndex(j, n)]); edge.Length() > 0 {
			outgoing = edge
			break
		}
	}
	return incoming, outgoing
}

// Direction vertex i has to move, and the cosine of half the angle between the
// normals of the adjacent edges. A repeated point leaves one of the normals
// zero, which can make the cosine zero.
func miter(points []Point, i int, closed bool) (d Vector, cosAlpha float64) {
	n := len(points)
	p := points[i]
	prev := points[CircularIndex(i-1, n)]
	next := points[CircularIndex(i+1, n)]

	incoming := Difference(prev, p)
	outgoing := Difference(p, next)

	// Normalized orthogonals of both segments
	v1 := incoming.Normalize().Orthogonal()
	v2 := outgoing.Normalize().Orthogonal()

	// The ends of an open path only have one edge, so that edge's normal stands
	// in for both
	if !closed {
		if i == 0 {
			v1 = v2
		}
		if i == n-1 {
			v2 = v1
		}
	}

	d = v1.Add(v2).Normalize()
	cosAlpha = v1.Dot(d)
	return d, cosAlpha
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

func (path Path) Kerf(k float64) Path {
	return Path{Points: Kerf(path.Points, k, path.Closed), Closed: path.Closed}
}

func (path Path) KerfClamped(k float64, maxDisplacement float64) Path {
	return Path{Points: KerfClamped(path.Points, k, path.Closed, maxDisplacement), Closed: path.Closed}
}
