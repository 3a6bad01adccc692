package advanced

import "math"

// Shoelace area. Positive for counterclockwise paths. Open paths are measured
// as if they were closed.
func (path Path) SignedArea() float64 {
	var area float64
	n := len(path.Points)
	for i, p := range path.Points {
		next := path.Points[CircularIndex(i+1, n)]
		area += p.X*next.Y - next.X*p.Y
	}
	return area / 2
}

func (path Path) IsCCW() bool {
	return path.SignedArea() > 0
}

// A reversed path offsets to the opposite side.
func (path Path) Reverse() Path {
	newPath := Path{Closed: path.Closed, Points: make([]Point, 0, len(path.Points))}
	for i := len(path.Points) - 1; i >= 0; i-- {
		newPath.Points = append(newPath.Points, path.Points[i])
	}
	return newPath
}

func (path Path) Clone() Path {
	points := make([]Point, len(path.Points))
	copy(points, path.Points)
	return Path{Points: points, Closed: path.Closed}
}

func (path Path) Transform(m Matrix) Path {
	return Path{Points: m.ApplyAll(path.Points), Closed: path.Closed}
}

// Offset a closed path away from its interior, whatever its winding.
// Negative k shrinks it instead.
func (path Path) Outset(k float64) Path {
	if !path.IsCCW() {
		k = -k
	}
	return path.Kerf(k)
}

func (path Path) OutsetClamped(k float64, maxDisplacement float64) Path {
	if !path.IsCCW() {
		k = -k
	}
	return path.KerfClamped(k, maxDisplacement)
}

// Regular polygon with n vertices, counterclockwise, centered on the origin
func RegularPolygon(n int, radius float64) Path {
	path := Path{Closed: true, Points: make([]Point, n)}
	for i := range path.Points {
		path.Points[i] = PointOnCircle(radius, 2*math.Pi*float64(i)/float64(n))
	}
	return path
}
