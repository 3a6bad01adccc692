package advanced

import (
	"fmt"
	"math"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/kerf/internal/dbg"
)

// This is for debugging purposes only

// Readable name for a path, keyed by whatever identifies it to the caller.
// Closed paths are green, open ones cyan, and anything holding a non-finite
// point is red.
func (path Path) DbgName(key interface{}) string {
	name := dbg.Name(key)
	for _, p := range path.Points {
		if !p.IsFinite() {
			return aurora.Red(name).String()
		}
	}
	if path.Closed {
		return aurora.Green(name).String()
	}
	return aurora.Cyan(name).String()
}

// One line per vertex, showing where it moved and how far. Vertices that moved
// more than stretch times |k| are flagged in cyan, non-finite ones in red.
func DescribeOffset(original, offset Path, k float64, stretch float64) string {
	var lines []string
	for i, p := range original.Points {
		q := offset.Points[i]
		distance := Difference(p, q).Length()
		line := fmt.Sprintf("%4d (%.4f, %.4f) -> (%.4f, %.4f) moved %.4f", i, p.X, p.Y, q.X, q.Y, distance)
		switch {
		case !q.IsFinite():
			line = aurora.Red(line).String()
		case distance > stretch*math.Abs(k):
			line = aurora.Cyan(line).String()
		default:
			line = aurora.Green(line).String()
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
