package advanced

import (
	"math"

	"github.com/fogleman/gg"
)

// Padding around the paths so that offsets near the bounds stay visible
const drawPadding = 50

// Render the original paths in cyan and their offsets in orange, with the
// origin at the bottom left. Non-finite offset points are skipped, along with
// the segments that touch them.
func DrawPaths(originals, offsets []Path, scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, paths := range [][]Path{originals, offsets} {
		for _, path := range paths {
			for _, p := range path.Points {
				if !p.IsFinite() {
					continue
				}
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}
	if minX > maxX {
		// Nothing finite to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, path := range originals {
		tracePath(c, path)
	}
	c.Stroke()

	c.SetRGB(1, 0.5, 0)
	for _, path := range offsets {
		tracePath(c, path)
	}
	c.Stroke()
	return c
}

func tracePath(c *gg.Context, path Path) {
	drawing := false
	for _, p := range path.Points {
		if !p.IsFinite() {
			drawing = false
			continue
		}
		if drawing {
			c.LineTo(p.X, p.Y)
		} else {
			c.MoveTo(p.X, p.Y)
			drawing = true
		}
	}
	if path.Closed && drawing && len(path.Points) > 0 && path.Points[0].IsFinite() {
		c.LineTo(path.Points[0].X, path.Points[0].Y)
	}
}
