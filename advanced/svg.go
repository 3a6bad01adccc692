package advanced

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg parser. It finds every <polygon>
// and <polyline> in the document, in document order, and turns them into
// closed and open paths respectively. Transforms, <path> elements and
// everything else are ignored.
func ParseSVG(r io.Reader) ([]Path, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var paths []Path
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		if el.Name == "polygon" || el.Name == "polyline" {
			points, err := ParseSVGPoints(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "in <%s>", el.Name)
			}
			paths = append(paths, Path{Points: points, Closed: el.Name == "polygon"})
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return paths, nil
}

// Parse an svg points attribute. Coordinates may be separated by commas,
// whitespace or both, so "0,0 1,0" and "0 0 1 0" are the same list.
func ParseSVGPoints(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}
