package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/kerf/advanced"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Same format as the input: one "x y" per line, paths separated by a blank line
func writePaths(out io.Writer, paths []advanced.Path) error {
	w := bufio.NewWriter(out)
	for i, path := range paths {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, p := range path.Points {
			fmt.Fprintf(w, "%s %s\n", formatFloat(p.X), formatFloat(p.Y))
		}
	}
	return w.Flush()
}

const svgStyle = `fill="none" stroke="black" stroke-width="0.1"`

func writeSVG(out io.Writer, paths []advanced.Path) error {
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, `<?xml version="1.0"?>`)
	fmt.Fprintln(w, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1">`)
	for _, path := range paths {
		element := "polyline"
		if path.Closed {
			element = "polygon"
		}
		coords := make([]string, len(path.Points))
		for i, p := range path.Points {
			coords[i] = formatFloat(p.X) + "," + formatFloat(p.Y)
		}
		fmt.Fprintf(w, "  <%s points=\"%s\" %s/>\n", element, strings.Join(coords, " "), svgStyle)
	}
	fmt.Fprintln(w, `</svg>`)
	return w.Flush()
}
