package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/kerf/advanced"
	"github.com/pkg/errors"
)

func readPaths(in io.Reader, closed bool) ([]advanced.Path, error) {
	paths := []advanced.Path{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []advanced.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		// Read the next line
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the path
		if line == "" {
			if len(points) > 0 {
				paths = append(paths, advanced.Path{Points: points, Closed: closed})
				points = []advanced.Point{}
			}
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	// Handle trailing path if any
	if len(points) > 0 {
		paths = append(paths, advanced.Path{Points: points, Closed: closed})
	}
	return paths, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "y")
	}
	return advanced.Point{X: x, Y: y}, nil
}
