package main

import (
	"io"
	"log"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/kerf"
	"github.com/osuushi/kerf/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Kerf compensation for cut paths. Input on stdin should be newline separated
// points in the form "x y", with each path separated by an extra newline, or an
// svg file given with --svg, in which case every <polygon> and <polyline> is
// offset. The offset paths are written to stdout in the same text format, or
// as svg.
//
// Positive kerf moves counterclockwise paths outward. With --outward, closed
// paths move away from their interior whatever their winding.

type options struct {
	kerf            float64
	open            bool
	outward         bool
	maxDisplacement float64
	svgInput        string
	format          string
	preview         string
	previewScale    float64
	show            bool
	verbose         bool
}

func newApp() (*kingpin.Application, *options) {
	opts := &options{}
	app := kingpin.New("kerf", "Offset cut paths to compensate for the material a cutter removes.")
	app.Flag("kerf", "Offset distance. The sign picks the side.").Short('k').Default("0.1").Float64Var(&opts.kerf)
	app.Flag("open", "Treat paths read from stdin as open polylines.").BoolVar(&opts.open)
	app.Flag("outward", "Offset closed paths away from their interior regardless of winding.").BoolVar(&opts.outward)
	app.Flag("max-displacement", "Never move a point further than this. Zero disables the limit; negative values are rejected.").Default("0").Float64Var(&opts.maxDisplacement)
	app.Flag("svg", "Read polygons and polylines from this svg file instead of stdin.").StringVar(&opts.svgInput)
	app.Flag("format", "Output format.").Default("text").EnumVar(&opts.format, "text", "svg")
	app.Flag("preview", "Render the original and offset paths to this PNG file.").StringVar(&opts.preview)
	app.Flag("preview-scale", "Pixels per unit in the preview.").Default("4").Float64Var(&opts.previewScale)
	app.Flag("show", "Print the preview to the terminal (iTerm only), rendering it to a temporary file unless --preview is given.").BoolVar(&opts.show)
	app.Flag("verbose", "Describe every offset vertex on stderr.").Short('v').BoolVar(&opts.verbose)
	return app, opts
}

func main() {
	app, opts := newApp()
	kingpin.MustParse(app.Parse(os.Args[1:]))
	app.FatalIfError(run(opts, os.Stdin, os.Stdout, os.Stderr), "")
}

func run(opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	logOutput := io.Discard
	if opts.verbose {
		logOutput = stderr
	}
	logger := log.New(logOutput, "", 0)

	paths, err := readInput(opts, stdin)
	if err != nil {
		return err
	}
	logger.Printf("Read %d paths", len(paths))

	offsets := make([]advanced.Path, len(paths))
	for i, path := range paths {
		offset, err := offsetPath(opts, path)
		if err != nil {
			return errors.Wrapf(err, "path %d", i)
		}
		offsets[i] = offset
		logger.Printf("%s: %d points, closed: %v", offset.DbgName(i), len(path.Points), path.Closed)
		if opts.verbose {
			logger.Println(advanced.DescribeOffset(path, offset, opts.kerf, 4))
		}
	}

	switch opts.format {
	case "svg":
		err = writeSVG(stdout, offsets)
	default:
		err = writePaths(stdout, offsets)
	}
	if err != nil {
		return errors.Wrap(err, "writing output")
	}

	if opts.preview == "" && !opts.show {
		return nil
	}
	preview := opts.preview
	if preview == "" {
		// --show on its own still needs a file for imgcat to read
		f, err := os.CreateTemp("", "kerf-*.png")
		if err != nil {
			return errors.Wrap(err, "creating preview file")
		}
		f.Close()
		preview = f.Name()
		defer os.Remove(preview)
	}
	c := advanced.DrawPaths(paths, offsets, opts.previewScale)
	if err := c.SavePNG(preview); err != nil {
		return errors.Wrap(err, "saving preview")
	}
	if opts.show {
		imgcat.CatFile(preview, stderr)
	}
	return nil
}

func readInput(opts *options, stdin io.Reader) ([]advanced.Path, error) {
	if opts.svgInput == "" {
		return readPaths(stdin, !opts.open)
	}
	f, err := os.Open(opts.svgInput)
	if err != nil {
		return nil, errors.Wrap(err, "opening svg input")
	}
	defer f.Close()
	return advanced.ParseSVG(f)
}

func offsetPath(opts *options, path advanced.Path) (advanced.Path, error) {
	clamped := opts.maxDisplacement != 0
	// Open paths have no interior, so --outward only affects closed ones
	if opts.outward && path.Closed {
		if clamped {
			return kerf.OutsetClamped(path, opts.kerf, opts.maxDisplacement)
		}
		return kerf.Outset(path, opts.kerf)
	}

	var points []advanced.Point
	var err error
	if clamped {
		points, err = kerf.OffsetClamped(path.Points, opts.kerf, path.Closed, opts.maxDisplacement)
	} else {
		points, err = kerf.Offset(path.Points, opts.kerf, path.Closed)
	}
	return advanced.Path{Points: points, Closed: path.Closed}, err
}
