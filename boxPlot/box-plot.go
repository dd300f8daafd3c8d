package boxPlot

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var ErrEmptyGroup = errors.New("box plot group has no values")

//Group is one box of the plot
type Group struct {
	Label  string
	Values []float64
}

//Labels describes the texts of a plot
type Labels struct {
	Title string
	X     string
	Y     string
}

//DefaultWidth and DefaultHeight are used if a size of 0 is passed to PlotAndStore or Save
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

//boxWidth is the width of a single box
var boxWidth = vg.Points(20)

//Plot creates a box plot with one box per group, placed left to right in the order of groups
func Plot(labels Labels, groups []Group) (*plot.Plot, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("no groups to plot")
	}
	p := plot.New()
	p.Title.Text = labels.Title
	p.X.Label.Text = labels.X
	p.Y.Label.Text = labels.Y

	names := make([]string, len(groups))
	lo, hi := 0.0, 0.0
	for i, g := range groups {
		if len(g.Values) == 0 {
			return nil, fmt.Errorf("%w : %q", ErrEmptyGroup, g.Label)
		}
		box, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(g.Values))
		if err != nil {
			return nil, fmt.Errorf("failed creating box for %q : %v", g.Label, err)
		}
		box.FillColor = plotutil.Color(i)
		box.BoxStyle.Color = colornames.Darkslategray
		box.WhiskerStyle.Color = colornames.Darkslategray
		box.GlyphStyle.Color = colornames.Red
		p.Add(box)
		names[i] = g.Label

		if i == 0 {
			lo, hi = floats.Min(g.Values), floats.Max(g.Values)
		} else {
			lo = floats.Min([]float64{lo, floats.Min(g.Values)})
			hi = floats.Max([]float64{hi, floats.Max(g.Values)})
		}
	}
	p.NominalX(names...)

	//keep some room above and below the outermost glyphs
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	p.Y.Min = lo - pad
	p.Y.Max = hi + pad

	return p, nil
}

func sizeOrDefault(width, height vg.Length) (vg.Length, vg.Length) {
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return width, height
}

//PlotAndStore wraps Plot and stores the result as png in out
func PlotAndStore(labels Labels, groups []Group, width, height vg.Length, out io.Writer) error {
	p, err := Plot(labels, groups)
	if err != nil {
		return fmt.Errorf("failed to create plot : %w", err)
	}
	width, height = sizeOrDefault(width, height)
	writerTo, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("failed to prepare plot for writing : %v", err)
	}
	if _, err := writerTo.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write plot : %v", err)
	}
	return nil
}

//Save creates the png file at path (overwriting it) and renders the plot into it
func Save(labels Labels, groups []Group, width, height vg.Length, path string) error {
	plotFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file : %v", err)
	}
	defer func() {
		if err := plotFile.Close(); err != nil {
			log.Printf("failed to close %v : %v", path, err)
		}
	}()

	if err := PlotAndStore(labels, groups, width, height, plotFile); err != nil {
		return err
	}
	return plotFile.Sync()
}
