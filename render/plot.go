package render

import (
	"fmt"

	"github.com/kame404/planetary-gear-generator/gear"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveProfilePlot draws the closed rim polygon of a gear profile to an
// image file (format by extension: .png, .svg, .pdf).
func SaveProfilePlot(pr gear.Profile, path string) error {
	if len(pr.Vertex) < 3 {
		return fmt.Errorf("profile has %d vertices, want >= 3", len(pr.Vertex))
	}
	pts := make(plotter.XYs, len(pr.Vertex)+1)
	for i, v := range pr.Vertex {
		pts[i].X = v.X
		pts[i].Y = v.Y
	}
	pts[len(pr.Vertex)] = pts[0] // close the outline

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}

	p := plot.New()
	kind := "external"
	if pr.Internal {
		kind = "internal"
	}
	p.Title.Text = fmt.Sprintf("%d tooth %s gear rim", pr.Teeth, kind)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid(), line)
	return p.Save(16*vg.Centimeter, 16*vg.Centimeter, path)
}
