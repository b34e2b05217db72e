package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jgoulah/homedash/pkg/models"
)

// GonumPlotter renders the usage trend as a line and point chart
type GonumPlotter struct {
	Width  vg.Length
	Height vg.Length
}

// NewGonumPlotter creates a plotter producing 10x5 inch images
func NewGonumPlotter() *GonumPlotter {
	return &GonumPlotter{Width: 10 * vg.Inch, Height: 5 * vg.Inch}
}

// Plot saves the trend chart to path; the image format follows the file extension
func (g *GonumPlotter) Plot(readings []models.Reading, path string) error {
	if len(readings) == 0 {
		return ErrNothingToExport
	}

	p := plot.New()
	p.Title.Text = "Household Electricity Usage Trend"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Units Consumed"
	p.X.Tick.Marker = plot.TimeTicks{Format: models.DateLayout}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(readings))
	for i, r := range readings {
		pts[i].X = float64(r.Date.Unix())
		pts[i].Y = r.Usage
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("building plot data: %w", err)
	}
	p.Add(line, points)

	if err := p.Save(g.Width, g.Height, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
