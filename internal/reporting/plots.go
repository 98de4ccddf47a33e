// Package reporting turns a completed flight.Result into the plots and
// console tables an operator reads after a run: no HTML, no GUI, following
// spec.md's placement of reporting as an external collaborator rather than
// part of the simulation core.
package reporting

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/loftwing/launchcore/pkg/flight"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// series extracts one scalar time series from a Result via sel.
func series(r flight.Result, sel func(flight.State) float64) plotter.XYs {
	pts := make(plotter.XYs, len(r.States))
	for i, s := range r.States {
		pts[i].X = r.Times[i]
		pts[i].Y = sel(s)
	}
	return pts
}

func savePlot(title, xLabel, yLabel string, pts plotter.XYs, col color.Color, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to create line plotter for %s: %w", title, err)
	}
	line.Color = col
	p.Add(line)

	if err := p.Save(5*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", path, err)
	}
	return nil
}

// GenerateAltitudePlot writes an SVG plot of altitude (Zp) vs time.
func GenerateAltitudePlot(r flight.Result, outDir string) (string, error) {
	path := filepath.Join(outDir, "altitude_vs_time.svg")
	pts := series(r, func(s flight.State) float64 { return s.Zp })
	return path, savePlot("Altitude vs. Time", "Time (s)", "Altitude (m)", pts, color.RGBA{B: 255, A: 255}, path)
}

// GenerateVelocityPlot writes an SVG plot of vertical velocity (Zv) vs time.
func GenerateVelocityPlot(r flight.Result, outDir string) (string, error) {
	path := filepath.Join(outDir, "velocity_vs_time.svg")
	pts := series(r, func(s flight.State) float64 { return s.Zv })
	return path, savePlot("Vertical Velocity vs. Time", "Time (s)", "Velocity (m/s)", pts, color.RGBA{R: 200, A: 255}, path)
}

// GenerateMachPlot writes an SVG plot of Mach number vs time, using the
// caller's speed-of-sound query (atmosphere.SpeedOfSound bound to altitude).
func GenerateMachPlot(r flight.Result, speedOfSound func(z float64) float64, outDir string) (string, error) {
	path := filepath.Join(outDir, "mach_vs_time.svg")
	pts := series(r, func(s flight.State) float64 {
		v := s.Xv*s.Xv + s.Yv*s.Yv + s.Zv*s.Zv
		a := speedOfSound(s.Zp)
		if a <= 0 {
			return 0
		}
		return math.Sqrt(v) / a
	})
	return path, savePlot("Mach Number vs. Time", "Time (s)", "Mach", pts, color.RGBA{G: 150, A: 255}, path)
}
