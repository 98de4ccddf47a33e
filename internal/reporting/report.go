package reporting

import (
	"fmt"
	"math"
	"os"

	"github.com/loftwing/launchcore/pkg/events"
	"github.com/loftwing/launchcore/pkg/flight"
)

// Report bundles everything generated for one completed simulation run.
type Report struct {
	Summary   Summary
	Events    []*events.Tag
	PlotPaths []string
}

// Build derives a Summary and detects post-flight events from a completed
// Result, writes the trajectory plots into outDir, and renders both console
// tables to stdout.
func Build(name string, r flight.Result, launchMass, refLen, burnTime float64, speedOfSound func(z float64) float64, outDir string) (Report, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("failed to create report output directory %s: %w", outDir, err)
	}

	apogeeTime, apogee := flight.Apogee(r)
	maxMach := flight.MaxMach(r, speedOfSound)

	var maxVel float64
	samples := make([]events.Sample, len(r.States))
	for i, s := range r.States {
		v := s.Xv*s.Xv + s.Yv*s.Yv + s.Zv*s.Zv
		if speed := math.Sqrt(v); speed > maxVel {
			maxVel = speed
		}
		samples[i] = events.Sample{
			T:        r.Times[i],
			Zp:       s.Zp,
			Zv:       s.Zv,
			MotorLit: r.Times[i] <= burnTime,
		}
	}
	tags := events.Detect(samples)

	summary := Summary{
		Apogee:       apogee,
		ApogeeTime:   apogeeTime,
		MaxMach:      maxMach,
		MaxVelocity:  maxVel,
		LaunchMass:   launchMass,
		ReferenceLen: refLen,
	}

	var plotPaths []string
	if p, err := GenerateAltitudePlot(r, outDir); err == nil {
		plotPaths = append(plotPaths, p)
	} else {
		return Report{}, err
	}
	if p, err := GenerateVelocityPlot(r, outDir); err == nil {
		plotPaths = append(plotPaths, p)
	} else {
		return Report{}, err
	}
	if p, err := GenerateMachPlot(r, speedOfSound, outDir); err == nil {
		plotPaths = append(plotPaths, p)
	} else {
		return Report{}, err
	}

	fmt.Printf("\nFlight summary: %s\n", name)
	WriteSummaryTable(os.Stdout, name, summary)
	fmt.Println()
	WriteEventsTable(os.Stdout, tags)

	return Report{Summary: summary, Events: tags, PlotPaths: plotPaths}, nil
}
