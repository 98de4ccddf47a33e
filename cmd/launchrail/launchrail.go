package main

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/loftwing/launchcore/internal/config"
	"github.com/loftwing/launchcore/internal/logger"
	"github.com/loftwing/launchcore/internal/reporting"
	"github.com/loftwing/launchcore/internal/storage"
	"github.com/loftwing/launchcore/pkg/aero"
	"github.com/loftwing/launchcore/pkg/atmosphere"
	"github.com/loftwing/launchcore/pkg/flight"
	"github.com/loftwing/launchcore/pkg/materials"
	"github.com/loftwing/launchcore/pkg/motor"
	"github.com/loftwing/launchcore/pkg/rocket"
	"github.com/zerodha/logf"
)

// buildJeff assembles the reference rocket flown by both scenarios in
// spec.md §8: a body tube/nosecone/fin-set airframe that differs only in
// body length and motor between the subsonic and supersonic cases.
func buildJeff(name string, bodyLength float64, def *motor.Definition) (*rocket.Rocket, error) {
	r := rocket.New(name)
	stage := rocket.NewStage("sustainer")
	if err := r.AddChild(stage); err != nil {
		return nil, fmt.Errorf("failed to attach stage: %w", err)
	}

	bt := rocket.NewBodyTube("body", 0.0316, bodyLength, 0.0016, materials.Cardboard, materials.Smooth)
	if err := stage.AddChild(bt); err != nil {
		return nil, fmt.Errorf("failed to attach body tube: %w", err)
	}

	nc := rocket.NewNosecone("nose", 0.0316, 0.13, 0.0, 0.003, materials.PLA, materials.Smooth)
	nc.SetLocalPosition(bt.LocalPosition())
	if err := stage.AddChild(nc); err != nil {
		return nil, fmt.Errorf("failed to attach nosecone: %w", err)
	}

	fin := rocket.NewFin(0.10, 0.03, 0.06, 0.06, 0.003, materials.Plywood)
	fs := rocket.NewFinSet("fins", fin, 4, bt.Radius())
	if err := bt.AddChild(fs); err != nil {
		return nil, fmt.Errorf("failed to attach fin set: %w", err)
	}

	mtr := motor.New(def)
	mc := rocket.NewMotorComponent("motor", mtr)
	if err := bt.AddChild(mc); err != nil {
		return nil, fmt.Errorf("failed to attach motor: %w", err)
	}

	return r, nil
}

// initialState builds the launch-rail-departure state per spec.md §4:
// zero position and velocity, attitude fixed by azimuth (roll about Z) and
// launch elevation (pitch about Y), zero roll about the body's long axis.
func initialState(cfg *config.Config) flight.State {
	rad := math.Pi / 180.0
	return flight.State{
		Theta: cfg.Launch.Launchrail.Angle * rad,
		Psi:   cfg.Launch.Launchrail.Azimuth * rad,
	}
}

// scenario is one of the two reference flights from spec.md §8. Each flies
// a distinct motor, so the engine file travels with the scenario rather
// than the shared Config.
type scenario struct {
	name       string
	bodyLength float64
	engineFile string
}

var scenarios = []scenario{
	{name: "jeff-1", bodyLength: 0.66, engineFile: "testdata/motors/F27R.eng"},
	{name: "jeff-2", bodyLength: 0.35, engineFile: "testdata/motors/I600R.eng"},
}

// findMotor walks the rocket's children for the attached MotorComponent.
func findMotor(c rocket.Component) (*rocket.MotorComponent, bool) {
	if mc, ok := c.(*rocket.MotorComponent); ok {
		return mc, true
	}
	for _, child := range c.Children() {
		if mc, ok := findMotor(child); ok {
			return mc, true
		}
	}
	return nil, false
}

// runScenario builds, integrates, persists and reports one reference
// flight, writing its trajectory CSV and plots under runDir/<name>.
func runScenario(log *logf.Logger, cfg *config.Config, runDir string, sc scenario) error {
	def, err := motor.ParseEngFile(sc.engineFile)
	if err != nil {
		return fmt.Errorf("%s: failed to parse motor file %s: %w", sc.name, sc.engineFile, err)
	}

	r, err := buildJeff(sc.name, sc.bodyLength, def)
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", sc.name, err)
	}

	mc, ok := findMotor(r)
	if !ok {
		return fmt.Errorf("%s: no motor component attached", sc.name)
	}
	mc.Ignite(0)

	aeroRoot := aero.BuildTree(r)
	deriv := flight.DerivativeFor(r, aeroRoot)

	tol := flight.DefaultTolerances()
	tol.Rtol, tol.Atol = cfg.Simulation.RTol, cfg.Simulation.ATol

	result := flight.Integrate(deriv, 0, initialState(cfg), cfg.Simulation.Step, tol)
	log.Info("simulation complete", "scenario", sc.name, "steps", len(result.Times), "landed", result.Landed)

	outDir := filepath.Join(runDir, sc.name)
	if _, err := storage.WriteTrajectory(outDir, result); err != nil {
		return fmt.Errorf("%s: failed to write trajectory: %w", sc.name, err)
	}

	launchMass := r.Mass(0)
	refLen := r.ReferenceLength()
	burnTime := def.BurnTime()

	if _, err := reporting.Build(sc.name, result, launchMass, refLen, burnTime, atmosphere.SpeedOfSound, outDir); err != nil {
		return fmt.Errorf("%s: failed to build report: %w", sc.name, err)
	}
	return nil
}

// Root loads configuration, prepares the run directory, and flies every
// reference scenario in turn.
func Root() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.InitFileLogger(cfg.Logging.Level, cfg.App.Name)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Info("configuration loaded", "app", cfg.App.Name, "version", cfg.App.Version)

	runDir, err := newRunDir()
	if err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}
	log.Info("run directory created", "path", runDir)

	for _, sc := range scenarios {
		if err := runScenario(log, cfg, runDir, sc); err != nil {
			return err
		}
	}
	return nil
}
