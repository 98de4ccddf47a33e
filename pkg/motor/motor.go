// Package motor parses RASP-style .eng thrust-curve files and exposes a
// Motor whose mass and thrust vary with simulation time according to an
// impulse-weighted propellant burn schedule, driven through an ignite/burn/
// burnout state machine.
package motor

import (
	"context"
	"math"

	"github.com/looplab/fsm"
)

// FSM states for the motor's ignition lifecycle.
const (
	StateIdle     = "idle"
	StateIgnited  = "ignited"
	StateBurning  = "burning"
	StateBurnedOut = "burned_out"
)

// Motor wraps an immutable Definition with the impulse schedule derived from
// its thrust curve and a per-instance ignition time.
type Motor struct {
	Def *Definition

	totalImpulse float64
	cumImpulse   []float64 // cumulative impulse through sample i, same length as Def.Thrust

	ignitionTime float64
	ignited      bool

	fsm *fsm.FSM
}

// New builds a Motor from a parsed Definition, deriving its impulse schedule
// once via trapezoidal integration of the thrust curve.
func New(def *Definition) *Motor {
	m := &Motor{Def: def}
	m.cumImpulse = make([]float64, len(def.Thrust))
	var cum float64
	for i := 1; i < len(def.Thrust); i++ {
		dt := def.Thrust[i].Time - def.Thrust[i-1].Time
		avg := (def.Thrust[i].Thrust + def.Thrust[i-1].Thrust) / 2.0
		cum += avg * dt
		m.cumImpulse[i] = cum
	}
	m.totalImpulse = cum

	m.fsm = fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: "ignite", Src: []string{StateIdle}, Dst: StateIgnited},
			{Name: "start_burning", Src: []string{StateIgnited}, Dst: StateBurning},
			{Name: "burnout", Src: []string{StateBurning}, Dst: StateBurnedOut},
		},
		fsm.Callbacks{},
	)
	return m
}

// Ignite marks the motor as lit at global time t. Calling it again re-lights
// the schedule at the new time (used when a stage's motor is reconfigured
// between simulation runs); it does not mutate Def.
func (m *Motor) Ignite(t float64) {
	m.ignitionTime = t
	m.ignited = true
	ctx := context.Background()
	if m.fsm.Current() == StateIdle {
		_ = m.fsm.Event(ctx, "ignite")
	}
}

// UpdateFSMState advances the ignition state machine for global time t,
// mirroring the motor's burn-time-relative mass/thrust computation.
func (m *Motor) UpdateFSMState(t float64) {
	if !m.ignited {
		return
	}
	elapsed := t - m.ignitionTime
	ctx := context.Background()
	switch m.fsm.Current() {
	case StateIgnited:
		if elapsed >= 0 {
			_ = m.fsm.Event(ctx, "start_burning")
		}
	case StateBurning:
		if elapsed >= m.Def.BurnTime() {
			_ = m.fsm.Event(ctx, "burnout")
		}
	}
}

// State returns the motor's current FSM state name.
func (m *Motor) State() string {
	return m.fsm.Current()
}

func (m *Motor) interpolate(elapsed float64, col func(i int) float64) float64 {
	samples := m.Def.Thrust
	if elapsed <= samples[0].Time {
		return col(0)
	}
	last := len(samples) - 1
	if elapsed >= samples[last].Time {
		return col(last)
	}
	for i := 0; i < last; i++ {
		if elapsed >= samples[i].Time && elapsed <= samples[i+1].Time {
			span := samples[i+1].Time - samples[i].Time
			if span <= 0 {
				return col(i)
			}
			frac := (elapsed - samples[i].Time) / span
			return col(i) + frac*(col(i+1)-col(i))
		}
	}
	return col(last)
}

// Thrust returns thrust in newtons at global time t: zero before ignition and
// after burnout, linearly interpolated within the tabulated curve otherwise.
func (m *Motor) Thrust(t float64) float64 {
	if !m.ignited {
		return 0
	}
	elapsed := t - m.ignitionTime
	if elapsed < 0 || elapsed > m.Def.BurnTime() {
		return 0
	}
	return m.interpolate(elapsed, func(i int) float64 { return m.Def.Thrust[i].Thrust })
}

// Mass returns total motor mass in kg at global time t: TotalMassKg before
// ignition, TotalMassKg-PropellantMassKg after burnout, and piecewise-linear
// between samples in between, proportional to the fraction of total impulse
// expended so far.
func (m *Motor) Mass(t float64) float64 {
	if !m.ignited || t < m.ignitionTime {
		return m.Def.TotalMassKg
	}
	elapsed := t - m.ignitionTime
	if elapsed > m.Def.BurnTime() || m.totalImpulse <= 0 {
		return m.Def.TotalMassKg - m.Def.PropellantMassKg
	}
	spent := m.interpolate(elapsed, func(i int) float64 { return m.cumImpulse[i] })
	frac := spent / m.totalImpulse
	frac = math.Max(0, math.Min(1, frac))
	return m.Def.TotalMassKg - m.Def.PropellantMassKg*frac
}

// Length returns the motor's physical length in meters.
func (m *Motor) Length() float64 { return m.Def.LengthM }

// TotalImpulse returns the integrated thrust curve impulse in N*s.
func (m *Motor) TotalImpulse() float64 { return m.totalImpulse }

// AverageThrust returns TotalImpulse / BurnTime, 0 if BurnTime is 0.
func (m *Motor) AverageThrust() float64 {
	bt := m.Def.BurnTime()
	if bt <= 0 {
		return 0
	}
	return m.totalImpulse / bt
}
