// Package events tags a recorded trajectory with the significant milestones
// a flight passes through, using an EngoEngine/ecs world so each tagged
// sample is an addressable entity rather than a bare struct slice.
package events

import "fmt"

// Event represents a significant simulation milestone.
type Event int

const (
	None Event = iota
	Liftoff
	Burnout
	Apogee
	Land
)

// String returns a string representation of the event.
func (e Event) String() string {
	switch e {
	case None:
		return "NONE"
	case Liftoff:
		return "LIFTOFF"
	case Burnout:
		return "BURNOUT"
	case Apogee:
		return "APOGEE"
	case Land:
		return "LAND"
	default:
		return fmt.Sprintf("UNKNOWN_EVENT(%d)", e)
	}
}
