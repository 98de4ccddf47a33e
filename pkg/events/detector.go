package events

import (
	"github.com/EngoEngine/ecs"
)

// Sample is one recorded trajectory point, the subset of flight state the
// detector needs to classify milestones.
type Sample struct {
	T        float64
	Zp       float64 // altitude, m
	Zv       float64 // vertical velocity, m/s
	MotorLit bool    // true while the motor is producing thrust
}

// Tag is one detected milestone, addressable as an ECS entity so a reporting
// layer can attach further components (e.g. a rendered marker) to it without
// this package knowing about them.
type Tag struct {
	ecs.BasicEntity
	Event Event
	T     float64
	Zp    float64
}

// Detector walks a recorded trajectory once and emits Liftoff, Burnout,
// Apogee, and Land tags in chronological order.
type Detector struct {
	world *ecs.World

	liftoffSeen bool
	burnoutSeen bool
	apogeeSeen  bool
	wasRising   bool
}

// NewDetector builds a Detector with its own ECS world for tag entities.
func NewDetector() *Detector {
	return &Detector{world: &ecs.World{}}
}

// Feed processes one chronologically-ordered sample and returns the tag
// produced by this sample, if any.
func (d *Detector) Feed(s Sample) *Tag {
	if !d.liftoffSeen && s.Zp > 0 && s.Zv > 0 {
		d.liftoffSeen = true
		d.wasRising = true
		return d.emit(Liftoff, s)
	}
	if d.liftoffSeen && !d.burnoutSeen && !s.MotorLit {
		d.burnoutSeen = true
		return d.emit(Burnout, s)
	}
	if d.liftoffSeen && !d.apogeeSeen {
		rising := s.Zv > 0
		if d.wasRising && !rising {
			d.apogeeSeen = true
			return d.emit(Apogee, s)
		}
		d.wasRising = rising
	}
	if d.liftoffSeen && d.apogeeSeen && s.Zp <= 0 {
		return d.emit(Land, s)
	}
	return nil
}

func (d *Detector) emit(e Event, s Sample) *Tag {
	tag := &Tag{BasicEntity: ecs.NewBasic(), Event: e, T: s.T, Zp: s.Zp}
	return tag
}

// Detect runs Feed over every sample in order and returns all emitted tags.
func Detect(samples []Sample) []*Tag {
	d := NewDetector()
	var tags []*Tag
	for _, s := range samples {
		if tag := d.Feed(s); tag != nil {
			tags = append(tags, tag)
		}
	}
	return tags
}
