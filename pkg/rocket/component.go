// Package rocket implements the typed component tree and mass model: Rocket
// owns Stages, each Stage owns a BodyTube and a Nosecone, and a BodyTube owns
// FinSets, Motors, and InternalComponents. Every node carries an opaque UUID
// identity, composes mass/center-of-mass/inertia from its own geometry and
// its children, and invalidates its whole cache on any mutation.
package rocket

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/loftwing/launchcore/pkg/types"
)

// Kind identifies a component's position in the allowed-child-type table.
type Kind int

const (
	KindRocket Kind = iota
	KindStage
	KindBodyTube
	KindNosecone
	KindFinSet
	KindFin
	KindMotor
	KindInternalComponent
)

func (k Kind) String() string {
	switch k {
	case KindRocket:
		return "Rocket"
	case KindStage:
		return "Stage"
	case KindBodyTube:
		return "BodyTube"
	case KindNosecone:
		return "Nosecone"
	case KindFinSet:
		return "FinSet"
	case KindFin:
		return "Fin"
	case KindMotor:
		return "Motor"
	case KindInternalComponent:
		return "InternalComponent"
	default:
		return "Unknown"
	}
}

var allowedChildren = map[Kind]map[Kind]bool{
	KindRocket:    {KindStage: true},
	KindStage:     {KindBodyTube: true, KindNosecone: true},
	KindBodyTube:  {KindFinSet: true, KindMotor: true, KindInternalComponent: true},
	KindNosecone:  {KindInternalComponent: true},
	KindFinSet:    {KindFin: true},
}

// ComponentTypeMismatch is returned when a child of a disallowed kind is
// added to a parent; the tree is left unmodified.
type ComponentTypeMismatch struct {
	Parent Kind
	Child  Kind
}

func (e *ComponentTypeMismatch) Error() string {
	return fmt.Sprintf("rocket: %s cannot accept a %s child", e.Parent, e.Child)
}

// Component is a node in the typed tree with identity, mass-model, and
// aerodynamic-contract obligations. Concrete types embed *Node and implement
// the self-mass/inertia methods; Node supplies tree bookkeeping.
type Component interface {
	ID() uuid.UUID
	Name() string
	Kind() Kind
	LocalPosition() types.Vector3
	SetLocalPosition(types.Vector3)
	Parent() Component
	Children() []Component
	AddChild(Component) error
	RemoveChild(Component)
	InvalidateCache()

	Mass(t float64) float64
	CenterOfMass(t float64) types.Vector3
	InertiaAboutOrigin(t float64) types.Matrix3x3
	Thrust(t float64) types.Vector3
	ThrustApplicationPoint(t float64) types.Vector3
}

// Node is the shared tree/cache bookkeeping every concrete component embeds.
// self is set by the concrete type's constructor so Node can invoke the
// self-mass/CoM/inertia methods that belong to the wrapping type.
type Node struct {
	id       uuid.UUID
	name     string
	kind     Kind
	position types.Vector3
	parent   Component
	children []Component

	self Component

	mu    sync.Mutex
	cache map[float64]cachedMassProps
}

type cachedMassProps struct {
	mass    float64
	com     types.Vector3
	inertia types.Matrix3x3
}

func newNode(kind Kind, name string) Node {
	return Node{
		id:    uuid.New(),
		name:  name,
		kind:  kind,
		cache: make(map[float64]cachedMassProps),
	}
}

func (n *Node) bind(self Component) { n.self = self }

func (n *Node) ID() uuid.UUID              { return n.id }
func (n *Node) Name() string               { return n.name }
func (n *Node) Kind() Kind                 { return n.kind }
func (n *Node) LocalPosition() types.Vector3 { return n.position }

// SetLocalPosition updates this node's offset relative to its parent and
// invalidates the cache (position affects composed center of mass/inertia).
func (n *Node) SetLocalPosition(p types.Vector3) {
	n.position = p
	n.InvalidateCache()
}

func (n *Node) Parent() Component { return n.parent }

func (n *Node) Children() []Component {
	out := make([]Component, len(n.children))
	copy(out, n.children)
	return out
}

// AddChild enforces the allowed-child-type table, detaches the child from
// any existing parent first, and appends it. Rejects and leaves state
// unmodified on a type mismatch.
func (n *Node) AddChild(c Component) error {
	if !allowedChildren[n.kind][c.Kind()] {
		return &ComponentTypeMismatch{Parent: n.kind, Child: c.Kind()}
	}
	if existing := c.Parent(); existing != nil {
		existing.RemoveChild(c)
	}
	n.children = append(n.children, c)
	if cn, ok := c.(interface{ setParent(Component) }); ok {
		cn.setParent(n.self)
	}
	n.InvalidateCache()
	return nil
}

// setParent is called by AddChild via the concrete type's embedded Node.
func (n *Node) setParent(p Component) { n.parent = p }

// RemoveChild removes c by identity (not by name); a no-op if c is not a
// direct child.
func (n *Node) RemoveChild(c Component) {
	for i, child := range n.children {
		if child.ID() == c.ID() {
			n.children = append(n.children[:i], n.children[i+1:]...)
			if cn, ok := child.(interface{ setParent(Component) }); ok {
				cn.setParent(nil)
			}
			n.InvalidateCache()
			return
		}
	}
}

// InvalidateCache drops this node's whole cache and propagates to every
// ancestor, since a child's mutation changes the parent's composed totals
// too.
func (n *Node) InvalidateCache() {
	n.mu.Lock()
	n.cache = make(map[float64]cachedMassProps)
	n.mu.Unlock()
	if n.parent != nil {
		n.parent.InvalidateCache()
	}
}

func (n *Node) lookup(t float64) (cachedMassProps, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	v, ok := n.cache[t]
	return v, ok
}

func (n *Node) store(t float64, v cachedMassProps) {
	n.mu.Lock()
	n.cache[t] = v
	n.mu.Unlock()
}

// composeMass sums self mass with every child's mass, caching the result
// under t. selfMass/selfCOM/selfInertia are supplied by the concrete type.
func (n *Node) composeMass(t float64, selfMass func(float64) float64, selfCOM func(float64) types.Vector3, selfInertia func(float64) types.Matrix3x3) cachedMassProps {
	if v, ok := n.lookup(t); ok {
		return v
	}

	sm := selfMass(t)
	sc := selfCOM(t)
	total := sm
	weighted := sc.MultiplyScalar(sm)

	for _, child := range n.children {
		cm := child.Mass(t)
		ccom := child.CenterOfMass(t).Add(child.LocalPosition())
		total += cm
		weighted = weighted.Add(ccom.MultiplyScalar(cm))
	}

	var com types.Vector3
	if total > 0 {
		com = weighted.DivideScalar(total)
	}

	inertia := selfInertia(t)
	for _, child := range n.children {
		ci := child.InertiaAboutOrigin(t)
		d := child.CenterOfMass(t).Add(child.LocalPosition())
		shifted := types.ParallelAxisShift(ci, d, child.Mass(t), false)
		inertia = inertia.Add(shifted)
	}

	v := cachedMassProps{mass: total, com: com, inertia: inertia}
	n.store(t, v)
	return v
}
