package physics

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/vmath"
)

// PairFilter decides whether a candidate pair may produce a contact
// Returning false suppresses the contact in both directions
type PairFilter func(a, b core.Entity) bool

// Space owns all colliders and the contact set of the last step
type Space struct {
	mu sync.RWMutex

	gravity vmath.Vec2
	bodies  map[core.Entity]*Body
	order   []core.Entity
	filter  PairFilter

	// contacts is rebuilt every step; read-only between steps
	contacts     map[core.Entity][]core.Entity
	contactPairs int

	paused bool
}

// NewSpace creates an empty space with the given gravity
func NewSpace(gravity vmath.Vec2) *Space {
	return &Space{
		gravity:  gravity,
		bodies:   make(map[core.Entity]*Body),
		contacts: make(map[core.Entity][]core.Entity),
	}
}

// SetFilter registers the narrow-phase pair filter, nil allows every pair
func (s *Space) SetFilter(f PairFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// AddBody inserts or replaces the body of e
func (s *Space) AddBody(e core.Entity, b Body) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.prevPosition = b.Position
	if _, exists := s.bodies[e]; !exists {
		s.order = append(s.order, e)
	}
	s.bodies[e] = &b
}

// RemoveBody deletes the body of e and its contact list
func (s *Space) RemoveBody(e core.Entity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bodies[e]; !exists {
		return false
	}
	delete(s.bodies, e)
	delete(s.contacts, e)
	for i, id := range s.order {
		if id == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Body returns a copy of the body of e
func (s *Space) Body(e core.Entity) (Body, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bodies[e]
	if !ok {
		return Body{}, false
	}
	return *b, true
}

// Position returns the centre of e's body
func (s *Space) Position(e core.Entity) (vmath.Vec2, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bodies[e]
	if !ok {
		return vmath.Vec2{}, false
	}
	return b.Position, true
}

// Modify applies fn to e's body in place, returns false if e has no body
func (s *Space) Modify(e core.Entity, fn func(b *Body)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bodies[e]
	if !ok {
		return false
	}
	fn(b)
	return true
}

// Bodies returns the entities with a body in insertion order
func (s *Space) Bodies() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Entity, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of bodies
func (s *Space) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Clear removes every body and contact
func (s *Space) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies = make(map[core.Entity]*Body)
	s.order = nil
	s.contacts = make(map[core.Entity][]core.Entity)
	s.contactPairs = 0
}

// Pause freezes Step
func (s *Space) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

// Resume re-enables Step
func (s *Space) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

// Paused reports whether Step is frozen
func (s *Space) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused
}

// CollidingWith returns the entities in contact with e during the last step
func (s *Space) CollidingWith(e core.Entity) []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.contacts[e]
	if len(list) == 0 {
		return nil
	}
	out := make([]core.Entity, len(list))
	copy(out, list)
	return out
}

// ContactPairs returns the number of contact pairs found by the last step
func (s *Space) ContactPairs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contactPairs
}

// Step advances the simulation by dt and rebuilds the contact set
// Returns the number of contact pairs; no-op returning 0 while paused
func (s *Space) Step(dt time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused || dt <= 0 {
		return 0
	}
	secs := dt.Seconds()

	// Integrate
	for _, e := range s.order {
		b := s.bodies[e]
		b.Grounded = false
		Integrate(b, s.gravity, secs)
	}

	// Narrow phase over every non static-static pair
	s.contacts = make(map[core.Entity][]core.Entity, len(s.contacts))
	s.contactPairs = 0
	for i := 0; i < len(s.order); i++ {
		ea := s.order[i]
		a := s.bodies[ea]
		boxA, moveA := a.sweep()
		for j := i + 1; j < len(s.order); j++ {
			eb := s.order[j]
			b := s.bodies[eb]
			if a.Kind == BodyStatic && b.Kind == BodyStatic {
				continue
			}
			boxB, moveB := b.sweep()
			if !boxA.SweepOverlaps(vmath.V2Sub(moveA, moveB), boxB) {
				continue
			}
			if s.filter != nil && !s.filter(ea, eb) {
				continue
			}
			s.contacts[ea] = append(s.contacts[ea], eb)
			s.contacts[eb] = append(s.contacts[eb], ea)
			s.contactPairs++
		}
	}

	// Resolve penetration of non-swept dynamic bodies into statics
	for _, e := range s.order {
		b := s.bodies[e]
		if b.Kind != BodyDynamic || b.Swept {
			continue
		}
		for _, oe := range s.order {
			o := s.bodies[oe]
			if o.Kind != BodyStatic {
				continue
			}
			PushOut(b, o.Bounds())
		}
	}

	return s.contactPairs
}
