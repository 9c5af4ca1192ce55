package combat

import (
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
)

// Hit is one resolved projectile contact
type Hit struct {
	Projectile core.Entity
	Source     core.Entity
	Target     core.Entity

	// Amount is the damage actually removed, Remaining the target health afterwards
	Amount    uint16
	Remaining uint16

	// Damageable is false for targets without health (arena geometry, projectiles)
	Damageable bool
}

// Result is the outcome of one resolution pass
type Result struct {
	Hits      []Hit
	Despawned []core.Entity
}

// Resolver applies projectile damage from the contact set and despawns spent projectiles
type Resolver struct {
	world    *engine.World
	contacts ContactQuery
}

// NewResolver creates a resolver reading contacts from q
func NewResolver(world *engine.World, q ContactQuery) *Resolver {
	return &Resolver{world: world, contacts: q}
}

// Resolve runs once per tick after the physics step
// Every projectile touching anything other than its source is destroyed exactly once after the pass;
// each damageable entity it touches loses the projectile's damage, saturating at zero
func (r *Resolver) Resolve() Result {
	var res Result

	projectiles := r.world.Components.Projectile
	healths := r.world.Components.Health

	var spent []core.Entity
	marked := make(map[core.Entity]struct{})

	for _, p := range projectiles.GetAllEntities() {
		proj, ok := projectiles.GetComponent(p)
		if !ok {
			continue
		}

		for _, target := range r.contacts.CollidingWith(p) {
			if target == proj.Source || !r.world.Alive(target) {
				continue
			}

			hit := Hit{Projectile: p, Source: proj.Source, Target: target}
			if h, ok := healths.GetComponent(target); ok {
				before := h.Current
				hit.Remaining = h.Apply(proj.Damage)
				hit.Amount = before - hit.Remaining
				hit.Damageable = true
				healths.SetComponent(target, h)
			}
			res.Hits = append(res.Hits, hit)

			if _, seen := marked[p]; !seen {
				marked[p] = struct{}{}
				spent = append(spent, p)
			}
		}
	}

	for _, p := range spent {
		if r.world.DestroyEntity(p) {
			res.Despawned = append(res.Despawned, p)
		}
	}
	return res
}
