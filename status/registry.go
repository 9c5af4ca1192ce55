package status

import (
	"slices"
	"sync/atomic"
)

// Metric keys shared by systems, HUD and spectator snapshots
const (
	KeyTicks          = "engine.ticks"
	KeyEntities       = "engine.entities"
	KeyFired          = "combat.fired"
	KeyHits           = "combat.hits"
	KeyDespawned      = "combat.despawned"
	KeyCulled         = "combat.culled"
	KeyDefeated       = "combat.defeated"
	KeyProjectiles    = "combat.projectiles"
	KeyContacts       = "physics.contacts"
	KeySpectators     = "network.spectators"
	KeyPaused         = "engine.paused"
	KeyAudioAvailable = "audio.available"
)

var (
	// roundCounters accumulate per round and are zeroed on restart
	roundCounters = []string{KeyFired, KeyHits, KeyDespawned, KeyCulled, KeyDefeated}

	gauges = []string{KeyTicks, KeyEntities, KeyProjectiles, KeyContacts, KeySpectators}
	flags  = []string{KeyPaused, KeyAudioAvailable}
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates a registry with every arena metric registered at zero
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](flags...),
		Ints:  NewMetricMap[atomic.Int64](append(slices.Clone(gauges), roundCounters...)...),
	}
}

// IntSnapshot returns a point-in-time copy of every integer metric
func (r *Registry) IntSnapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}

// ResetRound zeroes the per-round combat counters, leaving engine and network gauges intact
func (r *Registry) ResetRound() {
	for _, k := range roundCounters {
		r.Ints.Get(k).Store(0)
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}
