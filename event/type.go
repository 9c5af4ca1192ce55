package event

// EventType represents the type of game event
type EventType int

const (
	// EventProjectileSpawned signals a new projectile
	// Trigger: Spawner on successful fire
	// Consumer: AudioSystem, logging | Payload: *ProjectileSpawnedPayload
	EventProjectileSpawned EventType = iota

	// EventProjectileHit signals one resolved projectile contact
	// Trigger: DamageSystem, once per (projectile, target) pair
	// Consumer: AudioSystem | Payload: *ProjectileHitPayload
	EventProjectileHit

	// EventProjectileDespawned signals projectile removal
	// Trigger: DamageSystem (hit) or CullSystem (bounds/lifetime)
	// Consumer: logging | Payload: *ProjectileDespawnedPayload
	EventProjectileDespawned

	// EventActorDefeated signals an actor's health reached zero
	// Trigger: DefeatSystem, once per actor
	// Consumer: AudioSystem | Payload: *ActorDefeatedPayload
	EventActorDefeated

	// EventSoundRequest requests audio playback
	// Trigger: any system requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventPauseChanged signals pause state transition
	// Trigger: ClockScheduler.SetPaused
	// Consumer: logging | Payload: *PauseChangedPayload
	EventPauseChanged
)

// String returns the event name for logs
func (t EventType) String() string {
	switch t {
	case EventProjectileSpawned:
		return "projectile_spawned"
	case EventProjectileHit:
		return "projectile_hit"
	case EventProjectileDespawned:
		return "projectile_despawned"
	case EventActorDefeated:
		return "actor_defeated"
	case EventSoundRequest:
		return "sound_request"
	case EventPauseChanged:
		return "pause_changed"
	default:
		return "unknown"
	}
}

// GameEvent is a typed message pushed by systems during a tick
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
