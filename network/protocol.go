package network

// Message types carried in the "type" field of every frame
const (
	TypeHello    = "hello"
	TypeSnapshot = "snapshot"
)

// Hello is the first frame a spectator receives
type Hello struct {
	Type     string `json:"type"`
	ClientID string `json:"client_id"`
	MatchID  string `json:"match_id"`
}

// EntitySnapshot is one drawable entity
type EntitySnapshot struct {
	ID        uint64  `json:"id"`
	Kind      string  `json:"kind"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	W         float64 `json:"w"`
	H         float64 `json:"h"`
	Health    uint16  `json:"health,omitempty"`
	MaxHealth uint16  `json:"max_health,omitempty"`
}

// Snapshot is the periodic world state broadcast to spectators
type Snapshot struct {
	Type    string `json:"type"`
	MatchID string `json:"match_id"`
	Frame   int64  `json:"frame"`
	Round   int    `json:"round"`
	Paused  bool   `json:"paused"`
	Outcome string `json:"outcome"`

	// Cooldown is the player's charge progress in [0, 1]
	Cooldown float64 `json:"cooldown"`

	Entities []EntitySnapshot `json:"entities"`
	Metrics  map[string]int64 `json:"metrics,omitempty"`
}

// Entity kinds
const (
	KindPlayer     = "player"
	KindTarget     = "target"
	KindProjectile = "projectile"
	KindWall       = "wall"
	KindFloor      = "floor"
)
