package combat

import (
	"github.com/lixenwraith/vi-arena/core"
)

//go:generate go tool mockgen -destination=mocks/mock_contact.go -package=mocks github.com/lixenwraith/vi-arena/combat ContactQuery

// ContactQuery reports current contacts, satisfied by *physics.Space
type ContactQuery interface {
	CollidingWith(e core.Entity) []core.Entity
}
