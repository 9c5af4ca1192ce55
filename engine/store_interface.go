package engine

import (
	"github.com/lixenwraith/vi-arena/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World manages all stores uniformly for entity destruction without knowing the concrete type
type AnyStore interface {
	// RemoveEntity deletes a component from an entity
	RemoveEntity(e core.Entity)

	// HasEntity checks if an entity has this component
	HasEntity(e core.Entity) bool

	// CountEntities returns the number of entities with this component
	CountEntities() int

	// ClearAllComponents removes all components from this store
	ClearAllComponents()
}
