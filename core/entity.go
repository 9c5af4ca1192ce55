package core

// Entity is a unique identifier for an entity; 0 is never issued and means "none"
type Entity uint64

// NoEntity is the zero entity
const NoEntity Entity = 0
