package component

// GeometryKind distinguishes static arena pieces
type GeometryKind uint8

const (
	GeometryWall GeometryKind = iota
	GeometryFloor
)

// GeometryComponent tags static arena geometry
type GeometryComponent struct {
	Kind GeometryKind
}
