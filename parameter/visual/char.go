package visual

// Entity glyphs
const (
	CharPlayer     = '@'
	CharTarget     = 'Ж'
	CharWall       = '█'
	CharFloor      = '▀'
	CharCrosshair  = '+'
	CharProjectile = '•'
)
