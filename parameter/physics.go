package parameter

// PixelsPerMeter scales physical constants into world units
const PixelsPerMeter = 16.0

// Gravity is the vertical acceleration applied to dynamic bodies (world units/s²)
const Gravity = -9.81 * PixelsPerMeter * 3.0

// Arena Geometry
const (
	// ArenaDiameter is the side of the square play area, centred at the origin
	ArenaDiameter = 360.0

	// FloorThickness is the height of each floating floor
	FloorThickness = 5.0

	// ArenaCullMargin extends the cull bounds beyond the arena walls
	ArenaCullMargin = 40.0
)
