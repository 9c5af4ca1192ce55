package visual

const (
	// HUDRows is the number of terminal rows below the arena reserved for the HUD
	HUDRows = 2

	// ArenaViewScale is the visible half extent as a fraction of the arena diameter
	// 0.5 is the inner wall face; the remainder shows a strip of wall
	ArenaViewScale = 0.6
)
