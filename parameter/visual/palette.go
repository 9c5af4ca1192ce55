package visual

import (
	"github.com/gdamore/tcell/v2"
)

// Base colors
var (
	ColorBackground = tcell.NewRGBColor(12, 12, 18)
	ColorWall       = tcell.NewRGBColor(70, 70, 90)
	ColorFloor      = tcell.NewRGBColor(140, 110, 60)
	ColorPlayer     = tcell.NewRGBColor(80, 220, 255)
	ColorTarget     = tcell.NewRGBColor(255, 90, 70)
	ColorProjectile = tcell.NewRGBColor(255, 230, 80)
	ColorCrosshair  = tcell.NewRGBColor(200, 200, 200)
	ColorHUD        = tcell.NewRGBColor(220, 220, 220)
	ColorHealthHigh = tcell.NewRGBColor(60, 220, 90)
	ColorHealthLow  = tcell.NewRGBColor(230, 60, 60)
	ColorCooldown   = tcell.NewRGBColor(120, 160, 255)
	ColorOverlay    = tcell.NewRGBColor(255, 255, 255)
)

// Entity styles
var (
	StyleBackground = tcell.StyleDefault.Background(ColorBackground)
	StyleWall       = StyleBackground.Foreground(ColorWall)
	StyleFloor      = StyleBackground.Foreground(ColorFloor)
	StylePlayer     = StyleBackground.Foreground(ColorPlayer).Bold(true)
	StyleTarget     = StyleBackground.Foreground(ColorTarget).Bold(true)
	StyleProjectile = StyleBackground.Foreground(ColorProjectile)
	StyleCrosshair  = StyleBackground.Foreground(ColorCrosshair)
)

// HUD styles
var (
	StyleHUD         = StyleBackground.Foreground(ColorHUD)
	StyleHealthHigh  = StyleBackground.Foreground(ColorHealthHigh)
	StyleHealthLow   = StyleBackground.Foreground(ColorHealthLow)
	StyleCooldownBar = StyleBackground.Foreground(ColorCooldown)
	StyleOverlay     = tcell.StyleDefault.Foreground(ColorOverlay).Background(tcell.ColorBlack).Bold(true)
)
