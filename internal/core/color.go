package core

// Color is a semantic foreground color for a screen cell.
// Hosts translate it to terminal or RGB colors.
type Color uint8

const (
	ColorDefault Color = iota

	// ColorBackdrop is the background wall tiles.
	ColorBackdrop
	// ColorWall is the deadspace beyond the side walls.
	ColorWall
	// ColorPlatform is the platform shell tiles.
	ColorPlatform
	// ColorPlatformCorner is the platform corner tiles.
	ColorPlatformCorner
	// ColorPlayer is the paper plane.
	ColorPlayer
	// ColorHUD is score and level text.
	ColorHUD
	// ColorAlert is game over and pause banners.
	ColorAlert
	// ColorExplosion is the crash animation.
	ColorExplosion
)
