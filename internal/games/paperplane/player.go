package paperplane

import (
	"math"

	"github.com/vovakirdan/paperplane/internal/core"
)

// Steering is the host-independent steer input for one tick.
type Steering struct {
	LeftPressed, RightPressed bool // Edge: key went down this tick
	LeftHeld, RightHeld       bool
}

// angleLimits bounds the heading: -π/2 flies left, 0 dives, +π/2 flies right.
var angleLimits = core.Range[float64]{Min: -math.Pi / 2, Max: math.Pi / 2}

// Player is the paper plane.
// Heading index 0 is a flat glide and frames-1 is straight down.
type Player struct {
	Pos     core.Vec2
	Angle   float64
	Facing  core.Direction
	Heading int
	Speed   core.Vec2

	frames   int
	turnRate float64
}

// NewPlayer spawns the plane against the left wall at half window height,
// gliding right.
func NewPlayer(scr ScreenModel, sizes Sizes, frames int, turnRate float64) Player {
	p := Player{
		Pos:      core.Vec2{X: scr.PlayfieldLeft() + sizes.Player.X/2, Y: scr.Height / 2},
		Angle:    angleLimits.Max,
		Facing:   core.Right,
		frames:   frames,
		turnRate: turnRate,
	}
	p.updateHeading()
	return p
}

// radPerFrame is the angle covered by one heading sprite.
func (p *Player) radPerFrame() float64 {
	return angleLimits.Max / float64(p.frames-1)
}

// Steer applies one tick of input to the angle. A fresh press snaps to the
// neighbouring heading frame, then a held key turns continuously, so the
// tick a key goes down gets both.
func (p *Player) Steer(in Steering, dt float64) {
	switch {
	case in.LeftPressed && !in.RightPressed:
		p.snap(-1)
	case in.RightPressed && !in.LeftPressed:
		p.snap(+1)
	}
	switch {
	case in.LeftHeld && !in.RightHeld:
		p.Angle -= p.turnRate * dt
	case in.RightHeld && !in.LeftHeld:
		p.Angle += p.turnRate * dt
	}
	p.Angle = core.Clamp(p.Angle, angleLimits.Min, angleLimits.Max)
	p.updateHeading()
}

// snap turns one frame toward delta's side. Frames are counted signed,
// from -(frames-1) for a flat left glide to +(frames-1) for a flat right one.
func (p *Player) snap(delta int) {
	last := p.frames - 1
	signed := core.Clamp(core.ReverseIndex(p.Heading, p.frames)*int(p.Facing.Sign())+delta, -last, last)
	switch mag := core.Abs(signed); {
	case mag == last:
		p.Angle = angleLimits.Max
	case mag > 0:
		p.Angle = (float64(mag) + 0.5) * p.radPerFrame() // centre of the frame
	default:
		p.Angle = 0
	}
	if signed < 0 {
		p.Angle = -p.Angle
	}
}

// updateHeading derives the sprite index and facing from the angle.
func (p *Player) updateHeading() {
	last := p.frames - 1
	sheet := int(core.Map(math.Abs(p.Angle), core.Range[float64]{Min: 0, Max: angleLimits.Max}, core.Range[float64]{Min: 0, Max: float64(last)}))
	p.Heading = core.ReverseIndex(sheet, p.frames)
	if sheet != 0 {
		if p.Angle < 0 {
			p.Facing = core.Left
		} else {
			p.Facing = core.Right
		}
	}
}

// Move advances the plane using the heading and the level's max speed.
// Flatter headings trade fall speed for sideways speed.
func (p *Player) Move(maxSpeed core.Vec2, dt float64) {
	last := p.frames - 1
	p.Speed = core.Vec2{
		X: maxSpeed.X / float64(last) * float64(core.ReverseIndex(p.Heading, p.frames)),
		Y: maxSpeed.Y / float64(p.frames) * float64(p.Heading+1),
	}
	step := core.Vec2{X: p.Speed.X * p.Facing.Sign(), Y: -p.Speed.Y}
	p.Pos = p.Pos.Add(step.Scale(dt))
}

// Camera tracks the plane vertically and stays centred horizontally.
type Camera struct {
	X, Y float64
}

// Follow moves the camera to the player's height.
func (c *Camera) Follow(p Player, scr ScreenModel) {
	c.X = scr.Width / 2
	c.Y = p.Pos.Y
}

// Center resets the camera to the middle of the window.
func (c *Camera) Center(width, height float64) {
	c.X = width / 2
	c.Y = height / 2
}
