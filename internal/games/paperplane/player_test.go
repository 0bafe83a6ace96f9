package paperplane

import (
	"math"
	"testing"

	"github.com/vovakirdan/paperplane/internal/core"
)

func newTestPlayer() Player {
	scr, sizes := testScreen()
	return NewPlayer(scr, sizes, 6, 6)
}

func TestPlayerSpawn(t *testing.T) {
	p := newTestPlayer()

	if !approx(p.Pos.X, 192+16) || !approx(p.Pos.Y, 160) {
		t.Errorf("spawn at %+v, want (208, 160)", p.Pos)
	}
	if p.Heading != 0 || p.Facing != core.Right {
		t.Errorf("spawn heading %d facing %v, want flat glide right", p.Heading, p.Facing)
	}
}

func TestPlayerSnapSteering(t *testing.T) {
	p := newTestPlayer()
	press := Steering{LeftPressed: true, LeftHeld: true}

	// Each press tilts one frame further toward the left.
	wantHeadings := []int{1, 2, 3, 4, 5, 4, 3}
	wantFacing := []core.Direction{core.Right, core.Right, core.Right, core.Right, core.Right, core.Left, core.Left}
	for i, want := range wantHeadings {
		p.Steer(press, 1.0/60)
		if p.Heading != want || p.Facing != wantFacing[i] {
			t.Fatalf("press %d: heading %d facing %v, want %d %v", i+1, p.Heading, p.Facing, want, wantFacing[i])
		}
	}

	// Pressing right walks back.
	p.Steer(Steering{RightPressed: true, RightHeld: true}, 1.0/60)
	if p.Heading != 4 || p.Facing != core.Left {
		t.Errorf("after right press: heading %d facing %v", p.Heading, p.Facing)
	}
}

func TestPlayerPressTurnsOnSameTick(t *testing.T) {
	p := newTestPlayer()
	rpf := math.Pi / 2 / 5

	// Snap to the centre of heading 1, then 6 rad/s for 0.01s.
	p.Steer(Steering{LeftPressed: true, LeftHeld: true}, 0.01)
	if want := 4.5*rpf - 0.06; !approx(p.Angle, want) {
		t.Errorf("angle = %v, want %v", p.Angle, want)
	}

	// A press with no hold only snaps.
	q := newTestPlayer()
	q.Steer(Steering{LeftPressed: true}, 0.01)
	if !approx(q.Angle, 4.5*rpf) {
		t.Errorf("press only: angle = %v, want %v", q.Angle, 4.5*rpf)
	}
}

func TestPlayerSnapClampsAtFlat(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 3; i++ {
		p.Steer(Steering{RightPressed: true}, 1.0/60)
	}
	if p.Heading != 0 || !approx(p.Angle, math.Pi/2) {
		t.Errorf("heading %d angle %v, want flat right", p.Heading, p.Angle)
	}
}

func TestPlayerHeldTurn(t *testing.T) {
	p := newTestPlayer()
	held := Steering{LeftHeld: true}

	p.Steer(held, 0.1)
	if !approx(p.Angle, math.Pi/2-0.6) {
		t.Errorf("angle after 0.1s = %v", p.Angle)
	}
	for i := 0; i < 20; i++ {
		p.Steer(held, 0.1)
	}
	if !approx(p.Angle, -math.Pi/2) {
		t.Errorf("angle should clamp at -π/2, got %v", p.Angle)
	}
	if p.Heading != 0 || p.Facing != core.Left {
		t.Errorf("heading %d facing %v, want flat left", p.Heading, p.Facing)
	}

	// Both keys cancel out.
	before := p.Angle
	p.Steer(Steering{LeftHeld: true, RightHeld: true}, 0.1)
	if p.Angle != before {
		t.Error("opposing keys should not turn")
	}
}

func TestPlayerMove(t *testing.T) {
	maxSpeed := core.Vec2{X: 125, Y: 212.5}

	t.Run("flat glide", func(t *testing.T) {
		p := newTestPlayer()
		p.Move(maxSpeed, 1)
		if !approx(p.Speed.X, 125) || !approx(p.Speed.Y, 212.5/6) {
			t.Errorf("speed = %+v", p.Speed)
		}
		if !approx(p.Pos.X, 208+125) || !approx(p.Pos.Y, 160-212.5/6) {
			t.Errorf("pos = %+v", p.Pos)
		}
	})

	t.Run("dive", func(t *testing.T) {
		p := newTestPlayer()
		p.Angle = 0
		p.updateHeading()
		p.Move(maxSpeed, 1)
		if p.Speed.X != 0 || !approx(p.Speed.Y, 212.5) {
			t.Errorf("speed = %+v", p.Speed)
		}
		if !approx(p.Pos.X, 208) {
			t.Errorf("dive drifted to x=%v", p.Pos.X)
		}
	})

	t.Run("glide left", func(t *testing.T) {
		p := newTestPlayer()
		p.Angle = -math.Pi / 2
		p.updateHeading()
		p.Move(maxSpeed, 0.5)
		if !approx(p.Pos.X, 208-62.5) {
			t.Errorf("x = %v", p.Pos.X)
		}
	})
}

func TestCameraFollow(t *testing.T) {
	scr, _ := testScreen()
	p := newTestPlayer()
	p.Pos.Y = -500

	var c Camera
	c.Follow(p, scr)
	if c.X != 320 || c.Y != -500 {
		t.Errorf("camera at %+v", c)
	}

	scr.Refresh(640, 320, 256, &c)
	checkRange(t, "visible", scr.Visible, -660, -340)
	if scr.Deadspace != 192 {
		t.Errorf("deadspace = %v", scr.Deadspace)
	}
}
