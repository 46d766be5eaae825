package core

import (
	"math"
	"testing"
)

func TestBodyIntegrate(t *testing.T) {
	b := Body{Position: V(10, 10), Velocity: V(100, -50)}
	b.Integrate(0.5)
	if b.Position != V(60, -15) {
		t.Errorf("Integrate() position = %v, expected (60, -15)", b.Position)
	}

	b = Body{Position: V(0, 0), Velocity: V(600, 0), Throttle: 0.5}
	b.IntegrateThrottled(0.1)
	if !approx(b.Position.X, 30) {
		t.Errorf("IntegrateThrottled() x = %v, expected 30", b.Position.X)
	}
}

func TestBodyTurnKeepsUnitDirection(t *testing.T) {
	b := Body{Direction: V(1, 0)}
	step := 200 * DegToRad / 60
	for i := 0; i < 100000; i++ {
		b.Turn(step)
	}
	if l := b.Direction.Length(); math.Abs(l-1) > 1e-6 {
		t.Errorf("|Direction| drifted to %v", l)
	}
}

func TestEntityCollider(t *testing.T) {
	e := Entity{Body: Body{Position: V(512, 384)}, Width: 50, Height: 50}
	c := e.Collider()
	if c.X != 487 || c.Y != 359 || c.W != 50 || c.H != 50 {
		t.Errorf("Collider() = %+v, expected centered 50x50 box", c)
	}
}

func TestCollides(t *testing.T) {
	a := Entity{Body: Body{Position: V(100, 100)}, Width: 50, Height: 50}

	tests := []struct {
		name string
		pos  Vec2
		want bool
	}{
		{"overlapping", V(130, 100), true},
		{"touching edges", V(150, 100), true},
		{"apart", V(151, 100), false},
	}

	for _, tc := range tests {
		b := Entity{Body: Body{Position: tc.pos}, Width: 50, Height: 50}
		if got := Collides(a, b); got != tc.want {
			t.Errorf("%s: Collides() = %v, expected %v", tc.name, got, tc.want)
		}
	}
}
