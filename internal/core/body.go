package core

import "math"

// renormalizeEpsilon is the allowed drift of |Direction| before it is snapped back to 1.
const renormalizeEpsilon = 1e-9

// Body is the rigid-body state shared by every simulated entity.
type Body struct {
	Position Vec2
	Velocity Vec2

	// Throttle is a scalar forward acceleration applied to Velocity
	// by bodies that use a throttle model (the player ship).
	Throttle float64

	// Direction is the unit heading.
	Direction Vec2

	// AngularSpeed is the turn rate in radians per second.
	AngularSpeed float64
}

// Integrate advances the position by velocity over dt seconds.
func (b *Body) Integrate(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// IntegrateThrottled advances the position by velocity scaled by the throttle.
func (b *Body) IntegrateThrottled(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(b.Throttle * dt))
}

// Turn rotates the heading by angle radians, keeping it unit length.
func (b *Body) Turn(angle float64) {
	b.Direction = b.Direction.Rotate(angle)
	if l := b.Direction.Length(); l != 0 && math.Abs(l-1) > renormalizeEpsilon {
		b.Direction = b.Direction.Scale(1 / l)
	}
}

// Heading returns the direction as an angle in radians.
func (b Body) Heading() float64 {
	return b.Direction.Angle()
}

// Entity is a Body with an extent.
type Entity struct {
	Body
	Width, Height float64
}

// Collider returns the axis-aligned box centered on Position.
func (e Entity) Collider() Box {
	return BoxAt(e.Position, e.Width, e.Height)
}

// Collides reports whether two entities' colliders intersect.
func Collides(a, b Entity) bool {
	return HasIntersection(a.Collider(), b.Collider())
}
