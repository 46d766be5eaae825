package core

// Bounds is the rectangular world area starting at the origin.
type Bounds struct {
	W, H float64
}

// Box returns the full world rectangle.
func (b Bounds) Box() Box {
	return Box{W: b.W, H: b.H}
}

// Center returns the middle of the world.
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.W * 0.5, Y: b.H * 0.5}
}

// OnScreen reports whether box intersects the world rectangle.
func (b Bounds) OnScreen(box Box) bool {
	return HasIntersection(box, b.Box())
}

// Wrap moves a body that crossed an edge to the opposite edge.
//
// The checks are chained: at most one correction is applied per call, and
// x-corrections take precedence over y. A body leaving through a corner is
// fixed on x this call and on y the next.
func (b Bounds) Wrap(body *Body) {
	p := &body.Position
	if p.X <= 0 {
		p.X = b.W
	} else if p.X >= b.W {
		p.X = 0
	} else if p.Y <= 0 {
		p.Y = b.H
	} else if p.Y >= b.H {
		p.Y = 0
	}
}
