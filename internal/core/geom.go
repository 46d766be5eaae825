// Package core provides fundamental types and utilities for the arcade simulation.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to keep
// scene logic pure and testable.
package core

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units.
// X and Y are the top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAt returns a box of the given size centered on c.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{X: c.X - w*0.5, Y: c.Y - h*0.5, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W*0.5, Y: b.Y + b.H*0.5}
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Scale returns the box grown (or shrunk) by factor around its center.
func (b Box) Scale(factor float64) Box {
	return BoxAt(b.Center(), b.W*factor, b.H*factor)
}

// Contains returns true if p lies inside the box (edges inclusive).
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Bottom()
}

// HasIntersection reports whether two boxes overlap on both axes.
// Touching edges count as an intersection; empty boxes never intersect.
func HasIntersection(a, b Box) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	if a.X > b.Right() || b.X > a.Right() {
		return false
	}
	if a.Y > b.Bottom() || b.Y > a.Bottom() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
