package core

// Texture identifies a sprite. Frontends decide how each one looks.
type Texture int

const (
	TextureNone Texture = iota
	TextureShip
	TextureShipAlt
	TextureBullet
	TextureAsteroid
	TextureTurret
	TextureEnemy
	TextureExplosion
)

// Canvas is the drawing capability handed to scenes once per frame.
// Coordinates are world units; the frontend scales them.
type Canvas interface {
	DrawRect(box Box, c Color)
	DrawLine(p0, p1 Vec2, c Color)
	// DrawTexture draws t stretched over box, rotated by angle radians around its center.
	DrawTexture(t Texture, box Box, angle float64, tint Color)
	DrawText(x, y float64, text string, c Color)
}

// NopCanvas discards all drawing. Useful for headless stepping.
type NopCanvas struct{}

func (NopCanvas) DrawRect(Box, Color)                      {}
func (NopCanvas) DrawLine(Vec2, Vec2, Color)               {}
func (NopCanvas) DrawTexture(Texture, Box, float64, Color) {}
func (NopCanvas) DrawText(float64, float64, string, Color) {}
