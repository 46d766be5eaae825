package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// imageCanvas implements core.Canvas on an ebiten image whose logical size
// equals the world, so world units are pixels.
type imageCanvas struct {
	dst  *ebiten.Image
	face text.Face
}

func (c imageCanvas) DrawRect(box core.Box, color core.Color) {
	if box.Empty() {
		return
	}
	vector.DrawFilledRect(c.dst, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), color.RGBA(), false)
}

func (c imageCanvas) DrawLine(p0, p1 core.Vec2, color core.Color) {
	vector.StrokeLine(c.dst, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y), 1, color.RGBA(), true)
}

// DrawTexture draws sprites as vector shapes. Ships are triangles pointing
// along angle; rocks are outlined circles.
func (c imageCanvas) DrawTexture(t core.Texture, box core.Box, angle float64, tint core.Color) {
	clr := tint.RGBA()
	center := box.Center()
	cx, cy := float32(center.X), float32(center.Y)
	radius := float32(math.Min(box.W, box.H) / 2)

	switch t {
	case core.TextureShip, core.TextureShipAlt:
		c.drawShip(box, angle, tint)
		if t == core.TextureShipAlt {
			vector.StrokeCircle(c.dst, cx, cy, radius/3, 1, clr, true)
		}
	case core.TextureBullet:
		vector.DrawFilledCircle(c.dst, cx, cy, radius, clr, true)
	case core.TextureAsteroid:
		vector.StrokeCircle(c.dst, cx, cy, radius, 2, clr, true)
	case core.TextureTurret:
		vector.StrokeRect(c.dst, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), 2, clr, false)
		vector.DrawFilledCircle(c.dst, cx, cy, radius/3, clr, true)
	case core.TextureEnemy:
		vector.DrawFilledRect(c.dst, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), clr, false)
	case core.TextureExplosion:
		for i := float32(1); i <= 3; i++ {
			vector.StrokeCircle(c.dst, cx, cy, radius*i/3, 1, clr, true)
		}
	default:
		c.DrawRect(box, tint)
	}
}

// drawShip outlines a triangle inscribed in box, nose along angle.
func (c imageCanvas) drawShip(box core.Box, angle float64, tint core.Color) {
	center := box.Center()
	dir := core.FromAngle(angle)
	side := dir.Rotate(math.Pi / 2)

	nose := center.Add(dir.Scale(box.W / 2))
	tail := center.Sub(dir.Scale(box.W / 2))
	left := tail.Add(side.Scale(box.H / 2))
	right := tail.Sub(side.Scale(box.H / 2))

	c.DrawLine(nose, left, tint)
	c.DrawLine(left, right, tint)
	c.DrawLine(right, nose, tint)
}

func (c imageCanvas) DrawText(x, y float64, s string, color core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.RGBA())
	text.Draw(c.dst, s, c.face, op)
}
