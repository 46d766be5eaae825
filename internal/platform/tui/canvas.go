package tui

import (
	"math"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// Glyphs used to draw textures in cells.
const (
	fillGlyph      = '█'
	shipBodyGlyph  = '▒'
	bulletGlyph    = '•'
	asteroidGlyph  = '@'
	turretGlyph    = '#'
	enemyGlyph     = 'X'
	explosionGlyph = '*'
	lineGlyph      = '·'
)

// headingGlyphs are ship noses for eight headings, clockwise from +x.
// The world's y axis points down, as it does on screen.
var headingGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// ScreenCanvas draws world-space shapes into a cell Screen. The world is
// stretched over the whole screen, so cells are rarely square.
type ScreenCanvas struct {
	screen *core.Screen
	world  core.Bounds
}

// NewScreenCanvas creates a canvas mapping world onto screen.
func NewScreenCanvas(screen *core.Screen, world core.Bounds) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, world: world}
}

func (c *ScreenCanvas) rows() int {
	return c.screen.Height()
}

// toCell maps a world point to a cell.
func (c *ScreenCanvas) toCell(x, y float64) (int, int) {
	if c.world.W <= 0 || c.world.H <= 0 {
		return 0, 0
	}
	cx := int(math.Floor(x * float64(c.screen.Width()) / c.world.W))
	cy := int(math.Floor(y * float64(c.rows()) / c.world.H))
	return cx, cy
}

// toRect maps a world box to cells. Non-empty boxes cover at least one cell.
func (c *ScreenCanvas) toRect(b core.Box) core.Rect {
	x0, y0 := c.toCell(b.X, b.Y)
	x1, y1 := c.toCell(b.Right(), b.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (c *ScreenCanvas) fill(r core.Rect, glyph rune, color core.Color) {
	rows := c.rows()
	for y := r.Y; y < r.Bottom(); y++ {
		if y < 0 || y >= rows {
			continue
		}
		for x := r.X; x < r.Right(); x++ {
			c.screen.SetColored(x, y, glyph, color)
		}
	}
}

// DrawRect implements core.Canvas. Black fills clear the area.
func (c *ScreenCanvas) DrawRect(box core.Box, color core.Color) {
	if box.Empty() {
		return
	}
	if color == core.ColorBlack {
		c.fill(c.toRect(box), ' ', core.ColorDefault)
		return
	}
	c.fill(c.toRect(box), fillGlyph, color)
}

// DrawLine implements core.Canvas with Bresenham's algorithm over cells.
func (c *ScreenCanvas) DrawLine(p0, p1 core.Vec2, color core.Color) {
	x0, y0 := c.toCell(p0.X, p0.Y)
	x1, y1 := c.toCell(p1.X, p1.Y)
	dx := core.Max(x1-x0, x0-x1)
	dy := -core.Max(y1-y0, y0-y1)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	rows := c.rows()
	errAcc := dx + dy
	for {
		if y0 >= 0 && y0 < rows {
			c.screen.SetColored(x0, y0, lineGlyph, color)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y0 += sy
		}
	}
}

// DrawTexture implements core.Canvas. Ships show their heading as an arrow
// on the center cell; everything else is a filled glyph block.
func (c *ScreenCanvas) DrawTexture(t core.Texture, box core.Box, angle float64, tint core.Color) {
	r := c.toRect(box)
	switch t {
	case core.TextureShip, core.TextureShipAlt:
		c.fill(r, shipBodyGlyph, tint)
		cx, cy := c.toCell(box.Center().X, box.Center().Y)
		if cy >= 0 && cy < c.rows() {
			c.screen.SetColored(cx, cy, HeadingGlyph(angle), tint)
		}
	case core.TextureBullet:
		c.fill(r, bulletGlyph, tint)
	case core.TextureAsteroid:
		c.fill(r, asteroidGlyph, tint)
	case core.TextureTurret:
		c.fill(r, turretGlyph, tint)
	case core.TextureEnemy:
		c.fill(r, enemyGlyph, tint)
	case core.TextureExplosion:
		c.fill(r, explosionGlyph, tint)
	default:
		c.fill(r, fillGlyph, tint)
	}
}

// DrawText implements core.Canvas.
func (c *ScreenCanvas) DrawText(x, y float64, text string, color core.Color) {
	cx, cy := c.toCell(x, y)
	if cy < 0 || cy >= c.rows() {
		return
	}
	c.screen.DrawTextColored(cx, cy, text, color)
}

// HeadingGlyph returns the arrow closest to angle radians.
func HeadingGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingGlyphs[octant]
}
