// Package turrets implements the turret lab: player-placed turrets that
// shoot at the nearest enemy and keep a kill count across runs.
package turrets

import (
	"math"
	"slices"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/save"
)

// Lab constants.
const (
	TurretSize   = 100.0
	EnemyW       = 60.0
	EnemyH       = 40.0
	EnemyHealth  = 100
	BulletSize   = 10.0
	BulletSpeed  = 100.0
	BulletDamage = 25
	FireInterval = 1.0 // seconds between turret shots
)

// Turret fires at the nearest enemy whenever its cooldown runs out.
// Boxes in the lab are anchored at their top-left corner.
type Turret struct {
	Box      core.Box
	Kills    int
	Cooldown float64
}

// Enemy is a stationary target.
type Enemy struct {
	Box    core.Box
	Health int
}

// Bullet carries the ID of the turret that fired it. The turret may be
// removed while the bullet is in flight.
type Bullet struct {
	Box       core.Box
	Direction core.Vec2
	Damage    int
	Owner     core.EntityID
}

// Lab holds the turrets, enemies and bullets.
type Lab struct {
	bounds  core.Bounds
	rng     *core.Rand
	Turrets *core.Arena[Turret]
	Enemies []Enemy
	Bullets []Bullet
}

// NewLab creates an empty lab.
func NewLab(bounds core.Bounds, seed int64) *Lab {
	return &Lab{
		bounds:  bounds,
		rng:     core.NewRand(seed),
		Turrets: core.NewArena[Turret](),
	}
}

func (l *Lab) randomBox(w, h float64) core.Box {
	return core.Box{
		X: l.rng.Range(0, l.bounds.W),
		Y: l.rng.Range(0, l.bounds.H),
		W: w,
		H: h,
	}
}

// AddTurret places a turret at a random spot and returns its ID.
func (l *Lab) AddTurret() core.EntityID {
	return l.Turrets.Insert(Turret{Box: l.randomBox(TurretSize, TurretSize), Cooldown: FireInterval})
}

// RemoveTurret removes the most recently added turret.
func (l *Lab) RemoveTurret() bool {
	return l.Turrets.RemoveLast()
}

// AddEnemy places an enemy at a random spot.
func (l *Lab) AddEnemy() *Enemy {
	l.Enemies = append(l.Enemies, Enemy{Box: l.randomBox(EnemyW, EnemyH), Health: EnemyHealth})
	return &l.Enemies[len(l.Enemies)-1]
}

// Step runs key actions, turret fire, bullet motion and cleanup.
func (l *Lab) Step(in core.Input, dt float64) {
	if dt < 0 {
		dt = 0
	}
	if in.IsKeyPressed(core.KeyT) {
		l.AddTurret()
	}
	if in.IsKeyPressed(core.KeyR) {
		l.RemoveTurret()
	}
	if in.IsKeyPressed(core.KeyE) {
		l.AddEnemy()
	}

	l.Turrets.Each(func(id core.EntityID, t *Turret) {
		t.Cooldown -= dt
		if t.Cooldown > 0 {
			return
		}
		t.Cooldown = FireInterval
		if target := l.nearestEnemy(t.Box); target != nil {
			l.fire(id, t, target)
		}
	})

	for i := range l.Bullets {
		b := &l.Bullets[i]
		b.Box.X += b.Direction.X * BulletSpeed * dt
		b.Box.Y += b.Direction.Y * BulletSpeed * dt
	}

	l.Bullets = slices.DeleteFunc(l.Bullets, func(b Bullet) bool { return l.resolve(&b) })
	l.Enemies = slices.DeleteFunc(l.Enemies, func(e Enemy) bool { return e.Health <= 0 })
}

// nearestEnemy compares top-left corners.
func (l *Lab) nearestEnemy(from core.Box) *Enemy {
	var nearest *Enemy
	best := math.MaxFloat64
	origin := core.V(from.X, from.Y)
	for i := range l.Enemies {
		e := &l.Enemies[i]
		if d := origin.DistanceSq(core.V(e.Box.X, e.Box.Y)); d < best {
			best = d
			nearest = e
		}
	}
	return nearest
}

func (l *Lab) fire(id core.EntityID, t *Turret, target *Enemy) {
	dir := core.V(target.Box.X-t.Box.X, target.Box.Y-t.Box.Y).Normalize()
	l.Bullets = append(l.Bullets, Bullet{
		Box: core.Box{
			X: t.Box.X + t.Box.W*dir.X,
			Y: t.Box.Y + t.Box.H*dir.Y,
			W: BulletSize,
			H: BulletSize,
		},
		Direction: dir,
		Damage:    BulletDamage,
		Owner:     id,
	})
}

// resolve reports whether the bullet is spent. An enemy killed by the hit
// credits its owner if the owner still exists.
func (l *Lab) resolve(b *Bullet) bool {
	if !l.bounds.OnScreen(b.Box) {
		return true
	}
	for i := range l.Enemies {
		e := &l.Enemies[i]
		if !core.HasIntersection(b.Box, e.Box) {
			continue
		}
		wasAlive := e.Health > 0
		e.Health -= b.Damage
		if wasAlive && e.Health <= 0 {
			if owner, ok := l.Turrets.Get(b.Owner); ok {
				owner.Kills++
			}
		}
		return true
	}
	return false
}

// TotalKills sums the kills of every turret.
func (l *Lab) TotalKills() int {
	n := 0
	l.Turrets.Each(func(_ core.EntityID, t *Turret) { n += t.Kills })
	return n
}

// Snapshot converts the turrets to their saved form.
func (l *Lab) Snapshot() save.TurretLab {
	var lab save.TurretLab
	l.Turrets.Each(func(_ core.EntityID, t *Turret) {
		lab.Turrets = append(lab.Turrets, save.TurretSave{
			X:        t.Box.X,
			Y:        t.Box.Y,
			W:        t.Box.W,
			H:        t.Box.H,
			Kills:    t.Kills,
			Cooldown: t.Cooldown,
		})
	})
	return lab
}

// Restore replaces the turrets with saved ones. Enemies and bullets are cleared.
func (l *Lab) Restore(lab save.TurretLab) {
	l.Turrets = core.NewArena[Turret]()
	l.Enemies = l.Enemies[:0]
	l.Bullets = l.Bullets[:0]
	for _, ts := range lab.Turrets {
		l.Turrets.Insert(Turret{
			Box:      core.Box{X: ts.X, Y: ts.Y, W: ts.W, H: ts.H},
			Kills:    ts.Kills,
			Cooldown: ts.Cooldown,
		})
	}
}
