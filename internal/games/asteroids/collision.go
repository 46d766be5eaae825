package asteroids

import (
	"math"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// resolveShipCollisions stuns, damages and knocks back on ship contact.
// Damage and knockback are gated by their own cooldowns; the stun is not.
func (w *World) resolveShipCollisions(audio core.Audio) {
	s := &w.Ship
	sc := w.cfg.Ship

	for t := range w.Asteroids {
		for i := range w.Asteroids[t] {
			a := &w.Asteroids[t][i]
			if !core.Collides(s.Entity, a.Entity) {
				continue
			}

			s.Velocity = core.Vec2{}
			s.Throttle = 0
			s.CollisionDelay = core.FrameCounter(sc.StunFrames)

			if !s.DamageCooldown.Active() {
				s.Health -= a.Damage
				s.DamageCooldown = core.FrameCounter(sc.DamageFrames)
				audio.PlaySound(core.SoundExplode, false)
			}

			if !s.KnockbackCooldown.Active() {
				w.knockback(a)
				s.KnockbackCooldown = core.FrameCounter(sc.KnockbackFrames)
			}
		}
	}
}

// knockback sends the asteroid back the way it came at a random speed.
// A stationary asteroid is pushed directly away from the ship.
func (w *World) knockback(a *Asteroid) {
	dir := a.Velocity.Normalize()
	if dir == (core.Vec2{}) {
		dir = w.Ship.Position.Sub(a.Position).Normalize()
	}
	speed := w.rng.Range(w.cfg.Ship.KnockbackMinSpeed, w.cfg.Ship.KnockbackMaxSpeed)
	a.Velocity = dir.Rotate(math.Pi).Scale(speed)
	a.Direction = a.Velocity.Normalize()
}

// resolveBulletCollisions moves every bullet and applies its first hit.
// Split children are appended after the pass so no bullet meets them this step.
func (w *World) resolveBulletCollisions(dt float64) {
	var spawned []Asteroid

	for i := range w.Bullets {
		b := &w.Bullets[i]
		b.Integrate(dt)

		// Off-screen is cheaper than the asteroid scan.
		if !w.bounds.OnScreen(b.Collider()) {
			b.dead = true
			continue
		}
		spawned = w.hitFirst(b, spawned)
	}

	for _, a := range spawned {
		w.Asteroids[a.Tier] = append(w.Asteroids[a.Tier], a)
	}
}

// hitFirst damages the first asteroid the bullet overlaps, in tier order.
// Asteroids already destroyed this step still absorb bullets; they only
// score and split once, on the step their health first drops to zero.
func (w *World) hitFirst(b *Bullet, spawned []Asteroid) []Asteroid {
	box := b.Collider()
	for t := range w.Asteroids {
		for i := range w.Asteroids[t] {
			a := &w.Asteroids[t][i]
			if !core.HasIntersection(box, a.Collider()) {
				continue
			}

			wasAlive := a.Alive()
			a.Health -= b.Damage
			b.dead = true

			if wasAlive && !a.Alive() {
				w.Score += a.Points
				spawned = append(spawned, w.split(a, b.Velocity)...)
			}
			return spawned
		}
	}
	return spawned
}

// split returns the two children of a destroyed asteroid. They fan out from
// the bullet's heading by a shared random angle, one each side, and start
// one parent size away from the parent's center.
func (w *World) split(parent *Asteroid, bulletVel core.Vec2) []Asteroid {
	child, ok := parent.Tier.Child()
	if !ok {
		return nil
	}

	ac := w.cfg.Asteroids
	angle := w.rng.Range(ac.SplitMinAngle, ac.SplitMaxAngle) * core.DegToRad
	speed := w.rng.Range(ac.SplitMinSpeed, ac.SplitMaxSpeed)
	heading := bulletVel.Normalize()
	offset := w.tier(parent.Tier).Size

	children := make([]Asteroid, 0, 2)
	for _, sign := range [2]float64{1, -1} {
		dir := heading.Rotate(sign * angle)
		pos := parent.Position.Add(dir.Scale(offset))
		children = append(children, newAsteroid(child, w.tier(child), pos, dir.Scale(speed)))
	}
	return children
}
