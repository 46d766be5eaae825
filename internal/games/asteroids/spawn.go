package asteroids

import (
	"github.com/vovakirdan/arcade-sim/internal/core"
)

// tickSpawner releases one large asteroid each time the spawn timer expires.
func (w *World) tickSpawner(dt float64) {
	w.spawnTimer.Duration = w.difficulty.Interval(w.cfg.Asteroids.SpawnPeriod, w.Score, w.Steps)
	if w.spawnTimer.Expired() {
		w.spawnTimer.Reset()
		w.SpawnAsteroid(Large)
	}
	w.spawnTimer.Tick(dt)
}

// SpawnAsteroid places a new asteroid of tier t at a random spot clear of the
// ship and aims it roughly at the ship.
//
// Placement is retried up to the configured cap. If every candidate lands in
// the keep-out box (a huge ship or a tiny world) the last candidate is used.
func (w *World) SpawnAsteroid(t Tier) *Asteroid {
	ac := w.cfg.Asteroids
	size := w.tier(t).Size
	half := size * 0.5
	keepOut := w.Ship.Collider().Scale(ac.Clearance)

	var pos core.Vec2
	placed := false
	for try := 0; try < ac.SpawnRetries; try++ {
		pos = core.V(
			w.rng.Range(half, w.bounds.W-half),
			w.rng.Range(half, w.bounds.H-half),
		)
		if !core.HasIntersection(core.BoxAt(pos, size, size), keepOut) {
			placed = true
			break
		}
	}
	if !placed {
		w.log.Warn("asteroid placement fell back to last candidate",
			"tier", t, "retries", ac.SpawnRetries, "x", pos.X, "y", pos.Y)
	}

	jitter := w.rng.Range(-ac.AimJitter, ac.AimJitter) * core.DegToRad
	aim := w.Ship.Position.Sub(pos).Normalize().Rotate(jitter)
	speed := w.rng.Range(ac.MinSpeed, ac.MaxSpeed) * w.difficulty.SpeedFactor(w.Score, w.Steps)

	return w.AddAsteroid(t, pos, aim.Scale(speed))
}
