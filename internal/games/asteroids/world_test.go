package asteroids

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
)

const eps = 1e-9

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(config.DefaultAsteroidsConfig(), 1, nil)
}

func held(keys ...core.Key) core.InputFrame {
	in := core.NewInputFrame()
	in.Hold(keys...)
	return in
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func (w *World) addBullet(pos, vel core.Vec2) {
	w.Bullets = append(w.Bullets, Bullet{
		Entity: core.Entity{
			Body:   core.Body{Position: pos, Velocity: vel, Direction: vel.Normalize()},
			Width:  w.cfg.Bullet.Size,
			Height: w.cfg.Bullet.Size,
		},
		Damage: w.cfg.Bullet.Damage,
	})
}

func TestNewWorldStartsCentered(t *testing.T) {
	w := newTestWorld(t)

	if w.Ship.Position != core.V(512, 384) {
		t.Errorf("ship at %v, expected world center", w.Ship.Position)
	}
	if w.Ship.Health != 100 || w.Ship.MaxHealth != 100 {
		t.Errorf("ship health = %v/%v, expected 100/100", w.Ship.Health, w.Ship.MaxHealth)
	}
	if !w.Ship.FireCooldown.Expired() {
		t.Error("fire cooldown should start expired")
	}
	if w.AsteroidCount() != 0 || len(w.Bullets) != 0 {
		t.Error("new world should be empty")
	}

	box := w.Ship.Collider()
	if box.X != 487 || box.Y != 359 || box.W != 50 || box.H != 50 {
		t.Errorf("ship collider = %+v, expected centered 50x50 box", box)
	}
}

func TestThrottleRamp(t *testing.T) {
	w := newTestWorld(t)
	dt := 1.0 / 60

	for i := 0; i < 10; i++ {
		w.Step(held(core.KeyW), nil, dt)
	}
	if !approx(w.Ship.Throttle, 0.05, eps) {
		t.Fatalf("throttle after 10 steps = %v, expected 0.05", w.Ship.Throttle)
	}

	w.Step(idle(), nil, dt)
	if !approx(w.Ship.Throttle, 0.045, eps) {
		t.Errorf("throttle after release = %v, expected decay to 0.045", w.Ship.Throttle)
	}

	w.Step(held(core.KeyS), nil, dt)
	if !approx(w.Ship.Throttle, 0, eps) || w.Ship.Throttle < 0 {
		t.Errorf("throttle after brake = %v, expected clamp to 0", w.Ship.Throttle)
	}

	for i := 0; i < 500; i++ {
		w.Step(held(core.KeyUp), nil, dt)
	}
	if w.Ship.Throttle > 0.5+0.005+eps {
		t.Errorf("throttle = %v, expected to stop near the 0.5 cap", w.Ship.Throttle)
	}
}

func TestShipMovesAlongHeading(t *testing.T) {
	w := newTestWorld(t)

	w.Step(held(core.KeyW), nil, 1)

	// speed 600 * throttle 0.005 * dt 1
	if !approx(w.Ship.Position.X, 515, 1e-6) || !approx(w.Ship.Position.Y, 384, 1e-6) {
		t.Errorf("ship at %v, expected (515, 384)", w.Ship.Position)
	}
}

func TestRotation(t *testing.T) {
	w := newTestWorld(t)

	w.Step(held(core.KeyD), nil, 0.5)
	if got := w.Ship.Heading() / core.DegToRad; !approx(got, 100, 1e-6) {
		t.Errorf("heading after D = %v°, expected 100°", got)
	}

	w.Step(held(core.KeyLeft), nil, 0.5)
	if got := w.Ship.Heading() / core.DegToRad; !approx(got, 0, 1e-6) {
		t.Errorf("heading after Left = %v°, expected 0°", got)
	}
	if !approx(w.Ship.Direction.Length(), 1, eps) {
		t.Errorf("direction length = %v, expected unit", w.Ship.Direction.Length())
	}
}

func TestFireCooldown(t *testing.T) {
	w := newTestWorld(t)
	audio := &core.AudioLog{}
	fire := held(core.KeySpace)

	w.Step(fire, audio, 0.125)
	if len(w.Bullets) != 1 {
		t.Fatalf("bullets after first shot = %d, expected 1", len(w.Bullets))
	}

	// Bullet spawns one half-ship plus one half-bullet ahead, then moves.
	b := w.Bullets[0]
	if !approx(b.Position.X, 512+50+500*0.125, 1e-6) {
		t.Errorf("bullet x = %v, expected %v", b.Position.X, 512+50+500*0.125)
	}
	if b.Velocity != core.V(500, 0) {
		t.Errorf("bullet velocity = %v, expected (500, 0)", b.Velocity)
	}

	w.Step(fire, audio, 0.125)
	if len(w.Bullets) != 1 {
		t.Errorf("bullets at t=0.125 = %d, expected cooldown to block a second shot", len(w.Bullets))
	}

	w.Step(fire, audio, 0.125)
	w.Step(fire, audio, 0.125)
	if len(w.Bullets) != 1 {
		t.Errorf("bullets at t=0.375 = %d, expected 1", len(w.Bullets))
	}

	w.Step(fire, audio, 0.125)
	if len(w.Bullets) != 2 {
		t.Errorf("bullets at t=0.5 = %d, expected a second shot", len(w.Bullets))
	}
	if audio.Count(core.SoundFire) != 2 {
		t.Errorf("fire sound played %d times, expected 2", audio.Count(core.SoundFire))
	}
}

func TestBulletLeavesScreen(t *testing.T) {
	w := newTestWorld(t)
	w.addBullet(core.V(1020, 100), core.V(500, 0))

	w.Step(idle(), nil, 0.1)

	if len(w.Bullets) != 0 {
		t.Errorf("bullets = %d, expected the off-screen bullet to be removed", len(w.Bullets))
	}
}

func TestFiredBulletRemovedAfterLeavingScreen(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"same step as the shot", 1.0},
		{"step after the shot", 0.01},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Step(held(core.KeySpace), nil, tc.dt)

			if tc.dt < 0.5 {
				if len(w.Bullets) != 1 {
					t.Fatalf("bullets = %d, expected the shot in flight", len(w.Bullets))
				}
				// Spawned half a ship plus half a bullet ahead of the nose, then moved once.
				want := w.Ship.Position.X + 25 + 25 + 500*tc.dt
				if b := w.Bullets[0]; !approx(b.Position.X, want, 1e-6) || b.Position.Y != w.Ship.Position.Y {
					t.Errorf("bullet at %v, expected (%v, %v)", b.Position, want, w.Ship.Position.Y)
				}
				w.Step(idle(), nil, 1.0)
			}

			if len(w.Bullets) != 0 {
				t.Errorf("bullets = %d, expected the off-screen bullet to be purged", len(w.Bullets))
			}
		})
	}
}

func TestBulletDamagesAsteroid(t *testing.T) {
	w := newTestWorld(t)
	w.AddAsteroid(Large, core.V(800, 384), core.Vec2{})

	for i := 0; i < 2; i++ {
		w.addBullet(core.V(790, 384), core.V(500, 0))
		w.Step(idle(), nil, 0.01)
	}

	if len(w.Asteroids[Large]) != 1 {
		t.Fatalf("large asteroids = %d, expected 1", len(w.Asteroids[Large]))
	}
	if got := w.Asteroids[Large][0].Health; got != 80 {
		t.Errorf("asteroid health = %v, expected 80 after two hits", got)
	}
	if len(w.Bullets) != 0 {
		t.Errorf("bullets = %d, expected hits to consume them", len(w.Bullets))
	}
	if w.Score != 0 {
		t.Errorf("score = %d, expected none before destruction", w.Score)
	}
}

func TestDestroyLargeSplitsIntoMediums(t *testing.T) {
	w := newTestWorld(t)
	parent := core.V(800, 384)
	a := w.AddAsteroid(Large, parent, core.Vec2{})
	a.Health = 10

	w.addBullet(core.V(790, 384), core.V(500, 0))
	w.Step(idle(), nil, 0.01)

	if len(w.Asteroids[Large]) != 0 {
		t.Errorf("large asteroids = %d, expected the parent to be purged", len(w.Asteroids[Large]))
	}
	if len(w.Asteroids[Medium]) != 2 {
		t.Fatalf("medium asteroids = %d, expected 2", len(w.Asteroids[Medium]))
	}
	if w.Score != 20 {
		t.Errorf("score = %d, expected 20", w.Score)
	}

	c0, c1 := w.Asteroids[Medium][0], w.Asteroids[Medium][1]
	for _, c := range []Asteroid{c0, c1} {
		if c.Health != 50 || c.Width != 50 {
			t.Errorf("child health/size = %v/%v, expected medium tier", c.Health, c.Width)
		}
		// One parent size away, plus one step of motion.
		if d := math.Sqrt(c.Position.DistanceSq(parent)); d < 97 || d > 103 {
			t.Errorf("child %v is %v from parent, expected about 100", c.Position, d)
		}
		if s := c.Velocity.Length(); s < 20-eps || s > 200+eps {
			t.Errorf("child speed = %v, expected within [20, 200]", s)
		}
	}

	// Children mirror each other across the bullet's heading.
	if !approx(c0.Position.X, c1.Position.X, 1e-6) {
		t.Errorf("child x = %v and %v, expected equal", c0.Position.X, c1.Position.X)
	}
	if !approx((c0.Position.Y+c1.Position.Y)/2, parent.Y, 1e-6) {
		t.Errorf("child y = %v and %v, expected symmetric about %v", c0.Position.Y, c1.Position.Y, parent.Y)
	}
	spread := math.Abs(c0.Velocity.Angle()-c1.Velocity.Angle()) / core.DegToRad
	if spread < 60-1e-6 || spread > 90+1e-6 {
		t.Errorf("split spread = %v°, expected within [60, 90]", spread)
	}
}

func TestSplitTiers(t *testing.T) {
	tests := []struct {
		tier     Tier
		children int
		child    Tier
	}{
		{Large, 2, Medium},
		{Medium, 2, Small},
		{Small, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			w := newTestWorld(t)
			a := newAsteroid(tt.tier, w.tier(tt.tier), core.V(300, 300), core.Vec2{})

			children := w.split(&a, core.V(0, -1))
			if len(children) != tt.children {
				t.Fatalf("split produced %d children, expected %d", len(children), tt.children)
			}
			for _, c := range children {
				if c.Tier != tt.child {
					t.Errorf("child tier = %v, expected %v", c.Tier, tt.child)
				}
			}
		})
	}
}

func TestBulletHitsDeadAsteroidWithoutRescoring(t *testing.T) {
	w := newTestWorld(t)
	a := w.AddAsteroid(Small, core.V(800, 384), core.Vec2{})
	a.Health = 10

	// Both bullets overlap the asteroid on the same step.
	w.addBullet(core.V(795, 384), core.V(500, 0))
	w.addBullet(core.V(790, 384), core.V(500, 0))
	w.Step(idle(), nil, 0.01)

	if len(w.Bullets) != 0 {
		t.Errorf("bullets = %d, expected both absorbed", len(w.Bullets))
	}
	if w.Score != 100 {
		t.Errorf("score = %d, expected the small asteroid counted once", w.Score)
	}
	if w.AsteroidCount() != 0 {
		t.Errorf("asteroids = %d, expected the destroyed small to be purged", w.AsteroidCount())
	}
}

func TestShipCollision(t *testing.T) {
	w := newTestWorld(t)
	audio := &core.AudioLog{}
	a := w.AddAsteroid(Medium, core.V(542, 384), core.V(-50, 0))

	w.Step(idle(), audio, 0.01)

	if w.Ship.Health != 90 {
		t.Errorf("ship health = %v, expected 90", w.Ship.Health)
	}
	if !w.Ship.Stunned() {
		t.Error("ship should be stunned after contact")
	}
	if w.Ship.Throttle != 0 {
		t.Errorf("throttle = %v, expected reset on contact", w.Ship.Throttle)
	}
	if audio.Count(core.SoundExplode) != 1 {
		t.Errorf("explode sound played %d times, expected 1", audio.Count(core.SoundExplode))
	}

	// Knocked back the way it came.
	a = &w.Asteroids[Medium][0]
	if a.Velocity.X < 100-eps || a.Velocity.X > 200+eps || !approx(a.Velocity.Y, 0, 1e-6) {
		t.Errorf("asteroid velocity = %v, expected reversed at [100, 200]", a.Velocity)
	}

	// Still overlapping, but damage is on cooldown.
	w.Step(idle(), audio, 0.01)
	if w.Ship.Health != 90 {
		t.Errorf("ship health = %v, expected damage cooldown to hold it at 90", w.Ship.Health)
	}
}

func TestShipNoCollision(t *testing.T) {
	w := newTestWorld(t)
	w.AddAsteroid(Medium, core.V(600, 384), core.Vec2{})

	w.Step(idle(), nil, 0.01)

	if w.Ship.Health != 100 || w.Ship.Stunned() {
		t.Errorf("ship health = %v, stunned = %v; expected untouched", w.Ship.Health, w.Ship.Stunned())
	}
}

func TestStunnedShipDoesNotMove(t *testing.T) {
	w := newTestWorld(t)
	w.Ship.CollisionDelay = 5
	w.Ship.Throttle = 0.5

	w.Step(idle(), nil, 0.1)

	if w.Ship.Position != core.V(512, 384) {
		t.Errorf("stunned ship moved to %v", w.Ship.Position)
	}
}

func TestKnockbackStationaryAsteroid(t *testing.T) {
	w := newTestWorld(t)
	a := w.AddAsteroid(Medium, core.V(542, 384), core.Vec2{})

	w.knockback(a)

	// Pushed away from the ship, toward +x.
	if a.Velocity.X <= 0 {
		t.Errorf("asteroid velocity = %v, expected away from the ship", a.Velocity)
	}
}

func TestShipDeathResets(t *testing.T) {
	w := newTestWorld(t)
	w.Ship.Health = 5
	w.AddAsteroid(Large, core.V(560, 384), core.Vec2{})

	w.Step(idle(), nil, 0.01)

	if w.Ship.Health != w.Ship.MaxHealth {
		t.Errorf("ship health = %v, expected reset to %v", w.Ship.Health, w.Ship.MaxHealth)
	}
	if w.Ship.Deaths != 1 {
		t.Errorf("deaths = %d, expected 1", w.Ship.Deaths)
	}
	if !w.Ship.Exploding.Active() {
		t.Error("ship should show the explosion after dying")
	}
	if w.Ship.Tint != w.Ship.BaseTint {
		t.Errorf("tint = %v, expected base after reset", w.Ship.Tint)
	}
}

func TestTintFor(t *testing.T) {
	base := core.ColorCyan
	tests := []struct {
		health float64
		want   core.Color
	}{
		{100, base},
		{75, base},
		{74, core.ColorYellow},
		{50, core.ColorYellow},
		{49, core.ColorOrange},
		{25, core.ColorOrange},
		{24, core.ColorRed},
		{0, core.ColorRed},
	}

	for _, tt := range tests {
		if got := TintFor(tt.health, base); got != tt.want {
			t.Errorf("TintFor(%v) = %v, expected %v", tt.health, got, tt.want)
		}
	}
}

func TestSpawnKeepsClearOfShip(t *testing.T) {
	w := newTestWorld(t)
	keepOut := w.Ship.Collider().Scale(w.cfg.Asteroids.Clearance)

	for i := 0; i < 200; i++ {
		a := w.SpawnAsteroid(Large)

		if core.HasIntersection(a.Collider(), keepOut) {
			t.Fatalf("asteroid %d at %v overlaps the ship keep-out box", i, a.Position)
		}
		if a.Position.X < 50 || a.Position.X > 974 || a.Position.Y < 50 || a.Position.Y > 718 {
			t.Fatalf("asteroid %d at %v is not fully inside the world", i, a.Position)
		}
		if s := a.Velocity.Length(); s < 20-eps || s > 200+eps {
			t.Fatalf("asteroid %d speed = %v, expected within [20, 200]", i, s)
		}

		toShip := w.Ship.Position.Sub(a.Position).Normalize()
		if cos := toShip.Dot(a.Velocity.Normalize()); cos < math.Cos(10*core.DegToRad)-1e-9 {
			t.Fatalf("asteroid %d aims %v° off the ship, expected at most 10°", i, math.Acos(cos)/core.DegToRad)
		}
	}
}

func TestSpawnFallsBackAfterRetries(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Asteroids.Clearance = 100
	cfg.Asteroids.SpawnRetries = 3
	w := NewWorld(cfg, 7, nil)

	a := w.SpawnAsteroid(Large)

	if a == nil || w.AsteroidCount() != 1 {
		t.Fatal("spawn should still place an asteroid when every candidate is blocked")
	}
	if !w.bounds.OnScreen(a.Collider()) {
		t.Errorf("fallback asteroid at %v is off screen", a.Position)
	}
}

func TestSpawnerTimer(t *testing.T) {
	w := newTestWorld(t)
	dt := 0.25

	// spawn_period 2.5: nothing until the timer reaches it.
	for i := 0; i < 10; i++ {
		w.Step(idle(), nil, dt)
	}
	if n := len(w.Asteroids[Large]); n != 0 {
		t.Fatalf("large asteroids after 2.5s = %d, expected 0", n)
	}

	w.Step(idle(), nil, dt)
	if n := len(w.Asteroids[Large]); n != 1 {
		t.Errorf("large asteroids after expiry = %d, expected 1", n)
	}
}

func TestDeterministicSameSeed(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	a := NewWorld(cfg, 42, nil)
	b := NewWorld(cfg, 42, nil)

	inputs := []core.InputFrame{
		held(core.KeyW, core.KeySpace),
		held(core.KeyD, core.KeySpace),
		held(core.KeyW),
		idle(),
	}

	for i := 0; i < 1200; i++ {
		in := inputs[(i/30)%len(inputs)]
		a.Step(in, nil, 1.0/60)
		b.Step(in, nil, 1.0/60)
	}

	if a.Score != b.Score {
		t.Errorf("scores diverged: %d vs %d", a.Score, b.Score)
	}
	if !reflect.DeepEqual(a.Ship, b.Ship) {
		t.Errorf("ships diverged:\n%+v\n%+v", a.Ship, b.Ship)
	}
	if !reflect.DeepEqual(a.Asteroids, b.Asteroids) {
		t.Error("asteroid fields diverged")
	}
	if a.AsteroidCount() == 0 {
		t.Error("expected the spawner to have produced asteroids in 20s")
	}
}

func TestNegativeDtIsClamped(t *testing.T) {
	w := newTestWorld(t)
	w.Ship.Throttle = 0.5

	w.Step(idle(), nil, -1)

	if w.Ship.Position != core.V(512, 384) {
		t.Errorf("ship moved to %v on negative dt", w.Ship.Position)
	}
}
