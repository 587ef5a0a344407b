package jumper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/jumper/internal/config"
)

type testWorld struct {
	w      *world
	assets Assets
	cfg    config.JumperConfig
}

func newTestWorld(rng Random) testWorld {
	cfg := config.DefaultJumperConfig()
	// Tall player so that y=100 overlaps a platform at y=140.
	cfg.Sprites.Player.Height = 48
	return testWorld{
		w:      &world{width: 400, height: 600, physics: cfg.Physics, rng: rng, collide: AABB},
		assets: NewBoxAssets(cfg.Sprites),
		cfg:    cfg,
	}
}

func (tw testWorld) player(x, y, v float64) *Player {
	p := newPlayer(tw.w, tw.assets, tw.cfg.Sprites.Player)
	p.SetX(x)
	p.SetY(y)
	p.SetVelocity(v)
	return p
}

func (tw testWorld) platform(x, y float64) *Platform {
	return newPlatform(tw.w, tw.assets, tw.cfg.Sprites.Platform, x, y)
}

func TestCanBounceRequiresAllConditions(t *testing.T) {
	tw := newTestWorld(noEnemies())
	pl := tw.platform(100, 140)

	tests := []struct {
		name string
		y, v float64
		x    float64
		want bool
	}{
		{"above, overlapping, falling", 100, 3, 110, true},
		{"overlapping and falling but not above", 140, 3, 110, false},
		{"below the platform top", 150, 3, 110, false},
		{"above and falling but no overlap", 100, 3, 300, false},
		{"above and overlapping but rising", 100, -3, 110, false},
		{"above and overlapping at rest", 100, 0, 110, false},
		{"touching edge only", 92, 3, 110, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tw.player(tc.x, tc.y, tc.v)
			assert.Equal(t, tc.want, pl.CanBounce(p))
		})
	}
}

func TestCanBounceScenario(t *testing.T) {
	tw := newTestWorld(noEnemies())
	pl := tw.platform(100, 140)
	p := tw.player(100, 100, 3)

	require.True(t, pl.CanBounce(p))
	p.Jump(JumpStrength)
	assert.Equal(t, -15.0, p.Velocity())
}

func TestRecycleOffBottom(t *testing.T) {
	rng := &scriptedRand{ints: []int{9999, 137, 55}}
	tw := newTestWorld(rng)

	entities := []Entity{
		tw.platform(10, 601),
		newEnemy(tw.w, tw.assets, tw.cfg.Sprites.Enemy, 10, 650),
		newPowerUp(tw.w, tw.assets, tw.cfg.Sprites.PowerUp, 10, 600.01),
	}

	for _, e := range entities {
		t.Run(e.Kind().String(), func(t *testing.T) {
			e.Update()

			assert.Equal(t, -float64(e.Height()), e.Y())
			assert.GreaterOrEqual(t, e.X(), 0.0)
			assert.LessOrEqual(t, e.X(), 400.0-float64(e.Width()))
		})
	}
}

func TestRecycleLeavesVisibleEntities(t *testing.T) {
	tw := newTestWorld(noEnemies())

	pl := tw.platform(33, 600)
	pl.Update()
	assert.Equal(t, 33.0, pl.X())
	assert.Equal(t, 600.0, pl.Y())

	pl.SetY(-250)
	pl.Update()
	assert.Equal(t, -250.0, pl.Y(), "above the window is not recycled")
}

func TestPowerUpDoublesJump(t *testing.T) {
	tw := newTestWorld(noEnemies())
	p := tw.player(0, 0, 7)
	u := newPowerUp(tw.w, tw.assets, tw.cfg.Sprites.PowerUp, 0, 0)

	u.ApplyPowerUp(p)
	assert.Equal(t, -30.0, p.Velocity())
	assert.Less(t, p.Velocity(), JumpStrength, "stronger than a bounce")
}

func TestCollidesWithIsSymmetric(t *testing.T) {
	tw := newTestWorld(noEnemies())
	p := tw.player(100, 100, 0)
	pl := tw.platform(120, 130)
	far := tw.platform(300, 500)

	assert.True(t, p.CollidesWith(pl))
	assert.True(t, pl.CollidesWith(p))
	assert.False(t, p.CollidesWith(far))
	assert.False(t, far.CollidesWith(p))
}
