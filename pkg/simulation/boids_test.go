package simulation

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/spatial"
)

func smallConfig(mode spatial.Mode) *Config {
	cfg := DefaultConfig()
	cfg.World = flock.World{Width: 400, Height: 300}
	cfg.NeighbourMode = string(mode)
	cfg.BucketSize = 8
	cfg.Population = 300
	cfg.SeedMode = SeedRandom
	cfg.Seed = 7
	return cfg
}

func newManager(t testing.TB, cfg *Config) *Manager {
	t.Helper()
	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	return m
}

func TestNewManager_LineSeeding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Population = 5
	m := newManager(t, cfg)

	boids := m.Boids()
	if len(boids) != 5 {
		t.Fatalf("len(Boids()) = %d; want 5", len(boids))
	}
	colors := map[string]bool{}
	for i, b := range boids {
		want := geometry.Vector2D{X: 100 + float64(i)*0.1, Y: 100}
		if b.Position != want {
			t.Errorf("boid %d at %v; want %v", i, b.Position, want)
		}
		if b.Velocity != geometry.Zero {
			t.Errorf("boid %d velocity %v; want zero", i, b.Velocity)
		}
		if !strings.HasPrefix(b.Color, "#") || len(b.Color) != 7 {
			t.Errorf("boid %d color %q is not #rrggbb", i, b.Color)
		}
		colors[b.Color] = true
	}
	if len(colors) != 5 {
		t.Errorf("got %d distinct colors; want 5", len(colors))
	}
	if m.Generation() != 0 {
		t.Errorf("Generation() = %d; want 0", m.Generation())
	}
}

func TestNewManager_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NeighbourMode = "grid"
	if _, err := NewManager(cfg); err == nil {
		t.Fatal("expected an error for an unknown neighbour mode")
	}
}

func TestNewManager_RandomSeedingIsReproducible(t *testing.T) {
	a := newManager(t, smallConfig(spatial.ModeBucket)).Boids()
	b := newManager(t, smallConfig(spatial.ModeBucket)).Boids()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different populations")
	}

	other := smallConfig(spatial.ModeBucket)
	other.Seed = 8
	if reflect.DeepEqual(a, newManager(t, other).Boids()) {
		t.Error("different seeds produced the same population")
	}

	world := spatial.World(other.World)
	for _, boid := range a {
		if !world.Contains(boid) {
			t.Errorf("seeded boid %v outside the world", boid.Position)
		}
	}
}

func TestManager_StepKeepsPopulation(t *testing.T) {
	for _, mode := range []spatial.Mode{spatial.ModeBucket, spatial.ModeRadius, spatial.ModeAll} {
		t.Run(string(mode), func(t *testing.T) {
			cfg := smallConfig(mode)
			m := newManager(t, cfg)
			for i := 0; i < 10; i++ {
				m.Step()
			}
			if m.Generation() != 10 {
				t.Errorf("Generation() = %d; want 10", m.Generation())
			}
			boids := m.Boids()
			if len(boids) != cfg.Population {
				t.Fatalf("population = %d; want %d", len(boids), cfg.Population)
			}
			for _, b := range boids {
				if b.Velocity.Len() > cfg.Settings.MaxSpeed+1e-9 {
					t.Errorf("speed %v exceeds %v", b.Velocity.Len(), cfg.Settings.MaxSpeed)
				}
				if !b.Position.IsFinite() || !b.Velocity.IsFinite() {
					t.Errorf("non-finite boid %+v", b)
				}
			}
		})
	}
}

func TestManager_ParallelMatchesSequential(t *testing.T) {
	for _, mode := range []spatial.Mode{spatial.ModeBucket, spatial.ModeRadius, spatial.ModeAll} {
		t.Run(string(mode), func(t *testing.T) {
			seqCfg := smallConfig(mode)
			parCfg := smallConfig(mode)
			parCfg.Workers = 7

			seq := newManager(t, seqCfg)
			par := newManager(t, parCfg)
			for i := 0; i < 5; i++ {
				seq.Step()
				par.Step()
			}
			if !reflect.DeepEqual(seq.Boids(), par.Boids()) {
				t.Fatal("parallel pass diverged from the sequential pass")
			}
		})
	}
}

func TestManager_StepMatchesFlockStep(t *testing.T) {
	cfg := smallConfig(spatial.ModeAll)
	cfg.Population = 20
	m := newManager(t, cfg)
	before := m.Boids()

	m.Step()

	got := m.Boids()
	for i, b := range before {
		want := flock.Step(b, flock.Others(b, before), cfg.World, cfg.Settings)
		if got[i] != want {
			t.Errorf("boid %d = %+v; want %+v", i, got[i], want)
		}
	}
}

func TestManager_Items(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Population = 3
	cfg.InitialVelocity = geometry.Vector2D{X: 0.5, Y: -0.25}
	m := newManager(t, cfg)

	items := m.Items()
	if len(items) != m.Length() || m.Length() != 12 {
		t.Fatalf("len(Items()) = %d, Length() = %d; want 12", len(items), m.Length())
	}
	for i, b := range m.Boids() {
		got := items[i*4 : i*4+4]
		want := []float32{float32(b.Position.X), float32(b.Position.Y), 0.5, -0.25}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("items[%d:%d] = %v; want %v", i*4, i*4+4, got, want)
		}
	}
}

func TestManager_BoidsIsACopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Population = 2
	m := newManager(t, cfg)
	boids := m.Boids()
	boids[0].Position.X = -1
	if m.Boids()[0].Position.X == -1 {
		t.Error("Boids() exposed the internal slice")
	}
}

func TestManager_RangeQuery(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Population = 10 // x from 100 to 100.9 on y=100
	m := newManager(t, cfg)

	got := m.RangeQuery(spatial.Region{X: 100.25, Y: 99, Width: 0.3, Height: 2})
	if len(got) != 3 {
		t.Fatalf("RangeQuery returned %d boids; want 3 (x=100.3..100.5)", len(got))
	}
	if empty := m.RangeQuery(spatial.Square(500, 500, 10)); len(empty) != 0 {
		t.Errorf("RangeQuery far away returned %d boids", len(empty))
	}
}

func TestManager_RangeQueryBucketIsSubset(t *testing.T) {
	// A band wider than the root shares no corner with any leaf it crosses.
	band := spatial.Region{X: -10, Y: 45, Width: 120, Height: 10}
	results := map[spatial.Mode][]flock.Boid{}
	for _, mode := range []spatial.Mode{spatial.ModeBucket, spatial.ModeRadius, spatial.ModeAll} {
		cfg := DefaultConfig()
		cfg.World = flock.World{Width: 100, Height: 100}
		cfg.NeighbourMode = string(mode)
		cfg.BucketSize = 1
		cfg.Population = 3
		cfg.Origin = geometry.Vector2D{X: 20, Y: 50}
		cfg.Spacing = 30
		results[mode] = newManager(t, cfg).RangeQuery(band)
	}

	if got := len(results[spatial.ModeAll]); got != 3 {
		t.Fatalf("all mode returned %d boids; want 3", got)
	}
	if got := len(results[spatial.ModeRadius]); got != 3 {
		t.Errorf("radius mode returned %d boids; want 3", got)
	}
	exact := map[geometry.Vector2D]bool{}
	for _, b := range results[spatial.ModeAll] {
		exact[b.Position] = true
	}
	seen := map[geometry.Vector2D]bool{}
	for _, b := range results[spatial.ModeBucket] {
		if !band.ContainsPoint(b.Position) {
			t.Errorf("bucket mode returned %v outside the query", b.Position)
		}
		if !exact[b.Position] {
			t.Errorf("bucket mode returned %v missing from the exact answer", b.Position)
		}
		if seen[b.Position] {
			t.Errorf("bucket mode returned %v twice", b.Position)
		}
		seen[b.Position] = true
	}
}

func TestManager_UnindexedBoidsStillMove(t *testing.T) {
	cfg := DefaultConfig()
	cfg.World = flock.World{Width: 100, Height: 100}
	cfg.Population = 10
	cfg.Origin = geometry.Vector2D{X: 50, Y: 50}
	cfg.Spacing = 10 // x = 50..140, the last four outside the root
	m := newManager(t, cfg)

	if got := m.Unindexed(); got != 4 {
		t.Fatalf("Unindexed() = %d; want 4", got)
	}
	before := m.Boids()
	m.Step()
	after := m.Boids()
	if after[9].Position == before[9].Position {
		t.Error("boid outside the index did not move")
	}
	if got := m.Snapshot().GetUnindexed(); got != uint32(m.Unindexed()) {
		t.Errorf("snapshot unindexed = %d; want %d", got, m.Unindexed())
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	cfg := smallConfig(spatial.ModeBucket)
	cfg.Population = 4
	m := newManager(t, cfg)
	m.Step()

	snap := m.Snapshot()
	if snap.GetGeneration() != 1 {
		t.Errorf("Generation = %d; want 1", snap.GetGeneration())
	}
	boids := m.Boids()
	if len(snap.GetBoids()) != len(boids) {
		t.Fatalf("snapshot holds %d boids; want %d", len(snap.GetBoids()), len(boids))
	}
	for i, state := range snap.GetBoids() {
		if got := FromProto(state); got != boids[i] {
			t.Errorf("boid %d = %+v; want %+v", i, got, boids[i])
		}
	}
}

func BenchmarkManager_Step(b *testing.B) {
	for _, workers := range []int{1, 4} {
		cfg := DefaultConfig()
		cfg.SeedMode = SeedRandom
		cfg.Workers = workers
		m := newManager(b, cfg)
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m.Step()
			}
		})
	}
}
