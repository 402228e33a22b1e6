package simulation

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tochemey/goakt/v3/log"
	"golang.org/x/sync/errgroup"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/ntree"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/spatial"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used by the manager.
func WithLogger(logger log.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// Manager owns one flock and advances it a generation at a time.
// Every pass reads only the previous generation, so the order in which boids
// are stepped never changes the result.
type Manager struct {
	cfg      *Config
	mode     spatial.Mode
	root     spatial.Region
	boids    []flock.Boid
	next     []flock.Boid
	finder   spatial.Finder // index of the current generation, built on demand
	gen      uint64
	logger   log.Logger
	treeOpts []ntree.Option
}

// NewManager validates cfg and seeds the population.
func NewManager(cfg *Config, opts ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, _ := spatial.ParseMode(cfg.NeighbourMode)
	m := &Manager{
		cfg:    cfg,
		mode:   mode,
		root:   spatial.Square(0, 0, math.Max(cfg.World.Width, cfg.World.Height)),
		logger: log.DiscardLogger,
	}
	if cfg.MaxDepth > 0 {
		m.treeOpts = append(m.treeOpts, ntree.WithMaxDepth(cfg.MaxDepth))
	}
	for _, opt := range opts {
		opt(m)
	}
	m.boids = seed(cfg)
	m.next = make([]flock.Boid, len(m.boids))
	m.logger.Infof("seeded %d boids (%s), neighbour mode %s", len(m.boids), seedMode(cfg), m.mode)
	return m, nil
}

func seedMode(cfg *Config) SeedMode {
	if cfg.SeedMode == "" {
		return SeedLine
	}
	return cfg.SeedMode
}

// seed builds the first generation. Colors run once around the hue wheel.
func seed(cfg *Config) []flock.Boid {
	boids := make([]flock.Boid, cfg.Population)
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	for i := range boids {
		var b flock.Boid
		switch seedMode(cfg) {
		case SeedRandom:
			heading := rng.Float64() * 2 * math.Pi
			speed := cfg.Settings.MaxSpeed / 2
			b = flock.New(
				rng.Float64()*cfg.World.Width,
				rng.Float64()*cfg.World.Height,
				math.Cos(heading)*speed,
				math.Sin(heading)*speed,
			)
		default:
			b = flock.New(
				cfg.Origin.X+float64(i)*cfg.Spacing,
				cfg.Origin.Y,
				cfg.InitialVelocity.X,
				cfg.InitialVelocity.Y,
			)
		}
		hue := 360 * float64(i) / float64(len(boids))
		b.Color = colorful.Hsv(hue, 0.7, 0.95).Hex()
		boids[i] = b
	}
	return boids
}

// index returns the finder of the current generation.
func (m *Manager) index() spatial.Finder {
	if m.finder != nil {
		return m.finder
	}
	switch m.mode {
	case spatial.ModeRadius:
		m.finder = spatial.NewRadiusFinder(m.boids, m.cfg.SearchRadius)
	case spatial.ModeAll:
		m.finder = spatial.NewAllFinder(m.boids)
	default:
		m.finder = spatial.NewBucketFinder(m.root, m.cfg.BucketSize, m.boids, m.treeOpts...)
	}
	return m.finder
}

// Step computes the next generation from the current one.
// Boids the index could not hold are stepped with no neighbours.
func (m *Manager) Step() {
	finder := m.index()
	if unindexed := len(m.boids) - finder.Indexed(); unindexed > 0 {
		m.logger.Debugf("generation %d: %d boids outside %v", m.gen, unindexed, m.root)
	}

	workers := m.cfg.Workers
	if workers <= 1 || len(m.boids) < workers {
		m.stepRange(finder, 0, len(m.boids))
	} else {
		var g errgroup.Group
		chunk := (len(m.boids) + workers - 1) / workers
		for lo := 0; lo < len(m.boids); lo += chunk {
			hi := min(lo+chunk, len(m.boids))
			g.Go(func() error {
				m.stepRange(finder, lo, hi)
				return nil
			})
		}
		_ = g.Wait()
	}

	m.boids, m.next = m.next, m.boids
	m.finder = nil
	m.gen++
}

func (m *Manager) stepRange(finder spatial.Finder, lo, hi int) {
	for i := lo; i < hi; i++ {
		b := m.boids[i]
		m.next[i] = flock.Step(b, finder.Neighbours(b), m.cfg.World, m.cfg.Settings)
	}
}

// Generation returns how many passes have run.
func (m *Manager) Generation() uint64 {
	return m.gen
}

// Boids returns a copy of the current generation.
func (m *Manager) Boids() []flock.Boid {
	out := make([]flock.Boid, len(m.boids))
	copy(out, m.boids)
	return out
}

// Items returns the flat render buffer: x, y, vx, vy for every boid.
func (m *Manager) Items() []float32 {
	items := make([]float32, 0, m.Length())
	for _, b := range m.boids {
		items = append(items,
			float32(b.Position.X), float32(b.Position.Y),
			float32(b.Velocity.X), float32(b.Velocity.Y))
	}
	return items
}

// Length returns the number of floats in Items.
func (m *Manager) Length() int {
	return len(m.boids) * 4
}

// RangeQuery returns the boids of the current generation inside r.
// The radius and all modes answer exactly. In bucket mode the quadtree prunes
// with Region.Overlaps, which only tests corners, so a query that crosses a
// leaf without either holding a corner of the other can miss boids: the
// result is then a subset of the exact answer.
func (m *Manager) RangeQuery(r spatial.Region) []flock.Boid {
	return m.index().RangeQuery(r)
}

// Unindexed returns how many boids of the current generation the index does not hold.
func (m *Manager) Unindexed() int {
	return len(m.boids) - m.index().Indexed()
}

// World returns the simulation bounds.
func (m *Manager) World() flock.World {
	return m.cfg.World
}
