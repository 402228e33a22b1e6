package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/spatial"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidConfig is returned when a configuration cannot drive a simulation.
var ErrInvalidConfig = errors.New("invalid simulation config")

// SeedMode selects how the initial population is laid out.
type SeedMode string

const (
	// SeedLine places boid i at (origin.x + i*spacing, origin.y), all with the initial velocity.
	SeedLine SeedMode = "line"
	// SeedRandom scatters boids uniformly over the world with random headings.
	SeedRandom SeedMode = "random"
)

type Config struct {
	// World Dimensions
	World flock.World `json:"world"`

	// Steering constants
	Settings flock.Settings `json:"settings"`

	// Neighbour search: "bucket", "radius" or "all"
	NeighbourMode string  `json:"neighbourMode"`
	BucketSize    int     `json:"bucketSize"`   // quadtree leaf capacity
	MaxDepth      int     `json:"maxDepth"`     // quadtree depth guard, 0 means ntree.DefaultMaxDepth
	SearchRadius  float64 `json:"searchRadius"` // used by the radius mode

	// Population
	Population      int               `json:"population"`
	SeedMode        SeedMode          `json:"seedMode"`
	Seed            uint64            `json:"seed"`
	Origin          geometry.Vector2D `json:"origin"`
	Spacing         float64           `json:"spacing"`
	InitialVelocity geometry.Vector2D `json:"initialVelocity"`

	// Workers > 1 splits each pass over that many goroutines.
	Workers int `json:"workers"`
}

// DefaultConfig mirrors the quadtree deployment: 5000 boids on a line in a 1910x1080 world.
func DefaultConfig() *Config {
	return &Config{
		World:           flock.World{Width: 1910, Height: 1080},
		Settings:        flock.DefaultSettings(),
		NeighbourMode:   string(spatial.ModeBucket),
		BucketSize:      50,
		SearchRadius:    50,
		Population:      5000,
		SeedMode:        SeedLine,
		Seed:            1,
		Origin:          geometry.Vector2D{X: 100, Y: 100},
		Spacing:         0.1,
		InitialVelocity: geometry.Zero,
		Workers:         1,
	}
}

// Validate reports the first problem found in cfg, wrapped in ErrInvalidConfig.
func (cfg *Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"world.width", cfg.World.Width},
		{"world.height", cfg.World.Height},
		{"searchRadius", cfg.SearchRadius},
		{"origin.x", cfg.Origin.X},
		{"origin.y", cfg.Origin.Y},
		{"spacing", cfg.Spacing},
		{"initialVelocity.x", cfg.InitialVelocity.X},
		{"initialVelocity.y", cfg.InitialVelocity.Y},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, f.name, f.v)
		}
	}
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return fmt.Errorf("%w: world must have a positive size, got %vx%v", ErrInvalidConfig, cfg.World.Width, cfg.World.Height)
	}
	if err := cfg.Settings.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	mode, err := spatial.ParseMode(cfg.NeighbourMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch {
	case mode == spatial.ModeBucket && cfg.BucketSize < 1:
		return fmt.Errorf("%w: bucketSize must be >= 1, got %d", ErrInvalidConfig, cfg.BucketSize)
	case mode == spatial.ModeRadius && cfg.SearchRadius <= 0:
		return fmt.Errorf("%w: searchRadius must be > 0, got %v", ErrInvalidConfig, cfg.SearchRadius)
	case cfg.MaxDepth < 0:
		return fmt.Errorf("%w: maxDepth must be >= 0, got %d", ErrInvalidConfig, cfg.MaxDepth)
	case cfg.Population < 0:
		return fmt.Errorf("%w: population must be >= 0, got %d", ErrInvalidConfig, cfg.Population)
	case cfg.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, cfg.Workers)
	}
	switch cfg.SeedMode {
	case SeedLine, SeedRandom, "":
	default:
		return fmt.Errorf("%w: unknown seedMode %q", ErrInvalidConfig, cfg.SeedMode)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
// Fields absent from the file keep their DefaultConfig value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: schema validation failed: %w", ErrInvalidConfig, err)
	}

	// 4. Unmarshal into Struct
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
