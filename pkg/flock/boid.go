package flock

import (
	"errors"
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/geometry"
)

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("invalid flock settings")

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// https://en.wikipedia.org/wiki/Boids
//
// A Boid is a value: Step returns the next one and never mutates its input.
// Color is an opaque presentation payload ("#rrggbb"), ignored by the steering math.
type Boid struct {
	Position geometry.Vector2D `json:"position"`
	Velocity geometry.Vector2D `json:"velocity"`
	Color    string            `json:"color,omitempty"`
}

// New returns a boid at (x, y) moving with velocity (vx, vy).
func New(x, y, vx, vy float64) Boid {
	return Boid{
		Position: geometry.Vector2D{X: x, Y: y},
		Velocity: geometry.Vector2D{X: vx, Y: vy},
	}
}

// World is the rectangle [0, Width] x [0, Height] the flock lives in.
type World struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Settings controls the steering constants of Step.
// One value covers every deployment; pick a preset or fill it from configuration.
type Settings struct {
	MaxSpeed      float64 `json:"maxSpeed"`      // velocity magnitude cap
	MaxSteerForce float64 `json:"maxSteerForce"` // alignment scale and cohesion cap

	// DesiredSeparation is a SQUARED distance: neighbours closer than its square root repel.
	DesiredSeparation float64 `json:"desiredSeparation"`

	// NeighbourDistance is a plain radius. When > 0, Step ignores neighbours farther away;
	// 0 means the caller already filtered the neighbour set.
	NeighbourDistance float64 `json:"neighbourDistance"`

	WallWeight float64 `json:"wallWeight"` // inverse-square wall repulsion strength
}

// DefaultSettings are the constants used with the spatial index deployment.
func DefaultSettings() Settings {
	return Settings{
		MaxSpeed:          4.0,
		MaxSteerForce:     0.5,
		DesiredSeparation: 500.0,
		NeighbourDistance: 0,
		WallWeight:        25.0,
	}
}

// CanvasSettings are the slower constants used with the all-pairs deployment.
func CanvasSettings() Settings {
	return Settings{
		MaxSpeed:          2.0,
		MaxSteerForce:     0.02,
		DesiredSeparation: 500.0,
		NeighbourDistance: 0,
		WallWeight:        25.0,
	}
}

// Validate checks that the settings can be used by Step.
func (s Settings) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"maxSpeed", s.MaxSpeed},
		{"maxSteerForce", s.MaxSteerForce},
		{"desiredSeparation", s.DesiredSeparation},
		{"neighbourDistance", s.NeighbourDistance},
		{"wallWeight", s.WallWeight},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidSettings, f.name, f.v)
		}
	}
	switch {
	case s.MaxSpeed <= 0:
		return fmt.Errorf("%w: maxSpeed must be > 0, got %v", ErrInvalidSettings, s.MaxSpeed)
	case s.MaxSteerForce <= 0:
		return fmt.Errorf("%w: maxSteerForce must be > 0, got %v", ErrInvalidSettings, s.MaxSteerForce)
	case s.DesiredSeparation < 0:
		return fmt.Errorf("%w: desiredSeparation must be >= 0, got %v", ErrInvalidSettings, s.DesiredSeparation)
	case s.NeighbourDistance < 0:
		return fmt.Errorf("%w: neighbourDistance must be >= 0, got %v", ErrInvalidSettings, s.NeighbourDistance)
	case s.WallWeight < 0:
		return fmt.Errorf("%w: wallWeight must be >= 0, got %v", ErrInvalidSettings, s.WallWeight)
	}
	return nil
}
