package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/geometry"
)

// MinWallDistanceSq is the smallest squared distance to a wall used by the wall term.
// A boid sitting on a wall line is pushed inward as if it stood this far inside.
const MinWallDistanceSq = 1e-12

// Step calculates the next state of current given its neighbours.
// The acceleration is the sum of wall avoidance, alignment, separation and cohesion;
// the resulting velocity is capped at s.MaxSpeed and then applied to the position.
func Step(current Boid, neighbours []Boid, world World, s Settings) Boid {
	if s.NeighbourDistance > 0 {
		neighbours = WithinRange(current, neighbours, s.NeighbourDistance)
	}

	acceleration := Wall(current.Position, world, s.WallWeight).
		Add(Align(neighbours, s.MaxSteerForce)).
		Add(Separate(current, neighbours, s.DesiredSeparation)).
		Add(Cohere(current, neighbours, s.MaxSteerForce))

	velocity := current.Velocity.Add(acceleration).Limit(s.MaxSpeed)

	return Boid{
		Position: current.Position.Add(velocity),
		Velocity: velocity,
		Color:    current.Color,
	}
}

// wall is one boundary line: the projection of a position onto it and its inward normal.
type wall struct {
	project func(p geometry.Vector2D) geometry.Vector2D
	inward  geometry.Vector2D
}

func walls(world World) [4]wall {
	return [4]wall{
		{func(p geometry.Vector2D) geometry.Vector2D { return geometry.Vector2D{X: 0, Y: p.Y} }, geometry.Vector2D{X: 1}},
		{func(p geometry.Vector2D) geometry.Vector2D { return geometry.Vector2D{X: world.Width, Y: p.Y} }, geometry.Vector2D{X: -1}},
		{func(p geometry.Vector2D) geometry.Vector2D { return geometry.Vector2D{X: p.X, Y: 0} }, geometry.Vector2D{Y: 1}},
		{func(p geometry.Vector2D) geometry.Vector2D { return geometry.Vector2D{X: p.X, Y: world.Height} }, geometry.Vector2D{Y: -1}},
	}
}

// Wall returns the inverse-square repulsion of the four world boundaries, scaled by weight.
func Wall(position geometry.Vector2D, world World, weight float64) geometry.Vector2D {
	acceleration := geometry.Zero
	for _, w := range walls(world) {
		acceleration = acceleration.Add(avoid(position, w).Mul(weight))
	}
	return acceleration
}

// avoid returns (p - q) / |p - q|^2 for the projection q of p on the wall.
func avoid(position geometry.Vector2D, w wall) geometry.Vector2D {
	diff := position.Sub(w.project(position))
	d2 := diff.LenSqr()
	if d2 < MinWallDistanceSq {
		d2 = MinWallDistanceSq
		diff = w.inward.Mul(math.Sqrt(MinWallDistanceSq))
	}
	return diff.Div(d2)
}

// Align steers toward the neighbours' heading: the sum of their velocities divided by
// count / maxSteer. No neighbours, no steering.
func Align(neighbours []Boid, maxSteer float64) geometry.Vector2D {
	steer := geometry.Zero
	for _, n := range neighbours {
		steer = steer.Add(n.Velocity)
	}
	if len(neighbours) == 0 {
		return steer
	}
	return steer.Div(float64(len(neighbours)) / maxSteer)
}

// Separate pushes current away from every neighbour within the squared radius desired,
// weighting each unit push by the inverse squared distance. Coincident neighbours are skipped.
func Separate(current Boid, neighbours []Boid, desired float64) geometry.Vector2D {
	steer := geometry.Zero
	for _, n := range neighbours {
		d2 := n.Position.DistanceSquaredTo(current.Position)
		if d2 == 0 || d2 > desired {
			continue
		}
		steer = steer.Add(current.Position.Sub(n.Position).Normalize().Div(d2))
	}
	return steer
}

// Cohere steers toward the centroid of the neighbours, capped at maxSteer.
func Cohere(current Boid, neighbours []Boid, maxSteer float64) geometry.Vector2D {
	if len(neighbours) == 0 {
		return geometry.Zero
	}
	centroid := geometry.Zero
	for _, n := range neighbours {
		centroid = centroid.Add(n.Position)
	}
	steer := centroid.Div(float64(len(neighbours))).Sub(current.Position)
	return steer.Limit(maxSteer)
}

// WithinRange returns the neighbours whose distance to current is at most radius.
// The input slice is returned as-is when nothing is filtered out.
func WithinRange(current Boid, neighbours []Boid, radius float64) []Boid {
	r2 := radius * radius
	for i, n := range neighbours {
		if n.Position.DistanceSquaredTo(current.Position) <= r2 {
			continue
		}
		kept := make([]Boid, i, len(neighbours))
		copy(kept, neighbours[:i])
		for _, m := range neighbours[i+1:] {
			if m.Position.DistanceSquaredTo(current.Position) <= r2 {
				kept = append(kept, m)
			}
		}
		return kept
	}
	return neighbours
}

// Others returns candidates without the first entry equal to current.
// Spatial buckets contain the queried boid itself; the steering rules want the other ones.
func Others(current Boid, candidates []Boid) []Boid {
	for i, c := range candidates {
		if c != current {
			continue
		}
		others := make([]Boid, 0, len(candidates)-1)
		others = append(others, candidates[:i]...)
		return append(others, candidates[i+1:]...)
	}
	return candidates
}
