package spatial

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/ntree"
)

// Region is an axis-aligned rectangle in world coordinates.
// It is the partition shape of the boid quadtree: it tells the tree which boids it holds,
// how to quarter itself and whether it meets a query rectangle. It holds no state.
type Region struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

var _ ntree.Region[Region, flock.Boid] = Region{}

// Square returns the region of side wh anchored at (x, y).
func Square(x, y, wh float64) Region {
	return Region{X: x, Y: y, Width: wh, Height: wh}
}

// World returns the region covering the whole world.
func World(w flock.World) Region {
	return Region{Width: w.Width, Height: w.Height}
}

// Valid reports whether width and height are non-negative.
func (r Region) Valid() bool {
	return r.Width >= 0 && r.Height >= 0
}

// Area returns width times height.
func (r Region) Area() float64 {
	return r.Width * r.Height
}

func (r Region) String() string {
	return fmt.Sprintf("[%.2f, %.2f %.2fx%.2f]", r.X, r.Y, r.Width, r.Height)
}

// ContainsPoint reports whether p lies in the region, edges included.
func (r Region) ContainsPoint(p geometry.Vector2D) bool {
	return r.X <= p.X &&
		r.Y <= p.Y &&
		(r.X+r.Width) >= p.X &&
		(r.Y+r.Height) >= p.Y
}

// Contains reports whether the boid's position lies in the region, edges included.
func (r Region) Contains(b flock.Boid) bool {
	return r.ContainsPoint(b.Position)
}

// Split quarters the region. Children come bottom-left, top-left, bottom-right, top-right
// (y grows upward), each half as wide and half as high as r.
func (r Region) Split() []Region {
	halfWidth := r.Width / 2
	halfHeight := r.Height / 2
	return []Region{
		{X: r.X, Y: r.Y, Width: halfWidth, Height: halfHeight},
		{X: r.X, Y: r.Y + halfHeight, Width: halfWidth, Height: halfHeight},
		{X: r.X + halfWidth, Y: r.Y, Width: halfWidth, Height: halfHeight},
		{X: r.X + halfWidth, Y: r.Y + halfHeight, Width: halfWidth, Height: halfHeight},
	}
}

// Corners returns the four corners of r.
func (r Region) Corners() [4]geometry.Vector2D {
	return [4]geometry.Vector2D{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X, Y: r.Y + r.Height},
		{X: r.X + r.Width, Y: r.Y + r.Height},
	}
}

// Overlaps reports whether any corner of r lies in other.
//
// This is a corner test, not a true intersection: two rectangles crossing like a plus sign
// share area without either holding a corner of the other, and Overlaps reports false.
// The tree asks in both directions, which covers containment; Intersects is exact.
func (r Region) Overlaps(other Region) bool {
	for _, c := range r.Corners() {
		if other.ContainsPoint(c) {
			return true
		}
	}
	return false
}

// Intersects reports whether r and other share at least one point.
func (r Region) Intersects(other Region) bool {
	return r.X <= other.X+other.Width &&
		other.X <= r.X+r.Width &&
		r.Y <= other.Y+other.Height &&
		other.Y <= r.Y+r.Height
}
