// Package render holds what the hosts need to draw a flock snapshot:
// the color palette, the boid triangle and a tcell terminal view.
package render

import (
	"image/color"
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/geometry"
)

// Fallback is used for boids whose color is missing or malformed.
var Fallback = color.RGBA{R: 100, G: 200, B: 255, A: 255}

// Palette turns "#rrggbb" boid colors into RGBA values, parsing each color once.
type Palette struct {
	mu     sync.Mutex
	colors map[string]color.RGBA
}

func NewPalette() *Palette {
	return &Palette{colors: make(map[string]color.RGBA)}
}

// RGBA returns the color for hex.
func (p *Palette) RGBA(hex string) color.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.colors[hex]; ok {
		return c
	}
	c := Fallback
	if parsed, err := colorful.Hex(hex); err == nil {
		r, g, b := parsed.RGB255()
		c = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	p.colors[hex] = c
	return c
}

// Triangle returns the tip and the two back corners of a boid drawn at position
// and pointing along velocity.
func Triangle(position, velocity geometry.Vector2D) [3]geometry.Vector2D {
	angle := velocity.Angle()
	at := func(a, r float64) geometry.Vector2D {
		return position.Add(geometry.Vector2D{X: math.Cos(a) * r, Y: math.Sin(a) * r})
	}
	return [3]geometry.Vector2D{
		at(angle, 6),
		at(angle+2.5, 5),
		at(angle-2.5, 5),
	}
}
