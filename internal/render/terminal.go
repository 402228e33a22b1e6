package render

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/pb"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/flock"
)

// arrows are the headings drawn in the terminal, clockwise from east with rows growing downward.
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Glyph returns the arrow closest to the heading of (vx, vy), or a dot for a boid at rest.
func Glyph(vx, vy float64) rune {
	if vx == 0 && vy == 0 {
		return '·'
	}
	octant := int(math.Round(math.Atan2(vy, vx)/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

// Cell maps world coordinates to a cell of a cols x rows grid.
// ok is false when the point falls outside the world.
func Cell(x, y float64, world flock.World, cols, rows int) (col, row int, ok bool) {
	if x < 0 || y < 0 || x > world.Width || y > world.Height || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	col = min(int(x/world.Width*float64(cols)), cols-1)
	row = min(int(y/world.Height*float64(rows)), rows-1)
	return col, row, true
}

// Terminal draws snapshots on a tcell screen: one arrow per boid, the status on the last row.
type Terminal struct {
	screen  tcell.Screen
	world   flock.World
	palette *Palette
	styles  map[string]tcell.Style
}

// NewTerminal wraps an initialised screen.
func NewTerminal(screen tcell.Screen, world flock.World) *Terminal {
	return &Terminal{
		screen:  screen,
		world:   world,
		palette: NewPalette(),
		styles:  make(map[string]tcell.Style),
	}
}

func (t *Terminal) style(hex string) tcell.Style {
	if s, ok := t.styles[hex]; ok {
		return s
	}
	c := t.palette.RGBA(hex)
	s := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	t.styles[hex] = s
	return s
}

// Draw renders snap and shows the screen.
func (t *Terminal) Draw(snap *pb.Snapshot) {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	field := rows - 1

	for _, b := range snap.GetBoids() {
		col, row, ok := Cell(b.GetPositionX(), b.GetPositionY(), t.world, cols, field)
		if !ok {
			continue
		}
		t.screen.SetContent(col, row, Glyph(b.GetVelocityX(), b.GetVelocityY()), nil, t.style(b.GetColor()))
	}

	status := fmt.Sprintf(" generation %d | boids %d | unindexed %d | q/Esc quit ",
		snap.GetGeneration(), len(snap.GetBoids()), snap.GetUnindexed())
	statusStyle := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(status) {
		if i >= cols {
			break
		}
		t.screen.SetContent(i, rows-1, r, nil, statusStyle)
	}
	t.screen.Show()
}

// quit reports whether ev asks to leave.
func quit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	}
	return false
}

// Run calls tick every frame and draws the snapshots it receives until ctx ends
// or the user quits.
func (t *Terminal) Run(ctx context.Context, frame time.Duration, snapshots <-chan *pb.Snapshot, tick func() error) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			switch {
			case quit(ev):
				return nil
			case isResize(ev):
				t.screen.Sync()
			}
		case snap := <-snapshots:
			t.Draw(snap)
		case <-ticker.C:
			if err := tick(); err != nil {
				return err
			}
		}
	}
}

func isResize(ev tcell.Event) bool {
	_, ok := ev.(*tcell.EventResize)
	return ok
}
