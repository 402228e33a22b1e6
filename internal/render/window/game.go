// Package window draws flock snapshots in an ebiten window and drives the world actor from its game loop.
package window

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tochemey/goakt/v3/actor"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/internal/render"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pb"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/geometry"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	background = color.RGBA{R: 10, G: 10, B: 30, A: 255}
)

func init() {
	whiteImage.Fill(color.White)
}

type Game struct {
	ctx        context.Context
	worldPID   *actor.PID
	snapshotCh <-chan *pb.Snapshot
	lastState  *pb.Snapshot
	world      flock.World
	palette    *render.Palette
	paused     bool

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// NewGame returns a game ticking the world actor at worldPID and drawing what it pushes on snapshotCh.
func NewGame(ctx context.Context, worldPID *actor.PID, snapshotCh <-chan *pb.Snapshot, world flock.World) *Game {
	return &Game{
		ctx:        ctx,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.Snapshot{},
		world:      world,
		palette:    render.NewPalette(),
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	// Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	if g.paused {
		return nil
	}
	// Trigger Simulation Step
	if err := actor.Tell(g.ctx, g.worldPID, &pb.Tick{}); err != nil {
		return fmt.Errorf("cannot tick the world: %w", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(background)
	for _, b := range g.lastState.GetBoids() {
		g.drawBoid(screen, b)
	}

	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nGeneration: %d\nBoids: %d\nUnindexed: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.GetGeneration(),
		len(g.lastState.GetBoids()),
		g.lastState.GetUnindexed(),
		g.updateAvg,
		g.drawAvg)
	if g.paused {
		msg += "\n\nPAUSED (space)"
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}

func (g *Game) drawBoid(screen *ebiten.Image, b *pb.BoidState) {
	tri := render.Triangle(
		geometry.Vector2D{X: b.GetPositionX(), Y: b.GetPositionY()},
		geometry.Vector2D{X: b.GetVelocityX(), Y: b.GetVelocityY()},
	)
	c := g.palette.RGBA(b.GetColor())
	r, gr, bl := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255

	vertices := make([]ebiten.Vertex, 0, len(tri))
	for _, p := range tri {
		vertices = append(vertices, ebiten.Vertex{
			DstX: float32(p.X),
			DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: gr, ColorB: bl, ColorA: 1,
		})
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteImage, &ebiten.DrawTrianglesOptions{})
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.world.Width), int(g.world.Height) }
