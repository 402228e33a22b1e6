package simulation

import (
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/pb"
)

// WorldActor owns the flock. Ticks are serialised by its mailbox, so the manager
// is never touched by two passes at once.
type WorldActor struct {
	manager    *Manager
	snapshotCh chan<- *pb.Snapshot

	// --- Benchmark Stats ---
	tickCount   int
	stepCount   int
	dropCount   int
	lastLogTime time.Time
}

// NewWorldActor creates the world logic unit.
// snapshotCh may be nil when nobody renders; snapshots are then only served through GetSnapshot.
func NewWorldActor(snapshotCh chan<- *pb.Snapshot, manager *Manager) *WorldActor {
	return &WorldActor{
		manager:     manager,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is starting...")
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		world := w.manager.World()
		ctx.Logger().Infof("World started with %d boids in %.0fx%.0f",
			len(w.manager.boids), world.Width, world.Height)

	case *pb.Tick:
		steps := max(1, int(msg.GetSteps()))
		for range steps {
			w.manager.Step()
		}
		w.tickCount++
		w.stepCount += steps
		w.pushSnapshot()
		w.logBenchmarks(ctx)

	case *pb.GetSnapshot:
		ctx.Response(w.manager.Snapshot())

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.manager.Snapshot():
	default:
		// renderer busy, skip frame
		w.dropCount++
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("TICK RATE: %d/sec (Generations: %d, Dropped frames: %d) | Generation %d, unindexed %d",
			w.tickCount, w.stepCount, w.dropCount, w.manager.Generation(), w.manager.Unindexed())
		w.tickCount = 0
		w.stepCount = 0
		w.dropCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is shutdown at generation %d", w.manager.Generation())
	return nil
}
