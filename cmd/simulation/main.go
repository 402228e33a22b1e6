package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/internal/render"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pb"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/simulation"
)

func main() {
	configFile := flag.String("config", "configs/config.json", "simulation config file, empty for the built-in defaults")
	schemaFile := flag.String("schema", "configs/config.schema.json", "JSON schema of the config file")
	renderMode := flag.String("render", "terminal", "terminal or none")
	ticks := flag.Int("ticks", 0, "stop after this many ticks, 0 runs until quit (none needs a positive value)")
	frame := flag.Duration("frame", 33*time.Millisecond, "time between ticks in terminal mode")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile, *schemaFile); err != nil {
			log.Fatal(err)
		}
	}
	if *renderMode != "terminal" && *renderMode != "none" {
		log.Fatalf("unknown render mode %q", *renderMode)
	}
	if *renderMode == "none" && *ticks <= 0 {
		*ticks = 1000
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// the terminal owns the screen, so the actor logs are silenced there
	var logger golog.Logger = golog.New(golog.InfoLevel, os.Stderr)
	if *renderMode == "terminal" {
		logger = golog.DiscardLogger
	}

	system, err := actor.NewActorSystem("BoidsWorld",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer system.Stop(context.Background())

	manager, err := simulation.NewManager(cfg, simulation.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	var snapshotCh chan *pb.Snapshot
	if *renderMode == "terminal" {
		snapshotCh = make(chan *pb.Snapshot, 1)
	}
	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(snapshotCh, manager))
	if err != nil {
		log.Fatalf("Failed to spawn world: %v", err)
	}

	if *renderMode == "none" {
		runHeadless(ctx, worldPID, *ticks)
		return
	}
	if err := runTerminal(ctx, worldPID, snapshotCh, cfg, *ticks, *frame); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(ctx context.Context, worldPID *actor.PID, ticks int) {
	start := time.Now()
	for i := 0; i < ticks; i++ {
		if err := actor.Tell(ctx, worldPID, &pb.Tick{}); err != nil {
			log.Fatalf("cannot tick the world: %v", err)
		}
	}
	reply, err := actor.Ask(ctx, worldPID, &pb.GetSnapshot{}, 10*time.Minute)
	if err != nil {
		log.Fatalf("cannot read the world: %v", err)
	}
	snap := reply.(*pb.Snapshot)
	log.Printf("generation %d reached in %v: %d boids, %d outside the index",
		snap.GetGeneration(), time.Since(start), len(snap.GetBoids()), snap.GetUnindexed())
}

func runTerminal(ctx context.Context, worldPID *actor.PID, snapshotCh <-chan *pb.Snapshot, cfg *simulation.Config, ticks int, frame time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sent := 0
	tick := func() error {
		if ticks > 0 && sent >= ticks {
			cancel()
			return nil
		}
		sent++
		return actor.Tell(ctx, worldPID, &pb.Tick{})
	}
	return render.NewTerminal(screen, cfg.World).Run(ctx, frame, snapshotCh, tick)
}
