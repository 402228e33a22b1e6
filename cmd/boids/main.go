package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/internal/render/window"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pb"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/simulation"
)

func main() {
	configFile := flag.String("config", "configs/config.json", "simulation config file, empty for the built-in defaults")
	schemaFile := flag.String("schema", "configs/config.schema.json", "JSON schema of the config file")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile, *schemaFile); err != nil {
			log.Fatal(err)
		}
	}

	ctx := context.Background()
	logger := golog.New(golog.InfoLevel, os.Stderr)

	system, err := actor.NewActorSystem("BoidsWorld",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer system.Stop(ctx)

	manager, err := simulation.NewManager(cfg, simulation.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	// Buffer to avoid blocking the world while a frame is drawn
	snapshotCh := make(chan *pb.Snapshot, 2)
	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(snapshotCh, manager))
	if err != nil {
		log.Fatalf("Failed to spawn world: %v", err)
	}

	ebiten.SetWindowSize(int(cfg.World.Width), int(cfg.World.Height))
	ebiten.SetWindowTitle("Boids: quadtree flocking")
	if err := ebiten.RunGame(window.NewGame(ctx, worldPID, snapshotCh, cfg.World)); err != nil {
		log.Fatal(err)
	}
}
