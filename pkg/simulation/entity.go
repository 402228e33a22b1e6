package simulation

import (
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pb"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/flock"
)

// ToProto converts a boid into its wire form.
func ToProto(b flock.Boid) *pb.BoidState {
	return &pb.BoidState{
		PositionX: b.Position.X,
		PositionY: b.Position.Y,
		VelocityX: b.Velocity.X,
		VelocityY: b.Velocity.Y,
		Color:     b.Color,
	}
}

// FromProto converts a wire boid back into a flock.Boid.
func FromProto(p *pb.BoidState) flock.Boid {
	b := flock.New(p.GetPositionX(), p.GetPositionY(), p.GetVelocityX(), p.GetVelocityY())
	b.Color = p.GetColor()
	return b
}

// Snapshot captures the current generation of m.
func (m *Manager) Snapshot() *pb.Snapshot {
	snap := &pb.Snapshot{
		Generation: m.gen,
		Boids:      make([]*pb.BoidState, 0, len(m.boids)),
		Unindexed:  uint32(m.Unindexed()),
	}
	for _, b := range m.boids {
		snap.Boids = append(snap.Boids, ToProto(b))
	}
	return snap
}
