package spatial

import (
	"fmt"
	"slices"

	"github.com/bmharper/flatbush-go/v2"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/ntree"
)

// Mode selects how neighbour candidates are found.
type Mode string

const (
	// ModeBucket uses the boids sharing the finest quadtree leaf.
	ModeBucket Mode = "bucket"
	// ModeRadius uses every boid within a radius, through a packed R-tree.
	ModeRadius Mode = "radius"
	// ModeAll uses the whole population (quadratic).
	ModeAll Mode = "all"
)

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeBucket, ModeRadius, ModeAll:
		return m, nil
	case "":
		return ModeBucket, nil
	default:
		return "", fmt.Errorf("unknown neighbour mode %q", s)
	}
}

// Finder answers neighbour and range queries over one immutable generation of boids.
type Finder interface {
	// Neighbours returns the candidates for b, b itself excluded.
	Neighbours(b flock.Boid) []flock.Boid
	// RangeQuery returns the indexed boids lying in r.
	RangeQuery(r Region) []flock.Boid
	// Indexed returns how many boids the finder holds.
	Indexed() int
}

// BucketFinder is a quadtree over Region: neighbours are the other boids of the leaf
// bucket containing a boid, so each query costs at most the bucket capacity.
type BucketFinder struct {
	tree *ntree.Tree[Region, flock.Boid]
}

// NewBucketFinder indexes boids in a quadtree rooted at root with the given bucket capacity.
// Boids outside root are not indexed; Neighbours returns nothing for them.
func NewBucketFinder(root Region, bucket int, boids []flock.Boid, opts ...ntree.Option) *BucketFinder {
	tree := ntree.New[Region, flock.Boid](root, bucket, opts...)
	for _, b := range boids {
		tree.Insert(b)
	}
	return &BucketFinder{tree: tree}
}

// Tree exposes the underlying index.
func (f *BucketFinder) Tree() *ntree.Tree[Region, flock.Boid] {
	return f.tree
}

func (f *BucketFinder) Neighbours(b flock.Boid) []flock.Boid {
	bucket, ok := f.tree.Nearby(b)
	if !ok {
		return nil
	}
	return flock.Others(b, bucket)
}

func (f *BucketFinder) RangeQuery(r Region) []flock.Boid {
	return f.tree.RangeQuery(r)
}

func (f *BucketFinder) Indexed() int {
	return f.tree.Len()
}

// RadiusFinder is a static packed Hilbert R-tree built once per generation.
// Neighbours are the boids within radius of a boid.
type RadiusFinder struct {
	index  *flatbush.Flatbush[float64]
	boids  []flock.Boid
	radius float64
}

// NewRadiusFinder indexes boids as zero-sized boxes at their positions.
func NewRadiusFinder(boids []flock.Boid, radius float64) *RadiusFinder {
	index := flatbush.NewFlatbush[float64]()
	index.Reserve(len(boids))
	for _, b := range boids {
		index.Add(b.Position.X, b.Position.Y, b.Position.X, b.Position.Y)
	}
	index.Finish()
	return &RadiusFinder{index: index, boids: boids, radius: radius}
}

// search returns the indices of boids in the box, in generation order.
func (f *RadiusFinder) search(minX, minY, maxX, maxY float64) []int {
	hits := f.index.Search(minX, minY, maxX, maxY)
	slices.Sort(hits)
	return hits
}

func (f *RadiusFinder) Neighbours(b flock.Boid) []flock.Boid {
	p := b.Position
	hits := f.search(p.X-f.radius, p.Y-f.radius, p.X+f.radius, p.Y+f.radius)
	r2 := f.radius * f.radius
	found := make([]flock.Boid, 0, len(hits))
	self := false
	for _, i := range hits {
		n := f.boids[i]
		if !self && n == b {
			self = true
			continue
		}
		if n.Position.DistanceSquaredTo(p) <= r2 {
			found = append(found, n)
		}
	}
	return found
}

func (f *RadiusFinder) RangeQuery(r Region) []flock.Boid {
	hits := f.search(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
	found := make([]flock.Boid, 0, len(hits))
	for _, i := range hits {
		if r.Contains(f.boids[i]) {
			found = append(found, f.boids[i])
		}
	}
	return found
}

func (f *RadiusFinder) Indexed() int {
	return len(f.boids)
}

// AllFinder hands every other boid to every boid.
type AllFinder struct {
	boids []flock.Boid
}

// NewAllFinder wraps the whole generation.
func NewAllFinder(boids []flock.Boid) *AllFinder {
	return &AllFinder{boids: boids}
}

func (f *AllFinder) Neighbours(b flock.Boid) []flock.Boid {
	return flock.Others(b, f.boids)
}

func (f *AllFinder) RangeQuery(r Region) []flock.Boid {
	var found []flock.Boid
	for _, b := range f.boids {
		if r.Contains(b) {
			found = append(found, b)
		}
	}
	return found
}

func (f *AllFinder) Indexed() int {
	return len(f.boids)
}
