package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-quadtree/pkg/ntree"
)

func TestInsertAndNearby(t *testing.T) {
	tree := ntree.New[Region, flock.Boid](Square(0, 0, 100), 4)
	require.True(t, tree.Insert(makeBoid(50, 50)))

	bucket, ok := tree.Nearby(makeBoid(40, 40))
	require.True(t, ok)
	require.Equal(t, []flock.Boid{makeBoid(50, 50)}, bucket)
}

func TestNearbyQuadrants(t *testing.T) {
	tree := ntree.New[Region, flock.Boid](Square(0, 0, 100), 4)

	// Bottom left corner
	tree.Insert(makeBoid(30, 30))
	tree.Insert(makeBoid(20, 20))
	tree.Insert(makeBoid(10, 10))
	// Top right corner
	tree.Insert(makeBoid(75, 75))
	// Top left corner
	tree.Insert(makeBoid(40, 70))
	// Bottom right corner
	tree.Insert(makeBoid(80, 20))

	cases := []struct {
		name  string
		query flock.Boid
		want  []flock.Boid
	}{
		{"bottom left", makeBoid(40, 40), []flock.Boid{makeBoid(30, 30), makeBoid(20, 20), makeBoid(10, 10)}},
		{"top right", makeBoid(90, 90), []flock.Boid{makeBoid(75, 75)}},
		{"top left", makeBoid(20, 80), []flock.Boid{makeBoid(40, 70)}},
		{"bottom right", makeBoid(94, 12), []flock.Boid{makeBoid(80, 20)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bucket, ok := tree.Nearby(tc.query)
			require.True(t, ok)
			require.Equal(t, tc.want, bucket)
		})
	}
}

func TestRangeQuery(t *testing.T) {
	tree := ntree.New[Region, flock.Boid](Square(0, 0, 100), 4)

	// Inside (y < 40)
	tree.Insert(makeBoid(30, 30))
	tree.Insert(makeBoid(20, 20))
	tree.Insert(makeBoid(10, 10))
	tree.Insert(makeBoid(60, 20))
	// Outside (y > 40)
	tree.Insert(makeBoid(60, 59))
	tree.Insert(makeBoid(60, 45))

	got := tree.RangeQuery(Region{X: 0, Y: 0, Width: 100, Height: 40})
	require.Equal(t, []flock.Boid{
		makeBoid(30, 30),
		makeBoid(20, 20),
		makeBoid(10, 10),
		makeBoid(60, 20),
	}, got)
}

func TestRangeQueryInsideSingleLeaf(t *testing.T) {
	tree := ntree.New[Region, flock.Boid](Square(0, 0, 100), 2)
	for _, p := range [][2]float64{{10, 10}, {20, 20}, {80, 80}, {22, 22}} {
		tree.Insert(makeBoid(p[0], p[1]))
	}
	// the query is far smaller than the leaf holding (20, 20)
	got := tree.RangeQuery(Square(19, 19, 2))
	require.Equal(t, []flock.Boid{makeBoid(20, 20)}, got)
}

func population() []flock.Boid {
	return []flock.Boid{
		makeBoid(10, 10),
		makeBoid(12, 10),
		makeBoid(10, 13),
		makeBoid(60, 60),
		makeBoid(95, 5),
		makeBoid(300, 300), // outside the 100x100 root
	}
}

func TestBucketFinder(t *testing.T) {
	boids := population()
	f := NewBucketFinder(Square(0, 0, 100), 3, boids)
	require.Equal(t, 5, f.Indexed())

	got := f.Neighbours(boids[0])
	require.Equal(t, []flock.Boid{boids[1], boids[2]}, got)

	require.Nil(t, f.Neighbours(boids[5]))
	require.Equal(t, []flock.Boid{boids[3]}, f.RangeQuery(Square(50, 50, 20)))
	require.NotNil(t, f.Tree())
}

func TestRadiusFinder(t *testing.T) {
	boids := population()
	f := NewRadiusFinder(boids, 5)
	require.Equal(t, 6, f.Indexed())

	require.Equal(t, []flock.Boid{boids[1], boids[2]}, f.Neighbours(boids[0]))
	// (12,10)-(10,13) is sqrt(13) < 5
	require.Equal(t, []flock.Boid{boids[0], boids[2]}, f.Neighbours(boids[1]))
	require.Empty(t, f.Neighbours(boids[5]))

	require.Equal(t, []flock.Boid{boids[3], boids[5]}, f.RangeQuery(Square(50, 50, 300)))
}

func TestRadiusFinderBoxCornerExcluded(t *testing.T) {
	me := makeBoid(0, 0)
	corner := makeBoid(4, 4) // inside the search box, 5.66 away
	f := NewRadiusFinder([]flock.Boid{me, corner}, 5)
	require.Empty(t, f.Neighbours(me))
}

func TestRadiusFinderEmpty(t *testing.T) {
	f := NewRadiusFinder(nil, 10)
	require.Empty(t, f.Neighbours(makeBoid(1, 1)))
	require.Empty(t, f.RangeQuery(Square(0, 0, 10)))
}

func TestAllFinder(t *testing.T) {
	boids := population()
	f := NewAllFinder(boids)
	got := f.Neighbours(boids[3])
	require.Len(t, got, 5)
	require.NotContains(t, got, boids[3])
	require.Equal(t, []flock.Boid{boids[0], boids[1], boids[2]}, f.RangeQuery(Square(0, 0, 20)))
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeBucket, "bucket": ModeBucket, "radius": ModeRadius, "all": ModeAll} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseMode("grid")
	require.Error(t, err)
}

func BenchmarkBucketFinder(b *testing.B) {
	boids := make([]flock.Boid, 5000)
	for i := range boids {
		boids[i] = makeBoid(100+float64(i)*0.1, 100+float64(i%97))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := NewBucketFinder(Square(0, 0, 1910), 50, boids)
		for _, boid := range boids {
			f.Neighbours(boid)
		}
	}
}
