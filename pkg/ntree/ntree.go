// Package ntree is a hierarchical spatial index that knows nothing about geometry.
//
// A Tree partitions its root region into buckets. When a bucket holds more than its
// capacity, the region is split and the items are pushed down into the sub-regions.
// All geometric decisions are delegated to the Region implementation, so the same tree
// serves quadtrees, binary partitions or anything else whose Split covers the parent.
package ntree

// DefaultMaxDepth bounds subdivision. Past this depth a leaf keeps growing beyond its
// capacity instead of splitting again, which is what happens with coincident items.
const DefaultMaxDepth = 24

// Region is the predicate set a Tree needs from its partition shape R holding items T.
type Region[R any, T any] interface {
	// Contains reports whether item lies in the region.
	Contains(item T) bool
	// Split returns the sub-regions replacing the region when its bucket overflows.
	Split() []R
	// Overlaps reports whether the region shares space with other.
	Overlaps(other R) bool
}

type options struct {
	maxDepth int
}

// Option configures a Tree.
type Option func(*options)

// WithMaxDepth sets the depth after which leaves stop splitting.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth >= 0 {
			o.maxDepth = depth
		}
	}
}

// Tree is one node of the index: a leaf holding a bucket, or a branch holding children.
type Tree[R Region[R, T], T any] struct {
	region   R
	bucket   int
	maxDepth int
	depth    int
	items    []T
	children []*Tree[R, T]
}

// New creates an empty tree covering root. bucket is the leaf capacity before a split;
// values below 1 are raised to 1.
func New[R Region[R, T], T any](root R, bucket int, opts ...Option) *Tree[R, T] {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	if bucket < 1 {
		bucket = 1
	}
	return &Tree[R, T]{
		region:   root,
		bucket:   bucket,
		maxDepth: o.maxDepth,
	}
}

// Region returns the region covered by this node.
func (t *Tree[R, T]) Region() R {
	return t.region
}

// Contains reports whether item falls inside the root region.
func (t *Tree[R, T]) Contains(item T) bool {
	return t.region.Contains(item)
}

// Insert adds item to the leaf whose region contains it.
// It returns false, leaving the tree untouched, when item is outside the root region.
func (t *Tree[R, T]) Insert(item T) bool {
	if !t.region.Contains(item) {
		return false
	}
	t.insert(item)
	return true
}

func (t *Tree[R, T]) insert(item T) {
	if t.children == nil {
		if len(t.items) < t.bucket || t.depth >= t.maxDepth {
			t.items = append(t.items, item)
			return
		}
		t.subdivide()
	}
	t.childFor(item).insert(item)
}

func (t *Tree[R, T]) subdivide() {
	regions := t.region.Split()
	t.children = make([]*Tree[R, T], 0, len(regions))
	for _, r := range regions {
		t.children = append(t.children, &Tree[R, T]{
			region:   r,
			bucket:   t.bucket,
			maxDepth: t.maxDepth,
			depth:    t.depth + 1,
		})
	}
	items := t.items
	t.items = nil
	for _, item := range items {
		t.childFor(item).insert(item)
	}
}

// childFor returns the first child containing item. Rounding in Split can leave an item
// lying on the far edge of the parent outside every child; it then goes to the last child.
func (t *Tree[R, T]) childFor(item T) *Tree[R, T] {
	for _, c := range t.children {
		if c.region.Contains(item) {
			return c
		}
	}
	return t.children[len(t.children)-1]
}

// Nearby returns the bucket of the leaf whose region contains item, whether or not item
// itself was inserted. The second result is false when item is outside the root region.
// The returned slice belongs to the tree and must not be modified.
func (t *Tree[R, T]) Nearby(item T) ([]T, bool) {
	if !t.region.Contains(item) {
		return nil, false
	}
	node := t
	for node.children != nil {
		node = node.childFor(item)
	}
	return node.items, true
}

// RangeQuery returns every item contained in query, in leaf order.
// Subtrees are visited when their region and query overlap in either direction.
func (t *Tree[R, T]) RangeQuery(query R) []T {
	var found []T
	t.rangeQuery(query, &found)
	return found
}

func (t *Tree[R, T]) rangeQuery(query R, found *[]T) {
	if t.children == nil {
		for _, item := range t.items {
			if query.Contains(item) {
				*found = append(*found, item)
			}
		}
		return
	}
	for _, c := range t.children {
		if c.region.Overlaps(query) || query.Overlaps(c.region) {
			c.rangeQuery(query, found)
		}
	}
}

// Len returns the number of items stored in the tree.
func (t *Tree[R, T]) Len() int {
	if t.children == nil {
		return len(t.items)
	}
	n := 0
	for _, c := range t.children {
		n += c.Len()
	}
	return n
}

// Leaves returns the number of leaf buckets.
func (t *Tree[R, T]) Leaves() int {
	if t.children == nil {
		return 1
	}
	n := 0
	for _, c := range t.children {
		n += c.Leaves()
	}
	return n
}
