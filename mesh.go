package rtin

// Mesh is the output of an adaptive RTIN extraction: a flat vertex buffer
// of grid-integer (x, y) coordinates and a flat triangle-index buffer into
// it. Winding follows the recursive split order and is consistent across
// the mesh but not guaranteed to be uniformly CW or CCW in world space.
type Mesh struct {
	// Vertices is 2*V entries: (x, y) pairs in grid coordinates.
	Vertices []uint16
	// Triangles is 3*F entries, 0-based indices into Vertices.
	Triangles []uint32
}

// meshConfig holds the resolved settings for a GetMesh call.
type meshConfig struct {
	maxError float64
	maxScale float64
}

// MeshOption configures a GetMesh call.
type MeshOption func(*meshConfig)

// WithMaxError sets the maximum vertical error tolerated before a
// triangle must split. The zero value (the default when no option is
// given) produces an exact triangulation: a triangle splits wherever its
// error is above zero, so regions with zero error (flat terrain, for
// instance) stay coarse. A negative value refines every triangle down to
// unit legs.
func WithMaxError(maxError float64) MeshOption {
	return func(c *meshConfig) {
		c.maxError = maxError
	}
}

// WithMaxLength bounds the L1 leg length of any emitted triangle. Without
// this option no length constraint is applied (equivalent to a length of
// the grid size, since no leg can exceed the tile's extent).
func WithMaxLength(maxLength float64) MeshOption {
	return func(c *meshConfig) {
		c.maxScale = maxLength
	}
}

// GetMesh extracts an adaptive triangle mesh from the Tile's precomputed
// error field. The returned Mesh is independent of the Tile's internal
// state; repeated calls with identical options return equal results.
//
// Not safe to call concurrently on the same Tile: extraction reuses this
// Tile's private index scratch buffer.
func (t *Tile) GetMesh(opts ...MeshOption) (*Mesh, error) {
	cfg := meshConfig{maxScale: float64(t.grid.GridSize)}
	for _, opt := range opts {
		opt(&cfg)
	}

	for i := range t.indices {
		t.indices[i] = 0
	}

	max := t.grid.GridSize - 1

	var numVertices, numTriangles int
	t.countElements(0, 0, max, max, max, 0, cfg, &numTriangles, &numVertices)
	t.countElements(max, max, 0, 0, 0, max, cfg, &numTriangles, &numVertices)

	vertices := make([]uint16, numVertices*2)
	triangles := make([]uint32, numTriangles*3)
	triIndex := 0

	t.processTriangle(0, 0, max, max, max, 0, cfg, &triIndex, vertices, triangles)
	t.processTriangle(max, max, 0, 0, 0, max, cfg, &triIndex, vertices, triangles)

	return &Mesh{Vertices: vertices, Triangles: triangles}, nil
}

// shouldSplit applies the RTIN split predicate at a triangle with
// hypotenuse (a, b) and right-angle apex c, returning the hypotenuse
// midpoint alongside the verdict.
func (t *Tile) shouldSplit(ax, ay, bx, by, cx, cy int, cfg meshConfig) (mx, my int, split bool) {
	size := t.grid.GridSize
	mx = (ax + bx) >> 1
	my = (ay + by) >> 1

	legLength := absInt(ax-cx) + absInt(ay-cy)
	split = (legLength > 1 && t.errors[my*size+mx] > cfg.maxError) || float64(legLength) > cfg.maxScale
	return mx, my, split
}

// countElements is Pass 1: it walks the same recursion as processTriangle
// but only assigns dense 1-based vertex indices and tallies counts, so
// Pass 2 can allocate exact buffers.
func (t *Tile) countElements(ax, ay, bx, by, cx, cy int, cfg meshConfig, numTriangles, numVertices *int) {
	size := t.grid.GridSize
	mx, my, split := t.shouldSplit(ax, ay, bx, by, cx, cy, cfg)

	if split {
		t.countElements(cx, cy, ax, ay, mx, my, cfg, numTriangles, numVertices)
		t.countElements(bx, by, cx, cy, mx, my, cfg, numTriangles, numVertices)
		return
	}

	for _, v := range [3][2]int{{ax, ay}, {bx, by}, {cx, cy}} {
		idx := v[1]*size + v[0]
		if t.indices[idx] == 0 {
			*numVertices++
			t.indices[idx] = uint32(*numVertices)
		}
	}
	*numTriangles++
}

// processTriangle is Pass 2: identical recursion, writing vertex
// coordinates and triangle index triples into the preallocated buffers.
func (t *Tile) processTriangle(ax, ay, bx, by, cx, cy int, cfg meshConfig, triIndex *int, vertices []uint16, triangles []uint32) {
	size := t.grid.GridSize
	mx, my, split := t.shouldSplit(ax, ay, bx, by, cx, cy, cfg)

	if split {
		t.processTriangle(cx, cy, ax, ay, mx, my, cfg, triIndex, vertices, triangles)
		t.processTriangle(bx, by, cx, cy, mx, my, cfg, triIndex, vertices, triangles)
		return
	}

	a := t.indices[ay*size+ax] - 1
	b := t.indices[by*size+bx] - 1
	c := t.indices[cy*size+cx] - 1

	vertices[2*a], vertices[2*a+1] = uint16(ax), uint16(ay)
	vertices[2*b], vertices[2*b+1] = uint16(bx), uint16(by)
	vertices[2*c], vertices[2*c+1] = uint16(cx), uint16(cy)

	triangles[*triIndex] = a
	triangles[*triIndex+1] = b
	triangles[*triIndex+2] = c
	*triIndex += 3
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
