// Package rtin computes level-of-detail triangle meshes for square
// heightfield tiles using the Right-Triangulated Irregular Network (RTIN)
// scheme.
//
// A Grid precomputes the implicit binary triangle tree for a given grid
// size (2^n+1 on a side) once, and is reused across any number of tiles of
// that size. A Tile binds a heightfield sample buffer to a Grid, computes a
// per-pixel vertical error field at construction, and extracts an adaptive
// mesh on demand for a chosen error tolerance:
//
//	grid, err := rtin.NewGrid(513)
//	tile, err := grid.CreateTile(terrain)
//	mesh, err := tile.GetMesh(rtin.WithMaxError(5))
//
// The produced mesh tiles the square exactly, with no T-junctions and no
// cracks, because the split decision at any internal edge depends only on
// values shared by both triangles adjacent to that edge.
//
// This package does no I/O: it consumes an already-decoded flat sample
// buffer and emits flat vertex/index buffers. Decoding terrain sources,
// projecting coordinates, and rendering are all the caller's concern.
package rtin
