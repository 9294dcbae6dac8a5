package rtin_test

import (
	"math"

	"github.com/kelindar/noise"
)

// flatTerrain returns a gridSize x gridSize heightfield of constant value v.
func flatTerrain(gridSize int, v float64) []float64 {
	t := make([]float64, gridSize*gridSize)
	for i := range t {
		t[i] = v
	}
	return t
}

// singlePeakTerrain returns a flat heightfield with one sample raised to
// height at (px, py), matching the spec's S3/S4 fixtures.
func singlePeakTerrain(gridSize, px, py int, height float64) []float64 {
	t := flatTerrain(gridSize, 0)
	t[py*gridSize+px] = height
	return t
}

// synthTerrain deterministically generates a smooth, non-flat heightfield
// by scattering peak centers across the grid with the package's sparse
// blue-noise sampler and summing a Gaussian bump around each one. Terrain
// synthesis lives only in tests: the production package never decodes or
// generates terrain itself (see SPEC_FULL.md's ambient-stack notes).
func synthTerrain(seed uint32, gridSize int, gap int, amplitude, sigma float64) []float64 {
	terrain := make([]float64, gridSize*gridSize)

	var peaks [][2]int
	for p := range noise.Sparse2(seed, gridSize, gridSize, gap) {
		peaks = append(peaks, p)
	}

	twoSigmaSq := 2 * sigma * sigma
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			var h float64
			for _, p := range peaks {
				dx := float64(x - p[0])
				dy := float64(y - p[1])
				h += amplitude * math.Exp(-(dx*dx+dy*dy)/twoSigmaSq)
			}
			terrain[y*gridSize+x] = h
		}
	}
	return terrain
}
