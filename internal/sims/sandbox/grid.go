package sandbox

import "fmt"

// Grid stores the W×H cells in a flat row-major slice. A cell with kind
// Empty holds no particle. The grid is single-owner and single-threaded:
// only the update pipeline mutates it, the renderer reads it.
type Grid struct {
	w, h  int
	cells []Particle
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]Particle, w*h)}
}

// Width reports the horizontal cell count.
func (g *Grid) Width() int { return g.w }

// Height reports the vertical cell count.
func (g *Grid) Height() int { return g.h }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns a pointer to the cell at (x, y). The pointer stays valid for
// the lifetime of the grid. Out-of-bounds access is a programming error and
// panics.
func (g *Grid) At(x, y int) *Particle {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("sandbox: cell (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
	return &g.cells[y*g.w+x]
}

// Occupied reports whether the cell at (x, y) holds a particle.
func (g *Grid) Occupied(x, y int) bool {
	return g.cells[g.Index(x, y)].Kind != Empty
}

// Place writes p into the cell at (x, y), overwriting whatever was there.
func (g *Grid) Place(x, y int, p Particle) {
	*g.At(x, y) = p
}

// Clear empties the cell at (x, y).
func (g *Grid) Clear(x, y int) {
	*g.At(x, y) = Particle{}
}

// Move relocates the particle at (x, y) to (nx, ny), overwriting the target
// and emptying the source. Moving to the same cell is a no-op.
func (g *Grid) Move(x, y, nx, ny int) {
	if x == nx && y == ny {
		return
	}
	src := g.At(x, y)
	*g.At(nx, ny) = *src
	*src = Particle{}
}

// Snapshot copies every cell into dst, allocating when dst is too small, and
// returns the copy. The diffusion pass reads "before" values from the
// snapshot while writing "after" values into the live grid.
func (g *Grid) Snapshot(dst []Particle) []Particle {
	if len(dst) < len(g.cells) {
		dst = make([]Particle, len(g.cells))
	}
	copy(dst, g.cells)
	return dst
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Particle{}
	}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Kind != Empty {
			n++
		}
	}
	return n
}
