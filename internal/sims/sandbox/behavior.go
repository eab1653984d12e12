package sandbox

// Movement chooses where a particle goes during the movement pass. Each
// method receives the live grid and the particle's current coordinates and
// returns its resulting coordinates, unchanged if the particle stayed put.
// Returned coordinates must be in bounds and must address the moved
// particle; a move must leave the vacated cell empty. How a target cell is
// chosen is entirely up to the implementation.
type Movement interface {
	Powder(g *Grid, x, y int) (int, int)
	Solid(g *Grid, x, y int) (int, int)
	Liquid(g *Grid, x, y int) (int, int)
	Electric(g *Grid, x, y int) (int, int)
}

// Reactions implements the per-kind interaction hooks invoked once per step
// after heat diffusion. A hook may mutate temperature or extra data, clear
// its cell, populate neighbors, or rewrite a cell's kind. The pipeline does
// not stamp cells after this pass, so a hook must itself avoid re-triggering
// work it already did this step.
type Reactions interface {
	Sand(g *Grid, x, y int)
	Water(g *Grid, x, y int)
	Acid(g *Grid, x, y int)
	Replicator(g *Grid, x, y int)
	Plant(g *Grid, x, y int)
	Cryotheum(g *Grid, x, y int)
	Unstable(g *Grid, x, y int)
	Electricity(g *Grid, x, y int)
}
