package paint

// transport advances the fluid by one tick: a single deterministic row-major
// sweep that evaporates standing water and lets the remainder flow to
// 4-connected neighbors under a gravity bias, carrying pigment with it.
//
// Water mass is conserved except for the evaporation sink; pigment mass is
// exactly conserved. The neighbor order right, left, down, up is a
// load-bearing tie-break: it decides who is served first when the available
// flow runs out mid-loop.
func transport(g *Grid, p Params) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := y*g.W + x
			if g.Water[i] <= 0.01 {
				continue
			}

			g.Water[i] -= p.EvaporationRate
			if g.Water[i] <= 0 {
				g.Water[i] = 0
				g.Wetness[i] = 0
				continue
			}

			// At the border the clamped lookup aliases the cell
			// itself; the transfer then moves nothing but still
			// consumes availableFlow, so no edge special-casing
			// is needed.
			neighbors := [4]struct {
				idx  int
				bias float64
			}{
				{g.Index(x+1, y), -p.GravityX},
				{g.Index(x-1, y), +p.GravityX},
				{g.Index(x, y+1), +p.GravityY},
				{g.Index(x, y-1), -p.GravityY},
			}

			availableFlow := g.Water[i] * p.DiffusionSpeed
			for _, n := range neighbors {
				if availableFlow <= 0 {
					break
				}
				gradient := (g.Water[i] - g.Water[n.idx]) + n.bias*5
				if gradient <= 0 {
					continue
				}
				flow := gradient * 0.1
				if flow > availableFlow {
					flow = availableFlow
				}
				if flow <= 0.001 {
					continue
				}

				before := g.Water[i]
				ratio := flow / before

				moveR := g.PigmentR[i] * ratio
				moveG := g.PigmentG[i] * ratio
				moveB := g.PigmentB[i] * ratio

				g.Water[i] -= flow
				g.Water[n.idx] += flow
				g.PigmentR[i] -= moveR
				g.PigmentR[n.idx] += moveR
				g.PigmentG[i] -= moveG
				g.PigmentG[n.idx] += moveG
				g.PigmentB[i] -= moveB
				g.PigmentB[n.idx] += moveB
				g.Wetness[n.idx] = 1

				availableFlow -= flow
			}
		}
	}
}
