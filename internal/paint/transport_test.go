package paint

import (
	"math"
	"testing"
)

func wetCanvas(t *testing.T, cfg Config) *Canvas {
	t.Helper()
	c := NewCanvas(cfg)
	c.Stamp(Stroke{
		Tool: ToolBrush, CenterX: cfg.Width / 2, CenterY: cfg.Height / 2,
		Radius: 6, Pressure: 1, WaterLoad: 80, PigmentLoad: 90,
		Color: Color{R: 120, G: 40, B: 200},
	})
	c.Stamp(Stroke{
		Tool: ToolBrush, CenterX: cfg.Width / 3, CenterY: cfg.Height / 3,
		Radius: 4, Pressure: 0.7, WaterLoad: 60, PigmentLoad: 50,
		Color: Color{R: 30, G: 220, B: 90},
	})
	return c
}

func TestTransportConservesWaterWithoutEvaporation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 60
	cfg.Height = 40
	cfg.Params.DiffusionSpeed = 0.3
	cfg.Params.EvaporationRate = 0
	cfg.Params.GravityX = 0.1
	cfg.Params.GravityY = 0.1

	c := wetCanvas(t, cfg)
	before := c.Grid().TotalWater()
	for i := 0; i < 40; i++ {
		c.StepOnce()
	}
	after := c.Grid().TotalWater()
	if math.Abs(after-before) > 1e-9 {
		t.Fatalf("water mass changed without evaporation: %f -> %f", before, after)
	}
}

func TestEvaporationIsTheOnlyWaterSink(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 30
	cfg.Height = 30
	cfg.Params.DiffusionSpeed = 0 // no flow: evaporation acts alone
	cfg.Params.EvaporationRate = 0.003

	c := wetCanvas(t, cfg)
	g := c.Grid()

	expected := 0.0
	for _, w := range g.Water {
		if w > 0.01 {
			w = w - cfg.Params.EvaporationRate
			if w < 0 {
				w = 0
			}
		}
		expected += w
	}

	c.StepOnce()
	if got := g.TotalWater(); math.Abs(got-expected) > 1e-9 {
		t.Fatalf("total water after evaporation = %f, want %f", got, expected)
	}
}

func TestPigmentMassConservedByTransport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 50
	cfg.Height = 50
	cfg.Params.DiffusionSpeed = 0.4
	cfg.Params.EvaporationRate = 0.004
	cfg.Params.GravityY = 0.15

	c := wetCanvas(t, cfg)
	r0, g0, b0 := c.Grid().TotalPigment()

	for i := 0; i < 60; i++ {
		c.StepOnce()
	}

	r1, g1, b1 := c.Grid().TotalPigment()
	if math.Abs(r1-r0) > 1e-6 || math.Abs(g1-g0) > 1e-6 || math.Abs(b1-b0) > 1e-6 {
		t.Fatalf("pigment mass changed: (%f,%f,%f) -> (%f,%f,%f)", r0, g0, b0, r1, g1, b1)
	}
}

func TestTransportProducesNoNegativeValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 40
	cfg.Params.DiffusionSpeed = 0.5
	cfg.Params.EvaporationRate = 0.05
	cfg.Params.GravityX = -0.2
	cfg.Params.GravityY = 0.2

	c := wetCanvas(t, cfg)
	for i := 0; i < 200; i++ {
		c.StepOnce()
	}
	g := c.Grid()
	for i := range g.Water {
		if g.Water[i] < 0 {
			t.Fatalf("cell %d has negative water %f", i, g.Water[i])
		}
		if g.PigmentR[i] < 0 || g.PigmentG[i] < 0 || g.PigmentB[i] < 0 {
			t.Fatalf("cell %d has negative pigment (%f,%f,%f)",
				i, g.PigmentR[i], g.PigmentG[i], g.PigmentB[i])
		}
	}
}

func TestGravityBiasPullsWaterDownward(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 41
	cfg.Height = 41
	cfg.Params.DiffusionSpeed = 0.3
	cfg.Params.EvaporationRate = 0
	cfg.Params.GravityX = 0
	cfg.Params.GravityY = 0.1

	c := NewCanvas(cfg)
	g := c.Grid()
	g.Water[g.Index(20, 20)] = 8

	for i := 0; i < 50; i++ {
		c.StepOnce()
	}

	upper := 0.0
	lower := 0.0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			w := g.Water[y*g.W+x]
			switch {
			case y < 20:
				upper += w
			case y > 20:
				lower += w
			}
		}
	}
	if lower <= upper {
		t.Fatalf("downward gravity should bias mass to the lower half: upper=%f lower=%f", upper, lower)
	}
}

func TestNeighborOrderServesRightFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 5
	cfg.Params.DiffusionSpeed = 0.02
	cfg.Params.EvaporationRate = 0
	cfg.Params.GravityX = 0
	cfg.Params.GravityY = 0

	c := NewCanvas(cfg)
	g := c.Grid()
	center := g.Index(2, 2)
	g.Water[center] = 1

	c.StepOnce()

	// availableFlow = 0.02 is exhausted entirely by the first neighbor in
	// the fixed order, which is the right one.
	if got := g.Water[g.Index(3, 2)]; math.Abs(got-0.02) > 1e-9 {
		t.Fatalf("right neighbor = %f, want 0.02", got)
	}
	for _, idx := range []int{g.Index(1, 2), g.Index(2, 3), g.Index(2, 1)} {
		if g.Water[idx] != 0 {
			t.Fatalf("only the right neighbor should receive flow, cell %d got %f", idx, g.Water[idx])
		}
	}
	if got := g.Water[center]; math.Abs(got-0.98) > 1e-9 {
		t.Fatalf("center = %f, want 0.98", got)
	}
}

func TestTransportSetsReceiverWetness(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 5
	cfg.Params.DiffusionSpeed = 0.3
	cfg.Params.EvaporationRate = 0

	c := NewCanvas(cfg)
	g := c.Grid()
	g.Water[g.Index(2, 2)] = 5

	c.StepOnce()

	if g.Wetness[g.Index(3, 2)] != 1 {
		t.Fatal("a cell receiving flow must be marked wet")
	}
}

func TestEvaporatedCellLosesWetness(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 3
	cfg.Height = 3
	cfg.Params.DiffusionSpeed = 0
	cfg.Params.EvaporationRate = 0.05

	c := NewCanvas(cfg)
	g := c.Grid()
	i := g.Index(1, 1)
	g.Water[i] = 0.04
	g.Wetness[i] = 1

	c.StepOnce()

	if g.Water[i] != 0 {
		t.Fatalf("water = %f, want 0", g.Water[i])
	}
	if g.Wetness[i] != 0 {
		t.Fatal("a cell that evaporates dry must lose its wetness marker")
	}
}

func TestBorderCellsDoNotLeakMass(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 6
	cfg.Height = 6
	cfg.Params.DiffusionSpeed = 0.5
	cfg.Params.EvaporationRate = 0
	cfg.Params.GravityX = 0.2  // push toward the left edge
	cfg.Params.GravityY = -0.2 // and the top edge

	c := NewCanvas(cfg)
	g := c.Grid()
	g.Water[g.Index(0, 0)] = 6
	g.PigmentR[g.Index(0, 0)] = 140

	before := g.TotalWater()
	r0, _, _ := g.TotalPigment()
	for i := 0; i < 100; i++ {
		c.StepOnce()
	}
	if after := g.TotalWater(); math.Abs(after-before) > 1e-9 {
		t.Fatalf("mass leaked over the border: %f -> %f", before, after)
	}
	if r1, _, _ := g.TotalPigment(); math.Abs(r1-r0) > 1e-6 {
		t.Fatalf("pigment leaked over the border: %f -> %f", r0, r1)
	}
}

func TestPausedFreezesTransportButNotStamping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Height = 20
	cfg.Params.DiffusionSpeed = 0.3
	cfg.Params.EvaporationRate = 0.01

	c := wetCanvas(t, cfg)
	c.SetPaused(true)

	g := c.Grid()
	waterBefore := append([]float64(nil), g.Water...)
	pigBefore := append([]float64(nil), g.PigmentR...)
	wetBefore := append([]float64(nil), g.Wetness...)

	for i := 0; i < 10; i++ {
		c.Tick()
	}
	for i := range waterBefore {
		if g.Water[i] != waterBefore[i] || g.PigmentR[i] != pigBefore[i] || g.Wetness[i] != wetBefore[i] {
			t.Fatalf("paused tick mutated cell %d", i)
		}
	}

	// Stamping stays effective while paused.
	c.Stamp(Stroke{Tool: ToolWater, CenterX: 5, CenterY: 5, Radius: 2, Pressure: 1, WaterLoad: 40})
	if g.Water[g.Index(5, 5)] == waterBefore[g.Index(5, 5)] {
		t.Fatal("stamping while paused must still mutate the grid")
	}
}
