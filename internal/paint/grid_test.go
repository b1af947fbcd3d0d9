package paint

import "testing"

func TestNewGridAllocatesAllChannels(t *testing.T) {
	g := NewGrid(400, 300)
	total := 400 * 300
	for name, ch := range map[string][]float64{
		"water":    g.Water,
		"wetness":  g.Wetness,
		"pigmentR": g.PigmentR,
		"pigmentG": g.PigmentG,
		"pigmentB": g.PigmentB,
	} {
		if len(ch) != total {
			t.Fatalf("channel %s has length %d, want %d", name, len(ch), total)
		}
	}
}

func TestNewGridRejectsDegenerateDimensions(t *testing.T) {
	g := NewGrid(0, -5)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("degenerate dimensions should collapse to 1x1, got %dx%d", g.W, g.H)
	}
}

func TestIndexClampsToBounds(t *testing.T) {
	g := NewGrid(10, 8)
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"interior", 3, 2, 2*10 + 3},
		{"origin", 0, 0, 0},
		{"negative x", -4, 2, 2 * 10},
		{"negative y", 3, -1, 3},
		{"x overflow", 99, 2, 2*10 + 9},
		{"y overflow", 3, 99, 7*10 + 3},
		{"both overflow", 99, 99, 7*10 + 9},
		{"both negative", -1, -1, 0},
	}
	for _, tt := range tests {
		if got := g.Index(tt.x, tt.y); got != tt.want {
			t.Fatalf("%s: Index(%d,%d) = %d, want %d", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClearResetsInPlace(t *testing.T) {
	g := NewGrid(4, 4)
	backing := &g.Water[0]
	for i := range g.Water {
		g.Water[i] = 3
		g.Wetness[i] = 1
		g.PigmentR[i] = 50
		g.PigmentG[i] = 60
		g.PigmentB[i] = 70
	}

	g.Clear()

	if &g.Water[0] != backing {
		t.Fatal("Clear must not reallocate the water channel")
	}
	for i := range g.Water {
		if g.Water[i] != 0 || g.Wetness[i] != 0 ||
			g.PigmentR[i] != 0 || g.PigmentG[i] != 0 || g.PigmentB[i] != 0 {
			t.Fatalf("cell %d not cleared", i)
		}
	}
}

func TestTotals(t *testing.T) {
	g := NewGrid(3, 3)
	g.Water[0] = 1.5
	g.Water[8] = 2.5
	g.PigmentR[4] = 10
	g.PigmentG[4] = 20
	g.PigmentB[4] = 30

	if got := g.TotalWater(); got != 4 {
		t.Fatalf("TotalWater = %f, want 4", got)
	}
	r, gr, b := g.TotalPigment()
	if r != 10 || gr != 20 || b != 30 {
		t.Fatalf("TotalPigment = (%f,%f,%f), want (10,20,30)", r, gr, b)
	}
}
