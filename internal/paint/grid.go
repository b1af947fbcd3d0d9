package paint

// Grid stores the scalar state of the paper surface in row-major order.
// Water is capped at MaxWater per cell; wetness is a [0,1] marker used for
// flow visualization; pigment channels are unbounded mass, clamped only at
// render time.
type Grid struct {
	W, H int

	Water    []float64
	Wetness  []float64
	PigmentR []float64
	PigmentG []float64
	PigmentB []float64
}

// MaxWater is the saturation cap: the maximum water mass one cell can hold.
const MaxWater = 10.0

// NewGrid allocates a grid with the given dimensions. All channels share the
// same length and are zero-initialized.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	total := w * h
	return &Grid{
		W:        w,
		H:        h,
		Water:    make([]float64, total),
		Wetness:  make([]float64, total),
		PigmentR: make([]float64, total),
		PigmentG: make([]float64, total),
		PigmentB: make([]float64, total),
	}
}

// Index returns the linear slice index for coordinates (x, y). Out-of-range
// coordinates clamp to the nearest edge cell; there is no wraparound.
func (g *Grid) Index(x, y int) int {
	if x < 0 {
		x = 0
	} else if x >= g.W {
		x = g.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.H {
		y = g.H - 1
	}
	return y*g.W + x
}

// Clear resets every channel to zero, returning the paper to a dry blank
// sheet without reallocating.
func (g *Grid) Clear() {
	for i := range g.Water {
		g.Water[i] = 0
		g.Wetness[i] = 0
		g.PigmentR[i] = 0
		g.PigmentG[i] = 0
		g.PigmentB[i] = 0
	}
}

// TotalWater sums the water mass over the whole grid.
func (g *Grid) TotalWater() float64 {
	sum := 0.0
	for _, w := range g.Water {
		sum += w
	}
	return sum
}

// TotalPigment sums the three pigment channels over the whole grid.
func (g *Grid) TotalPigment() (r, gr, b float64) {
	for i := range g.PigmentR {
		r += g.PigmentR[i]
		gr += g.PigmentG[i]
		b += g.PigmentB[i]
	}
	return r, gr, b
}
