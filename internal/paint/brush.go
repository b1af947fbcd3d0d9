package paint

// Tool enumerates the brush behaviors. The set is closed: Stamp's rule table
// handles every variant exhaustively.
type Tool uint8

const (
	// ToolBrush deposits water and pigment together.
	ToolBrush Tool = iota
	// ToolWater deposits water only, rewetting existing pigment.
	ToolWater
	// ToolDry removes water and wetness, fixing pigment in place.
	ToolDry
	// ToolEraser attenuates both water and pigment.
	ToolEraser
	// ToolBlow is reserved; it currently leaves the grid untouched.
	ToolBlow
)

// String returns the display name of the tool.
func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "brush"
	case ToolWater:
		return "water"
	case ToolDry:
		return "dry"
	case ToolEraser:
		return "eraser"
	case ToolBlow:
		return "blow"
	}
	return "unknown"
}

// Color is an RGB pigment color with channels in [0,255].
type Color struct {
	R, G, B float64
}

// Stroke is one ephemeral brush application in grid space. It is produced
// from a pointer event, applied, and discarded.
type Stroke struct {
	Tool        Tool
	CenterX     int
	CenterY     int
	Radius      float64
	Pressure    float64
	WaterLoad   float64
	PigmentLoad float64
	Color       Color
}

// cell is a snapshot of one grid cell's scalar state.
type cell struct {
	water   float64
	wetness float64
	r, g, b float64
}

// apply returns the cell state after one tool application with the given
// radial amount. It is a pure function: the rule table below is the entire
// effect of a stamp on a cell.
func (t Tool) apply(c cell, amount float64, s Stroke) cell {
	switch t {
	case ToolBrush:
		c.water = minf(MaxWater, c.water+amount*s.WaterLoad/20)
		c.wetness = 1
		alpha := amount * (s.PigmentLoad / 100) * 0.5
		c.r = c.r*(1-alpha) + s.Color.R*alpha
		c.g = c.g*(1-alpha) + s.Color.G*alpha
		c.b = c.b*(1-alpha) + s.Color.B*alpha
	case ToolWater:
		c.water = minf(MaxWater, c.water+amount*s.WaterLoad/10)
		c.wetness = 1
	case ToolDry:
		c.water = maxf(0, c.water-amount*2)
		c.wetness = maxf(0, c.wetness-amount*2)
	case ToolEraser:
		erase := amount * 0.5
		c.r *= 1 - erase
		c.g *= 1 - erase
		c.b *= 1 - erase
		c.water *= 1 - erase
	case ToolBlow:
		// Reserved: no velocity field exists to push against.
	}
	return c
}

// Stamp applies the stroke to every cell within its radius. Cells are
// visited over the bounding box of the brush disc; the falloff weight runs
// from 1 at the center to 0 at the edge.
func (g *Grid) Stamp(s Stroke) {
	if s.Radius < 1 {
		s.Radius = 1
	}
	r := int(s.Radius)
	radiusSq := s.Radius * s.Radius

	for dy := -r; dy <= r; dy++ {
		y := s.CenterY + dy
		if y < 0 || y >= g.H {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			x := s.CenterX + dx
			if x < 0 || x >= g.W {
				continue
			}
			distSq := float64(dx*dx + dy*dy)
			if distSq > radiusSq {
				continue
			}
			falloff := 1 - distSq/radiusSq
			amount := falloff * s.Pressure
			i := y*g.W + x

			before := cell{
				water:   g.Water[i],
				wetness: g.Wetness[i],
				r:       g.PigmentR[i],
				g:       g.PigmentG[i],
				b:       g.PigmentB[i],
			}
			after := s.Tool.apply(before, amount, s)
			g.Water[i] = after.water
			g.Wetness[i] = after.wetness
			g.PigmentR[i] = after.r
			g.PigmentG[i] = after.g
			g.PigmentB[i] = after.b
		}
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
