package paint

import "math"

// Mapper converts display-space pointer coordinates into grid space. The
// canvas occupies a rectangle on screen; the grid resolution is independent
// of that rectangle's pixel size.
type Mapper struct {
	// Canvas bounding box in display pixels.
	CanvasX, CanvasY float64
	CanvasW, CanvasH float64

	GridW, GridH int
}

// Cell maps a display position to grid coordinates. Positions outside the
// bounding box map to edge cells via the same clamping the grid applies to
// every lookup.
func (m Mapper) Cell(px, py float64) (int, int) {
	relX := 0.0
	relY := 0.0
	if m.CanvasW > 0 {
		relX = (px - m.CanvasX) / m.CanvasW
	}
	if m.CanvasH > 0 {
		relY = (py - m.CanvasY) / m.CanvasH
	}
	x := int(math.Floor(relX * float64(m.GridW)))
	y := int(math.Floor(relY * float64(m.GridH)))
	if x < 0 {
		x = 0
	} else if x >= m.GridW {
		x = m.GridW - 1
	}
	if y < 0 {
		y = 0
	} else if y >= m.GridH {
		y = m.GridH - 1
	}
	return x, y
}

// Radius converts a display-space brush diameter in pixels to a grid-space
// radius, never smaller than one cell.
func (m Mapper) Radius(brushSizePx float64) float64 {
	if m.CanvasW <= 0 {
		return 1
	}
	r := brushSizePx / m.CanvasW * float64(m.GridW)
	if r < 1 {
		return 1
	}
	return r
}

// Contains reports whether the display position falls inside the canvas
// bounding box.
func (m Mapper) Contains(px, py float64) bool {
	return px >= m.CanvasX && px < m.CanvasX+m.CanvasW &&
		py >= m.CanvasY && py < m.CanvasY+m.CanvasH
}
