//go:build !ebiten

package ui

import "github.com/Fandry96/AquaFlow/internal/paint"

// Overlay is a placeholder that satisfies the API expected by the GUI build.
type Overlay struct{}

// NewOverlay returns an inert overlay in headless builds.
func NewOverlay(*paint.Canvas, float64) *Overlay { return &Overlay{} }

// Update is a no-op placeholder.
func (o *Overlay) Update() {}

// SetCursor is a no-op placeholder.
func (o *Overlay) SetCursor(float64, float64, float64, bool) {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(any) {}
