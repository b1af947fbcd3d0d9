//go:build !ebiten

package ui

import (
	"github.com/Fandry96/AquaFlow/internal/core"
	"github.com/Fandry96/AquaFlow/internal/inspire"
	"github.com/Fandry96/AquaFlow/internal/paint"
)

type snapshotProvider interface {
	Size() core.Size
	Parameters() core.ParameterSnapshot
}

// HUD is a placeholder that satisfies the API expected by the GUI build.
type HUD struct{}

// NewHUD returns an inert HUD in headless builds.
func NewHUD(snapshotProvider, int) *HUD { return &HUD{} }

// SetBrushStatus is a no-op placeholder.
func (h *HUD) SetBrushStatus(paint.Tool, float64, paint.Color) {}

// SetInspiration is a no-op placeholder.
func (h *HUD) SetInspiration(inspire.Result) {}

// Update is a no-op placeholder.
func (h *HUD) Update(int) {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any, int) {}
