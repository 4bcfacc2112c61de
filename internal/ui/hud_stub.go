//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns a no-op HUD in the headless build. source is accepted
// as any to avoid depending on the ebiten-tagged ParameterSource type.
func NewHUD(source any) *HUD { return &HUD{} }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(screen any, ticks int, selected any, radius int, paused bool) {}
