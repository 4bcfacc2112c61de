//go:build term

package termview

import (
	"fmt"

	"ashfall/internal/core"
	"ashfall/internal/sim"
)

// statusLine formats the terminal host's one-line HUD text.
func statusLine(ticks int, selected sim.Kind, radius int, state string) string {
	return fmt.Sprintf(" tick %d  element %s (%c)  radius %d  [%s] ",
		ticks, selected, sim.Glyph(selected), radius, state)
}

// paramLine formats the adjustable tunables below the status line,
// mirroring internal/ui.HUD's control rows as plain text instead of
// clickable buttons: the terminal host exposes the same engine
// parameters but steps them with keys rather than a mouse.
func paramLine(snapshot core.ParameterSnapshot) string {
	line := " "
	for _, g := range snapshot.Groups {
		for _, p := range g.Params {
			line += fmt.Sprintf("%s=%s  ", p.Label, p.Value)
		}
	}
	return line
}
