package sim

import (
	"strconv"

	"ashfall/internal/core"
)

// Parameters reports a snapshot of the handful of tunables a HUD exposes
// for live adjustment, grounded on the teacher's ecology.World.Parameters
// (which reflects ecology.Params back through the same core.Parameter
// shape). Only a representative subset of Params is surfaced here, not
// every field, since a HUD panel large enough for all ~50 tunables would
// dwarf the view it sits beside.
func (e *Engine) Parameters() core.ParameterSnapshot {
	p := e.p
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Fire",
				Params: []core.Parameter{
					{Key: "fire_spread_chance", Label: "Spread chance", Type: core.ParamTypeFloat,
						Value: strconv.FormatFloat(p.FireSpreadChance, 'f', 2, 64),
						Description: "chance FIRE ignites a flammable neighbor each tick"},
					{Key: "gunpowder_explode_radius", Label: "Gunpowder radius", Type: core.ParamTypeInt,
						Value: strconv.Itoa(p.GunpowderExplodeRadius),
						Description: "blast radius when GUNPOWDER ignites"},
				},
			},
			{
				Name: "Explosions",
				Params: []core.Parameter{
					{Key: "explosion_fire_chance", Label: "Fire yield", Type: core.ParamTypeFloat,
						Value: strconv.FormatFloat(p.ExplosionFireChance, 'f', 2, 64),
						Description: "chance a blast cell becomes FIRE rather than SMOKE or GAS"},
				},
			},
		},
	}
}

// ParameterControls lists the adjustable controls backing Parameters,
// for a HUD to draw +/- buttons against.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fire_spread_chance", Label: "Spread chance", Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "gunpowder_explode_radius", Label: "Gunpowder radius", Type: core.ParamTypeInt,
			Step: 1, Min: 1, Max: 10, HasMin: true, HasMax: true},
		{Key: "explosion_fire_chance", Label: "Fire yield", Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter applies an adjusted float tunable. ok is false for an
// unrecognized key.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "fire_spread_chance":
		e.p.FireSpreadChance = value
	case "explosion_fire_chance":
		e.p.ExplosionFireChance = value
	default:
		return false
	}
	return true
}

// SetIntParameter applies an adjusted integer tunable. ok is false for an
// unrecognized key.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "gunpowder_explode_radius":
		e.p.GunpowderExplodeRadius = value
	default:
		return false
	}
	return true
}
