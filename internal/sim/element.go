// Package sim implements the falling-sand cellular automaton: element
// taxonomy, grid, brush, explosion primitive, per-element rule set, and
// the tick orchestrator.
package sim

import "image/color"

// Kind identifies an element occupying a cell.
type Kind uint8

const (
	Empty Kind = iota
	Sand
	Gunpowder
	Ash
	Snow
	Water
	Saltwater
	Oil
	Ethanol
	Acid
	Lava
	Mercury
	Stone
	Glass
	Wall
	Wood
	Plant
	Seaweed
	Metal
	Wire
	Ice
	Coal
	Dirt
	WetDirt
	Smoke
	Steam
	Gas
	ToxicGas
	Hydrogen
	Chlorine
	Fire
	Lightning
	Human
	Zombie

	numKinds
)

// String returns the element's canonical name, for logging and tests.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

var kindNames = [numKinds]string{
	Empty:     "EMPTY",
	Sand:      "SAND",
	Gunpowder: "GUNPOWDER",
	Ash:       "ASH",
	Snow:      "SNOW",
	Water:     "WATER",
	Saltwater: "SALTWATER",
	Oil:       "OIL",
	Ethanol:   "ETHANOL",
	Acid:      "ACID",
	Lava:      "LAVA",
	Mercury:   "MERCURY",
	Stone:     "STONE",
	Glass:     "GLASS",
	Wall:      "WALL",
	Wood:      "WOOD",
	Plant:     "PLANT",
	Seaweed:   "SEAWEED",
	Metal:     "METAL",
	Wire:      "WIRE",
	Ice:       "ICE",
	Coal:      "COAL",
	Dirt:      "DIRT",
	WetDirt:   "WET_DIRT",
	Smoke:     "SMOKE",
	Steam:     "STEAM",
	Gas:       "GAS",
	ToxicGas:  "TOXIC_GAS",
	Hydrogen:  "HYDROGEN",
	Chlorine:  "CHLORINE",
	Fire:      "FIRE",
	Lightning: "LIGHTNING",
	Human:     "HUMAN",
	Zombie:    "ZOMBIE",
}

// Glyph returns the canonical renderer glyph for kind, per the engine's
// external interface (spec §6). Hosts are free to ignore this and pick
// their own presentation; it exists so a host never has to re-derive it.
func Glyph(k Kind) rune {
	if int(k) < len(kindGlyphs) {
		return kindGlyphs[k]
	}
	return '?'
}

var kindGlyphs = [numKinds]rune{
	Empty:     ' ',
	Sand:      '.',
	Gunpowder: '%',
	Ash:       ';',
	Snow:      ',',
	Water:     '~',
	Saltwater: ':',
	Oil:       'o',
	Ethanol:   'e',
	Acid:      'a',
	Lava:      'L',
	Mercury:   'm',
	Stone:     '#',
	Glass:     '=',
	Wall:      '@',
	Wood:      'w',
	Plant:     'p',
	Seaweed:   'v',
	Metal:     'M',
	Wire:      '-',
	Ice:       'I',
	Coal:      'c',
	Dirt:      'd',
	WetDirt:   'D',
	Smoke:     '^',
	Steam:     '"',
	Gas:       '`',
	ToxicGas:  'x',
	Hydrogen:  '\'',
	Chlorine:  'X',
	Fire:      '*',
	Lightning: '|',
	Human:     'Y',
	Zombie:    'T',
}

// Color returns a representative RGB for kind, used by both the ebiten
// and terminal hosts so the palette is defined once, next to the
// taxonomy it describes.
func Color(k Kind) color.RGBA {
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	return color.RGBA{R: 255, G: 0, B: 255, A: 255}
}

var kindColors = [numKinds]color.RGBA{
	Empty:     {R: 0, G: 0, B: 0, A: 0},
	Sand:      {R: 194, G: 154, B: 108, A: 255},
	Gunpowder: {R: 90, G: 90, B: 96, A: 255},
	Ash:       {R: 120, G: 120, B: 120, A: 255},
	Snow:      {R: 240, G: 240, B: 245, A: 255},
	Water:     {R: 64, G: 120, B: 220, A: 255},
	Saltwater: {R: 70, G: 140, B: 200, A: 255},
	Oil:       {R: 70, G: 55, B: 40, A: 255},
	Ethanol:   {R: 210, G: 200, B: 160, A: 255},
	Acid:      {R: 140, G: 220, B: 60, A: 255},
	Lava:      {R: 255, G: 90, B: 40, A: 255},
	Mercury:   {R: 200, G: 200, B: 210, A: 255},
	Stone:     {R: 130, G: 130, B: 130, A: 255},
	Glass:     {R: 180, G: 220, B: 230, A: 255},
	Wall:      {R: 60, G: 60, B: 60, A: 255},
	Wood:      {R: 120, G: 80, B: 45, A: 255},
	Plant:     {R: 60, G: 160, B: 70, A: 255},
	Seaweed:   {R: 40, G: 120, B: 80, A: 255},
	Metal:     {R: 170, G: 170, B: 180, A: 255},
	Wire:      {R: 150, G: 110, B: 40, A: 255},
	Ice:       {R: 190, G: 230, B: 245, A: 255},
	Coal:      {R: 35, G: 35, B: 35, A: 255},
	Dirt:      {R: 101, G: 67, B: 33, A: 255},
	WetDirt:   {R: 80, G: 55, B: 30, A: 255},
	Smoke:     {R: 110, G: 110, B: 110, A: 200},
	Steam:     {R: 220, G: 220, B: 225, A: 180},
	Gas:       {R: 180, G: 200, B: 120, A: 160},
	ToxicGas:  {R: 150, G: 200, B: 60, A: 180},
	Hydrogen:  {R: 230, G: 240, B: 255, A: 140},
	Chlorine:  {R: 200, G: 230, B: 90, A: 200},
	Fire:      {R: 255, G: 140, B: 30, A: 255},
	Lightning: {R: 255, G: 255, B: 190, A: 255},
	Human:     {R: 235, G: 200, B: 160, A: 255},
	Zombie:    {R: 120, G: 160, B: 110, A: 255},
}

// IsPowder reports whether k falls and slides diagonally as a granular
// solid (spec §4.4 Powders).
func IsPowder(k Kind) bool {
	switch k {
	case Sand, Gunpowder, Ash, Snow:
		return true
	default:
		return false
	}
}

// IsLiquid reports whether k is a fluid that falls, spreads, and
// stratifies by density (spec §4.4 Liquids).
func IsLiquid(k Kind) bool {
	switch k {
	case Water, Saltwater, Oil, Ethanol, Acid, Lava, Mercury:
		return true
	default:
		return false
	}
}

// IsGas reports whether k is a fluid that rises and decays after a
// bounded lifetime (spec §4.4 Gases).
func IsGas(k Kind) bool {
	switch k {
	case Smoke, Steam, Gas, ToxicGas, Hydrogen, Chlorine:
		return true
	default:
		return false
	}
}

// IsFluid reports whether k is a liquid or a gas, the only kinds for
// which Density is meaningful (spec §4.1).
func IsFluid(k Kind) bool {
	return IsLiquid(k) || IsGas(k)
}

// IsFlammable reports whether k is ignitable by FIRE/LAVA (spec §6).
func IsFlammable(k Kind) bool {
	switch k {
	case Wood, Plant, Oil, Ethanol, Gunpowder, Coal, Seaweed:
		return true
	default:
		return false
	}
}

// IsConductor reports whether k carries electric charge (life>0) to
// neighbors (spec §6).
func IsConductor(k Kind) bool {
	switch k {
	case Metal, Wire, Mercury, Saltwater:
		return true
	default:
		return false
	}
}

// IsDissolvable reports whether k can be destroyed by ACID (spec §6).
func IsDissolvable(k Kind) bool {
	switch k {
	case Sand, Stone, Glass, Wood, Plant, Metal, Wire, Ash, Coal, Seaweed, Dirt, WetDirt:
		return true
	default:
		return false
	}
}

// IsHazard reports whether k kills humans and burns zombies on contact
// (spec §6). Electrified water (life>0) is a hazard too but that is a
// cell-state condition, not a pure function of kind — see isElectrified.
func IsHazard(k Kind) bool {
	switch k {
	case Fire, Lava, Acid, ToxicGas, Chlorine, Lightning:
		return true
	default:
		return false
	}
}

// IsAgent reports whether k is a pathing HUMAN/ZOMBIE actor.
func IsAgent(k Kind) bool {
	return k == Human || k == Zombie
}

// IsProtectedFromExplosion reports whether k survives the explosion
// primitive untouched (spec §4.2).
func IsProtectedFromExplosion(k Kind) bool {
	switch k {
	case Wall, Stone, Glass, Metal, Wire, Ice:
		return true
	default:
		return false
	}
}

// Density returns the unitless buoyancy scalar for fluids (spec §4.1).
// It is defined only for liquids and gases; callers must not compare
// densities across non-fluid kinds.
func Density(k Kind) int {
	if d, ok := kindDensity[k]; ok {
		return d
	}
	return 1 << 30 // solids/powders: effectively infinite for comparison
}

var kindDensity = map[Kind]int{
	Hydrogen:  1,
	Steam:     2,
	Gas:       3,
	Smoke:     3,
	ToxicGas:  4,
	Chlorine:  5,
	Ethanol:   85,
	Oil:       90,
	Water:     100,
	Saltwater: 103,
	Acid:      110,
	Lava:      160,
	Mercury:   200,
}
