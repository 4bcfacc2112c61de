package sim

import "strconv"

// Params collects the tunable probabilities and bounds the rule set
// names as literal constants in spec §4, so behavior can be retuned
// without editing rule code — the same role the teacher's
// ecology.Params plays for lava/rain/vegetation chances. The 50% coin
// flips inside the movement helpers (a liquid swapping sideways into a
// lighter liquid, a gas probing "slightly up") are fixed in code and
// not part of Params.
type Params struct {
	// Explosion (§4.2)
	ExplosionFireChance  float64 // roll <= this*100 -> FIRE
	ExplosionSmokeChance float64 // roll <= this*100 -> SMOKE (cumulative with FireChance)
	ExplosionFireLifeMin int
	ExplosionFireLifeMax int
	ExplosionSmokeLife   int
	ExplosionGasLife     int

	// Brush placement (§4.3)
	PlaceGasLife       int
	PlaceFireLife      int
	LightningBoltLife  int
	LightningWaterLife int // shared with the LIGHTNING rule's own water raise-to-N

	// Powders (§4.4 Powders)
	SandSeaweedLifeThreshold int

	// Shared thermal reactions (§4.4 Liquids)
	SteamLifeTicks         int // generic STEAM(life 20)
	ToxicGasLife           int // generic TOXIC_GAS(life 25)
	IgniteFireLife         int // generic fixed-value FIRE(life 25) ignition
	WaterLavaSteamChance   float64
	AcidDissolveToGasChance float64
	AcidSelfConsumeChance  float64
	AcidWaterToSaltChance  float64
	AcidWaterToSteamChance float64
	WetDirtLife            int
	LavaAgeStoneThreshold  int

	// Gases (§4.4 Gases)
	SteamCondenseChance       float64
	SmokeSettleChance         float64
	ChlorinePlantToxicChance  float64
	GasSelfIgniteFireLife     int
	HydrogenExplodeRadius     int

	// Fire (§4.4 FIRE)
	FireRiseChance         float64
	FireSpreadChance       float64
	FireSpreadLifeMin      int
	FireSpreadLifeMax      int
	FireSelfDecaySmokeLife int
	FireConductSeedChance  float64
	FireConductSeedLife    int
	GunpowderExplodeRadius int

	// Lightning (§4.4 LIGHTNING)
	LightningConductRaiseLife int
	LightningFlammableLifeMin int
	LightningFlammableLifeMax int
	LightningGunpowderRadius  int
	LightningGasRadius        int

	// Conductors (§4.4 WIRE and METAL)
	ConductIgniteChance     float64
	ConductGasExplodeChance float64
	ConductGasRadius        int

	// Ice (§4.4 ICE)
	IceMeltChance float64

	// Plants (§4.4 PLANT and SEAWEED)
	PlantFireLife     int
	PlantGrowChance   float64
	SeaweedGrowChance float64

	// Wood/Coal (§4.4 WOOD and COAL)
	WoodFireLife int
	CoalFireLife int

	// Agents (§4.4 HUMAN and ZOMBIE)
	AgentHopChance          float64
	HumanZombieEngageChance float64
	HumanWinFireChance      float64
	HumanWinFireLifeMin     int
	HumanWinFireLifeMax     int
	ZombieInfectChance      float64
	ZombieMissFireLife      int
	ZombieBurnFireLife      int
}

// Config controls the engine's grid dimensions, RNG seed, and tunables.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the literal probabilities and bounds spec.md
// names, so the out-of-the-box behavior matches the specification
// exactly.
func DefaultConfig() Config {
	return Config{
		Width:  80,
		Height: 40,
		Seed:   1,
		Params: Params{
			ExplosionFireChance:  0.50,
			ExplosionSmokeChance: 0.80,
			ExplosionFireLifeMin: 15,
			ExplosionFireLifeMax: 25,
			ExplosionSmokeLife:   20,
			ExplosionGasLife:     20,

			PlaceGasLife:       25,
			PlaceFireLife:      20,
			LightningBoltLife:  2,
			LightningWaterLife: 8,

			SandSeaweedLifeThreshold: 220,

			SteamLifeTicks:          20,
			ToxicGasLife:            25,
			IgniteFireLife:          25,
			WaterLavaSteamChance:    0.5,
			AcidDissolveToGasChance: 0.30,
			AcidSelfConsumeChance:   0.25,
			AcidWaterToSaltChance:   0.30,
			AcidWaterToSteamChance:  0.30,
			WetDirtLife:             300,
			LavaAgeStoneThreshold:   200,

			SteamCondenseChance:      0.15,
			SmokeSettleChance:        0.08,
			ChlorinePlantToxicChance: 0.35,
			GasSelfIgniteFireLife:    12,
			HydrogenExplodeRadius:    4,

			FireRiseChance:         0.5,
			FireSpreadChance:       0.40,
			FireSpreadLifeMin:      15,
			FireSpreadLifeMax:      25,
			FireSelfDecaySmokeLife: 15,
			FireConductSeedChance:  0.05,
			FireConductSeedLife:    5,
			GunpowderExplodeRadius: 5,

			LightningConductRaiseLife: 12,
			LightningFlammableLifeMin: 20,
			LightningFlammableLifeMax: 30,
			LightningGunpowderRadius:  6,
			LightningGasRadius:        4,

			ConductIgniteChance:     0.15,
			ConductGasExplodeChance: 0.35,
			ConductGasRadius:        4,

			IceMeltChance: 0.25,

			PlantFireLife:     20,
			PlantGrowChance:   0.02,
			SeaweedGrowChance: 0.02,

			WoodFireLife: 25,
			CoalFireLife: 35,

			AgentHopChance:          0.70,
			HumanZombieEngageChance: 0.35,
			HumanWinFireChance:      0.60,
			HumanWinFireLifeMin:     10,
			HumanWinFireLifeMax:     20,
			ZombieInfectChance:      0.70,
			ZombieMissFireLife:      10,
			ZombieBurnFireLife:      15,
		},
	}
}

// ConfigFromMap overrides DefaultConfig with values parsed from a
// string map, the same flag-style wiring the teacher's ecology.FromMap
// provides for its own Config/Params.
func ConfigFromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fire_spread_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.FireSpreadChance = parsed
		}
	}
	if v, ok := cfg["gunpowder_explode_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.GunpowderExplodeRadius = parsed
		}
	}
	return c
}
