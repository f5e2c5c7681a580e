package shared

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed focuses.yml
var focusesYML []byte

// Per-focus bonuses. Production and growth bonuses are additive across all
// completed focuses; cost reductions stack the same way. MoneyGain pays out
// once, on completion.
type FocusEffects struct {
	IronProductionBonus          float64 `yaml:"ironProductionBonus" json:"ironProductionBonus,omitempty"`
	OilProductionBonus           float64 `yaml:"oilProductionBonus" json:"oilProductionBonus,omitempty"`
	MoneyProductionBonus         float64 `yaml:"moneyProductionBonus" json:"moneyProductionBonus,omitempty"`
	PopulationGrowthBonus        float64 `yaml:"populationGrowthBonus" json:"populationGrowthBonus,omitempty"`
	InfantryPowerBonus           float64 `yaml:"infantryPowerBonus" json:"infantryPowerBonus,omitempty"`
	TankPowerBonus               float64 `yaml:"tankPowerBonus" json:"tankPowerBonus,omitempty"`
	MechanizedInfantryPowerBonus float64 `yaml:"mechanizedInfantryPowerBonus" json:"mechanizedInfantryPowerBonus,omitempty"`
	MissileCostReduction         float64 `yaml:"missileCostReduction" json:"missileCostReduction,omitempty"`
	BomberCostReduction          float64 `yaml:"bomberCostReduction" json:"bomberCostReduction,omitempty"`
	DefenseBonusIncrease         float64 `yaml:"defenseBonusIncrease" json:"defenseBonusIncrease,omitempty"`
	MoneyGain                    int     `yaml:"moneyGain" json:"moneyGain,omitempty"`
}

type FocusDefinition struct {
	ID            string       `yaml:"id" json:"id"`
	Name          string       `yaml:"name" json:"name"`
	Description   string       `yaml:"description" json:"description"`
	CostTurns     int          `yaml:"costTurns" json:"costTurns"`
	Effects       FocusEffects `yaml:"effects" json:"effects"`
	Prerequisites []string     `yaml:"prerequisites" json:"prerequisites"`
	ExclusiveWith []string     `yaml:"exclusiveWith" json:"exclusiveWith"`
}

type focusFile struct {
	Focuses []FocusDefinition `yaml:"focuses"`
}

// Declaration order from the YAML file, kept for deterministic listings.
var FOCUS_ORDER []string

// The immutable focus graph, keyed by focus ID.
var NATIONAL_FOCUSES = mustLoadFocuses()

func mustLoadFocuses() map[string]FocusDefinition {
	var file focusFile
	if err := yaml.Unmarshal(focusesYML, &file); err != nil {
		panic(fmt.Sprintf("shared: bad focuses.yml: %v", err))
	}

	focuses := make(map[string]FocusDefinition, len(file.Focuses))
	FOCUS_ORDER = make([]string, 0, len(file.Focuses))

	for _, f := range file.Focuses {
		if f.ID == "" || f.CostTurns <= 0 {
			panic(fmt.Sprintf("shared: focus %q missing id or costTurns", f.ID))
		}
		if _, ok := focuses[f.ID]; ok {
			panic(fmt.Sprintf("shared: duplicate focus id %q", f.ID))
		}

		focuses[f.ID] = f
		FOCUS_ORDER = append(FOCUS_ORDER, f.ID)
	}

	// Graph sanity: every referenced focus must exist and exclusions must be symmetric.
	for _, f := range focuses {
		for _, pre := range f.Prerequisites {
			if _, ok := focuses[pre]; !ok {
				panic(fmt.Sprintf("shared: focus %q requires unknown focus %q", f.ID, pre))
			}
		}
		for _, ex := range f.ExclusiveWith {
			other, ok := focuses[ex]
			if !ok {
				panic(fmt.Sprintf("shared: focus %q excludes unknown focus %q", f.ID, ex))
			}
			back := false
			for _, rev := range other.ExclusiveWith {
				if rev == f.ID {
					back = true
					break
				}
			}
			if !back {
				panic(fmt.Sprintf("shared: exclusion %q <-> %q is one-way", f.ID, ex))
			}
		}
	}

	return focuses
}

func GetFocus(id string) (FocusDefinition, bool) {
	f, ok := NATIONAL_FOCUSES[id]
	return f, ok
}
