package game

import (
	"nationsim/shared"
	"nationsim/structs"
)

// Sum of the effects of every focus the nation has completed. MoneyGain is
// deliberately excluded from use here: it pays out once, on completion.
func aggregateFocusEffects(n *structs.Nation) shared.FocusEffects {
	var total shared.FocusEffects

	for id := range n.CompletedFocuses {
		f, ok := shared.GetFocus(id)
		if !ok {
			continue
		}

		total.IronProductionBonus += f.Effects.IronProductionBonus
		total.OilProductionBonus += f.Effects.OilProductionBonus
		total.MoneyProductionBonus += f.Effects.MoneyProductionBonus
		total.PopulationGrowthBonus += f.Effects.PopulationGrowthBonus
		total.InfantryPowerBonus += f.Effects.InfantryPowerBonus
		total.TankPowerBonus += f.Effects.TankPowerBonus
		total.MechanizedInfantryPowerBonus += f.Effects.MechanizedInfantryPowerBonus
		total.MissileCostReduction += f.Effects.MissileCostReduction
		total.BomberCostReduction += f.Effects.BomberCostReduction
		total.DefenseBonusIncrease += f.Effects.DefenseBonusIncrease
	}

	return total
}

type ActiveFocus struct {
	shared.FocusDefinition
	TurnsRemaining int `json:"turnsRemaining"`
}

func startable(n *structs.Nation, f shared.FocusDefinition) bool {
	if n.HasCompletedFocus(f.ID) {
		return false
	}
	if !n.CompletedFocuses.ContainsAll(f.Prerequisites) {
		return false
	}
	if n.CompletedFocuses.ContainsAny(f.ExclusiveWith) {
		return false
	}

	return true
}

// Lists every focus the nation could start right now. While a focus is in
// progress the list is empty and the active focus is returned instead.
func (e *Engine) AvailableFocuses(owner structs.PlayerID) ([]shared.FocusDefinition, *ActiveFocus, error) {
	n, err := e.NationByOwner(owner)
	if err != nil {
		return nil, nil, err
	}

	if n.ActiveFocusID != "" {
		f, ok := shared.GetFocus(n.ActiveFocusID)
		if !ok {
			return nil, nil, Errf(E_INTERNAL, "active focus '%s' has no definition", n.ActiveFocusID)
		}

		return nil, &ActiveFocus{FocusDefinition: f, TurnsRemaining: n.FocusTurnsRemaining}, nil
	}

	available := []shared.FocusDefinition{}
	for _, id := range shared.FOCUS_ORDER {
		f := shared.NATIONAL_FOCUSES[id]
		if startable(n, f) {
			available = append(available, f)
		}
	}

	return available, nil, nil
}

func (e *Engine) StartNationalFocus(owner structs.PlayerID, focusID string) (structs.Result, error) {
	f, ok := shared.GetFocus(focusID)
	if !ok {
		return structs.Result{}, Errf(E_NOT_FOUND, "no focus '%s' exists", focusID)
	}

	var name string
	err := e.updateNation(owner, func(n *structs.Nation) error {
		name = n.Name

		if n.ActiveFocusID != "" {
			return Errf(E_CONFLICT, "a focus is already in progress")
		}
		if n.HasCompletedFocus(focusID) {
			return Errf(E_CONFLICT, "the focus '%s' is already completed", f.Name)
		}
		if !n.CompletedFocuses.ContainsAll(f.Prerequisites) {
			return Errf(E_STATE, "the prerequisites for '%s' are not completed", f.Name)
		}
		if n.CompletedFocuses.ContainsAny(f.ExclusiveWith) {
			return Errf(E_STATE, "'%s' is excluded by a focus you have already completed", f.Name)
		}

		n.ActiveFocusID = focusID
		n.FocusTurnsRemaining = f.CostTurns
		return nil
	})
	if err != nil {
		return structs.Result{}, err
	}

	e.record("%s has started the national focus \"%s\".", name, f.Name)

	return structs.Result{Message: np.Sprintf("Started the national focus \"%s\" (%d turns).", f.Name, f.CostTurns)}, nil
}
