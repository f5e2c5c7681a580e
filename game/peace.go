package game

import (
	"slices"

	"nationsim/shared"
	"nationsim/structs"
)

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Total war point price of a set of demands.
func demandCost(d structs.PeaceDemands) int {
	cost := 0
	if d.Money > 0 {
		cost += ceilDiv(d.Money, 1000) * shared.PEACE_COSTS.MONEY_PER_1000
	}
	if d.Oil > 0 {
		cost += ceilDiv(d.Oil, 10) * shared.PEACE_COSTS.OIL_PER_10
	}
	if d.Iron > 0 {
		cost += ceilDiv(d.Iron, 10) * shared.PEACE_COSTS.IRON_PER_10
	}
	cost += d.Infantry * shared.PEACE_COSTS.INFANTRY
	cost += d.Tank * shared.PEACE_COSTS.TANK
	cost += d.MechanizedInfantry * shared.PEACE_COSTS.MECHANIZED_INFANTRY
	cost += d.Bomber * shared.PEACE_COSTS.BOMBER
	cost += d.Missile * shared.PEACE_COSTS.MISSILE
	cost += d.NuclearMissile * shared.PEACE_COSTS.NUCLEAR_MISSILE
	cost += d.Artillery * shared.PEACE_COSTS.ARTILLERY
	cost += len(d.Territories) * shared.PEACE_COSTS.TERRITORY

	return cost
}

// Checks that the war is in ceasefire, that the caller is the strict score
// leader, and that the loser still exists. Returns the war, the loser and the
// caller's point budget.
func (e *Engine) conferenceEligibility(owner structs.PlayerID, warID string) (*structs.War, *structs.Nation, int, error) {
	war, err := e.warByID(warID)
	if err != nil {
		return nil, nil, 0, err
	}
	if !war.Involves(owner) {
		return nil, nil, 0, Errf(E_FORBIDDEN, "you are not a participant of this war")
	}
	if war.Status != structs.WAR_CEASEFIRE {
		return nil, nil, 0, Errf(E_STATE, "peace can only be negotiated during a ceasefire")
	}

	diff := war.AttackerWarScore - war.DefenderWarScore
	if diff == 0 {
		return nil, nil, 0, Errf(E_STATE, "the war score is tied, neither side may dictate terms")
	}

	winner := war.AttackerID
	if diff < 0 {
		winner = war.DefenderID
		diff = -diff
	}
	if winner != owner {
		return nil, nil, 0, Errf(E_FORBIDDEN, "only the side with the higher war score may dictate terms")
	}

	loser, err := e.nations.Get(war.Opponent(owner))
	if err != nil {
		return nil, nil, 0, Errf(E_NOT_FOUND, "the defeated nation no longer exists")
	}

	return war, loser, diff, nil
}

// Opens the negotiation view: who won, how many points they have to spend and
// what the loser currently holds.
func (e *Engine) StartPeaceConference(owner structs.PlayerID, warID string) (structs.PeaceConference, error) {
	war, loser, budget, err := e.conferenceEligibility(owner, warID)
	if err != nil {
		return structs.PeaceConference{}, err
	}

	return structs.PeaceConference{
		WarID:              war.ID,
		WinnerID:           owner,
		WinnerName:         e.participantName(war, owner),
		LoserID:            loser.Owner,
		LoserName:          loser.Name,
		AvailableWarPoints: budget,
		LoserHoldings:      *loser,
	}, nil
}

func validateDemands(d structs.PeaceDemands, loser *structs.Nation) error {
	checks := []struct {
		label     string
		demanded  int
		available int
	}{
		{"money", d.Money, loser.Money},
		{"oil", d.Oil, loser.Oil},
		{"iron", d.Iron, loser.Iron},
		{"infantry", d.Infantry, loser.Infantry},
		{"tanks", d.Tank, loser.Tank},
		{"mechanized infantry", d.MechanizedInfantry, loser.MechanizedInfantry},
		{"bombers", d.Bomber, loser.Bomber},
		{"missiles", d.Missile, loser.Missile},
		{"nuclear missiles", d.NuclearMissile, loser.NuclearMissile},
		{"artillery", d.Artillery, loser.Artillery},
	}
	for _, c := range checks {
		if c.demanded < 0 {
			return Errf(E_VALIDATION, "demanded %s cannot be negative", c.label)
		}
		if c.demanded > c.available {
			return Errf(E_VALIDATION, "demanded %s (%d) exceeds what %s holds (%d)",
				c.label, c.demanded, loser.Name, c.available)
		}
	}

	seen := map[string]bool{}
	for _, t := range d.Territories {
		if seen[t] {
			return Errf(E_VALIDATION, "the territory '%s' is demanded twice", t)
		}
		seen[t] = true

		if !loser.Owns(t) {
			return Errf(E_VALIDATION, "%s does not hold the territory '%s'", loser.Name, t)
		}
	}

	return nil
}

// Settles the war on the winner's terms. Everything demanded moves loser to
// winner in one piece; if any part of the demand no longer holds up, nothing
// moves at all.
func (e *Engine) MakePeaceDemands(owner structs.PlayerID, warID string, demands structs.PeaceDemands) (structs.Result, error) {
	war, loser, budget, err := e.conferenceEligibility(owner, warID)
	if err != nil {
		return structs.Result{}, err
	}

	if err := validateDemands(demands, loser); err != nil {
		return structs.Result{}, err
	}

	cost := demandCost(demands)
	if cost > budget {
		return structs.Result{}, Errf(E_INSUFFICIENT, "the demands cost %d war points but only %d are available", cost, budget)
	}

	// Re-validated against live state inside the lock, the pre-check above
	// may be stale by the time we get here.
	err = e.nations.Update(loser.Owner, func(n *structs.Nation) error {
		if err := validateDemands(demands, n); err != nil {
			return err
		}

		n.Money -= demands.Money
		n.Oil -= demands.Oil
		n.Iron -= demands.Iron
		n.Infantry -= demands.Infantry
		n.Tank -= demands.Tank
		n.MechanizedInfantry -= demands.MechanizedInfantry
		n.Bomber -= demands.Bomber
		n.Missile -= demands.Missile
		n.NuclearMissile -= demands.NuclearMissile
		n.Artillery -= demands.Artillery

		for _, t := range demands.Territories {
			n.RemoveTerritory(t)
		}
		n.Population = max(0, n.Population-len(demands.Territories)*shared.TERRITORY_POPULATION_TRANSFER)
		return nil
	})
	if err != nil {
		return structs.Result{}, err
	}

	_ = e.nations.Update(owner, func(n *structs.Nation) error {
		n.Money += demands.Money
		n.Oil += demands.Oil
		n.Iron += demands.Iron
		n.Infantry += demands.Infantry
		n.Tank += demands.Tank
		n.MechanizedInfantry += demands.MechanizedInfantry
		n.Bomber += demands.Bomber
		n.Missile += demands.Missile
		n.NuclearMissile += demands.NuclearMissile
		n.Artillery += demands.Artillery

		for _, t := range demands.Territories {
			if !slices.Contains(n.Territories, t) {
				n.AddTerritory(t)
			}
		}
		n.Population += len(demands.Territories) * shared.TERRITORY_POPULATION_TRANSFER
		return nil
	})

	_ = e.wars.Update(warID, func(w *structs.War) error {
		w.Status = structs.WAR_ENDED
		w.CeasefireProposedBy = ""
		return nil
	})

	winnerName := e.participantName(war, owner)
	e.record("%s has dictated peace terms to %s. The war is over.", winnerName, loser.Name)
	for _, t := range demands.Territories {
		e.record("%s has ceded the territory %s to %s under the peace treaty.", loser.Name, t, winnerName)
	}

	e.sweepDeadNations()

	return structs.Result{Message: np.Sprintf("Peace concluded, %d war points spent.", cost)}, nil
}
