package game

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"nationsim/shared"
	"nationsim/structs"
)

// War point value of a set of ground forces.
func warPointsFor(f structs.Forces) int {
	return f.Infantry*shared.WAR_POINTS.INFANTRY +
		f.Tank*shared.WAR_POINTS.TANK +
		f.MechanizedInfantry*shared.WAR_POINTS.MECHANIZED_INFANTRY +
		f.Artillery*shared.WAR_POINTS.ARTILLERY
}

// Owner of every territory in the world right now. Captured into a war record
// at declaration so a white peace can put the map back.
func (e *Engine) snapshotTerritoryOwnership() map[string]structs.PlayerID {
	snapshot := map[string]structs.PlayerID{}

	e.nations.ForEach(func(_ structs.PlayerID, n structs.Nation) {
		for _, t := range n.Territories {
			snapshot[t] = n.Owner
		}
	})

	return snapshot
}

// Finds the non-terminal war between the two parties, declaring a new one if
// none exists. Every offensive action funnels through here, so shooting first
// and declaring later still produces a war record.
func (e *Engine) ensureWar(attacker, defender *structs.Nation) (*structs.War, error) {
	e.warMu.Lock()
	defer e.warMu.Unlock()

	if w, err := e.wars.Find(func(w structs.War) bool {
		return w.Involves(attacker.Owner) && w.Involves(defender.Owner) && !w.Status.Terminal()
	}); err == nil {
		return w, nil
	}

	w := structs.War{
		ID:                        uuid.NewString(),
		AttackerID:                attacker.Owner,
		AttackerName:              attacker.Name,
		DefenderID:                defender.Owner,
		DefenderName:              defender.Name,
		Status:                    structs.WAR_DECLARED,
		InitialTerritoryOwnership: e.snapshotTerritoryOwnership(),
		DeclaredAt:                time.Now().UnixMilli(),
	}
	if err := e.wars.Set(w.ID, w); err != nil {
		return nil, Errf(E_INTERNAL, "failed to create the war record: %v", err)
	}

	e.record("%s has declared war on %s!", attacker.Name, defender.Name)

	return &w, nil
}

// Credits points to whichever side of the war the caller is on and marks the
// war hot.
func (e *Engine) addWarScore(warID string, caller structs.PlayerID, points int) {
	_ = e.wars.Update(warID, func(w *structs.War) error {
		w.AddScore(caller, points)
		w.Status = structs.WAR_ONGOING
		return nil
	})
}

// The defender's garrison in any one territory: total forces spread evenly
// across its holdings. Fractional on purpose, losses floor at the end.
func garrisonShares(n *structs.Nation) (inf, tank, mech, art float64) {
	count := float64(n.TerritoryCount())
	if count == 0 {
		return 0, 0, 0, 0
	}

	return float64(n.Infantry) / count,
		float64(n.Tank) / count,
		float64(n.MechanizedInfantry) / count,
		float64(n.Artillery) / count
}

// Commits ground forces against an enemy territory. The committed forces are
// debited immediately and spend the travel time in transit; the battle is
// resolved against the defender's state at arrival, not at launch. Survivors
// return home after the battle, but forces in transit when the target is lost
// or the defender falls are gone for good.
func (e *Engine) AttackTerritory(ctx context.Context, owner structs.PlayerID, territory string, forces structs.Forces) (structs.BattleReport, error) {
	if forces.Infantry < 0 || forces.Tank < 0 || forces.MechanizedInfantry < 0 || forces.Artillery < 0 {
		return structs.BattleReport{}, Errf(E_VALIDATION, "force counts cannot be negative")
	}
	if forces.Total() <= 0 {
		return structs.BattleReport{}, Errf(E_VALIDATION, "at least one unit must be committed")
	}
	if forces.Infantry > shared.MAX_ORDER_AMOUNT || forces.Tank > shared.MAX_ORDER_AMOUNT ||
		forces.MechanizedInfantry > shared.MAX_ORDER_AMOUNT || forces.Artillery > shared.MAX_ORDER_AMOUNT {
		return structs.BattleReport{}, Errf(E_VALIDATION, "force counts are out of range")
	}

	attacker, err := e.NationByOwner(owner)
	if err != nil {
		return structs.BattleReport{}, err
	}
	defender, err := e.NationByTerritory(territory)
	if err != nil {
		return structs.BattleReport{}, err
	}
	if defender.Owner == owner {
		return structs.BattleReport{}, Errf(E_CONFLICT, "you cannot attack your own territory")
	}

	if err := e.claimInvasion(owner); err != nil {
		return structs.BattleReport{}, err
	}
	defer e.releaseInvasion(owner)

	err = e.updateNation(owner, func(n *structs.Nation) error {
		if n.Infantry < forces.Infantry || n.Tank < forces.Tank ||
			n.MechanizedInfantry < forces.MechanizedInfantry || n.Artillery < forces.Artillery {
			return Errf(E_INSUFFICIENT, "you do not have the committed forces")
		}

		n.Infantry -= forces.Infantry
		n.Tank -= forces.Tank
		n.MechanizedInfantry -= forces.MechanizedInfantry
		n.Artillery -= forces.Artillery
		return nil
	})
	if err != nil {
		return structs.BattleReport{}, err
	}

	war, err := e.ensureWar(attacker, defender)
	if err != nil {
		return structs.BattleReport{}, err
	}

	e.record("%s has begun an invasion of %s's territory %s!", attacker.Name, defender.Name, territory)

	timer := time.NewTimer(e.cfg.AssaultTravelTime)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		// No battle happened, the forces turn around.
		_ = e.nations.Update(owner, func(n *structs.Nation) error {
			n.Infantry += forces.Infantry
			n.Tank += forces.Tank
			n.MechanizedInfantry += forces.MechanizedInfantry
			n.Artillery += forces.Artillery
			return nil
		})
		return structs.BattleReport{}, Errf(E_STATE, "the assault was called off: %v", ctx.Err())
	case <-timer.C:
	}

	// The world may have moved on during transit.
	arrived, err := e.nations.Get(defender.Owner)
	if err != nil {
		e.record("%s's invasion of %s was abandoned, the defending nation has fallen.", attacker.Name, territory)
		return structs.BattleReport{}, Errf(E_STATE, "the defending nation no longer exists, the committed forces are lost")
	}
	if !arrived.Owns(territory) {
		e.record("%s's invasion of %s was abandoned, the defenders no longer hold it.", attacker.Name, territory)
		return structs.BattleReport{}, Errf(E_STATE, "the territory changed hands in transit, the committed forces are lost")
	}

	attackerEffects := aggregateFocusEffects(attacker)
	defenderEffects := aggregateFocusEffects(arrived)

	attackPower := float64(forces.Infantry)*(shared.UNIT_POWERS.INFANTRY+attackerEffects.InfantryPowerBonus) +
		float64(forces.Tank)*(shared.UNIT_POWERS.TANK+attackerEffects.TankPowerBonus) +
		float64(forces.MechanizedInfantry)*(shared.UNIT_POWERS.MECHANIZED_INFANTRY+attackerEffects.MechanizedInfantryPowerBonus) +
		float64(forces.Artillery)*shared.UNIT_POWERS.ARTILLERY

	shareInf, shareTank, shareMech, shareArt := garrisonShares(arrived)
	defenseMultiplier := shared.DEFENSE_BONUS_BASE + defenderEffects.DefenseBonusIncrease
	defensePower := (shareInf*shared.UNIT_POWERS.INFANTRY +
		shareTank*shared.UNIT_POWERS.TANK +
		shareMech*shared.UNIT_POWERS.MECHANIZED_INFANTRY +
		shareArt*shared.UNIT_POWERS.ARTILLERY) * defenseMultiplier

	var outcome structs.BattleOutcome
	var attackerLossRate, defenderLossRate float64
	switch {
	case attackPower > defensePower*shared.CAPTURE_THRESHOLD_MULTIPLIER:
		outcome = structs.OUTCOME_CAPTURE
		attackerLossRate = shared.CAPTURE_ATTACKER_LOSS_RATE
		defenderLossRate = shared.CAPTURE_DEFENDER_LOSS_RATE
	case attackPower > defensePower:
		outcome = structs.OUTCOME_ADVANTAGE
		attackerLossRate = shared.ADVANTAGE_ATTACKER_LOSS_RATE
		defenderLossRate = shared.ADVANTAGE_DEFENDER_LOSS_RATE
	default:
		outcome = structs.OUTCOME_DISADVANTAGE
		attackerLossRate = shared.DISADVANTAGE_ATTACKER_LOSS_RATE
		defenderLossRate = shared.DISADVANTAGE_DEFENDER_LOSS_RATE
	}

	attackerLosses := structs.Forces{
		Infantry:           int(float64(forces.Infantry) * attackerLossRate),
		Tank:               int(float64(forces.Tank) * attackerLossRate),
		MechanizedInfantry: int(float64(forces.MechanizedInfantry) * attackerLossRate),
		Artillery:          int(float64(forces.Artillery) * attackerLossRate),
	}
	defenderLosses := structs.Forces{
		Infantry:           int(shareInf * defenderLossRate),
		Tank:               int(shareTank * defenderLossRate),
		MechanizedInfantry: int(shareMech * defenderLossRate),
		Artillery:          int(shareArt * defenderLossRate),
	}

	captured := outcome == structs.OUTCOME_CAPTURE

	_ = e.nations.Update(arrived.Owner, func(n *structs.Nation) error {
		n.Infantry = max(0, n.Infantry-defenderLosses.Infantry)
		n.Tank = max(0, n.Tank-defenderLosses.Tank)
		n.MechanizedInfantry = max(0, n.MechanizedInfantry-defenderLosses.MechanizedInfantry)
		n.Artillery = max(0, n.Artillery-defenderLosses.Artillery)

		if captured {
			n.RemoveTerritory(territory)
			n.Population = max(0, n.Population-shared.TERRITORY_POPULATION_TRANSFER)
		}
		return nil
	})

	_ = e.nations.Update(owner, func(n *structs.Nation) error {
		n.Infantry += forces.Infantry - attackerLosses.Infantry
		n.Tank += forces.Tank - attackerLosses.Tank
		n.MechanizedInfantry += forces.MechanizedInfantry - attackerLosses.MechanizedInfantry
		n.Artillery += forces.Artillery - attackerLosses.Artillery

		if captured {
			n.AddTerritory(territory)
			n.Population += shared.TERRITORY_POPULATION_TRANSFER
		}
		return nil
	})

	attackerPoints := warPointsFor(defenderLosses)
	if captured {
		attackerPoints += shared.WAR_POINTS.TERRITORY_CAPTURE
	}
	defenderPoints := warPointsFor(attackerLosses)

	_ = e.wars.Update(war.ID, func(w *structs.War) error {
		w.AddScore(owner, attackerPoints)
		w.AddScore(arrived.Owner, defenderPoints)
		w.Status = structs.WAR_ONGOING
		return nil
	})

	var message string
	switch outcome {
	case structs.OUTCOME_CAPTURE:
		message = np.Sprintf("%s has captured %s from %s!", attacker.Name, territory, arrived.Name)
	case structs.OUTCOME_ADVANTAGE:
		message = np.Sprintf("%s attacked %s's territory %s and gained the upper hand.", attacker.Name, arrived.Name, territory)
	default:
		message = np.Sprintf("%s attacked %s's territory %s and was repelled.", attacker.Name, arrived.Name, territory)
	}
	e.record("%s", message)

	e.sweepDeadNations()

	return structs.BattleReport{
		Outcome:           outcome,
		Territory:         territory,
		AttackerLosses:    attackerLosses,
		DefenderLosses:    defenderLosses,
		TerritoryCaptured: captured,
		Message:           message,
	}, nil
}

// Sends bombers against the garrison of an enemy territory. Bombers fly one
// mission and are expended; the raid fails outright if the territory has no
// defenders to hit.
func (e *Engine) BombardTerritory(owner structs.PlayerID, territory string, bombers int) (structs.Result, error) {
	if bombers <= 0 || bombers > shared.MAX_BOMBERS_PER_RAID {
		return structs.Result{}, Errf(E_VALIDATION, "bomber count must be between 1 and %d", shared.MAX_BOMBERS_PER_RAID)
	}

	attacker, err := e.NationByOwner(owner)
	if err != nil {
		return structs.Result{}, err
	}

	if err := e.claimInvasion(owner); err != nil {
		return structs.Result{}, err
	}
	defer e.releaseInvasion(owner)

	defender, err := e.NationByTerritory(territory)
	if err != nil {
		return structs.Result{}, err
	}
	if defender.Owner == owner {
		return structs.Result{}, Errf(E_CONFLICT, "you cannot bombard your own territory")
	}
	if attacker.Bomber < bombers {
		return structs.Result{}, Errf(E_INSUFFICIENT, "not enough bombers, you have %d", attacker.Bomber)
	}

	war, err := e.ensureWar(attacker, defender)
	if err != nil {
		return structs.Result{}, err
	}

	shareInf, shareTank, shareMech, shareArt := garrisonShares(defender)
	if shareInf == 0 && shareTank == 0 && shareMech == 0 && shareArt == 0 {
		return structs.Result{}, Errf(E_STATE, "the target territory has no defenders")
	}

	n := float64(bombers)
	infLoss := int(shareInf * math.Min(1, shared.BOMBER_DESTRUCTION_RATES.INFANTRY*n))
	tankLoss := int(shareTank * math.Min(1, shared.BOMBER_DESTRUCTION_RATES.TANK*n))
	mechLoss := int(shareMech * math.Min(1, shared.BOMBER_DESTRUCTION_RATES.MECHANIZED_INFANTRY*n))
	artLoss := int(shareArt * math.Min(1, shared.BOMBER_DESTRUCTION_RATES.ARTILLERY*n))

	_ = e.nations.Update(defender.Owner, func(dn *structs.Nation) error {
		dn.Infantry = max(0, dn.Infantry-infLoss)
		dn.Tank = max(0, dn.Tank-tankLoss)
		dn.MechanizedInfantry = max(0, dn.MechanizedInfantry-mechLoss)
		dn.Artillery = max(0, dn.Artillery-artLoss)
		return nil
	})
	_ = e.nations.Update(owner, func(an *structs.Nation) error {
		an.Bomber = max(0, an.Bomber-bombers)
		return nil
	})

	points := warPointsFor(structs.Forces{
		Infantry: infLoss, Tank: tankLoss, MechanizedInfantry: mechLoss, Artillery: artLoss,
	})
	points += bombers * shared.WAR_POINTS.BOMBER
	e.addWarScore(war.ID, owner, points)

	message := np.Sprintf("%s sent %d bombers against %s's territory %s! (losses: %d infantry, %d tanks, %d mechanized infantry, %d artillery)",
		attacker.Name, bombers, defender.Name, territory, infLoss, tankLoss, mechLoss, artLoss)
	e.record("%s", message)

	return structs.Result{Message: message}, nil
}

// Fires conventional missiles at an enemy territory, hitting both its
// garrison and the defender's population.
func (e *Engine) LaunchMissile(owner structs.PlayerID, territory string, count int) (structs.Result, error) {
	if count <= 0 || count > shared.MAX_MISSILES_PER_STRIKE {
		return structs.Result{}, Errf(E_VALIDATION, "missile count must be between 1 and %d", shared.MAX_MISSILES_PER_STRIKE)
	}

	attacker, err := e.NationByOwner(owner)
	if err != nil {
		return structs.Result{}, err
	}

	if err := e.claimInvasion(owner); err != nil {
		return structs.Result{}, err
	}
	defer e.releaseInvasion(owner)

	defender, err := e.NationByTerritory(territory)
	if err != nil {
		return structs.Result{}, err
	}
	if defender.Owner == owner {
		return structs.Result{}, Errf(E_CONFLICT, "you cannot fire missiles at your own territory")
	}
	if attacker.Missile < count {
		return structs.Result{}, Errf(E_INSUFFICIENT, "not enough missiles, you have %d", attacker.Missile)
	}

	war, err := e.ensureWar(attacker, defender)
	if err != nil {
		return structs.Result{}, err
	}

	_ = e.nations.Update(owner, func(an *structs.Nation) error {
		an.Missile = max(0, an.Missile-count)
		return nil
	})

	shareInf, shareTank, shareMech, shareArt := garrisonShares(defender)
	rate := math.Min(1, shared.MISSILE_UNIT_DESTRUCTION_RATE*float64(count))
	popLoss := shared.MISSILE_POP_DESTRUCTION_PER_MISSILE * count

	infLoss := int(shareInf * rate)
	tankLoss := int(shareTank * rate)
	mechLoss := int(shareMech * rate)
	artLoss := int(shareArt * rate)

	_ = e.nations.Update(defender.Owner, func(dn *structs.Nation) error {
		dn.Population = max(0, dn.Population-popLoss)
		dn.Infantry = max(0, dn.Infantry-infLoss)
		dn.Tank = max(0, dn.Tank-tankLoss)
		dn.MechanizedInfantry = max(0, dn.MechanizedInfantry-mechLoss)
		dn.Artillery = max(0, dn.Artillery-artLoss)
		return nil
	})

	points := warPointsFor(structs.Forces{
		Infantry: infLoss, Tank: tankLoss, MechanizedInfantry: mechLoss, Artillery: artLoss,
	})
	points += count * shared.WAR_POINTS.MISSILE
	e.addWarScore(war.ID, owner, points)

	e.record("%s launched %d missiles at %s's territory %s!", attacker.Name, count, defender.Name, territory)
	e.record("Missiles struck %s's territory %s! %d population lost. (losses: %d infantry, %d tanks, %d mechanized infantry, %d artillery)",
		defender.Name, territory, popLoss, infLoss, tankLoss, mechLoss, artLoss)

	return structs.Result{Message: np.Sprintf("Launched %d missiles at %s.", count, territory)}, nil
}

// Fires nuclear missiles. Unlike a conventional strike the blast hits the
// defender's total stocks across every unit type, not one territory's share,
// and the population loss is large enough to end nations.
func (e *Engine) LaunchNuclearMissile(owner structs.PlayerID, territory string, count int) (structs.Result, error) {
	if count <= 0 || count > shared.MAX_NUKES_PER_STRIKE {
		return structs.Result{}, Errf(E_VALIDATION, "nuclear missile count must be between 1 and %d", shared.MAX_NUKES_PER_STRIKE)
	}

	attacker, err := e.NationByOwner(owner)
	if err != nil {
		return structs.Result{}, err
	}
	if !attacker.HasCompletedFocus(shared.NUCLEAR_WEAPONS_FOCUS_ID) {
		return structs.Result{}, Errf(E_FORBIDDEN, "nuclear weapons development is not completed")
	}

	if err := e.claimInvasion(owner); err != nil {
		return structs.Result{}, err
	}
	defer e.releaseInvasion(owner)

	defender, err := e.NationByTerritory(territory)
	if err != nil {
		return structs.Result{}, err
	}
	if defender.Owner == owner {
		return structs.Result{}, Errf(E_CONFLICT, "you cannot fire nuclear missiles at your own territory")
	}
	if attacker.NuclearMissile < count {
		return structs.Result{}, Errf(E_INSUFFICIENT, "not enough nuclear missiles, you have %d", attacker.NuclearMissile)
	}

	war, err := e.ensureWar(attacker, defender)
	if err != nil {
		return structs.Result{}, err
	}

	_ = e.nations.Update(owner, func(an *structs.Nation) error {
		an.NuclearMissile = max(0, an.NuclearMissile-count)
		return nil
	})

	rate := math.Min(1, shared.NUCLEAR_MISSILE_UNIT_DESTRUCTION_RATE*float64(count))
	popLoss := shared.NUCLEAR_MISSILE_POP_DESTRUCTION_PER_MISSILE * count

	infLoss := int(float64(defender.Infantry) * rate)
	tankLoss := int(float64(defender.Tank) * rate)
	mechLoss := int(float64(defender.MechanizedInfantry) * rate)
	bomberLoss := int(float64(defender.Bomber) * rate)
	missileLoss := int(float64(defender.Missile) * rate)
	artLoss := int(float64(defender.Artillery) * rate)

	_ = e.nations.Update(defender.Owner, func(dn *structs.Nation) error {
		dn.Population = max(0, dn.Population-popLoss)
		dn.Infantry = max(0, dn.Infantry-infLoss)
		dn.Tank = max(0, dn.Tank-tankLoss)
		dn.MechanizedInfantry = max(0, dn.MechanizedInfantry-mechLoss)
		dn.Bomber = max(0, dn.Bomber-bomberLoss)
		dn.Missile = max(0, dn.Missile-missileLoss)
		dn.Artillery = max(0, dn.Artillery-artLoss)
		return nil
	})

	points := warPointsFor(structs.Forces{
		Infantry: infLoss, Tank: tankLoss, MechanizedInfantry: mechLoss, Artillery: artLoss,
	})
	points += bomberLoss * shared.WAR_POINTS.BOMBER
	points += missileLoss * shared.WAR_POINTS.MISSILE
	points += count * shared.WAR_POINTS.NUCLEAR_MISSILE
	e.addWarScore(war.ID, owner, points)

	e.record("%s launched %d nuclear missiles at %s's territory %s!", attacker.Name, count, defender.Name, territory)
	e.record("Nuclear missiles struck %s's territory %s! %d population lost and the defending army was devastated. (losses: %d infantry, %d tanks, %d mechanized infantry, %d bombers, %d missiles, %d artillery)",
		defender.Name, territory, popLoss, infLoss, tankLoss, mechLoss, bomberLoss, missileLoss, artLoss)

	e.sweepDeadNations()

	return structs.Result{Message: np.Sprintf("Launched %d nuclear missiles at %s.", count, territory)}, nil
}

// Covert strike against another nation. The entry cost is always paid; a
// failed attempt costs a further penalty on top of it. Failure is a game
// outcome, not an error.
func (e *Engine) SabotageNation(owner structs.PlayerID, targetName string) (structs.Result, error) {
	sender, err := e.NationByOwner(owner)
	if err != nil {
		return structs.Result{}, err
	}
	target, err := e.NationByName(targetName)
	if err != nil {
		return structs.Result{}, err
	}
	if sender.Owner == target.Owner {
		return structs.Result{}, Errf(E_VALIDATION, "you cannot sabotage your own nation")
	}

	err = e.updateNation(owner, func(n *structs.Nation) error {
		if n.Money < shared.SABOTAGE.COST {
			return Errf(E_INSUFFICIENT, "not enough money, %d required", shared.SABOTAGE.COST)
		}

		n.Money -= shared.SABOTAGE.COST
		return nil
	})
	if err != nil {
		return structs.Result{}, err
	}

	if !e.chance(shared.SABOTAGE.SUCCESS_CHANCE) {
		penalty := shared.SABOTAGE.FAILURE_COST - shared.SABOTAGE.COST
		bankrupt := false
		_ = e.nations.Update(owner, func(n *structs.Nation) error {
			n.Money = max(0, n.Money-penalty)
			bankrupt = n.Money == 0
			return nil
		})

		var message string
		if bankrupt {
			message = np.Sprintf("%s failed a sabotage attempt against %s and lost its entire treasury!", sender.Name, target.Name)
		} else {
			message = np.Sprintf("%s failed a sabotage attempt against %s. (%d money lost on top of the entry cost)", sender.Name, target.Name, penalty)
		}
		e.record("%s", message)

		return structs.Result{Message: message}, nil
	}

	capped := func(held int, rate float64, cap int) int {
		return min(int(float64(held)*rate), cap)
	}

	var details string
	switch e.intn(4) {
	case 0:
		rate := e.between(shared.SABOTAGE.UNIT_RATE_MIN, shared.SABOTAGE.UNIT_RATE_MAX)
		infLoss := capped(target.Infantry, rate, shared.SABOTAGE.MAX_INFANTRY_DESTROYED)
		tankLoss := capped(target.Tank, rate, shared.SABOTAGE.MAX_TANK_DESTROYED)
		mechLoss := capped(target.MechanizedInfantry, rate, shared.SABOTAGE.MAX_MECHANIZED_INFANTRY_DESTROYED)
		bomberLoss := capped(target.Bomber, rate, shared.SABOTAGE.MAX_BOMBER_DESTROYED)
		missileLoss := capped(target.Missile, rate, shared.SABOTAGE.MAX_MISSILE_DESTROYED)
		nukeLoss := capped(target.NuclearMissile, rate, shared.SABOTAGE.MAX_NUCLEAR_MISSILE_DESTROYED)
		artLoss := capped(target.Artillery, rate, shared.SABOTAGE.MAX_ARTILLERY_DESTROYED)

		_ = e.nations.Update(target.Owner, func(n *structs.Nation) error {
			n.Infantry = max(0, n.Infantry-infLoss)
			n.Tank = max(0, n.Tank-tankLoss)
			n.MechanizedInfantry = max(0, n.MechanizedInfantry-mechLoss)
			n.Bomber = max(0, n.Bomber-bomberLoss)
			n.Missile = max(0, n.Missile-missileLoss)
			n.NuclearMissile = max(0, n.NuclearMissile-nukeLoss)
			n.Artillery = max(0, n.Artillery-artLoss)
			return nil
		})
		details = np.Sprintf("Struck the armed forces! (infantry: %d, tanks: %d, mechanized infantry: %d, bombers: %d, missiles: %d, nuclear missiles: %d, artillery: %d)",
			infLoss, tankLoss, mechLoss, bomberLoss, missileLoss, nukeLoss, artLoss)
	case 1:
		rate := e.between(shared.SABOTAGE.MONEY_RATE_MIN, shared.SABOTAGE.MONEY_RATE_MAX)
		moneyLoss := capped(target.Money, rate, shared.SABOTAGE.MAX_MONEY_DESTROYED)

		_ = e.nations.Update(target.Owner, func(n *structs.Nation) error {
			n.Money = max(0, n.Money-moneyLoss)
			return nil
		})
		details = np.Sprintf("Robbed the treasury! (%d money)", moneyLoss)
	case 2:
		rate := e.between(shared.SABOTAGE.RESOURCE_RATE_MIN, shared.SABOTAGE.RESOURCE_RATE_MAX)
		oilLoss := capped(target.Oil, rate, shared.SABOTAGE.MAX_OIL_DESTROYED)
		ironLoss := capped(target.Iron, rate, shared.SABOTAGE.MAX_IRON_DESTROYED)

		_ = e.nations.Update(target.Owner, func(n *structs.Nation) error {
			n.Oil = max(0, n.Oil-oilLoss)
			n.Iron = max(0, n.Iron-ironLoss)
			return nil
		})
		details = np.Sprintf("Destroyed stockpiles! (oil: %d, iron: %d)", oilLoss, ironLoss)
	default:
		rate := e.between(shared.SABOTAGE.POPULATION_RATE_MIN, shared.SABOTAGE.POPULATION_RATE_MAX)
		popLoss := capped(target.Population, rate, shared.SABOTAGE.MAX_POPULATION_DESTROYED)

		_ = e.nations.Update(target.Owner, func(n *structs.Nation) error {
			n.Population = max(0, n.Population-popLoss)
			return nil
		})
		details = np.Sprintf("Dealt a blow to the population! (%d people)", popLoss)
	}

	e.record("%s pulled off a sabotage operation against %s! %s", sender.Name, target.Name, details)

	return structs.Result{Message: np.Sprintf("Sabotage succeeded! %s", details)}, nil
}
