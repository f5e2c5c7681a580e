package game

import (
	"math"
	"strings"
	"time"

	"nationsim/shared"
	"nationsim/structs"
	"nationsim/utils"
	"nationsim/utils/sets"
)

// Founds a new nation for owner on an unclaimed territory. Owner identity,
// nation name and territory must all be unique across the ledger.
func (e *Engine) RegisterNation(owner structs.PlayerID, nationName, territory string) (structs.Result, error) {
	nationName = strings.TrimSpace(nationName)
	territory = strings.TrimSpace(territory)

	if err := requireCaller(owner); err != nil {
		return structs.Result{}, err
	}
	if nationName == "" {
		return structs.Result{}, Errf(E_VALIDATION, "a nation name is required")
	}
	if territory == "" {
		return structs.Result{}, Errf(E_VALIDATION, "a starting territory is required")
	}

	if e.nations.HasKey(owner) {
		return structs.Result{}, Errf(E_CONFLICT, "you already have a nation")
	}
	if _, err := e.NationByTerritory(territory); err == nil {
		return structs.Result{}, Errf(E_CONFLICT, "the territory '%s' is already owned", territory)
	}
	if _, err := e.NationByName(nationName); err == nil {
		return structs.Result{}, Errf(E_CONFLICT, "the nation name '%s' is already in use", nationName)
	}

	n := structs.Nation{
		Owner:            owner,
		Name:             nationName,
		Color:            utils.RandomHexColor(),
		Infantry:         shared.STARTING_KIT.INFANTRY,
		Tank:             shared.STARTING_KIT.TANK,
		Money:            shared.STARTING_KIT.MONEY,
		Population:       shared.STARTING_KIT.POPULATION,
		Oil:              shared.STARTING_KIT.OIL,
		Iron:             shared.STARTING_KIT.IRON,
		Territories:      []string{territory},
		CompletedFocuses: sets.New[string](),
		AcquiredTitles:   []string{shared.DEFAULT_TITLE_ID},
		SelectedTitleID:  shared.DEFAULT_TITLE_ID,
		InvasionStatus:   structs.INVASION_NONE,
	}
	if err := e.nations.Set(owner, n); err != nil {
		return structs.Result{}, Errf(E_INTERNAL, "failed to save the new nation: %v", err)
	}

	e.record("The nation of %s has been founded!", nationName)
	e.Touch(owner)

	return structs.Result{Message: np.Sprintf("The nation of %s has been founded!", nationName)}, nil
}

// Buys an unclaimed territory. The price scales with how much the nation
// already holds: (current territories + 1) x base cost.
func (e *Engine) BuyTerritory(owner structs.PlayerID, territory string) (structs.Result, error) {
	territory = strings.TrimSpace(territory)
	if territory == "" {
		return structs.Result{}, Errf(E_VALIDATION, "a territory name is required")
	}

	if taken, _ := e.nations.Find(func(other structs.Nation) bool {
		return other.Owns(territory)
	}); taken != nil {
		return structs.Result{}, Errf(E_CONFLICT, "the territory '%s' is already owned", territory)
	}

	var price int
	var name string
	err := e.updateNation(owner, func(n *structs.Nation) error {
		name = n.Name
		price = (n.TerritoryCount() + 1) * shared.BASE_TERRITORY_COST

		if n.Money < price {
			return Errf(E_INSUFFICIENT, "not enough money, this territory costs %d", price)
		}

		n.Money -= price
		n.Population += shared.TERRITORY_POPULATION_TRANSFER
		n.AddTerritory(territory)
		return nil
	})
	if err != nil {
		return structs.Result{}, err
	}

	e.record("%s has purchased %s.", name, territory)

	return structs.Result{Message: np.Sprintf("Purchased %s for %d.", territory, price)}, nil
}

// Money/oil/iron price of one unit of the given type for this nation,
// with focus gates and cost reductions applied.
func unitOrderCost(n *structs.Nation, unitType string) (shared.UnitCost, error) {
	effects := aggregateFocusEffects(n)

	switch unitType {
	case "infantry":
		return shared.UNIT_COSTS.INFANTRY, nil
	case "tank":
		return shared.UNIT_COSTS.TANK, nil
	case "mechanizedInfantry":
		return shared.UNIT_COSTS.MECHANIZED_INFANTRY, nil
	case "bomber":
		c := shared.UNIT_COSTS.BOMBER
		c.Money = max(1, int(float64(c.Money)*(1-effects.BomberCostReduction)))
		return c, nil
	case "missile":
		c := shared.UNIT_COSTS.MISSILE
		c.Money = max(1, int(float64(c.Money)*(1-effects.MissileCostReduction)))
		return c, nil
	case "nuclearMissile":
		if !n.HasCompletedFocus(shared.NUCLEAR_WEAPONS_FOCUS_ID) {
			return shared.UnitCost{}, Errf(E_FORBIDDEN, "nuclear weapons development is not completed")
		}
		return shared.UNIT_COSTS.NUCLEAR_MISSILE, nil
	case "artillery":
		if !n.HasCompletedFocus(shared.ARTILLERY_FOCUS_ID) {
			return shared.UnitCost{}, Errf(E_FORBIDDEN, "artillery modernization is not completed")
		}
		return shared.UNIT_COSTS.ARTILLERY, nil
	}

	return shared.UnitCost{}, Errf(E_VALIDATION, "unknown unit type '%s'", unitType)
}

func addUnits(n *structs.Nation, unitType string, amount int) {
	switch unitType {
	case "infantry":
		n.Infantry += amount
	case "tank":
		n.Tank += amount
	case "mechanizedInfantry":
		n.MechanizedInfantry += amount
	case "bomber":
		n.Bomber += amount
	case "missile":
		n.Missile += amount
	case "nuclearMissile":
		n.NuclearMissile += amount
	case "artillery":
		n.Artillery += amount
	}
}

// Buys amount units of the given type, debiting money, oil and iron together.
func (e *Engine) ReinforceArmy(owner structs.PlayerID, unitType string, amount int) (structs.Result, error) {
	if amount <= 0 || amount > shared.MAX_ORDER_AMOUNT {
		return structs.Result{}, Errf(E_VALIDATION, "amount must be between 1 and %d", shared.MAX_ORDER_AMOUNT)
	}

	var name string
	err := e.updateNation(owner, func(n *structs.Nation) error {
		name = n.Name

		cost, err := unitOrderCost(n, unitType)
		if err != nil {
			return err
		}

		totalMoney := cost.Money * amount
		totalOil := cost.Oil * amount
		totalIron := cost.Iron * amount

		if n.Money < totalMoney {
			return Errf(E_INSUFFICIENT, "not enough money, %d required", totalMoney)
		}
		if n.Oil < totalOil {
			return Errf(E_INSUFFICIENT, "not enough oil, %d required", totalOil)
		}
		if n.Iron < totalIron {
			return Errf(E_INSUFFICIENT, "not enough iron, %d required", totalIron)
		}

		n.Money -= totalMoney
		n.Oil -= totalOil
		n.Iron -= totalIron
		addUnits(n, unitType, amount)
		return nil
	})
	if err != nil {
		return structs.Result{}, err
	}

	// Filtered out of the news log, but still echoed to the console.
	e.record("%s reinforced its army with %d %s.", name, amount, unitType)

	return structs.Result{Message: np.Sprintf("Recruited %d %s.", amount, unitType)}, nil
}

// Builds amount pieces of the given infrastructure type.
func (e *Engine) BuildInfrastructure(owner structs.PlayerID, infraType string, amount int) (structs.Result, error) {
	if amount <= 0 || amount > shared.MAX_INFRASTRUCTURE_PER_ORDER {
		return structs.Result{}, Errf(E_VALIDATION, "amount must be between 1 and %d", shared.MAX_INFRASTRUCTURE_PER_ORDER)
	}

	var spec shared.InfrastructureSpec
	var label string
	switch infraType {
	case "railway":
		spec, label = shared.INFRASTRUCTURE.RAILWAY, "railway"
	case "shinkansen":
		spec, label = shared.INFRASTRUCTURE.SHINKANSEN, "shinkansen line"
	case "airport":
		spec, label = shared.INFRASTRUCTURE.AIRPORT, "airport"
	case "tourismFacility":
		spec, label = shared.INFRASTRUCTURE.TOURISM_FACILITY, "tourism facility"
	default:
		return structs.Result{}, Errf(E_VALIDATION, "unknown infrastructure type '%s'", infraType)
	}

	totalMoney := spec.Cost * amount
	totalOil := spec.OilCost * amount
	totalIron := spec.IronCost * amount

	var name string
	err := e.updateNation(owner, func(n *structs.Nation) error {
		name = n.Name

		if n.Money < totalMoney {
			return Errf(E_INSUFFICIENT, "not enough money, %d required", totalMoney)
		}
		if n.Oil < totalOil {
			return Errf(E_INSUFFICIENT, "not enough oil, %d required", totalOil)
		}
		if n.Iron < totalIron {
			return Errf(E_INSUFFICIENT, "not enough iron, %d required", totalIron)
		}

		n.Money -= totalMoney
		n.Oil -= totalOil
		n.Iron -= totalIron

		switch infraType {
		case "railway":
			n.Railways += amount
		case "shinkansen":
			n.Shinkansen += amount
		case "airport":
			n.Airports += amount
		case "tourismFacility":
			n.TourismFacilities += amount
		}
		return nil
	})
	if err != nil {
		return structs.Result{}, err
	}

	e.record("%s built %d %s(s).", name, amount, label)

	return structs.Result{Message: np.Sprintf("Built %d %s(s).", amount, label)}, nil
}

func resourceField(n *structs.Nation, resType string) *int {
	switch resType {
	case "money":
		return &n.Money
	case "oil":
		return &n.Oil
	case "iron":
		return &n.Iron
	case "infantry":
		return &n.Infantry
	case "tank":
		return &n.Tank
	case "mechanizedInfantry":
		return &n.MechanizedInfantry
	case "bomber":
		return &n.Bomber
	case "missile":
		return &n.Missile
	case "nuclearMissile":
		return &n.NuclearMissile
	case "artillery":
		return &n.Artillery
	}

	return nil
}

// Sends an amount of one resource or unit type to another nation by name.
func (e *Engine) TransferResources(owner structs.PlayerID, toName, resType string, amount int) (structs.Result, error) {
	if amount <= 0 || amount > shared.MAX_ORDER_AMOUNT {
		return structs.Result{}, Errf(E_VALIDATION, "amount must be between 1 and %d", shared.MAX_ORDER_AMOUNT)
	}

	sender, err := e.NationByOwner(owner)
	if err != nil {
		return structs.Result{}, err
	}
	receiver, err := e.NationByName(toName)
	if err != nil {
		return structs.Result{}, err
	}
	if sender.Owner == receiver.Owner {
		return structs.Result{}, Errf(E_VALIDATION, "you cannot send resources to yourself")
	}

	err = e.updateNation(owner, func(n *structs.Nation) error {
		field := resourceField(n, resType)
		if field == nil {
			return Errf(E_VALIDATION, "unknown resource type '%s'", resType)
		}
		if *field < amount {
			return Errf(E_INSUFFICIENT, "not enough %s, you hold %d", resType, *field)
		}

		*field -= amount
		return nil
	})
	if err != nil {
		return structs.Result{}, err
	}

	_ = e.nations.Update(receiver.Owner, func(n *structs.Nation) error {
		*resourceField(n, resType) += amount
		return nil
	})

	e.record("%s sent %d %s to %s.", sender.Name, amount, resType, receiver.Name)

	return structs.Result{Message: np.Sprintf("Sent %d %s to %s.", amount, resType, receiver.Name)}, nil
}

// Hands one of the caller's territories to another nation, moving the fixed
// population block along with it.
func (e *Engine) TransferTerritory(owner structs.PlayerID, territory, toName string) (structs.Result, error) {
	territory = strings.TrimSpace(territory)
	if territory == "" {
		return structs.Result{}, Errf(E_VALIDATION, "a territory name is required")
	}

	sender, err := e.NationByOwner(owner)
	if err != nil {
		return structs.Result{}, err
	}
	receiver, err := e.NationByName(toName)
	if err != nil {
		return structs.Result{}, err
	}
	if sender.Owner == receiver.Owner {
		return structs.Result{}, Errf(E_VALIDATION, "you cannot transfer a territory to yourself")
	}

	err = e.updateNation(owner, func(n *structs.Nation) error {
		if !n.Owns(territory) {
			return Errf(E_NOT_FOUND, "you do not own the territory '%s'", territory)
		}

		n.RemoveTerritory(territory)
		n.Population = max(0, n.Population-shared.TERRITORY_POPULATION_TRANSFER)
		return nil
	})
	if err != nil {
		return structs.Result{}, err
	}

	_ = e.nations.Update(receiver.Owner, func(n *structs.Nation) error {
		n.AddTerritory(territory)
		n.Population += shared.TERRITORY_POPULATION_TRANSFER
		return nil
	})

	e.record("%s has ceded the territory %s to %s.", sender.Name, territory, receiver.Name)
	e.sweepDeadNations()

	return structs.Result{Message: np.Sprintf("Transferred %s to %s along with %d population.",
		territory, receiver.Name, shared.TERRITORY_POPULATION_TRANSFER)}, nil
}

// A landless player may seize one territory from an existing nation by
// rebellion, founding a rebel state with a slice of the holder's stocks.
// Each player only gets a limited number of rebellions.
func (e *Engine) AttemptRebellion(owner structs.PlayerID, territory string) (structs.Result, error) {
	if err := requireCaller(owner); err != nil {
		return structs.Result{}, err
	}
	territory = strings.TrimSpace(territory)
	if territory == "" {
		return structs.Result{}, Errf(E_VALIDATION, "a territory name is required")
	}

	if existing, err := e.NationByOwner(owner); err == nil && existing.TerritoryCount() > 0 {
		return structs.Result{}, Errf(E_FORBIDDEN, "you already have a nation")
	}

	rebellions := 0
	if act, err := e.activity.Get(owner); err == nil {
		rebellions = act.Rebellions
	}
	if rebellions >= shared.MAX_REBELLIONS {
		return structs.Result{}, Errf(E_FORBIDDEN, "you have already rebelled %d times, the limit is %d",
			rebellions, shared.MAX_REBELLIONS)
	}

	target, err := e.NationByTerritory(territory)
	if err != nil {
		return structs.Result{}, err
	}
	if target.Owner == owner {
		return structs.Result{}, Errf(E_VALIDATION, "you cannot rebel against your own territory")
	}

	count := float64(target.TerritoryCount())
	seize := func(total int) int {
		return int(float64(total) / count * shared.REBELLION_RESOURCE_FACTOR)
	}

	money := max(seize(target.Money), shared.MIN_STARTING_MONEY)
	population := max(
		int(float64(target.Population)/count*shared.REBELLION_POPULATION_FACTOR),
		shared.MIN_STARTING_POPULATION,
	)
	infantry := max(seize(target.Infantry), shared.MIN_STARTING_INFANTRY)
	oil := seize(target.Oil)
	iron := seize(target.Iron)
	tank := seize(target.Tank)
	mechInf := seize(target.MechanizedInfantry)
	bomber := seize(target.Bomber)
	missile := seize(target.Missile)
	nuclearMissile := seize(target.NuclearMissile)
	artillery := seize(target.Artillery)

	rebelName := territory + " Rebels"
	rebel := structs.Nation{
		Owner:              owner,
		Name:               rebelName,
		Color:              utils.RandomHexColor(),
		Money:              money,
		Oil:                oil,
		Iron:               iron,
		Population:         population,
		Infantry:           infantry,
		Tank:               tank,
		MechanizedInfantry: mechInf,
		Bomber:             bomber,
		Missile:            missile,
		NuclearMissile:     nuclearMissile,
		Artillery:          artillery,
		Territories:        []string{territory},
		CompletedFocuses:   sets.New[string](),
		AcquiredTitles:     []string{shared.DEFAULT_TITLE_ID},
		SelectedTitleID:    shared.DEFAULT_TITLE_ID,
		InvasionStatus:     structs.INVASION_NONE,
	}
	if err := e.nations.Set(owner, rebel); err != nil {
		return structs.Result{}, Errf(E_INTERNAL, "failed to found the rebel nation: %v", err)
	}

	_ = e.nations.Update(target.Owner, func(n *structs.Nation) error {
		n.RemoveTerritory(territory)
		n.Money = max(0, n.Money-money)
		n.Oil = max(0, n.Oil-oil)
		n.Iron = max(0, n.Iron-iron)
		n.Population = max(0, n.Population-population)
		n.Infantry = max(0, n.Infantry-infantry)
		n.Tank = max(0, n.Tank-tank)
		n.MechanizedInfantry = max(0, n.MechanizedInfantry-mechInf)
		n.Bomber = max(0, n.Bomber-bomber)
		n.Missile = max(0, n.Missile-missile)
		n.NuclearMissile = max(0, n.NuclearMissile-nuclearMissile)
		n.Artillery = max(0, n.Artillery-artillery)
		return nil
	})

	e.bumpRebellions(owner, rebelName)
	e.record("%s has risen up in %s's territory %s and declared independence!",
		rebelName, target.Name, territory)
	e.sweepDeadNations()

	return structs.Result{Message: np.Sprintf("The rebellion in %s succeeded, %s has been founded!",
		territory, rebelName)}, nil
}

// Paid espionage. On success returns ranged estimates of the target's
// holdings; on failure the entry cost is simply lost.
func (e *Engine) SpyNation(owner structs.PlayerID, targetName string) (structs.Result, *structs.SpyReport, error) {
	sender, err := e.NationByOwner(owner)
	if err != nil {
		return structs.Result{}, nil, err
	}
	target, err := e.NationByName(targetName)
	if err != nil {
		return structs.Result{}, nil, err
	}
	if sender.Owner == target.Owner {
		return structs.Result{}, nil, Errf(E_VALIDATION, "you cannot spy on yourself")
	}

	err = e.updateNation(owner, func(n *structs.Nation) error {
		if n.Money < shared.SPY_COST {
			return Errf(E_INSUFFICIENT, "not enough money, %d required", shared.SPY_COST)
		}

		n.Money -= shared.SPY_COST
		return nil
	})
	if err != nil {
		return structs.Result{}, nil, err
	}

	if !e.chance(shared.SPY_SUCCESS_CHANCE) {
		e.record("%s failed to infiltrate %s.", sender.Name, target.Name)
		return structs.Result{Message: np.Sprintf("The spy was caught. %d money lost.", shared.SPY_COST)}, nil, nil
	}

	estimate := func(v int) structs.Estimate {
		rate := shared.SPY_ESTIMATE_RATE
		return structs.Estimate{
			Low:  int(math.Floor(float64(v) * (1 - rate))),
			High: int(math.Ceil(float64(v) * (1 + rate))),
		}
	}

	report := &structs.SpyReport{
		TargetName: target.Name,
		Estimates: map[string]structs.Estimate{
			"infantry":           estimate(target.Infantry),
			"tank":               estimate(target.Tank),
			"mechanizedInfantry": estimate(target.MechanizedInfantry),
			"bomber":             estimate(target.Bomber),
			"money":              estimate(target.Money),
			"missile":            estimate(target.Missile),
			"nuclearMissile":     estimate(target.NuclearMissile),
			"artillery":          estimate(target.Artillery),
			"oil":                estimate(target.Oil),
			"iron":               estimate(target.Iron),
			"railways":           estimate(target.Railways),
			"shinkansen":         estimate(target.Shinkansen),
			"airports":           estimate(target.Airports),
			"tourismFacilities":  estimate(target.TourismFacilities),
		},
	}

	return structs.Result{Message: np.Sprintf("Obtained intelligence on %s.", target.Name)}, report, nil
}

// Renames the nation and/or changes its map color.
func (e *Engine) UpdateNationInfo(owner structs.PlayerID, newName, newColor string) (structs.Result, error) {
	newName = strings.TrimSpace(newName)

	n, err := e.NationByOwner(owner)
	if err != nil {
		return structs.Result{}, err
	}

	changes := []string{}

	if newName != "" && newName != n.Name {
		if _, err := e.NationByName(newName); err == nil {
			return structs.Result{}, Errf(E_CONFLICT, "the nation name '%s' is already in use", newName)
		}
		changes = append(changes, np.Sprintf("renamed to %s", newName))
		e.record("%s has renamed itself to %s.", n.Name, newName)
	} else {
		newName = ""
	}

	if newColor != "" && newColor != n.Color {
		if !utils.ValidHexColor(newColor) {
			return structs.Result{}, Errf(E_VALIDATION, "invalid color code, use #RRGGBB")
		}
		changes = append(changes, np.Sprintf("color changed to %s", newColor))
		e.record("%s has changed its color to %s.", n.Name, newColor)
	} else {
		newColor = ""
	}

	if len(changes) == 0 {
		return structs.Result{Message: "Nothing to change."}, nil
	}

	err = e.updateNation(owner, func(n *structs.Nation) error {
		if newName != "" {
			n.Name = newName
		}
		if newColor != "" {
			n.Color = newColor
		}
		return nil
	})
	if err != nil {
		return structs.Result{}, err
	}

	if newName != "" {
		_ = e.activity.Update(owner, func(a *structs.PlayerActivity) error {
			a.NationName = newName
			return nil
		})
	}

	return structs.Result{Message: strings.Join(changes, ", ")}, nil
}

// Sets the nation's flag. An empty URL clears it.
func (e *Engine) UpdateNationFlag(owner structs.PlayerID, flagURL string) (structs.Result, error) {
	if flagURL != "" && !utils.ValidFlagURL(flagURL) {
		return structs.Result{}, Errf(E_VALIDATION, "invalid flag, use an image URL or a data URL")
	}

	var name string
	err := e.updateNation(owner, func(n *structs.Nation) error {
		name = n.Name
		n.FlagURL = flagURL
		return nil
	})
	if err != nil {
		return structs.Result{}, err
	}

	e.record("%s has changed its flag.", name)

	return structs.Result{Message: "Flag updated."}, nil
}

// Picks which of the nation's acquired titles is displayed.
func (e *Engine) SelectDisplayTitle(owner structs.PlayerID, titleID string) (structs.Result, error) {
	if !shared.ValidTitle(titleID) {
		return structs.Result{}, Errf(E_NOT_FOUND, "no title '%s' exists", titleID)
	}

	var name string
	err := e.updateNation(owner, func(n *structs.Nation) error {
		name = n.Name

		if !n.HasTitle(titleID) {
			return Errf(E_FORBIDDEN, "you have not acquired that title")
		}

		n.SelectedTitleID = titleID
		return nil
	})
	if err != nil {
		return structs.Result{}, err
	}

	title := shared.TITLE_DEFINITIONS[titleID]
	e.record("%s now bears the title \"%s\".", name, title.Name)

	return structs.Result{Message: np.Sprintf("Title set to \"%s\".", title.Name)}, nil
}

// Adds a title to the target nation's collection. No-op if already held.
func (e *Engine) GrantTitle(target structs.PlayerID, titleID string) (structs.Result, error) {
	if !shared.ValidTitle(titleID) {
		return structs.Result{}, Errf(E_NOT_FOUND, "no title '%s' exists", titleID)
	}

	var name string
	granted := false
	err := e.updateNation(target, func(n *structs.Nation) error {
		name = n.Name

		if n.HasTitle(titleID) {
			return nil
		}

		n.AcquiredTitles = append(n.AcquiredTitles, titleID)
		granted = true
		return nil
	})
	if err != nil {
		return structs.Result{}, err
	}

	title := shared.TITLE_DEFINITIONS[titleID]
	if !granted {
		return structs.Result{Message: np.Sprintf("The title \"%s\" is already held.", title.Name)}, nil
	}

	e.record("%s has earned the title \"%s\"!", name, title.Name)

	return structs.Result{Message: np.Sprintf("Granted the title \"%s\".", title.Name)}, nil
}

func (e *Engine) TitlesFor(owner structs.PlayerID) (acquired []string, selected string, err error) {
	n, err := e.NationByOwner(owner)
	if err != nil {
		return nil, "", err
	}

	return n.AcquiredTitles, n.SelectedTitleID, nil
}

// Records that owner was just seen. Called by read endpoints to back the
// online-players view.
func (e *Engine) Touch(owner structs.PlayerID) {
	if owner == "" {
		return
	}

	name := "Unregistered"
	if n, err := e.nations.Get(owner); err == nil {
		name = n.Name
	}

	now := time.Now().UnixMilli()
	if e.activity.HasKey(owner) {
		_ = e.activity.Update(owner, func(a *structs.PlayerActivity) error {
			a.NationName = name
			a.LastSeen = now
			return nil
		})
		return
	}

	_ = e.activity.Set(owner, structs.PlayerActivity{
		PlayerID:   owner,
		NationName: name,
		LastSeen:   now,
	})
}

func (e *Engine) bumpRebellions(owner structs.PlayerID, nationName string) {
	if e.activity.HasKey(owner) {
		_ = e.activity.Update(owner, func(a *structs.PlayerActivity) error {
			a.NationName = nationName
			a.Rebellions++
			return nil
		})
		return
	}

	_ = e.activity.Set(owner, structs.PlayerActivity{
		PlayerID:   owner,
		NationName: nationName,
		LastSeen:   time.Now().UnixMilli(),
		Rebellions: 1,
	})
}
