package game

import (
	"github.com/samber/lo"

	"nationsim/shared"
	"nationsim/structs"
)

func (e *Engine) warByID(warID string) (*structs.War, error) {
	w, err := e.wars.Get(warID)
	if err != nil {
		return nil, Errf(E_NOT_FOUND, "no war with id '%s' exists", warID)
	}

	return w, nil
}

// Current display name for a war participant. Falls back to the name captured
// at declaration when the nation is gone or renamed records are stale.
func (e *Engine) participantName(w *structs.War, p structs.PlayerID) string {
	if n, err := e.nations.Get(p); err == nil {
		return n.Name
	}

	if w.AttackerID == p {
		return w.AttackerName
	}

	return w.DefenderName
}

// Formally opens a war without firing a shot. Attacking first works too, the
// combat operations declare implicitly.
func (e *Engine) DeclareWar(owner structs.PlayerID, targetName string) (structs.Result, error) {
	attacker, err := e.NationByOwner(owner)
	if err != nil {
		return structs.Result{}, err
	}
	target, err := e.NationByName(targetName)
	if err != nil {
		return structs.Result{}, err
	}
	if attacker.Owner == target.Owner {
		return structs.Result{}, Errf(E_VALIDATION, "you cannot declare war on yourself")
	}

	if _, err := e.wars.Find(func(w structs.War) bool {
		return w.Involves(attacker.Owner) && w.Involves(target.Owner) && !w.Status.Terminal()
	}); err == nil {
		return structs.Result{}, Errf(E_CONFLICT, "a war with %s is already underway", target.Name)
	}
	if e.allied(attacker.Owner, target.Owner) {
		return structs.Result{}, Errf(E_CONFLICT, "you cannot declare war on an ally, dissolve the alliance first")
	}

	if _, err := e.ensureWar(attacker, target); err != nil {
		return structs.Result{}, err
	}

	return structs.Result{Message: np.Sprintf("Declared war on %s.", target.Name)}, nil
}

// The caller's wars, split by what the caller can act on.
type WarOverview struct {
	ActiveWars          []structs.War `json:"activeWars"`
	CeasefireProposals  []structs.War `json:"ceasefireProposals"`  // Proposed by the other side, awaiting the caller.
	WhitePeaceProposals []structs.War `json:"whitePeaceProposals"` // Likewise.
}

func (e *Engine) WarsFor(owner structs.PlayerID) WarOverview {
	involved := e.wars.FindAll(func(w structs.War) bool {
		return w.Involves(owner) && !w.Status.Terminal()
	})

	return WarOverview{
		ActiveWars: involved,
		CeasefireProposals: lo.Filter(involved, func(w structs.War, _ int) bool {
			return w.Status != structs.WAR_WHITE_PEACE_PROPOSED &&
				w.CeasefireProposedBy != "" && w.CeasefireProposedBy != owner
		}),
		WhitePeaceProposals: lo.Filter(involved, func(w structs.War, _ int) bool {
			return w.Status == structs.WAR_WHITE_PEACE_PROPOSED && w.CeasefireProposedBy != owner
		}),
	}
}

func (e *Engine) ProposeCeasefire(owner structs.PlayerID, warID string) (structs.Result, error) {
	war, err := e.warByID(warID)
	if err != nil {
		return structs.Result{}, err
	}
	if !war.Involves(owner) {
		return structs.Result{}, Errf(E_FORBIDDEN, "you are not a participant of this war")
	}

	switch war.Status {
	case structs.WAR_CEASEFIRE:
		return structs.Result{}, Errf(E_STATE, "the war is already in ceasefire")
	case structs.WAR_WHITE_PEACE_PROPOSED:
		return structs.Result{}, Errf(E_STATE, "a white peace proposal is pending, resolve it first")
	case structs.WAR_ENDED, structs.WAR_CANCELLED:
		return structs.Result{}, Errf(E_STATE, "the war is already over")
	}

	if war.CeasefireProposedBy == owner {
		return structs.Result{}, Errf(E_CONFLICT, "you have already proposed a ceasefire")
	}
	if war.CeasefireProposedBy != "" {
		return structs.Result{}, Errf(E_CONFLICT, "the other side has already proposed a ceasefire, respond to it")
	}

	_ = e.wars.Update(warID, func(w *structs.War) error {
		w.CeasefireProposedBy = owner
		return nil
	})

	opponent := e.participantName(war, war.Opponent(owner))
	e.record("%s has proposed a ceasefire to %s.", e.participantName(war, owner), opponent)

	return structs.Result{Message: np.Sprintf("Proposed a ceasefire to %s.", opponent)}, nil
}

// Requires a pending proposal from the other party.
func (e *Engine) ceasefireResponse(owner structs.PlayerID, warID string) (*structs.War, error) {
	war, err := e.warByID(warID)
	if err != nil {
		return nil, err
	}
	if !war.Involves(owner) {
		return nil, Errf(E_FORBIDDEN, "you are not a participant of this war")
	}
	if war.CeasefireProposedBy == "" || war.CeasefireProposedBy == owner {
		return nil, Errf(E_STATE, "there is no ceasefire proposal from the other side")
	}

	return war, nil
}

func (e *Engine) AcceptCeasefire(owner structs.PlayerID, warID string) (structs.Result, error) {
	war, err := e.ceasefireResponse(owner, warID)
	if err != nil {
		return structs.Result{}, err
	}

	_ = e.wars.Update(warID, func(w *structs.War) error {
		w.Status = structs.WAR_CEASEFIRE
		w.CeasefireProposedBy = ""
		return nil
	})

	e.record("%s and %s have agreed to a ceasefire.",
		e.participantName(war, war.AttackerID), e.participantName(war, war.DefenderID))

	return structs.Result{Message: "Ceasefire accepted. The war is suspended."}, nil
}

func (e *Engine) RejectCeasefire(owner structs.PlayerID, warID string) (structs.Result, error) {
	war, err := e.ceasefireResponse(owner, warID)
	if err != nil {
		return structs.Result{}, err
	}

	_ = e.wars.Update(warID, func(w *structs.War) error {
		w.CeasefireProposedBy = ""
		return nil
	})

	e.record("%s has rejected %s's ceasefire proposal.",
		e.participantName(war, owner), e.participantName(war, war.Opponent(owner)))

	return structs.Result{Message: "Ceasefire rejected. The war goes on."}, nil
}

// Offers to end the war with the map restored to its pre-war state.
func (e *Engine) ProposeWhitePeace(owner structs.PlayerID, warID string) (structs.Result, error) {
	war, err := e.warByID(warID)
	if err != nil {
		return structs.Result{}, err
	}
	if !war.Involves(owner) {
		return structs.Result{}, Errf(E_FORBIDDEN, "you are not a participant of this war")
	}
	if war.Status.Terminal() {
		return structs.Result{}, Errf(E_STATE, "the war is already over")
	}
	if war.Status == structs.WAR_WHITE_PEACE_PROPOSED {
		return structs.Result{}, Errf(E_CONFLICT, "a white peace proposal is already pending")
	}

	_ = e.wars.Update(warID, func(w *structs.War) error {
		w.Status = structs.WAR_WHITE_PEACE_PROPOSED
		w.CeasefireProposedBy = owner
		return nil
	})

	opponent := e.participantName(war, war.Opponent(owner))
	e.record("%s has proposed a white peace to %s.", e.participantName(war, owner), opponent)

	return structs.Result{Message: np.Sprintf("Proposed a white peace to %s.", opponent)}, nil
}

func (e *Engine) whitePeaceResponse(owner structs.PlayerID, warID string) (*structs.War, error) {
	war, err := e.warByID(warID)
	if err != nil {
		return nil, err
	}
	if !war.Involves(owner) {
		return nil, Errf(E_FORBIDDEN, "you are not a participant of this war")
	}
	if war.Status != structs.WAR_WHITE_PEACE_PROPOSED {
		return nil, Errf(E_STATE, "no white peace has been proposed")
	}
	if war.CeasefireProposedBy == owner {
		return nil, Errf(E_FORBIDDEN, "the other side must answer your proposal")
	}

	return war, nil
}

// Ends the war and puts every territory back where it was at declaration,
// moving the usual population block with each restored transfer. Territories
// whose pre-war owner has since fallen stay where they are.
func (e *Engine) AcceptWhitePeace(owner structs.PlayerID, warID string) (structs.Result, error) {
	war, err := e.whitePeaceResponse(owner, warID)
	if err != nil {
		return structs.Result{}, err
	}

	restored := 0
	for territory, initialOwner := range war.InitialTerritoryOwnership {
		if !e.nations.HasKey(initialOwner) {
			continue
		}

		current, err := e.NationByTerritory(territory)
		if err == nil && current.Owner == initialOwner {
			continue
		}

		if err == nil {
			_ = e.nations.Update(current.Owner, func(n *structs.Nation) error {
				n.RemoveTerritory(territory)
				n.Population = max(0, n.Population-shared.TERRITORY_POPULATION_TRANSFER)
				return nil
			})
		}
		_ = e.nations.Update(initialOwner, func(n *structs.Nation) error {
			n.AddTerritory(territory)
			n.Population += shared.TERRITORY_POPULATION_TRANSFER
			return nil
		})
		restored++
	}

	_ = e.wars.Update(warID, func(w *structs.War) error {
		w.Status = structs.WAR_ENDED
		w.CeasefireProposedBy = ""
		return nil
	})

	e.record("%s and %s have made a white peace. %d territories returned to their pre-war owners.",
		e.participantName(war, war.AttackerID), e.participantName(war, war.DefenderID), restored)

	e.sweepDeadNations()

	return structs.Result{Message: np.Sprintf("White peace concluded. %d territories restored.", restored)}, nil
}

func (e *Engine) RejectWhitePeace(owner structs.PlayerID, warID string) (structs.Result, error) {
	war, err := e.whitePeaceResponse(owner, warID)
	if err != nil {
		return structs.Result{}, err
	}

	_ = e.wars.Update(warID, func(w *structs.War) error {
		w.Status = structs.WAR_ONGOING
		w.CeasefireProposedBy = ""
		return nil
	})

	e.record("%s has rejected %s's white peace proposal. The war goes on.",
		e.participantName(war, owner), e.participantName(war, war.Opponent(owner)))

	return structs.Result{Message: "White peace rejected."}, nil
}

// Either participant may walk away unilaterally. Scores and captured
// territories stand as they are.
func (e *Engine) CancelWar(owner structs.PlayerID, warID string) (structs.Result, error) {
	war, err := e.warByID(warID)
	if err != nil {
		return structs.Result{}, err
	}
	if !war.Involves(owner) {
		return structs.Result{}, Errf(E_FORBIDDEN, "you are not a participant of this war")
	}
	if war.Status.Terminal() {
		return structs.Result{}, Errf(E_STATE, "the war is already over")
	}

	_ = e.wars.Update(warID, func(w *structs.War) error {
		w.Status = structs.WAR_CANCELLED
		w.CeasefireProposedBy = ""
		return nil
	})

	e.record("The war between %s and %s has been called off.",
		e.participantName(war, war.AttackerID), e.participantName(war, war.DefenderID))

	return structs.Result{Message: "The war has been called off."}, nil
}
