package game

import (
	"nationsim/structs"
)

// An empty PlayerID is a missing identity, not a nation that happens not to
// exist. Every operation keyed on the caller goes through this first.
func requireCaller(owner structs.PlayerID) error {
	if owner == "" {
		return Errf(E_UNAUTHENTICATED, "a caller identity is required")
	}

	return nil
}

func (e *Engine) NationByOwner(owner structs.PlayerID) (*structs.Nation, error) {
	if err := requireCaller(owner); err != nil {
		return nil, err
	}

	n, err := e.nations.Get(owner)
	if err != nil {
		return nil, Errf(E_NOT_FOUND, "you do not have a nation")
	}

	return n, nil
}

func (e *Engine) NationByName(name string) (*structs.Nation, error) {
	n, err := e.nations.Find(func(n structs.Nation) bool {
		return n.Name == name
	})
	if err != nil {
		return nil, Errf(E_NOT_FOUND, "no nation named '%s' exists", name)
	}

	return n, nil
}

func (e *Engine) NationByTerritory(territory string) (*structs.Nation, error) {
	n, err := e.nations.Find(func(n structs.Nation) bool {
		return n.Owns(territory)
	})
	if err != nil {
		return nil, Errf(E_NOT_FOUND, "no nation holds the territory '%s'", territory)
	}

	return n, nil
}

// Runs an atomic mutation against owner's nation, mapping a raw store miss
// to the engine's NotFound error. Coded errors from f pass through untouched.
func (e *Engine) updateNation(owner structs.PlayerID, f func(n *structs.Nation) error) error {
	if err := requireCaller(owner); err != nil {
		return err
	}

	err := e.nations.Update(owner, f)
	if err != nil && CodeOf(err) == "" {
		return Errf(E_NOT_FOUND, "you do not have a nation")
	}

	return err
}

// Marks owner's nation as running an offensive action. The check and the set
// happen under one lock so two concurrent attacks cannot both pass.
func (e *Engine) claimInvasion(owner structs.PlayerID) error {
	return e.nations.Update(owner, func(n *structs.Nation) error {
		if n.InvasionStatus == structs.INVASION_IN_PROGRESS {
			return Errf(E_CONFLICT, "another attack is already in progress")
		}

		n.InvasionStatus = structs.INVASION_IN_PROGRESS
		return nil
	})
}

// Must run on every exit path of an offensive action, or the nation would be
// permanently unable to attack.
func (e *Engine) releaseInvasion(owner structs.PlayerID) {
	_ = e.nations.Update(owner, func(n *structs.Nation) error {
		n.InvasionStatus = structs.INVASION_NONE
		return nil
	})
}

// Deletes every nation with no territory or no population, cascading:
// its diplomacy records go away, its non-terminal wars become Cancelled
// and its activity record is dropped.
func (e *Engine) sweepDeadNations() {
	dead := e.nations.FindAll(func(n structs.Nation) bool {
		return n.IsDead()
	})

	for _, n := range dead {
		e.record("%s has fallen.", n.Name)

		_ = e.nations.Delete(n.Owner)

		for _, r := range e.requests.FindAll(func(r structs.DiplomaticRequest) bool {
			return r.Involves(n.Owner)
		}) {
			_ = e.requests.Delete(r.ID)
		}

		for _, w := range e.wars.FindAll(func(w structs.War) bool {
			return w.Involves(n.Owner) && !w.Status.Terminal()
		}) {
			_ = e.wars.Update(w.ID, func(w *structs.War) error {
				w.Status = structs.WAR_CANCELLED
				w.CeasefireProposedBy = ""
				return nil
			})
		}

		_ = e.activity.Delete(n.Owner)
	}
}
