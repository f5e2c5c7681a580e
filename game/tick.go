package game

import (
	"context"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"nationsim/shared"
	"nationsim/structs"
)

// Drives the periodic world update until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.TickInterval)
	defer ticker.Stop()

	log.Infof("tick processor running every %s", e.cfg.TickInterval)

	for {
		select {
		case <-ctx.Done():
			log.Info("tick processor stopped")
			return
		case <-ticker.C:
			e.Tick()
		}
	}
}

// One world update: income, resource production, focus progress, transport
// link settlement, death sweep, in that order. If the previous tick is still
// running this one is skipped rather than overlapped.
func (e *Engine) Tick() {
	if !e.tickRunning.CompareAndSwap(false, true) {
		log.Warn("previous tick still running, skipping this one")
		return
	}
	defer e.tickRunning.Store(false)

	e.applyIncome()
	e.applyResourceProduction()
	e.advanceFocuses()
	e.settleTransportLinks()
	e.sweepDeadNations()
}

// Money income and population growth, scaled by focus and infrastructure
// bonuses.
func (e *Engine) applyIncome() {
	for _, key := range e.nations.Keys() {
		_ = e.nations.Update(key, func(n *structs.Nation) error {
			effects := aggregateFocusEffects(n)

			moneyBonus := effects.MoneyProductionBonus +
				float64(n.Railways)*shared.INFRASTRUCTURE.RAILWAY.MoneyBonus +
				float64(n.Shinkansen)*shared.INFRASTRUCTURE.SHINKANSEN.MoneyBonus +
				float64(n.Airports)*shared.INFRASTRUCTURE.AIRPORT.MoneyBonus +
				float64(n.TourismFacilities)*shared.INFRASTRUCTURE.TOURISM_FACILITY.MoneyBonus
			popBonus := effects.PopulationGrowthBonus +
				float64(n.Railways)*shared.INFRASTRUCTURE.RAILWAY.PopBonus +
				float64(n.Shinkansen)*shared.INFRASTRUCTURE.SHINKANSEN.PopBonus +
				float64(n.TourismFacilities)*shared.INFRASTRUCTURE.TOURISM_FACILITY.PopBonus

			baseIncome := math.Floor(float64(n.Population) * shared.BASE_INCOME_RATE)
			n.Money += int(math.Floor(baseIncome * (1 + moneyBonus)))
			n.Population += int(math.Floor(float64(n.Population) * (shared.BASE_POPULATION_GROWTH_RATE + popBonus)))
			return nil
		})
	}
}

// Oil and iron output from held territories.
func (e *Engine) applyResourceProduction() {
	for _, key := range e.nations.Keys() {
		_ = e.nations.Update(key, func(n *structs.Nation) error {
			effects := aggregateFocusEffects(n)
			base := float64(n.TerritoryCount() * shared.RESOURCES_PER_TERRITORY)

			n.Oil += int(math.Floor(base * (1 + effects.OilProductionBonus)))
			n.Iron += int(math.Floor(base * (1 + effects.IronProductionBonus)))
			return nil
		})
	}
}

// Counts down active focuses. Completion moves the focus into the completed
// set and pays out its one-time money gain, if any.
func (e *Engine) advanceFocuses() {
	for _, key := range e.nations.Keys() {
		var completed string
		var name string

		_ = e.nations.Update(key, func(n *structs.Nation) error {
			if n.ActiveFocusID == "" {
				return nil
			}

			n.FocusTurnsRemaining--
			if n.FocusTurnsRemaining > 0 {
				return nil
			}

			f, ok := shared.GetFocus(n.ActiveFocusID)
			if !ok {
				log.Errorf("nation %s has unknown active focus %s, clearing it", n.Name, n.ActiveFocusID)
				n.ActiveFocusID = ""
				n.FocusTurnsRemaining = 0
				return nil
			}

			n.CompletedFocuses.Append(f.ID)
			n.ActiveFocusID = ""
			n.FocusTurnsRemaining = 0
			if f.Effects.MoneyGain > 0 {
				n.Money += f.Effects.MoneyGain
			}

			completed = f.Name
			name = n.Name
			return nil
		})

		if completed != "" {
			e.record("%s has completed the national focus \"%s\"!", name, completed)
		}
	}
}

// Settles every approved transport link once per unordered pair: both sides
// earn trade money and population drifts from the larger nation to the
// smaller one. Links whose endpoints lost their airports carry nothing.
func (e *Engine) settleTransportLinks() {
	snapshot := e.nations.Entries()

	moneyDelta := map[structs.PlayerID]int{}
	popDelta := map[structs.PlayerID]int{}

	for owner, n := range snapshot {
		for _, link := range n.TransportLinks {
			if link.Status != structs.REQUEST_APPROVED {
				continue
			}
			// Both endpoints carry the link, process each pair once.
			if owner > link.PeerID {
				continue
			}

			peer, ok := snapshot[link.PeerID]
			if !ok {
				continue
			}
			if n.Airports == 0 || peer.Airports == 0 {
				continue
			}

			moneyDelta[owner] += shared.TRANSPORT_MONEY_GAIN_PER_TICK
			moneyDelta[link.PeerID] += shared.TRANSPORT_MONEY_GAIN_PER_TICK

			gap := n.Population - peer.Population
			transfer := int(math.Floor(math.Abs(float64(gap)) * shared.TRANSPORT_POPULATION_TRANSFER_RATE))
			if transfer == 0 {
				continue
			}

			if gap > 0 {
				popDelta[owner] -= transfer
				popDelta[link.PeerID] += transfer
				e.record("%d people have moved from %s to %s over the transport link.", transfer, n.Name, peer.Name)
			} else {
				popDelta[owner] += transfer
				popDelta[link.PeerID] -= transfer
				e.record("%d people have moved from %s to %s over the transport link.", transfer, peer.Name, n.Name)
			}
		}
	}

	for owner, delta := range moneyDelta {
		pop := popDelta[owner]
		_ = e.nations.Update(owner, func(n *structs.Nation) error {
			n.Money += delta
			n.Population = max(0, n.Population+pop)
			return nil
		})
		delete(popDelta, owner)
	}
	for owner, pop := range popDelta {
		_ = e.nations.Update(owner, func(n *structs.Nation) error {
			n.Population = max(0, n.Population+pop)
			return nil
		})
	}
}
