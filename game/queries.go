package game

import (
	"time"

	"github.com/samber/lo"

	"nationsim/shared"
	"nationsim/structs"
)

// World snapshot for rendering: every nation that still holds land.
func (e *Engine) Nations() []structs.Nation {
	return e.nations.FindAll(func(n structs.Nation) bool {
		return n.TerritoryCount() > 0
	})
}

type RankingEntry struct {
	Name            string `json:"name"`
	Territories     int    `json:"territories"`
	SelectedTitleID string `json:"selectedTitleId"`
	FlagURL         string `json:"flagUrl"`
}

// Nations ordered by territory count, largest first.
func (e *Engine) TerritoryRanking() []RankingEntry {
	ranked := e.nations.ValuesSorted(func(a, b structs.Nation) int {
		return b.TerritoryCount() - a.TerritoryCount()
	})

	return lo.Map(ranked, func(n structs.Nation, _ int) RankingEntry {
		return RankingEntry{
			Name:            n.Name,
			Territories:     n.TerritoryCount(),
			SelectedTitleID: n.SelectedTitleID,
			FlagURL:         n.FlagURL,
		}
	})
}

// Static tuning tables clients need to render prices and limits. Never
// changes at runtime.
type GameConstants struct {
	BaseTerritoryCost int                                  `json:"baseTerritoryCost"`
	MaxOrderAmount    int                                  `json:"maxOrderAmount"`
	UnitCosts         map[string]shared.UnitCost           `json:"unitCosts"`
	Infrastructure    map[string]shared.InfrastructureSpec `json:"infrastructure"`
	StartingKit       map[string]int                       `json:"startingKit"`
}

func (e *Engine) Constants() GameConstants {
	return GameConstants{
		BaseTerritoryCost: shared.BASE_TERRITORY_COST,
		MaxOrderAmount:    shared.MAX_ORDER_AMOUNT,
		UnitCosts: map[string]shared.UnitCost{
			"infantry":           shared.UNIT_COSTS.INFANTRY,
			"tank":               shared.UNIT_COSTS.TANK,
			"mechanizedInfantry": shared.UNIT_COSTS.MECHANIZED_INFANTRY,
			"bomber":             shared.UNIT_COSTS.BOMBER,
			"missile":            shared.UNIT_COSTS.MISSILE,
			"nuclearMissile":     shared.UNIT_COSTS.NUCLEAR_MISSILE,
			"artillery":          shared.UNIT_COSTS.ARTILLERY,
		},
		Infrastructure: map[string]shared.InfrastructureSpec{
			"railway":         shared.INFRASTRUCTURE.RAILWAY,
			"shinkansen":      shared.INFRASTRUCTURE.SHINKANSEN,
			"airport":         shared.INFRASTRUCTURE.AIRPORT,
			"tourismFacility": shared.INFRASTRUCTURE.TOURISM_FACILITY,
		},
		StartingKit: map[string]int{
			"infantry":   shared.STARTING_KIT.INFANTRY,
			"tank":       shared.STARTING_KIT.TANK,
			"money":      shared.STARTING_KIT.MONEY,
			"population": shared.STARTING_KIT.POPULATION,
			"oil":        shared.STARTING_KIT.OIL,
			"iron":       shared.STARTING_KIT.IRON,
		},
	}
}

// The latest world events, oldest first, when the recorder keeps history.
func (e *Engine) News(limit int) []string {
	type historian interface {
		Latest(limit int) []string
	}

	if h, ok := e.recorder.(historian); ok {
		return h.Latest(limit)
	}

	return nil
}

type OnlinePlayer struct {
	NationName      string `json:"nationName"`
	SelectedTitleID string `json:"selectedTitleId"`
	FlagURL         string `json:"flagUrl"`
}

// Players seen within the presence window, with their nation's display bits.
func (e *Engine) OnlinePlayers() []OnlinePlayer {
	cutoff := time.Now().Add(-shared.ONLINE_WINDOW_SECONDS * time.Second).UnixMilli()

	recent := e.activity.FindAll(func(a structs.PlayerActivity) bool {
		return a.LastSeen >= cutoff
	})

	return lo.Map(recent, func(a structs.PlayerActivity, _ int) OnlinePlayer {
		p := OnlinePlayer{NationName: a.NationName}
		if n, err := e.nations.Get(a.PlayerID); err == nil {
			p.NationName = n.Name
			p.SelectedTitleID = n.SelectedTitleID
			p.FlagURL = n.FlagURL
		}

		return p
	})
}
