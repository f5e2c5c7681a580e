package structs

import (
	"slices"

	"nationsim/utils/sets"
)

// Opaque identifier for the player behind a nation. One nation per player.
type PlayerID = string

type InvasionStatus = string

const (
	INVASION_NONE        InvasionStatus = "none"
	INVASION_IN_PROGRESS InvasionStatus = "in_progress"
)

// A one-way view of an approved transport link, stored on both endpoints.
type TransportLink struct {
	PeerID PlayerID      `json:"peerId"`
	Status RequestStatus `json:"status"`
}

type Nation struct {
	Owner   PlayerID `json:"owner"`
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	FlagURL string   `json:"flagUrl"`

	Money      int `json:"money"`
	Oil        int `json:"oil"`
	Iron       int `json:"iron"`
	Population int `json:"population"`

	Infantry           int `json:"infantry"`
	Tank               int `json:"tank"`
	MechanizedInfantry int `json:"mechanizedInfantry"`
	Bomber             int `json:"bomber"`
	Missile            int `json:"missile"`
	NuclearMissile     int `json:"nuclearMissile"`
	Artillery          int `json:"artillery"`

	Territories []string `json:"territories"` // Ordered. Each territory has exactly one owner globally.

	Railways          int `json:"railways"`
	Shinkansen        int `json:"shinkansen"`
	Airports          int `json:"airports"`
	TourismFacilities int `json:"tourismFacilities"`

	ActiveFocusID       string           `json:"activeFocusId"`
	FocusTurnsRemaining int              `json:"focusTurnsRemaining"`
	CompletedFocuses    sets.Set[string] `json:"completedFocuses"`

	AcquiredTitles  []string `json:"acquiredTitles"`
	SelectedTitleID string   `json:"selectedTitleId"`

	InvasionStatus InvasionStatus  `json:"invasionStatus"`
	TransportLinks []TransportLink `json:"transportLinks"`
}

// A copy sharing no storage with n. Stores hand out snapshots through this
// so a caller can never alias the ledger's live maps and slices.
func (n Nation) Clone() Nation {
	cpy := n
	cpy.Territories = slices.Clone(n.Territories)
	cpy.AcquiredTitles = slices.Clone(n.AcquiredTitles)
	cpy.TransportLinks = slices.Clone(n.TransportLinks)
	cpy.CompletedFocuses = n.CompletedFocuses.Clone()

	return cpy
}

func (n *Nation) Owns(territory string) bool {
	return slices.Contains(n.Territories, territory)
}

func (n *Nation) TerritoryCount() int {
	return len(n.Territories)
}

// A nation with no territory or no population is swept from the ledger.
func (n *Nation) IsDead() bool {
	return len(n.Territories) == 0 || n.Population <= 0
}

func (n *Nation) HasCompletedFocus(focusID string) bool {
	return n.CompletedFocuses.Has(focusID)
}

func (n *Nation) HasTitle(titleID string) bool {
	return slices.Contains(n.AcquiredTitles, titleID)
}

func (n *Nation) AddTerritory(territory string) {
	n.Territories = append(n.Territories, territory)
}

func (n *Nation) RemoveTerritory(territory string) {
	n.Territories = slices.DeleteFunc(n.Territories, func(t string) bool {
		return t == territory
	})
}

// Reports whether this nation has an approved transport link with peer.
func (n *Nation) LinkedWith(peer PlayerID) bool {
	for _, link := range n.TransportLinks {
		if link.PeerID == peer && link.Status == REQUEST_APPROVED {
			return true
		}
	}

	return false
}
