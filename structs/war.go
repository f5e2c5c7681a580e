package structs

import "maps"

type WarStatus string

const (
	WAR_DECLARED             WarStatus = "Declared"
	WAR_ONGOING              WarStatus = "Ongoing"
	WAR_CEASEFIRE            WarStatus = "Ceasefire"
	WAR_WHITE_PEACE_PROPOSED WarStatus = "WhitePeaceProposed"
	WAR_ENDED                WarStatus = "Ended"
	WAR_CANCELLED            WarStatus = "Cancelled"
)

func (s WarStatus) Valid() bool {
	switch s {
	case WAR_DECLARED, WAR_ONGOING, WAR_CEASEFIRE, WAR_WHITE_PEACE_PROPOSED, WAR_ENDED, WAR_CANCELLED:
		return true
	}

	return false
}

// Terminal wars never change state again and do not block a new declaration.
func (s WarStatus) Terminal() bool {
	return s == WAR_ENDED || s == WAR_CANCELLED
}

type War struct {
	ID           string   `json:"warId"`
	AttackerID   PlayerID `json:"attackerId"`
	AttackerName string   `json:"attackerNationName"` // Captured at declaration, not refreshed on rename.
	DefenderID   PlayerID `json:"defenderId"`
	DefenderName string   `json:"defenderNationName"`

	Status              WarStatus `json:"status"`
	AttackerWarScore    int       `json:"attackerWarScore"`
	DefenderWarScore    int       `json:"defenderWarScore"`
	CeasefireProposedBy PlayerID  `json:"ceasefireProposedBy"` // Also holds the white peace proposer.

	// Snapshot of every territory's owner at declaration time, used to
	// restore the map when a white peace is accepted.
	InitialTerritoryOwnership map[string]PlayerID `json:"initialTerritoryOwnership"`

	DeclaredAt int64 `json:"declaredAt"`
}

// A copy sharing no storage with w.
func (w War) Clone() War {
	cpy := w
	cpy.InitialTerritoryOwnership = maps.Clone(w.InitialTerritoryOwnership)

	return cpy
}

func (w *War) Involves(p PlayerID) bool {
	return w.AttackerID == p || w.DefenderID == p
}

func (w *War) Opponent(p PlayerID) PlayerID {
	if w.AttackerID == p {
		return w.DefenderID
	}

	return w.AttackerID
}

func (w *War) ScoreFor(p PlayerID) int {
	if w.AttackerID == p {
		return w.AttackerWarScore
	}

	return w.DefenderWarScore
}

func (w *War) AddScore(p PlayerID, points int) {
	if w.AttackerID == p {
		w.AttackerWarScore += points
	} else {
		w.DefenderWarScore += points
	}
}
