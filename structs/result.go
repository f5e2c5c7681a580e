package structs

type Result struct {
	Message string `json:"message"`
}

type BattleOutcome string

const (
	OUTCOME_CAPTURE      BattleOutcome = "capture"      // attack power > 1.5x defense
	OUTCOME_ADVANTAGE    BattleOutcome = "advantage"    // attack power > defense
	OUTCOME_DISADVANTAGE BattleOutcome = "disadvantage" // everything else
)

// Ground forces committed to or lost in a land assault.
type Forces struct {
	Infantry           int `json:"infantry"`
	Tank               int `json:"tank"`
	MechanizedInfantry int `json:"mechanizedInfantry"`
	Artillery          int `json:"artillery"`
}

func (f Forces) Total() int {
	return f.Infantry + f.Tank + f.MechanizedInfantry + f.Artillery
}

type BattleReport struct {
	Outcome           BattleOutcome `json:"outcome"`
	Territory         string        `json:"territory"`
	AttackerLosses    Forces        `json:"attackerLosses"`
	DefenderLosses    Forces        `json:"defenderLosses"`
	TerritoryCaptured bool          `json:"territoryCaptured"`
	Message           string        `json:"message"`
}

// Inclusive estimate band reported back from an espionage run.
type Estimate struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

type SpyReport struct {
	TargetName string              `json:"targetName"`
	Estimates  map[string]Estimate `json:"estimates"`
}

// What the winner may demand at a peace conference, priced in war points.
type PeaceDemands struct {
	Money              int      `json:"money"`
	Oil                int      `json:"oil"`
	Iron               int      `json:"iron"`
	Infantry           int      `json:"infantry"`
	Tank               int      `json:"tank"`
	MechanizedInfantry int      `json:"mechanizedInfantry"`
	Bomber             int      `json:"bomber"`
	Missile            int      `json:"missile"`
	NuclearMissile     int      `json:"nuclearMissile"`
	Artillery          int      `json:"artillery"`
	Territories        []string `json:"territories"`
}

type PeaceConference struct {
	WarID              string   `json:"warId"`
	WinnerID           PlayerID `json:"winnerId"`
	WinnerName         string   `json:"winnerName"`
	LoserID            PlayerID `json:"loserId"`
	LoserName          string   `json:"loserName"`
	AvailableWarPoints int      `json:"availableWarPoints"`
	LoserHoldings      Nation   `json:"loserHoldings"` // Copy of the loser at conference time.
}

type NewsItem struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// Per-player bookkeeping outside the nation itself: presence and how many
// times this player has seized land through rebellion.
type PlayerActivity struct {
	PlayerID   PlayerID `json:"playerId"`
	NationName string   `json:"nationName"`
	LastSeen   int64    `json:"lastSeen"`
	Rebellions int      `json:"rebellionCount"`
}
