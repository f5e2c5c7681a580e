package shared

// Tuning tables for the simulation. Values are load-bearing: combat, peace
// and tick math all floor against these exact numbers.

const BASE_TERRITORY_COST = 1000

// Upper bound on any single unit/resource order or transfer.
const MAX_ORDER_AMOUNT = 10_000_000

const MAX_BOMBERS_PER_RAID = 100
const MAX_MISSILES_PER_STRIKE = 100
const MAX_NUKES_PER_STRIKE = 5
const MAX_INFRASTRUCTURE_PER_ORDER = 100

type UnitCost struct {
	Money int
	Oil   int
	Iron  int
}

var UNIT_COSTS = struct {
	INFANTRY            UnitCost
	TANK                UnitCost
	MECHANIZED_INFANTRY UnitCost
	BOMBER              UnitCost
	MISSILE             UnitCost
	NUCLEAR_MISSILE     UnitCost
	ARTILLERY           UnitCost
}{
	INFANTRY:            UnitCost{Money: 30, Oil: 1, Iron: 2},
	TANK:                UnitCost{Money: 70, Oil: 3, Iron: 5},
	MECHANIZED_INFANTRY: UnitCost{Money: 50, Oil: 2, Iron: 3},
	BOMBER:              UnitCost{Money: 90, Oil: 5, Iron: 7},
	MISSILE:             UnitCost{Money: 10000, Oil: 50, Iron: 100},
	NUCLEAR_MISSILE:     UnitCost{Money: 50000, Oil: 500, Iron: 1000},
	ARTILLERY:           UnitCost{Money: 120, Oil: 4, Iron: 6},
}

var UNIT_POWERS = struct {
	INFANTRY            float64
	TANK                float64
	MECHANIZED_INFANTRY float64
	ARTILLERY           float64
}{
	INFANTRY:            2,
	TANK:                7,
	MECHANIZED_INFANTRY: 4,
	ARTILLERY:           5,
}

// Defenders fight at 1.2x before focus bonuses.
const DEFENSE_BONUS_BASE = 1.2

// Outcome thresholds and per-side loss rates for a land assault.
const (
	CAPTURE_THRESHOLD_MULTIPLIER = 1.5

	CAPTURE_ATTACKER_LOSS_RATE = 0.2
	CAPTURE_DEFENDER_LOSS_RATE = 0.8

	ADVANTAGE_ATTACKER_LOSS_RATE = 0.5
	ADVANTAGE_DEFENDER_LOSS_RATE = 0.6

	DISADVANTAGE_ATTACKER_LOSS_RATE = 0.8
	DISADVANTAGE_DEFENDER_LOSS_RATE = 0.2
)

var BOMBER_DESTRUCTION_RATES = struct {
	INFANTRY            float64
	TANK                float64
	MECHANIZED_INFANTRY float64
	ARTILLERY           float64
}{
	INFANTRY:            0.4,
	TANK:                0.3,
	MECHANIZED_INFANTRY: 0.3,
	ARTILLERY:           0.3,
}

const (
	MISSILE_POP_DESTRUCTION_PER_MISSILE = 3000
	MISSILE_UNIT_DESTRUCTION_RATE       = 0.5

	NUCLEAR_MISSILE_POP_DESTRUCTION_PER_MISSILE = 50000
	NUCLEAR_MISSILE_UNIT_DESTRUCTION_RATE       = 0.8
)

// Focus gates for the restricted unit types.
const (
	NUCLEAR_WEAPONS_FOCUS_ID = "nuclear_weapons_development"
	ARTILLERY_FOCUS_ID       = "artillery_modernization"
)

var SABOTAGE = struct {
	COST           int
	FAILURE_COST   int
	SUCCESS_CHANCE float64

	UNIT_RATE_MIN       float64
	UNIT_RATE_MAX       float64
	MONEY_RATE_MIN      float64
	MONEY_RATE_MAX      float64
	RESOURCE_RATE_MIN   float64
	RESOURCE_RATE_MAX   float64
	POPULATION_RATE_MIN float64
	POPULATION_RATE_MAX float64

	MAX_INFANTRY_DESTROYED            int
	MAX_TANK_DESTROYED                int
	MAX_MECHANIZED_INFANTRY_DESTROYED int
	MAX_BOMBER_DESTROYED              int
	MAX_MISSILE_DESTROYED             int
	MAX_NUCLEAR_MISSILE_DESTROYED     int
	MAX_ARTILLERY_DESTROYED           int
	MAX_MONEY_DESTROYED               int
	MAX_OIL_DESTROYED                 int
	MAX_IRON_DESTROYED                int
	MAX_POPULATION_DESTROYED          int
}{
	COST:           1000,
	FAILURE_COST:   10000,
	SUCCESS_CHANCE: 0.4,

	UNIT_RATE_MIN:       0.15,
	UNIT_RATE_MAX:       0.3,
	MONEY_RATE_MIN:      0.2,
	MONEY_RATE_MAX:      0.4,
	RESOURCE_RATE_MIN:   0.2,
	RESOURCE_RATE_MAX:   0.4,
	POPULATION_RATE_MIN: 0.005,
	POPULATION_RATE_MAX: 0.01,

	MAX_INFANTRY_DESTROYED:            500,
	MAX_TANK_DESTROYED:                100,
	MAX_MECHANIZED_INFANTRY_DESTROYED: 200,
	MAX_BOMBER_DESTROYED:              50,
	MAX_MISSILE_DESTROYED:             1,
	MAX_NUCLEAR_MISSILE_DESTROYED:     0,
	MAX_ARTILLERY_DESTROYED:           50,
	MAX_MONEY_DESTROYED:               50000,
	MAX_OIL_DESTROYED:                 200,
	MAX_IRON_DESTROYED:                200,
	MAX_POPULATION_DESTROYED:          10000,
}

const (
	SPY_COST           = 500
	SPY_SUCCESS_CHANCE = 0.5
	SPY_ESTIMATE_RATE  = 0.2
)

type InfrastructureSpec struct {
	Cost       int
	OilCost    int
	IronCost   int
	MoneyBonus float64 // Added to income bonus per unit built.
	PopBonus   float64 // Added to population growth bonus per unit built.
}

var INFRASTRUCTURE = struct {
	RAILWAY          InfrastructureSpec
	SHINKANSEN       InfrastructureSpec
	AIRPORT          InfrastructureSpec
	TOURISM_FACILITY InfrastructureSpec
}{
	RAILWAY:          InfrastructureSpec{Cost: 5000, OilCost: 10, IronCost: 50, MoneyBonus: 0.005, PopBonus: 0.00001},
	SHINKANSEN:       InfrastructureSpec{Cost: 20000, OilCost: 50, IronCost: 200, MoneyBonus: 0.015, PopBonus: 0.00003},
	AIRPORT:          InfrastructureSpec{Cost: 15000, OilCost: 30, IronCost: 100, MoneyBonus: 0.008, PopBonus: 0},
	TOURISM_FACILITY: InfrastructureSpec{Cost: 8000, OilCost: 20, IronCost: 40, MoneyBonus: 0.01, PopBonus: 0.000015},
}

const (
	BASE_INCOME_RATE            = 0.01
	BASE_POPULATION_GROWTH_RATE = 0.00002
	RESOURCES_PER_TERRITORY     = 20

	TRANSPORT_POPULATION_TRANSFER_RATE = 0.00007
	TRANSPORT_MONEY_GAIN_PER_TICK      = 500
)

const (
	MAX_REBELLIONS              = 2
	REBELLION_RESOURCE_FACTOR   = 0.1
	REBELLION_POPULATION_FACTOR = 0.05
	MIN_STARTING_MONEY          = 10000
	MIN_STARTING_POPULATION     = 10000
	MIN_STARTING_INFANTRY       = 100
)

var STARTING_KIT = struct {
	INFANTRY   int
	TANK       int
	MONEY      int
	POPULATION int
	OIL        int
	IRON       int
}{
	INFANTRY:   100,
	TANK:       20,
	MONEY:      10000,
	POPULATION: 10000,
	OIL:        100,
	IRON:       100,
}

var WAR_POINTS = struct {
	INFANTRY            int
	TANK                int
	MECHANIZED_INFANTRY int
	BOMBER              int
	MISSILE             int
	NUCLEAR_MISSILE     int
	ARTILLERY           int
	TERRITORY_CAPTURE   int
}{
	INFANTRY:            1,
	TANK:                3,
	MECHANIZED_INFANTRY: 2,
	BOMBER:              5,
	MISSILE:             10,
	NUCLEAR_MISSILE:     50,
	ARTILLERY:           2,
	TERRITORY_CAPTURE:   50,
}

// War point prices for peace conference demands. Money, oil and iron are
// priced per bracket (ceil division), everything else per unit.
var PEACE_COSTS = struct {
	MONEY_PER_1000      int
	OIL_PER_10          int
	IRON_PER_10         int
	INFANTRY            int
	TANK                int
	MECHANIZED_INFANTRY int
	BOMBER              int
	MISSILE             int
	NUCLEAR_MISSILE     int
	ARTILLERY           int
	TERRITORY           int
}{
	MONEY_PER_1000:      1,
	OIL_PER_10:          1,
	IRON_PER_10:         1,
	INFANTRY:            1,
	TANK:                3,
	MECHANIZED_INFANTRY: 2,
	BOMBER:              5,
	MISSILE:             10,
	NUCLEAR_MISSILE:     50,
	ARTILLERY:           2,
	TERRITORY:           100,
}

// Population moved alongside a territory whenever one changes hands.
const TERRITORY_POPULATION_TRANSFER = 1000

const MAX_NEWS_ENTRIES = 100

// How recently a player must have been seen to count as online.
const ONLINE_WINDOW_SECONDS = 30
