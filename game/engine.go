package game

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"nationsim/database"
	"nationsim/database/store"
	"nationsim/structs"
)

type Config struct {
	TickInterval      time.Duration // How often the periodic update runs.
	AssaultTravelTime time.Duration // Suspension between committing forces and resolving a land assault.
}

func DefaultConfig() Config {
	return Config{
		TickInterval:      time.Minute,
		AssaultTravelTime: 10 * time.Second,
	}
}

// Receives world events (declarations, battles, collapses) as they happen.
// Implementations must not block; failures are the recorder's problem,
// the engine never checks them.
type EventRecorder interface {
	RecordEvent(message string)
}

// The simulation engine. All game state lives in the four stores; every
// operation takes the calling player's ID and validates against current
// state under the store locks.
type Engine struct {
	cfg Config

	nations  *store.Store[structs.Nation]
	wars     *store.Store[structs.War]
	requests *store.Store[structs.DiplomaticRequest]
	activity *store.Store[structs.PlayerActivity]

	recorder EventRecorder

	rng   *rand.Rand
	rngMu sync.Mutex

	// Serializes find-or-create on the wars store so one nation pair can
	// never end up with two live war records.
	warMu sync.Mutex

	tickRunning atomic.Bool
}

func New(db *database.Database, recorder EventRecorder, cfg Config) (*Engine, error) {
	nations, err := database.AssignStore(db, database.NATIONS_STORE)
	if err != nil {
		return nil, err
	}
	wars, err := database.AssignStore(db, database.WARS_STORE)
	if err != nil {
		return nil, err
	}
	requests, err := database.AssignStore(db, database.REQUESTS_STORE)
	if err != nil {
		return nil, err
	}
	activity, err := database.AssignStore(db, database.ACTIVITY_STORE)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:      cfg,
		nations:  nations,
		wars:     wars,
		requests: requests,
		activity: activity,
		recorder: recorder,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Printer for player-facing text, gives us thousands separators via %d.
var np = message.NewPrinter(language.English)

func (e *Engine) record(format string, args ...any) {
	if e.recorder == nil {
		return
	}

	e.recorder.RecordEvent(np.Sprintf(format, args...))
}

func (e *Engine) chance(p float64) bool {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()

	return e.rng.Float64() < p
}

func (e *Engine) between(min, max float64) float64 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()

	return min + e.rng.Float64()*(max-min)
}

func (e *Engine) intn(n int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()

	return e.rng.Intn(n)
}
