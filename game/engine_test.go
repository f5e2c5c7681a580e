package game

import (
	"testing"
	"time"

	"nationsim/database"
	"nationsim/shared"
	"nationsim/structs"
	"nationsim/utils/sets"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	db := database.OpenEphemeral()
	t.Cleanup(func() { db.Close() })

	e, err := New(db, nil, Config{TickInterval: time.Minute, AssaultTravelTime: 0})
	if err != nil {
		t.Fatal(err)
	}

	return e
}

func seedNation(t *testing.T, e *Engine, n structs.Nation) {
	t.Helper()

	if n.CompletedFocuses == nil {
		n.CompletedFocuses = sets.New[string]()
	}
	if n.InvasionStatus == "" {
		n.InvasionStatus = structs.INVASION_NONE
	}
	if n.SelectedTitleID == "" {
		n.SelectedTitleID = shared.DEFAULT_TITLE_ID
		n.AcquiredTitles = []string{shared.DEFAULT_TITLE_ID}
	}

	if err := e.nations.Set(n.Owner, n); err != nil {
		t.Fatal(err)
	}
}

func mustNation(t *testing.T, e *Engine, owner structs.PlayerID) *structs.Nation {
	t.Helper()

	n, err := e.nations.Get(owner)
	if err != nil {
		t.Fatalf("nation %s: %v", owner, err)
	}

	return n
}

func expectCode(t *testing.T, err error, code Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s, got nil", code)
	}
	if !IsCode(err, code) {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func TestEmptyCallerRejected(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000,
		Territories: []string{"Azores"},
	})

	// A missing identity is distinct from a missing nation.
	_, err := e.NationByOwner("")
	expectCode(t, err, E_UNAUTHENTICATED)

	_, err = e.RegisterNation("", "Lemuria", "Mu")
	expectCode(t, err, E_UNAUTHENTICATED)

	_, err = e.BuyTerritory("", "Mu")
	expectCode(t, err, E_UNAUTHENTICATED)

	_, err = e.DeclareWar("", "Atlantis")
	expectCode(t, err, E_UNAUTHENTICATED)

	_, err = e.AttemptRebellion("", "Azores")
	expectCode(t, err, E_UNAUTHENTICATED)
}
