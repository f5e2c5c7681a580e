package game

import (
	"context"
	"testing"

	"github.com/sanity-io/litter"

	"nationsim/structs"
)

func twoNationsAtArms(t *testing.T, e *Engine) {
	t.Helper()

	seedNation(t, e, structs.Nation{
		Owner: "att", Name: "Attackia", Population: 50000,
		Infantry: 1000, Territories: []string{"North"},
	})
	seedNation(t, e, structs.Nation{
		Owner: "def", Name: "Defendia", Population: 50000,
		Infantry: 500, Territories: []string{"South"},
	})
}

func TestAttackTerritoryAdvantage(t *testing.T) {
	e := newTestEngine(t)
	twoNationsAtArms(t, e)

	// 800x2 = 1600 attack vs 500x2x1.2 = 1200 defense: above parity,
	// below the 1.5x capture threshold.
	report, err := e.AttackTerritory(context.Background(), "att", "South", structs.Forces{Infantry: 800})
	if err != nil {
		t.Fatal(err)
	}
	t.Log(litter.Sdump(report))

	if report.Outcome != structs.OUTCOME_ADVANTAGE {
		t.Fatalf("expected advantage, got %s", report.Outcome)
	}
	if report.TerritoryCaptured {
		t.Error("advantage must not capture the territory")
	}
	if report.AttackerLosses.Infantry != 400 {
		t.Errorf("expected 400 attacker infantry lost, got %d", report.AttackerLosses.Infantry)
	}
	if report.DefenderLosses.Infantry != 300 {
		t.Errorf("expected 300 defender infantry lost, got %d", report.DefenderLosses.Infantry)
	}

	att := mustNation(t, e, "att")
	def := mustNation(t, e, "def")
	if att.Infantry != 600 {
		t.Errorf("survivors must return: expected 600 attacker infantry, got %d", att.Infantry)
	}
	if def.Infantry != 200 {
		t.Errorf("expected 200 defender infantry, got %d", def.Infantry)
	}
	if !def.Owns("South") {
		t.Error("defender must keep the territory")
	}
	if att.InvasionStatus != structs.INVASION_NONE {
		t.Error("invasion flag must be released after the assault")
	}

	war, err := e.wars.Find(func(w structs.War) bool { return w.Involves("att") })
	if err != nil {
		t.Fatal("an implicit war must have been declared")
	}
	if war.Status != structs.WAR_ONGOING {
		t.Errorf("expected Ongoing, got %s", war.Status)
	}
	if war.ScoreFor("att") != 300 {
		t.Errorf("expected attacker score 300, got %d", war.ScoreFor("att"))
	}
	if war.ScoreFor("def") != 400 {
		t.Errorf("expected defender score 400, got %d", war.ScoreFor("def"))
	}
}

func TestAttackTerritoryCaptureSweepsDeadDefender(t *testing.T) {
	e := newTestEngine(t)
	twoNationsAtArms(t, e)

	// 1000x2 = 2000 vs 1200: past the 1.5x threshold, capture.
	report, err := e.AttackTerritory(context.Background(), "att", "South", structs.Forces{Infantry: 1000})
	if err != nil {
		t.Fatal(err)
	}

	if !report.TerritoryCaptured {
		t.Fatal("expected a capture")
	}

	att := mustNation(t, e, "att")
	if !att.Owns("South") {
		t.Error("captured territory must belong to the attacker")
	}
	if att.Population != 51000 {
		t.Errorf("population block must move with the territory, got %d", att.Population)
	}

	// The defender's only territory is gone, the death sweep removes it and
	// cancels the war.
	if e.nations.HasKey("def") {
		t.Error("landless defender must be swept")
	}
	war, err := e.wars.Find(func(w structs.War) bool { return w.Involves("def") })
	if err != nil {
		t.Fatal(err)
	}
	if war.Status != structs.WAR_CANCELLED {
		t.Errorf("expected the war Cancelled after the defender fell, got %s", war.Status)
	}
}

func TestAttackInsufficientForcesReleasesFlag(t *testing.T) {
	e := newTestEngine(t)
	twoNationsAtArms(t, e)

	_, err := e.AttackTerritory(context.Background(), "att", "South", structs.Forces{Infantry: 5000})
	expectCode(t, err, E_INSUFFICIENT)

	if mustNation(t, e, "att").InvasionStatus != structs.INVASION_NONE {
		t.Error("invasion flag must be released after a failed debit")
	}
}

func TestAttackOwnTerritoryRejected(t *testing.T) {
	e := newTestEngine(t)
	twoNationsAtArms(t, e)

	_, err := e.AttackTerritory(context.Background(), "att", "North", structs.Forces{Infantry: 100})
	expectCode(t, err, E_CONFLICT)
}

func TestConcurrentAttackRejected(t *testing.T) {
	e := newTestEngine(t)
	twoNationsAtArms(t, e)

	_ = e.nations.Update("att", func(n *structs.Nation) error {
		n.InvasionStatus = structs.INVASION_IN_PROGRESS
		return nil
	})

	_, err := e.AttackTerritory(context.Background(), "att", "South", structs.Forces{Infantry: 100})
	expectCode(t, err, E_CONFLICT)
}

func TestBombardTerritory(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "att", Name: "Attackia", Population: 50000,
		Bomber: 10, Territories: []string{"North"},
	})
	seedNation(t, e, structs.Nation{
		Owner: "def", Name: "Defendia", Population: 50000,
		Infantry: 100, Territories: []string{"South", "East"},
	})

	// 1 bomber: infantry rate 0.4 against the per-territory share of 50.
	if _, err := e.BombardTerritory("att", "South", 1); err != nil {
		t.Fatal(err)
	}

	att := mustNation(t, e, "att")
	def := mustNation(t, e, "def")
	if att.Bomber != 9 {
		t.Errorf("bombers are expended, expected 9, got %d", att.Bomber)
	}
	if def.Infantry != 80 {
		t.Errorf("expected 80 defender infantry, got %d", def.Infantry)
	}

	// 20 infantry (1pt each) + 1 bomber (5pt), all to the caller.
	war, err := e.wars.Find(func(w structs.War) bool { return w.Involves("att") })
	if err != nil {
		t.Fatal(err)
	}
	if war.ScoreFor("att") != 25 {
		t.Errorf("expected 25 points, got %d", war.ScoreFor("att"))
	}
	if war.ScoreFor("def") != 0 {
		t.Errorf("bombardment awards the caller only, defender got %d", war.ScoreFor("def"))
	}
}

func TestBombardNoDefendersRejected(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "att", Name: "Attackia", Population: 50000,
		Bomber: 10, Territories: []string{"North"},
	})
	seedNation(t, e, structs.Nation{
		Owner: "def", Name: "Defendia", Population: 50000,
		Territories: []string{"South"},
	})

	_, err := e.BombardTerritory("att", "South", 5)
	expectCode(t, err, E_STATE)

	if mustNation(t, e, "att").Bomber != 10 {
		t.Error("bombers must not be expended when the raid is rejected")
	}
}

func TestLaunchMissile(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "att", Name: "Attackia", Population: 50000,
		Missile: 3, Territories: []string{"North"},
	})
	seedNation(t, e, structs.Nation{
		Owner: "def", Name: "Defendia", Population: 50000,
		Infantry: 100, Territories: []string{"South"},
	})

	if _, err := e.LaunchMissile("att", "South", 1); err != nil {
		t.Fatal(err)
	}

	def := mustNation(t, e, "def")
	if def.Population != 47000 {
		t.Errorf("expected 3000 population lost, got pop %d", def.Population)
	}
	if def.Infantry != 50 {
		t.Errorf("expected half the garrison destroyed, got %d", def.Infantry)
	}
	if mustNation(t, e, "att").Missile != 2 {
		t.Error("missile must be consumed")
	}
}

func TestNuclearStrikeRequiresFocus(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "att", Name: "Attackia", Population: 50000,
		NuclearMissile: 1, Territories: []string{"North"},
	})
	seedNation(t, e, structs.Nation{
		Owner: "def", Name: "Defendia", Population: 50000,
		Territories: []string{"South"},
	})

	_, err := e.LaunchNuclearMissile("att", "South", 1)
	expectCode(t, err, E_FORBIDDEN)
}

func TestSabotageSelfRejected(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "a", Name: "Aland", Population: 10000, Money: 5000,
		Territories: []string{"North"},
	})

	_, err := e.SabotageNation("a", "Aland")
	expectCode(t, err, E_VALIDATION)
}

func TestSabotageRequiresEntryCost(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "a", Name: "Aland", Population: 10000, Money: 500,
		Territories: []string{"North"},
	})
	seedNation(t, e, structs.Nation{
		Owner: "b", Name: "Bland", Population: 10000, Money: 5000,
		Territories: []string{"South"},
	})

	_, err := e.SabotageNation("a", "Bland")
	expectCode(t, err, E_INSUFFICIENT)
}
