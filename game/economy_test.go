package game

import (
	"testing"

	"nationsim/shared"
	"nationsim/structs"
)

func TestRegisterNation(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.RegisterNation("p1", "Atlantis", "Azores"); err != nil {
		t.Fatal(err)
	}

	n := mustNation(t, e, "p1")
	if n.Infantry != 100 || n.Tank != 20 || n.Money != 10000 || n.Population != 10000 {
		t.Errorf("starting kit wrong: %+v", n)
	}
	if n.SelectedTitleID != shared.DEFAULT_TITLE_ID {
		t.Errorf("expected the default title, got %s", n.SelectedTitleID)
	}
	if !n.Owns("Azores") {
		t.Error("starting territory missing")
	}

	// One nation per player.
	_, err := e.RegisterNation("p1", "Lemuria", "Andes")
	expectCode(t, err, E_CONFLICT)

	// Name and territory uniqueness.
	_, err = e.RegisterNation("p2", "Atlantis", "Andes")
	expectCode(t, err, E_CONFLICT)
	_, err = e.RegisterNation("p2", "Lemuria", "Azores")
	expectCode(t, err, E_CONFLICT)
}

func TestBuyTerritory(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000, Money: 2500,
		Territories: []string{"Azores"},
	})

	// Second territory costs 2x the base price.
	if _, err := e.BuyTerritory("p1", "Madeira"); err != nil {
		t.Fatal(err)
	}

	n := mustNation(t, e, "p1")
	if n.Money != 500 {
		t.Errorf("expected 2000 debited, money is %d", n.Money)
	}
	if n.Population != 11000 {
		t.Errorf("expected +1000 population, got %d", n.Population)
	}

	// Third would cost 3000.
	_, err := e.BuyTerritory("p1", "Canaries")
	expectCode(t, err, E_INSUFFICIENT)
}

func TestBuyOwnedTerritoryRejected(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000, Money: 100000,
		Territories: []string{"Azores"},
	})
	seedNation(t, e, structs.Nation{
		Owner: "p2", Name: "Lemuria", Population: 10000, Money: 100000,
		Territories: []string{"Andes"},
	})

	_, err := e.BuyTerritory("p1", "Andes")
	expectCode(t, err, E_CONFLICT)
}

func TestReinforceArmy(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000,
		Money: 3000, Oil: 100, Iron: 200,
		Territories: []string{"Azores"},
	})

	if _, err := e.ReinforceArmy("p1", "infantry", 100); err != nil {
		t.Fatal(err)
	}

	n := mustNation(t, e, "p1")
	if n.Infantry != 100 {
		t.Errorf("expected 100 infantry, got %d", n.Infantry)
	}
	if n.Money != 0 || n.Oil != 0 || n.Iron != 0 {
		t.Errorf("expected money/oil/iron fully spent, got %d/%d/%d", n.Money, n.Oil, n.Iron)
	}

	_, err := e.ReinforceArmy("p1", "infantry", 1)
	expectCode(t, err, E_INSUFFICIENT)
}

func TestReinforceGatedUnits(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000,
		Money: 1000000, Oil: 10000, Iron: 10000,
		Territories: []string{"Azores"},
	})

	_, err := e.ReinforceArmy("p1", "nuclearMissile", 1)
	expectCode(t, err, E_FORBIDDEN)
	_, err = e.ReinforceArmy("p1", "artillery", 1)
	expectCode(t, err, E_FORBIDDEN)

	_ = e.nations.Update("p1", func(n *structs.Nation) error {
		n.CompletedFocuses.Append(shared.ARTILLERY_FOCUS_ID)
		return nil
	})
	if _, err := e.ReinforceArmy("p1", "artillery", 5); err != nil {
		t.Fatal(err)
	}
	if mustNation(t, e, "p1").Artillery != 5 {
		t.Error("artillery order not applied")
	}
}

func TestBuildInfrastructure(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000,
		Money: 10000, Oil: 20, Iron: 100,
		Territories: []string{"Azores"},
	})

	if _, err := e.BuildInfrastructure("p1", "railway", 2); err != nil {
		t.Fatal(err)
	}

	n := mustNation(t, e, "p1")
	if n.Railways != 2 {
		t.Errorf("expected 2 railways, got %d", n.Railways)
	}
	if n.Money != 0 || n.Oil != 0 || n.Iron != 0 {
		t.Errorf("costs not debited: %d/%d/%d", n.Money, n.Oil, n.Iron)
	}

	_, err := e.BuildInfrastructure("p1", "pyramid", 1)
	expectCode(t, err, E_VALIDATION)
}

func TestTransferResources(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000, Oil: 100,
		Territories: []string{"Azores"},
	})
	seedNation(t, e, structs.Nation{
		Owner: "p2", Name: "Lemuria", Population: 10000,
		Territories: []string{"Andes"},
	})

	if _, err := e.TransferResources("p1", "Lemuria", "oil", 40); err != nil {
		t.Fatal(err)
	}
	if mustNation(t, e, "p1").Oil != 60 {
		t.Error("sender not debited")
	}
	if mustNation(t, e, "p2").Oil != 40 {
		t.Error("receiver not credited")
	}

	_, err := e.TransferResources("p1", "Atlantis", "oil", 1)
	expectCode(t, err, E_VALIDATION)

	_, err = e.TransferResources("p1", "Lemuria", "oil", 1000)
	expectCode(t, err, E_INSUFFICIENT)
}

func TestTransferTerritory(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000,
		Territories: []string{"Azores", "Madeira"},
	})
	seedNation(t, e, structs.Nation{
		Owner: "p2", Name: "Lemuria", Population: 10000,
		Territories: []string{"Andes"},
	})

	if _, err := e.TransferTerritory("p1", "Madeira", "Lemuria"); err != nil {
		t.Fatal(err)
	}

	p1 := mustNation(t, e, "p1")
	p2 := mustNation(t, e, "p2")
	if p1.Owns("Madeira") || !p2.Owns("Madeira") {
		t.Error("territory did not move")
	}
	if p1.Population != 9000 || p2.Population != 11000 {
		t.Errorf("population block did not move: %d/%d", p1.Population, p2.Population)
	}

	_, err := e.TransferTerritory("p1", "Andes", "Lemuria")
	expectCode(t, err, E_NOT_FOUND)
}

func TestAttemptRebellion(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Empire", Population: 100000, Money: 40000,
		Infantry: 1000, Territories: []string{"Azores", "Madeira"},
	})

	if _, err := e.AttemptRebellion("rebel", "Madeira"); err != nil {
		t.Fatal(err)
	}

	r := mustNation(t, e, "rebel")
	if r.Name != "Madeira Rebels" {
		t.Errorf("unexpected rebel name %s", r.Name)
	}
	// Seized slices are small here, so the minimum grants apply.
	if r.Money != shared.MIN_STARTING_MONEY || r.Population != shared.MIN_STARTING_POPULATION || r.Infantry != shared.MIN_STARTING_INFANTRY {
		t.Errorf("minimum starting grants not applied: %+v", r)
	}
	if !r.Owns("Madeira") {
		t.Error("rebels must hold the seized territory")
	}

	target := mustNation(t, e, "p1")
	if target.Owns("Madeira") {
		t.Error("target must lose the territory")
	}
	if target.Money != 40000-shared.MIN_STARTING_MONEY {
		t.Errorf("target must be debited what the rebels received, money is %d", target.Money)
	}

	act, err := e.activity.Get("rebel")
	if err != nil {
		t.Fatal(err)
	}
	if act.Rebellions != 1 {
		t.Errorf("expected rebellion count 1, got %d", act.Rebellions)
	}
}

func TestRebellionLimit(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Empire", Population: 100000,
		Territories: []string{"Azores", "Madeira"},
	})
	_ = e.activity.Set("rebel", structs.PlayerActivity{
		PlayerID: "rebel", Rebellions: shared.MAX_REBELLIONS,
	})

	_, err := e.AttemptRebellion("rebel", "Madeira")
	expectCode(t, err, E_FORBIDDEN)
}

func TestRebellionRequiresLandlessCaller(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Empire", Population: 100000,
		Territories: []string{"Azores"},
	})
	seedNation(t, e, structs.Nation{
		Owner: "p2", Name: "Homeland", Population: 10000,
		Territories: []string{"Andes"},
	})

	_, err := e.AttemptRebellion("p2", "Azores")
	expectCode(t, err, E_FORBIDDEN)
}

func TestSpyNation(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000, Money: 10000,
		Territories: []string{"Azores"},
	})
	seedNation(t, e, structs.Nation{
		Owner: "p2", Name: "Lemuria", Population: 10000, Infantry: 1000,
		Territories: []string{"Andes"},
	})

	result, report, err := e.SpyNation("p1", "Lemuria")
	if err != nil {
		t.Fatal(err)
	}
	if result.Message == "" {
		t.Error("expected a result message")
	}

	if mustNation(t, e, "p1").Money != 10000-shared.SPY_COST {
		t.Error("spy cost must be paid whether or not the run succeeds")
	}

	if report != nil {
		est, ok := report.Estimates["infantry"]
		if !ok {
			t.Fatal("infantry estimate missing")
		}
		if est.Low > 1000 || est.High < 1000 {
			t.Errorf("estimate band [%d, %d] must bracket the true value 1000", est.Low, est.High)
		}
	}
}

func TestUpdateNationInfo(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000,
		Territories: []string{"Azores"},
	})
	seedNation(t, e, structs.Nation{
		Owner: "p2", Name: "Lemuria", Population: 10000,
		Territories: []string{"Andes"},
	})

	if _, err := e.UpdateNationInfo("p1", "New Atlantis", "#00FF00"); err != nil {
		t.Fatal(err)
	}

	n := mustNation(t, e, "p1")
	if n.Name != "New Atlantis" || n.Color != "#00FF00" {
		t.Errorf("update not applied: %+v", n)
	}

	_, err := e.UpdateNationInfo("p1", "Lemuria", "")
	expectCode(t, err, E_CONFLICT)

	_, err = e.UpdateNationInfo("p1", "", "green")
	expectCode(t, err, E_VALIDATION)
}

func TestTitles(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000,
		Territories: []string{"Azores"},
	})

	// Not yet acquired.
	_, err := e.SelectDisplayTitle("p1", "emperor")
	expectCode(t, err, E_FORBIDDEN)

	if _, err := e.GrantTitle("p1", "emperor"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.SelectDisplayTitle("p1", "emperor"); err != nil {
		t.Fatal(err)
	}
	if mustNation(t, e, "p1").SelectedTitleID != "emperor" {
		t.Error("selected title not applied")
	}

	_, err = e.SelectDisplayTitle("p1", "nonsense")
	expectCode(t, err, E_NOT_FOUND)
}
