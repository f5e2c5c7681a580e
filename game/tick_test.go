package game

import (
	"testing"

	"nationsim/structs"
)

func TestTickIncome(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000,
		Territories: []string{"Azores"},
	})

	e.Tick()

	n := mustNation(t, e, "p1")
	// floor(floor(10000 x 0.01) x 1.0) = 100 income, no bonuses.
	if n.Money != 100 {
		t.Errorf("expected 100 income, got %d", n.Money)
	}
	// floor(10000 x 0.00002) = 0: too small to grow.
	if n.Population != 10000 {
		t.Errorf("expected no growth, got %d", n.Population)
	}
	// 1 territory x 20 of each resource.
	if n.Oil != 20 || n.Iron != 20 {
		t.Errorf("expected 20 oil and iron, got %d/%d", n.Oil, n.Iron)
	}
}

func TestTickInfrastructureBonuses(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000,
		Railways: 100, Territories: []string{"Azores"},
	})

	e.Tick()

	n := mustNation(t, e, "p1")
	// 100 railways: money bonus 0.5 so floor(100 x 1.5) = 150,
	// pop bonus 0.001 so floor(10000 x 0.00102) = 10.
	if n.Money != 150 {
		t.Errorf("expected 150 income with railway bonus, got %d", n.Money)
	}
	if n.Population != 10010 {
		t.Errorf("expected +10 population with railway bonus, got %d", n.Population)
	}
}

func TestTickSettlesTransportLinks(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "a", Name: "Bigland", Population: 100000, Airports: 1,
		Territories: []string{"North"},
		TransportLinks: []structs.TransportLink{
			{PeerID: "b", Status: structs.REQUEST_APPROVED},
		},
	})
	seedNation(t, e, structs.Nation{
		Owner: "b", Name: "Smallland", Population: 10000, Airports: 1,
		Territories: []string{"South"},
		TransportLinks: []structs.TransportLink{
			{PeerID: "a", Status: structs.REQUEST_APPROVED},
		},
	})

	e.settleTransportLinks()

	a := mustNation(t, e, "a")
	b := mustNation(t, e, "b")
	if a.Money != 500 || b.Money != 500 {
		t.Errorf("both sides must earn transport money, got %d/%d", a.Money, b.Money)
	}

	// floor(90000 x 0.00007) = 6 people drift to the smaller nation.
	if a.Population != 99994 {
		t.Errorf("expected 99994, got %d", a.Population)
	}
	if b.Population != 10006 {
		t.Errorf("expected 10006, got %d", b.Population)
	}
}

func TestTickSkipsLinkWithoutAirports(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "a", Name: "Bigland", Population: 100000, Airports: 0,
		Territories: []string{"North"},
		TransportLinks: []structs.TransportLink{
			{PeerID: "b", Status: structs.REQUEST_APPROVED},
		},
	})
	seedNation(t, e, structs.Nation{
		Owner: "b", Name: "Smallland", Population: 10000, Airports: 1,
		Territories: []string{"South"},
		TransportLinks: []structs.TransportLink{
			{PeerID: "a", Status: structs.REQUEST_APPROVED},
		},
	})

	e.settleTransportLinks()

	if mustNation(t, e, "a").Money != 0 || mustNation(t, e, "b").Money != 0 {
		t.Error("a link without airports on both ends must carry nothing")
	}
}

func TestTickSweepsDeadNations(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Ghostland", Population: 0,
		Territories: []string{"Azores"},
	})

	e.Tick()

	if e.nations.HasKey("p1") {
		t.Error("a nation without population must be swept on tick")
	}
}

func TestTickReentrancyGuard(t *testing.T) {
	e := newTestEngine(t)
	seedNation(t, e, structs.Nation{
		Owner: "p1", Name: "Atlantis", Population: 10000,
		Territories: []string{"Azores"},
	})

	e.tickRunning.Store(true)
	e.Tick()

	if mustNation(t, e, "p1").Money != 0 {
		t.Error("an overlapping tick must be skipped entirely")
	}

	e.tickRunning.Store(false)
	e.Tick()
	if mustNation(t, e, "p1").Money == 0 {
		t.Error("the next tick must run normally")
	}
}
