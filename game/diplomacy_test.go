package game

import (
	"testing"

	"nationsim/structs"
)

func TestAllianceLifecycle(t *testing.T) {
	e := newTestEngine(t)
	twoNationsAtArms(t, e)

	if _, err := e.RequestAlliance("att", "Defendia"); err != nil {
		t.Fatal(err)
	}

	// Same direction again.
	_, err := e.RequestAlliance("att", "Defendia")
	expectCode(t, err, E_CONFLICT)

	// Opposite direction while pending: respond instead.
	_, err = e.RequestAlliance("def", "Attackia")
	expectCode(t, err, E_CONFLICT)

	_, pending := e.AlliancesFor("def")
	if len(pending) != 1 {
		t.Fatalf("expected one pending request for the approver, got %d", len(pending))
	}

	if _, err := e.RespondToAllianceRequest("def", "Attackia", true); err != nil {
		t.Fatal(err)
	}
	if !e.allied("att", "def") {
		t.Error("parties must count as allied after approval")
	}

	// Requesting an approved alliance again.
	_, err = e.RequestAlliance("att", "Defendia")
	expectCode(t, err, E_CONFLICT)

	if _, err := e.DissolveAlliance("def", "Attackia"); err != nil {
		t.Fatal(err)
	}
	if e.allied("att", "def") {
		t.Error("alliance must be gone after dissolution")
	}
}

func TestAllianceRejectDeletesRequest(t *testing.T) {
	e := newTestEngine(t)
	twoNationsAtArms(t, e)

	_, _ = e.RequestAlliance("att", "Defendia")
	if _, err := e.RespondToAllianceRequest("def", "Attackia", false); err != nil {
		t.Fatal(err)
	}

	if !e.requests.IsEmpty() {
		t.Error("a rejected request must be deleted, not kept")
	}

	// A fresh request is allowed afterwards.
	if _, err := e.RequestAlliance("att", "Defendia"); err != nil {
		t.Errorf("re-requesting after rejection must work: %v", err)
	}
}

func TestSelfAllianceRejected(t *testing.T) {
	e := newTestEngine(t)
	twoNationsAtArms(t, e)

	_, err := e.RequestAlliance("att", "Attackia")
	expectCode(t, err, E_VALIDATION)
}

func TestTransportLinkRequiresAirports(t *testing.T) {
	e := newTestEngine(t)
	twoNationsAtArms(t, e)

	_, err := e.RequestTransportLink("att", "Defendia")
	expectCode(t, err, E_STATE)

	_ = e.nations.Update("att", func(n *structs.Nation) error {
		n.Airports = 1
		return nil
	})

	// Still blocked: the receiving side has none.
	_, err = e.RequestTransportLink("att", "Defendia")
	expectCode(t, err, E_STATE)
}

func TestTransportLinkApprovalLinksBothNations(t *testing.T) {
	e := newTestEngine(t)
	twoNationsAtArms(t, e)

	for _, owner := range []structs.PlayerID{"att", "def"} {
		_ = e.nations.Update(owner, func(n *structs.Nation) error {
			n.Airports = 1
			return nil
		})
	}

	if _, err := e.RequestTransportLink("att", "Defendia"); err != nil {
		t.Fatal(err)
	}

	if got := e.PendingTransportRequests("def"); len(got) != 1 {
		t.Fatalf("expected one pending transport request, got %d", len(got))
	}

	if _, err := e.RespondToTransportRequest("def", "Attackia", true); err != nil {
		t.Fatal(err)
	}

	if !mustNation(t, e, "att").LinkedWith("def") {
		t.Error("requester must gain a link entry")
	}
	if !mustNation(t, e, "def").LinkedWith("att") {
		t.Error("approver must gain a link entry")
	}
	if got := e.EstablishedTransportLinks("att"); len(got) != 1 {
		t.Errorf("expected one established link, got %d", len(got))
	}
}
