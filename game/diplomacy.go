package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"nationsim/structs"
)

// Alliances and transport links run on the same pairwise request machinery,
// they only differ in preconditions and in what an approval grants.

func kindLabel(kind structs.RequestKind) string {
	if kind == structs.KIND_ALLIANCE {
		return "alliance"
	}

	return "transport link"
}

// Reports whether an approved alliance exists between the two parties.
func (e *Engine) allied(a, b structs.PlayerID) bool {
	_, err := e.requests.Find(func(r structs.DiplomaticRequest) bool {
		return r.Kind == structs.KIND_ALLIANCE && r.Status == structs.REQUEST_APPROVED && r.MatchesPair(a, b)
	})

	return err == nil
}

func (e *Engine) pairRequest(a, b structs.PlayerID, kind structs.RequestKind) (*structs.DiplomaticRequest, error) {
	return e.requests.Find(func(r structs.DiplomaticRequest) bool {
		return r.Kind == kind && r.MatchesPair(a, b)
	})
}

func (e *Engine) requestPact(owner structs.PlayerID, targetName string, kind structs.RequestKind) (structs.Result, error) {
	requester, err := e.NationByOwner(owner)
	if err != nil {
		return structs.Result{}, err
	}
	approver, err := e.NationByName(targetName)
	if err != nil {
		return structs.Result{}, err
	}
	if requester.Owner == approver.Owner {
		return structs.Result{}, Errf(E_VALIDATION, "you cannot request a %s with yourself", kindLabel(kind))
	}

	if kind == structs.KIND_TRANSPORT {
		if requester.Airports < 1 {
			return structs.Result{}, Errf(E_STATE, "you need at least one airport to open a transport link")
		}
		if approver.Airports < 1 {
			return structs.Result{}, Errf(E_STATE, "%s has no airport to receive a transport link", approver.Name)
		}
	}

	if existing, err := e.pairRequest(requester.Owner, approver.Owner, kind); err == nil {
		switch {
		case existing.Status == structs.REQUEST_APPROVED:
			return structs.Result{}, Errf(E_CONFLICT, "a %s with %s is already in effect", kindLabel(kind), approver.Name)
		case existing.RequesterID == owner:
			return structs.Result{}, Errf(E_CONFLICT, "you have already sent a %s request to %s", kindLabel(kind), approver.Name)
		default:
			return structs.Result{}, Errf(E_CONFLICT, "%s has already sent you a %s request, respond to it instead", approver.Name, kindLabel(kind))
		}
	}

	r := structs.DiplomaticRequest{
		ID:            uuid.NewString(),
		Kind:          kind,
		RequesterID:   requester.Owner,
		RequesterName: requester.Name,
		ApproverID:    approver.Owner,
		ApproverName:  approver.Name,
		Status:        structs.REQUEST_PENDING,
		CreatedAt:     time.Now().UnixMilli(),
	}
	if err := e.requests.Set(r.ID, r); err != nil {
		return structs.Result{}, Errf(E_INTERNAL, "failed to save the request: %v", err)
	}

	e.record("%s has proposed a %s to %s.", requester.Name, kindLabel(kind), approver.Name)

	return structs.Result{Message: np.Sprintf("Sent a %s request to %s.", kindLabel(kind), approver.Name)}, nil
}

func (e *Engine) respondToPact(owner structs.PlayerID, requesterName string, kind structs.RequestKind, approve bool) (structs.Result, error) {
	requester, err := e.NationByName(requesterName)
	if err != nil {
		return structs.Result{}, err
	}

	request, err := e.requests.Find(func(r structs.DiplomaticRequest) bool {
		return r.Kind == kind && r.RequesterID == requester.Owner &&
			r.ApproverID == owner && r.Status == structs.REQUEST_PENDING
	})
	if err != nil {
		return structs.Result{}, Errf(E_NOT_FOUND, "no pending %s request from %s", kindLabel(kind), requester.Name)
	}

	if !approve {
		_ = e.requests.Delete(request.ID)
		e.record("%s has rejected %s's %s request.", request.ApproverName, request.RequesterName, kindLabel(kind))

		return structs.Result{Message: np.Sprintf("Rejected %s's %s request.", requester.Name, kindLabel(kind))}, nil
	}

	_ = e.requests.Update(request.ID, func(r *structs.DiplomaticRequest) error {
		r.Status = structs.REQUEST_APPROVED
		return nil
	})

	if kind == structs.KIND_TRANSPORT {
		_ = e.nations.Update(request.RequesterID, func(n *structs.Nation) error {
			n.TransportLinks = append(n.TransportLinks, structs.TransportLink{
				PeerID: request.ApproverID, Status: structs.REQUEST_APPROVED,
			})
			return nil
		})
		_ = e.nations.Update(request.ApproverID, func(n *structs.Nation) error {
			n.TransportLinks = append(n.TransportLinks, structs.TransportLink{
				PeerID: request.RequesterID, Status: structs.REQUEST_APPROVED,
			})
			return nil
		})
	}

	e.record("%s has approved %s's %s request!", request.ApproverName, request.RequesterName, kindLabel(kind))

	return structs.Result{Message: np.Sprintf("Approved %s's %s request.", requester.Name, kindLabel(kind))}, nil
}

func (e *Engine) RequestAlliance(owner structs.PlayerID, targetName string) (structs.Result, error) {
	return e.requestPact(owner, targetName, structs.KIND_ALLIANCE)
}

func (e *Engine) RespondToAllianceRequest(owner structs.PlayerID, requesterName string, approve bool) (structs.Result, error) {
	return e.respondToPact(owner, requesterName, structs.KIND_ALLIANCE, approve)
}

// Tears down an approved alliance. Either side may do it unilaterally.
func (e *Engine) DissolveAlliance(owner structs.PlayerID, targetName string) (structs.Result, error) {
	target, err := e.NationByName(targetName)
	if err != nil {
		return structs.Result{}, err
	}

	request, err := e.requests.Find(func(r structs.DiplomaticRequest) bool {
		return r.Kind == structs.KIND_ALLIANCE && r.Status == structs.REQUEST_APPROVED &&
			r.MatchesPair(owner, target.Owner)
	})
	if err != nil {
		return structs.Result{}, Errf(E_NOT_FOUND, "no alliance with %s exists", target.Name)
	}

	_ = e.requests.Delete(request.ID)

	e.record("The alliance between %s and %s has been dissolved.", request.RequesterName, request.ApproverName)

	return structs.Result{Message: np.Sprintf("The alliance with %s has been dissolved.", target.Name)}, nil
}

// The caller's alliances: approved partners plus requests awaiting the
// caller's answer.
func (e *Engine) AlliancesFor(owner structs.PlayerID) (approved, pending []structs.DiplomaticRequest) {
	involved := e.requests.FindAll(func(r structs.DiplomaticRequest) bool {
		return r.Kind == structs.KIND_ALLIANCE && r.Involves(owner)
	})

	approved = lo.Filter(involved, func(r structs.DiplomaticRequest, _ int) bool {
		return r.Status == structs.REQUEST_APPROVED
	})
	pending = lo.Filter(involved, func(r structs.DiplomaticRequest, _ int) bool {
		return r.Status == structs.REQUEST_PENDING && r.ApproverID == owner
	})

	return approved, pending
}

func (e *Engine) RequestTransportLink(owner structs.PlayerID, targetName string) (structs.Result, error) {
	return e.requestPact(owner, targetName, structs.KIND_TRANSPORT)
}

func (e *Engine) RespondToTransportRequest(owner structs.PlayerID, requesterName string, approve bool) (structs.Result, error) {
	return e.respondToPact(owner, requesterName, structs.KIND_TRANSPORT, approve)
}

// Transport link requests awaiting the caller's answer.
func (e *Engine) PendingTransportRequests(owner structs.PlayerID) []structs.DiplomaticRequest {
	return e.requests.FindAll(func(r structs.DiplomaticRequest) bool {
		return r.Kind == structs.KIND_TRANSPORT && r.ApproverID == owner &&
			r.Status == structs.REQUEST_PENDING
	})
}

// Approved transport links involving the caller, either direction.
func (e *Engine) EstablishedTransportLinks(owner structs.PlayerID) []structs.DiplomaticRequest {
	return e.requests.FindAll(func(r structs.DiplomaticRequest) bool {
		return r.Kind == structs.KIND_TRANSPORT && r.Involves(owner) &&
			r.Status == structs.REQUEST_APPROVED
	})
}
