package structs

// Alliances and transport links share one pairwise request lifecycle,
// differing only in kind and in what an approval grants.
type RequestKind string

const (
	KIND_ALLIANCE  RequestKind = "alliance"
	KIND_TRANSPORT RequestKind = "transport"
)

func (k RequestKind) Valid() bool {
	return k == KIND_ALLIANCE || k == KIND_TRANSPORT
}

type RequestStatus string

const (
	REQUEST_PENDING  RequestStatus = "Pending"
	REQUEST_APPROVED RequestStatus = "Approved"
)

type DiplomaticRequest struct {
	ID            string        `json:"id"`
	Kind          RequestKind   `json:"kind"`
	RequesterID   PlayerID      `json:"requesterId"`
	RequesterName string        `json:"requesterNationName"`
	ApproverID    PlayerID      `json:"approverId"`
	ApproverName  string        `json:"approverNationName"`
	Status        RequestStatus `json:"status"`
	CreatedAt     int64         `json:"createdAt"`
}

// Direction-agnostic pair match.
func (r *DiplomaticRequest) MatchesPair(a, b PlayerID) bool {
	return (r.RequesterID == a && r.ApproverID == b) ||
		(r.RequesterID == b && r.ApproverID == a)
}

func (r *DiplomaticRequest) Involves(p PlayerID) bool {
	return r.RequesterID == p || r.ApproverID == p
}

func (r *DiplomaticRequest) OtherParty(p PlayerID) (PlayerID, string) {
	if r.RequesterID == p {
		return r.ApproverID, r.ApproverName
	}

	return r.RequesterID, r.RequesterName
}
