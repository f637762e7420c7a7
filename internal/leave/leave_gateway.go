package leave

import (
	"context"
	"encoding/json"

	"hris-portal/internal/gateway"
)

//go:generate mockgen -source=leave_gateway.go -destination=mock/leave_gateway_mock.go -package=mock
type Gateway interface {
	Apply(ctx context.Context, req ApplyRequest) (Record, error)
	MyLeaves(ctx context.Context) (MyLeaves, error)
}

type httpGateway struct {
	transport *gateway.Transport
}

func NewGateway(transport *gateway.Transport) Gateway {
	return &httpGateway{transport: transport}
}

// applyPayload leaves the document metadata out; files are not uploaded.
type applyPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (g *httpGateway) Apply(ctx context.Context, req ApplyRequest) (Record, error) {
	var raw json.RawMessage
	err := g.transport.Post(ctx, gateway.EmployeeLeaveEndpoint+"/create-leave", applyPayload{
		Name:      req.Name,
		Email:     req.Email,
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	}, &raw)
	if err != nil {
		return Record{}, err
	}
	return decodeCreated(raw)
}

// decodeCreated accepts both {"leave": {...}} and a bare record.
func decodeCreated(raw json.RawMessage) (Record, error) {
	var wrapped struct {
		Leave *Record `json:"leave"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Leave != nil {
		return *wrapped.Leave, nil
	}
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (g *httpGateway) MyLeaves(ctx context.Context) (MyLeaves, error) {
	var out MyLeaves
	if err := g.transport.Get(ctx, gateway.EmployeeLeaveEndpoint+"/get-my-leaves", nil, &out); err != nil {
		return MyLeaves{}, err
	}
	if out.Leaves == nil {
		out.Leaves = []Record{}
	}
	return out, nil
}
