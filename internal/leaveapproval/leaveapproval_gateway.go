package leaveapproval

import (
	"context"
	"net/url"

	"hris-portal/internal/gateway"
	"hris-portal/internal/leave"
)

//go:generate mockgen -source=leaveapproval_gateway.go -destination=mock/leaveapproval_gateway_mock.go -package=mock
type Gateway interface {
	All(ctx context.Context) ([]leave.Record, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (UpdateStatusResult, error)
}

type httpGateway struct {
	transport *gateway.Transport
}

func NewGateway(transport *gateway.Transport) Gateway {
	return &httpGateway{transport: transport}
}

func (g *httpGateway) All(ctx context.Context) ([]leave.Record, error) {
	var out struct {
		Leaves []leave.Record `json:"leaves"`
	}
	if err := g.transport.Get(ctx, gateway.AdminLeaveEndpoint+"/get-all-leaves", nil, &out); err != nil {
		return nil, err
	}
	if out.Leaves == nil {
		out.Leaves = []leave.Record{}
	}
	return out.Leaves, nil
}

func (g *httpGateway) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (UpdateStatusResult, error) {
	var out UpdateStatusResult
	err := g.transport.Put(ctx, gateway.AdminLeaveEndpoint+"/update-leave-status/"+url.PathEscape(id), req, &out)
	return out, err
}
