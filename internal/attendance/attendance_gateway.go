package attendance

import (
	"context"
	"net/url"

	"hris-portal/internal/gateway"
)

//go:generate mockgen -source=attendance_gateway.go -destination=mock/attendance_gateway_mock.go -package=mock
type Gateway interface {
	ClockIn(ctx context.Context, req ClockInRequest) (Session, error)
	ClockOut(ctx context.Context, sessionID string) (Session, error)
	FetchLogs(ctx context.Context) (Logs, error)
	DailyReport(ctx context.Context) ([]DailyReportEntry, error)
}

type httpGateway struct {
	transport *gateway.Transport
}

func NewGateway(transport *gateway.Transport) Gateway {
	return &httpGateway{transport: transport}
}

func (g *httpGateway) ClockIn(ctx context.Context, req ClockInRequest) (Session, error) {
	var out Session
	err := g.transport.Post(ctx, gateway.EmployeeAttendanceEndpoint+"/clock-in", req, &out)
	return out, err
}

func (g *httpGateway) ClockOut(ctx context.Context, sessionID string) (Session, error) {
	var out Session
	err := g.transport.Patch(ctx, gateway.EmployeeAttendanceEndpoint+"/clock-out/"+url.PathEscape(sessionID), nil, &out)
	return out, err
}

func (g *httpGateway) FetchLogs(ctx context.Context) (Logs, error) {
	var out Logs
	if err := g.transport.Get(ctx, gateway.EmployeeAttendanceEndpoint+"/logs", nil, &out); err != nil {
		return Logs{}, err
	}
	if out.Sessions == nil {
		out.Sessions = []Session{}
	}
	if out.DailyStats == nil {
		out.DailyStats = map[string]DailyStat{}
	}
	return out, nil
}

func (g *httpGateway) DailyReport(ctx context.Context) ([]DailyReportEntry, error) {
	var out []DailyReportEntry
	err := g.transport.Get(ctx, gateway.DailyReportEndpoint, nil, &out)
	return out, err
}
