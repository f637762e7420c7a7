package payroll

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"hris-portal/internal/gateway"
)

//go:generate mockgen -source=payroll_gateway.go -destination=mock/payroll_gateway_mock.go -package=mock
type Gateway interface {
	List(ctx context.Context, month string, year int) ([]Record, error)
	Update(ctx context.Context, employeeID string, payload UpdatePayload) (Record, error)
	Mine(ctx context.Context, month string, year int) (*Record, error)
}

type httpGateway struct {
	transport *gateway.Transport
}

func NewGateway(transport *gateway.Transport) Gateway {
	return &httpGateway{transport: transport}
}

func periodQuery(month string, year int) map[string]string {
	return map[string]string{"month": month, "year": strconv.Itoa(year)}
}

func (g *httpGateway) List(ctx context.Context, month string, year int) ([]Record, error) {
	var raw json.RawMessage
	path := gateway.AdminPayrollEndpoint + "/get-all-employee-payroll"
	if err := g.transport.Get(ctx, path, periodQuery(month, year), &raw); err != nil {
		return nil, err
	}
	return decodeRecords(raw)
}

// decodeRecords accepts an array, a {payrolls} envelope or a single record.
func decodeRecords(raw json.RawMessage) ([]Record, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []Record{}, nil
	}
	if raw[0] == '[' {
		var list []Record
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var wrapped struct {
		Payrolls *[]Record `json:"payrolls"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Payrolls != nil {
		return *wrapped.Payrolls, nil
	}
	var one Record
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, err
	}
	return []Record{one}, nil
}

func (g *httpGateway) Update(ctx context.Context, employeeID string, payload UpdatePayload) (Record, error) {
	var out struct {
		UpdatedPayroll *Record `json:"updatedPayroll"`
	}
	path := gateway.AdminPayrollEndpoint + "/update-payroll/" + url.PathEscape(employeeID)
	if err := g.transport.Put(ctx, path, payload, &out); err != nil {
		return Record{}, err
	}
	if out.UpdatedPayroll == nil {
		// older deployments answer with a bare message
		return Record{
			EmployeeID:   payload.EmployeeID,
			Month:        payload.Month,
			Year:         payload.Year,
			Earnings:     payload.Earnings,
			Deductions:   payload.Deductions,
			CTC:          payload.CTC,
			InHandSalary: payload.InHandSalary,
			Status:       payload.Status,
		}, nil
	}
	return *out.UpdatedPayroll, nil
}

// Mine returns nil when the upstream has nothing for the period.
func (g *httpGateway) Mine(ctx context.Context, month string, year int) (*Record, error) {
	var raw json.RawMessage
	if err := g.transport.Get(ctx, gateway.EmployeePayrollEndpoint, periodQuery(month, year), &raw); err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	var wrapped struct {
		Payroll json.RawMessage `json:"payroll"`
	}
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Payroll) > 0 {
			raw = bytes.TrimSpace(wrapped.Payroll)
		}
	}

	list, err := decodeRecords(raw)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}
