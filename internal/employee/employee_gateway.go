package employee

import (
	"context"
	"encoding/json"

	"hris-portal/internal/gateway"
)

//go:generate mockgen -source=employee_gateway.go -destination=mock/employee_gateway_mock.go -package=mock
type Gateway interface {
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, id string) (Employee, error)
	Register(ctx context.Context, req RegisterRequest) (Employee, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Employee, error)
	Me(ctx context.Context) (Employee, error)
	SaveSection(ctx context.Context, method, section string, form any) error
}

type httpGateway struct {
	transport *gateway.Transport
}

func NewGateway(transport *gateway.Transport) Gateway {
	return &httpGateway{transport: transport}
}

func (g *httpGateway) List(ctx context.Context) ([]Employee, error) {
	var out struct {
		Employees []Employee `json:"employees"`
	}
	if err := g.transport.Get(ctx, gateway.EmployeeAuthEndpoint+"/get-all-employees", nil, &out); err != nil {
		return nil, err
	}
	if out.Employees == nil {
		out.Employees = []Employee{}
	}
	return out.Employees, nil
}

func (g *httpGateway) Get(ctx context.Context, id string) (Employee, error) {
	var raw json.RawMessage
	if err := g.transport.Get(ctx, gateway.AdminEmployeesEndpoint+"/"+id, nil, &raw); err != nil {
		return Employee{}, err
	}
	return decodeEmployee(raw)
}

func (g *httpGateway) Register(ctx context.Context, req RegisterRequest) (Employee, error) {
	var raw json.RawMessage
	if err := g.transport.Post(ctx, gateway.EmployeeAuthEndpoint+"/register", req, &raw); err != nil {
		return Employee{}, err
	}
	return decodeEmployee(raw)
}

func (g *httpGateway) Update(ctx context.Context, id string, req UpdateRequest) (Employee, error) {
	var raw json.RawMessage
	if err := g.transport.Put(ctx, gateway.EmployeesEndpoint+"/"+id, req, &raw); err != nil {
		return Employee{}, err
	}
	return decodeEmployee(raw)
}

func (g *httpGateway) Me(ctx context.Context) (Employee, error) {
	var raw json.RawMessage
	if err := g.transport.Get(ctx, gateway.EmployeeSelfEndpoint, nil, &raw); err != nil {
		return Employee{}, err
	}
	return decodeEmployee(raw)
}

func (g *httpGateway) SaveSection(ctx context.Context, method, section string, form any) error {
	return g.transport.Do(ctx, method, gateway.EmployeeSelfEndpoint+"/"+section, nil, form, nil)
}

// decodeEmployee accepts both {"employee": {...}} and a bare document.
func decodeEmployee(raw json.RawMessage) (Employee, error) {
	var wrapped struct {
		Employee *Employee `json:"employee"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Employee != nil {
		return *wrapped.Employee, nil
	}
	var e Employee
	if len(raw) == 0 {
		return e, nil
	}
	if err := json.Unmarshal(raw, &e); err != nil {
		return Employee{}, err
	}
	return e, nil
}
