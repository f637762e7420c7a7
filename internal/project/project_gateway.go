package project

import (
	"bytes"
	"context"
	"encoding/json"

	"hris-portal/internal/gateway"
)

//go:generate mockgen -source=project_gateway.go -destination=mock/project_gateway_mock.go -package=mock
type Gateway interface {
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, payload CreatePayload) (Project, error)
}

type httpGateway struct {
	transport *gateway.Transport
}

func NewGateway(transport *gateway.Transport) Gateway {
	return &httpGateway{transport: transport}
}

func (g *httpGateway) List(ctx context.Context) ([]Project, error) {
	var out struct {
		Projects []json.RawMessage `json:"projects"`
	}
	if err := g.transport.Get(ctx, gateway.AdminProjectEndpoint+"/get-all-project", nil, &out); err != nil {
		return nil, err
	}
	return flattenProjects(out.Projects)
}

// flattenProjects accepts the nested arrays the list endpoint sometimes
// returns.
func flattenProjects(items []json.RawMessage) ([]Project, error) {
	projects := make([]Project, 0, len(items))
	for _, raw := range items {
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '[' {
			var nested []json.RawMessage
			if err := json.Unmarshal(raw, &nested); err != nil {
				return nil, err
			}
			inner, err := flattenProjects(nested)
			if err != nil {
				return nil, err
			}
			projects = append(projects, inner...)
			continue
		}
		var p Project
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (g *httpGateway) Create(ctx context.Context, payload CreatePayload) (Project, error) {
	var raw json.RawMessage
	if err := g.transport.Post(ctx, gateway.AdminProjectEndpoint+"/create-project", payload, &raw); err != nil {
		return Project{}, err
	}

	var wrapped struct {
		Project *Project `json:"project"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Project != nil {
		return *wrapped.Project, nil
	}
	var p Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return Project{}, err
	}
	return p, nil
}
