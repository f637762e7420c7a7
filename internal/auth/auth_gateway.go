package auth

import (
	"context"

	"hris-portal/internal/gateway"
)

//go:generate mockgen -source=auth_gateway.go -destination=mock/auth_gateway_mock.go -package=mock
type Gateway interface {
	Login(ctx context.Context, endpoint string, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, endpoint string) error
	Register(ctx context.Context, req RegisterRequest) (Profile, error)
}

type httpGateway struct {
	transport *gateway.Transport
}

func NewGateway(transport *gateway.Transport) Gateway {
	return &httpGateway{transport: transport}
}

func (g *httpGateway) Login(ctx context.Context, endpoint string, req LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	err := g.transport.Post(ctx, endpoint+"/login", req, &out)
	return out, err
}

func (g *httpGateway) Logout(ctx context.Context, endpoint string) error {
	return g.transport.Post(ctx, endpoint+"/logout", struct{}{}, nil)
}

func (g *httpGateway) Register(ctx context.Context, req RegisterRequest) (Profile, error) {
	var out struct {
		Admin *Profile `json:"admin"`
		User  *Profile `json:"user"`
	}
	err := g.transport.Post(ctx, gateway.AdminAuthEndpoint+"/register", map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	}, &out)
	if err != nil {
		return Profile{}, err
	}
	if out.Admin != nil {
		return *out.Admin, nil
	}
	if out.User != nil {
		return *out.User, nil
	}
	return Profile{Name: req.Name, Email: req.Email}, nil
}
