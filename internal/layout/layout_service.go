package layout

import (
	"strings"

	"hris-portal/internal/rbac"
	"hris-portal/internal/session"
	"hris-portal/internal/shared/apperror"

	layouterrors "hris-portal/internal/layout/errors"
)

type PageGuard interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

//go:generate mockgen -source=layout_service.go -destination=mock/layout_service_mock.go -package=mock
type Service interface {
	Resolve(role, path string) (PageView, error)
	Navigation(role string) ([]Page, error)
}

type service struct {
	guard PageGuard
}

func NewService(guard PageGuard) Service {
	return &service{guard: guard}
}

// Resolve matches path and checks the page guard. Anonymous users get a
// login prompt; signed-in users without access get FORBIDDEN.
func (s *service) Resolve(role, path string) (PageView, error) {
	page, params, ok := Match(path)
	if !ok {
		return PageView{}, layouterrors.ErrPageNotFound
	}

	allowed, err := s.guard.Enforce(rbac.EnforceRequest{Role: role, Resource: CleanPath(path), Action: rbac.ActionView})
	if err != nil {
		return PageView{}, err
	}
	if !allowed {
		if role == "" {
			return PageView{}, layouterrors.ErrLoginRequired
		}
		return PageView{}, apperror.ErrForbidden
	}

	view := PageView{
		Page:   page,
		Params: params,
		Chrome: ChromeFor(page.Path),
	}
	if role != "" {
		view.Dashboard = session.DashboardPath(role)
	}
	return view, nil
}

// Navigation lists the non-pattern pages the role may open.
func (s *service) Navigation(role string) ([]Page, error) {
	out := make([]Page, 0, len(pages))
	for _, p := range pages {
		if p.Public() || strings.Contains(p.Path, ":") {
			continue
		}
		allowed, err := s.guard.Enforce(rbac.EnforceRequest{Role: role, Resource: p.Path, Action: rbac.ActionView})
		if err != nil {
			return nil, err
		}
		if allowed {
			out = append(out, p)
		}
	}
	return out, nil
}
