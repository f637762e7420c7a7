package todo

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/contextutil"
	todoerrors "hris-portal/internal/todo/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, owner string) (ListResponse, error)
	Add(ctx context.Context, owner string, req CreateRequest) (Response, error)
	Update(ctx context.Context, owner, id string, req UpdateRequest) (Response, error)
	Toggle(ctx context.Context, owner, id string) (Response, error)
	Delete(ctx context.Context, owner, id string) error
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("todo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("todo.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func cleanText(s string) (string, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return "", todoerrors.ErrTextRequired
	case utf8.RuneCountInString(s) > MaxTextLength:
		return "", todoerrors.ErrTextTooLong
	}
	return s, nil
}

func (s *service) List(ctx context.Context, owner string) (ListResponse, error) {
	if owner == "" {
		return ListResponse{}, apperror.ErrUnauthorized
	}

	todos, err := s.repo.FindAllByOwner(ctx, owner)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list todos failed", zap.Error(err))
		return ListResponse{}, err
	}

	out := ListResponse{Items: make([]Response, 0, len(todos))}
	for _, t := range todos {
		if !t.Completed {
			out.Remaining++
		}
		out.Items = append(out.Items, toResponse(t))
	}
	return out, nil
}

func (s *service) Add(ctx context.Context, owner string, req CreateRequest) (Response, error) {
	if owner == "" {
		return Response{}, apperror.ErrUnauthorized
	}
	text, err := cleanText(req.Text)
	if err != nil {
		return Response{}, err
	}

	now := s.now().UTC()
	t := &Todo{
		ID:        uuid.NewString(),
		Owner:     owner,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		if !apperror.HasCode(err, apperror.CodeConflict) {
			contextutil.GetLogger(ctx, s.logger).Error("create todo failed", zap.Error(err))
		}
		return Response{}, err
	}
	return toResponse(*t), nil
}

func (s *service) Update(ctx context.Context, owner, id string, req UpdateRequest) (Response, error) {
	t, err := s.repo.FindByIDAndOwner(ctx, owner, id)
	if err != nil {
		return Response{}, err
	}

	if req.Text != nil {
		text, err := cleanText(*req.Text)
		if err != nil {
			return Response{}, err
		}
		t.Text = text
	}
	if req.Completed != nil {
		t.Completed = *req.Completed
	}
	return s.save(ctx, t)
}

func (s *service) Toggle(ctx context.Context, owner, id string) (Response, error) {
	t, err := s.repo.FindByIDAndOwner(ctx, owner, id)
	if err != nil {
		return Response{}, err
	}
	t.Completed = !t.Completed
	return s.save(ctx, t)
}

func (s *service) save(ctx context.Context, t *Todo) (Response, error) {
	if err := s.repo.Update(ctx, t); err != nil {
		if !apperror.HasCode(err, apperror.CodeConflict) && !apperror.HasCode(err, apperror.CodeNotFound) {
			contextutil.GetLogger(ctx, s.logger).Error("update todo failed", zap.String("todo_id", t.ID), zap.Error(err))
		}
		return Response{}, err
	}
	t.UpdatedAt = s.now().UTC()
	return toResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, owner, id string) error {
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		return err
	}
	contextutil.GetLogger(ctx, s.logger).Debug("todo deleted", zap.String("todo_id", id))
	return nil
}
