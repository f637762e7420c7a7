package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hris-portal/internal/events"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	NotifyLeaveDecided(ctx context.Context, event events.LeaveDecidedEvent) error
	List(ctx context.Context, email string) ([]Notification, error)
	Clear(ctx context.Context, email string) error
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) NotifyLeaveDecided(ctx context.Context, event events.LeaveDecidedEvent) error {
	if event.EmployeeEmail == "" {
		s.logger.Warn("leave decision without employee email, skipping", zap.String("leave_id", event.LeaveID))
		return nil
	}

	title := "Leave " + event.Status
	msg := fmt.Sprintf("Your %s leave request was %s.", event.LeaveType, event.Status)
	if event.Status == "rejected" && strings.TrimSpace(event.RejectionReason) != "" {
		msg = fmt.Sprintf("Your %s leave request was rejected: %s", event.LeaveType, event.RejectionReason)
	}

	n := Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   msg,
		Kind:      event.EventType,
		Link:      "/my-leave",
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Push(ctx, event.EmployeeEmail, n); err != nil {
		s.logger.Error("push notification failed",
			zap.String("leave_id", event.LeaveID),
			zap.String("email", event.EmployeeEmail),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, email string) ([]Notification, error) {
	return s.repo.List(ctx, email)
}

func (s *service) Clear(ctx context.Context, email string) error {
	return s.repo.Clear(ctx, email)
}
