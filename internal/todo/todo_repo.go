package todo

import (
	"context"
	"errors"
	"strings"

	todoerrors "hris-portal/internal/todo/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=todo_repo.go -destination=mock/todo_repo_mock.go -package=mock
type Repository interface {
	FindAllByOwner(ctx context.Context, owner string) ([]Todo, error)
	FindByIDAndOwner(ctx context.Context, owner, id string) (*Todo, error)
	Create(ctx context.Context, t *Todo) error
	Update(ctx context.Context, t *Todo) error
	Delete(ctx context.Context, owner, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ownedBy scopes a query to one portal user's rows.
func ownedBy(owner string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner = ?", owner)
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return todoerrors.ErrTodoNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == uniqueOwnerText {
			return todoerrors.ErrDuplicateTodo
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueOwnerText) {
		return todoerrors.ErrDuplicateTodo
	}
	return err
}

func (r *repository) FindAllByOwner(ctx context.Context, owner string) ([]Todo, error) {
	var todos []Todo
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(owner)).
		Order("created_at DESC").
		Find(&todos).Error
	return todos, mapRepositoryError(err)
}

func (r *repository) FindByIDAndOwner(ctx context.Context, owner, id string) (*Todo, error) {
	var t Todo
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(owner)).
		Where("id = ?", id).
		First(&t).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &t, nil
}

func (r *repository) Create(ctx context.Context, t *Todo) error {
	return mapRepositoryError(r.db.WithContext(ctx).Create(t).Error)
}

func (r *repository) Update(ctx context.Context, t *Todo) error {
	res := r.db.WithContext(ctx).
		Model(&Todo{}).
		Scopes(ownedBy(t.Owner)).
		Where("id = ?", t.ID).
		Updates(map[string]any{"text": t.Text, "completed": t.Completed})
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return todoerrors.ErrTodoNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, owner, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(ownedBy(owner)).
		Where("id = ?", id).
		Delete(&Todo{})
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return todoerrors.ErrTodoNotFound
	}
	return nil
}
