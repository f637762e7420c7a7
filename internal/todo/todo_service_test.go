package todo_test

import (
	"context"
	"strings"
	"testing"

	"hris-portal/internal/todo"
	todoerrors "hris-portal/internal/todo/errors"
	"hris-portal/internal/todo/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupService(t *testing.T) (*mock.MockRepository, todo.Service) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	return repo, todo.NewService(repo)
}

func TestService_ListCountsRemaining(t *testing.T) {
	repo, svc := setupService(t)
	repo.EXPECT().FindAllByOwner(gomock.Any(), owner).Return([]todo.Todo{
		{ID: "t1", Text: "a"},
		{ID: "t2", Text: "b", Completed: true},
		{ID: "t3", Text: "c"},
	}, nil)

	out, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, out.Items, 3)
	assert.Equal(t, 2, out.Remaining)
}

func TestService_AddTrimsAndValidates(t *testing.T) {
	repo, svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, owner, todo.CreateRequest{Text: "   "})
	assert.ErrorIs(t, err, todoerrors.ErrTextRequired)

	_, err = svc.Add(ctx, owner, todo.CreateRequest{Text: strings.Repeat("x", todo.MaxTextLength+1)})
	assert.ErrorIs(t, err, todoerrors.ErrTextTooLong)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, td *todo.Todo) error {
		assert.Equal(t, owner, td.Owner)
		assert.Equal(t, "Call the bank", td.Text)
		assert.NotEmpty(t, td.ID)
		return nil
	})
	out, err := svc.Add(ctx, owner, todo.CreateRequest{Text: "  Call the bank "})
	require.NoError(t, err)
	assert.False(t, out.Completed)
}

func TestService_Toggle(t *testing.T) {
	repo, svc := setupService(t)
	repo.EXPECT().FindByIDAndOwner(gomock.Any(), owner, "t1").Return(&todo.Todo{ID: "t1", Owner: owner, Text: "a"}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, td *todo.Todo) error {
		assert.True(t, td.Completed)
		return nil
	})

	out, err := svc.Toggle(context.Background(), owner, "t1")
	require.NoError(t, err)
	assert.True(t, out.Completed)
}

func TestService_UpdateEditsText(t *testing.T) {
	repo, svc := setupService(t)
	repo.EXPECT().FindByIDAndOwner(gomock.Any(), owner, "t1").Return(&todo.Todo{ID: "t1", Owner: owner, Text: "a", Completed: true}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	text := " renamed "
	out, err := svc.Update(context.Background(), owner, "t1", todo.UpdateRequest{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "renamed", out.Text)
	assert.True(t, out.Completed)
}

func TestService_UpdateMissingTodo(t *testing.T) {
	repo, svc := setupService(t)
	repo.EXPECT().FindByIDAndOwner(gomock.Any(), owner, "gone").Return(nil, todoerrors.ErrTodoNotFound)

	done := true
	_, err := svc.Update(context.Background(), owner, "gone", todo.UpdateRequest{Completed: &done})
	assert.ErrorIs(t, err, todoerrors.ErrTodoNotFound)
}
