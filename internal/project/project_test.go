package project_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hris-portal/internal/gateway"
	"hris-portal/internal/project"
	projecterrors "hris-portal/internal/project/errors"
	"hris-portal/internal/project/mock"
	"hris-portal/internal/shared/contextutil"
	"hris-portal/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func refs(ids ...string) project.Refs {
	out := make(project.Refs, len(ids))
	for i, id := range ids {
		out[i] = project.Ref{ID: id}
	}
	return out
}

func setup(t *testing.T) (*mock.MockGateway, project.Service, *store.Store) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	st := store.New("sid-projects")
	t.Cleanup(st.Close)
	return gw, project.NewService(gw), st
}

func TestRefs_DecodesEveryShape(t *testing.T) {
	var p project.Project
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "p1",
		"projectLeader": {"_id": "e1", "name": "Asha"},
		"projectMembers": ["e2", {"_id": "e3", "name": "Ravi"}, "e2"]
	}`), &p))

	assert.Equal(t, project.Refs{{ID: "e1", Name: "Asha"}}, p.Leaders)
	assert.Equal(t, []string{"e2", "e3"}, p.Members.IDs())

	require.NoError(t, json.Unmarshal([]byte(`{"projectLeader": null, "projectMembers": []}`), &p))
	assert.Empty(t, p.Leaders)
	assert.Empty(t, p.Members)
}

func TestPrepare(t *testing.T) {
	payload, err := project.Prepare(project.CreateRequest{
		Name:           "  Payroll revamp ",
		ProjectLeader:  project.Refs{{ID: "e1", Name: "Asha"}, {ID: "e1"}},
		ProjectMembers: refs("e2", "e2", "", "e3"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Payroll revamp", payload.Name)
	assert.Equal(t, project.StatusPending, payload.Status)
	assert.Equal(t, []string{"e1"}, payload.ProjectLeader)
	assert.Equal(t, []string{"e2", "e3"}, payload.ProjectMembers)

	tests := []struct {
		name string
		req  project.CreateRequest
		want error
	}{
		{"blank name", project.CreateRequest{Name: " ", ProjectLeader: refs("e1")}, projecterrors.ErrNameRequired},
		{"no leader", project.CreateRequest{Name: "X"}, projecterrors.ErrLeaderRequired},
		{"three leaders", project.CreateRequest{Name: "X", ProjectLeader: refs("e1", "e2", "e3")}, projecterrors.ErrTooManyLeaders},
		{"duplicate leaders count once", project.CreateRequest{Name: "X", ProjectLeader: refs("e1", "e1", "e1")}, nil},
		{"unknown status", project.CreateRequest{Name: "X", Status: "done", ProjectLeader: refs("e1")}, projecterrors.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := project.Prepare(tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreate_SendsIdsAndPrependsProject(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	gw.EXPECT().List(gomock.Any()).Return([]project.Project{{ID: "old", Name: "Old", Status: project.StatusCompleted}}, nil)
	gw.EXPECT().Create(gomock.Any(), project.CreatePayload{
		Name:           "New",
		Status:         project.StatusInProgress,
		ProjectLeader:  []string{"e1", "e2"},
		ProjectMembers: []string{"e3"},
	}).Return(project.Project{
		ID:      "new",
		Name:    "New",
		Status:  project.StatusInProgress,
		Leaders: project.Refs{{ID: "e1", Name: "Asha"}, {ID: "e2", Name: "Ravi"}},
		Members: project.Refs{{ID: "e3"}, {ID: "e3"}},
	}, nil)

	_, err := svc.List(ctx, st, false)
	require.NoError(t, err)

	created, err := svc.Create(ctx, st, project.CreateRequest{
		Name:           "New",
		Status:         project.StatusInProgress,
		ProjectLeader:  refs("e1", "e2"),
		ProjectMembers: refs("e3"),
	})
	require.NoError(t, err)
	assert.Len(t, created.Members, 1)

	view, err := svc.List(ctx, st, false)
	require.NoError(t, err)
	require.Len(t, view.Projects, 2)
	assert.Equal(t, "new", view.Projects[0].ID)
	assert.Equal(t, 1, view.ByStatus[project.StatusInProgress])
	assert.Equal(t, 1, view.ByStatus[project.StatusCompleted])
	assert.Equal(t, 0, view.ByStatus[project.StatusOnHold])
}

func TestCreate_InvalidFormCallsNothing(t *testing.T) {
	_, svc, st := setup(t)

	_, err := svc.Create(context.Background(), st, project.CreateRequest{Name: "X"})
	assert.ErrorIs(t, err, projecterrors.ErrLeaderRequired)
}

func TestGet_FallsBackToUpstreamList(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	gw.EXPECT().List(gomock.Any()).Return([]project.Project{{ID: "p1", Name: "Portal"}}, nil).Times(2)

	p, err := svc.Get(ctx, st, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Portal", p.Name)

	// found in the slice, no request
	_, err = svc.Get(ctx, st, "p1")
	require.NoError(t, err)

	_, err = svc.Get(ctx, st, "p404")
	assert.ErrorIs(t, err, projecterrors.ErrProjectNotFound)
}

func TestGateway_ListFlattensNestedArrays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, gateway.AdminProjectEndpoint+"/get-all-project", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"projects":[[{"_id":"a","name":"A"}],{"_id":"b","name":"B"},[[{"_id":"c","name":"C"}]]]}`))
	}))
	defer srv.Close()

	gw := project.NewGateway(gateway.NewTransport(srv.URL, time.Second))
	list, err := gw.List(contextutil.WithAccessToken(context.Background(), "tok"))
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{list[0].ID, list[1].ID, list[2].ID})
}
