package leave_test

import (
	"context"
	"errors"
	"testing"

	"hris-portal/internal/leave"
	leaveerrors "hris-portal/internal/leave/errors"
	"hris-portal/internal/leave/mock"
	"hris-portal/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validForm() leave.ApplyRequest {
	return leave.ApplyRequest{
		Name:      "Jo",
		Email:     "jo@paarsiv.com",
		LeaveType: leave.TypeSick,
		StartDate: "2026-10-20",
		EndDate:   "2026-10-22",
		Reason:    "flu",
	}
}

func setup(t *testing.T) (*mock.MockGateway, leave.Service, *store.Store) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	st := store.New("sid-1")
	t.Cleanup(st.Close)
	return gw, leave.NewService(gw, nil), st
}

func TestValidateApply(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*leave.ApplyRequest)
		wantMsg string
	}{
		{"valid", func(*leave.ApplyRequest) {}, ""},
		{"same day", func(r *leave.ApplyRequest) { r.EndDate = r.StartDate }, ""},
		{"end before start", func(r *leave.ApplyRequest) { r.EndDate = "2026-10-19" }, "End date must be after start date"},
		{"missing reason", func(r *leave.ApplyRequest) { r.Reason = "" }, "Reason is required"},
		{"bad email", func(r *leave.ApplyRequest) { r.Email = "jo" }, "Please enter a valid email address"},
		{"bad type", func(r *leave.ApplyRequest) { r.LeaveType = "unpaid" }, "Leave Type must be one of: sick, annual, casual"},
		{"bad date", func(r *leave.ApplyRequest) { r.StartDate = "20/10/2026" }, "Dates must use the YYYY-MM-DD format"},
		{"large document", func(r *leave.ApplyRequest) {
			r.Document = &leave.DocumentMeta{Name: "scan.pdf", Size: leave.MaxDocumentSize + 1}
		}, "File size must be less than 5MB"},
		{"document at limit", func(r *leave.ApplyRequest) {
			r.Document = &leave.DocumentMeta{Name: "scan.pdf", Size: leave.MaxDocumentSize}
		}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validForm()
			tc.mutate(&req)
			err := leave.ValidateApply(req)
			if tc.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

func TestApply_InvalidFormSendsNothing(t *testing.T) {
	_, svc, st := setup(t)

	req := validForm()
	req.EndDate = "2026-10-01"
	_, err := svc.Apply(context.Background(), st, req)

	assert.ErrorIs(t, err, leaveerrors.ErrEndBeforeStart)
}

func TestApply_ThenMyLeavesIncludesRecord(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	created := leave.Record{
		ID: "l-1", LeaveType: leave.TypeSick, StartDate: "2026-10-20", EndDate: "2026-10-22", Status: leave.StatusPending,
	}
	gw.EXPECT().Apply(gomock.Any(), validForm()).Return(created, nil)
	gw.EXPECT().MyLeaves(gomock.Any()).Return(leave.MyLeaves{
		Leaves: []leave.Record{created},
		Statistics: &leave.Statistics{
			TotalLeaves:  0,
			LeavesByType: map[string]float64{},
		},
	}, nil).Times(2)

	got, err := svc.Apply(ctx, st, validForm())
	require.NoError(t, err)
	assert.Equal(t, "l-1", got.ID)

	// the slice was never loaded, so the first view fetches the full list
	cached, err := svc.View(ctx, st)
	require.NoError(t, err)
	require.Len(t, cached.Leaves, 1)

	view, err := svc.MyLeaves(ctx, st)
	require.NoError(t, err)
	require.Len(t, view.Leaves, 1)
	rec := view.Leaves[0]
	assert.Equal(t, leave.TypeSick, rec.LeaveType)
	assert.Equal(t, "2026-10-20", rec.StartDate)
	assert.Equal(t, "2026-10-22", rec.EndDate)
	assert.Equal(t, leave.StatusPending, rec.Status)
	assert.Len(t, view.Balance, 3)
}

func TestApply_DefaultsStatusToPending(t *testing.T) {
	gw, svc, st := setup(t)

	gw.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(leave.Record{ID: "l-2"}, nil)

	got, err := svc.Apply(context.Background(), st, validForm())
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, got.Status)
}

func TestMyLeaves_FailureSurfaces(t *testing.T) {
	gw, svc, st := setup(t)

	gw.EXPECT().MyLeaves(gomock.Any()).Return(leave.MyLeaves{}, errors.New("down"))

	_, err := svc.MyLeaves(context.Background(), st)
	assert.EqualError(t, err, "down")
}

func TestMyLeaves_BalanceComesFromListNotServerSummary(t *testing.T) {
	gw, svc, st := setup(t)

	three := 3.0
	stats := &leave.Statistics{TotalLeaves: 9, RemainingLeaves: 27, LeavesByType: map[string]float64{leave.TypeSick: 9}}
	gw.EXPECT().MyLeaves(gomock.Any()).Return(leave.MyLeaves{
		Leaves: []leave.Record{
			{ID: "l1", LeaveType: leave.TypeSick, Status: leave.StatusApproved, Duration: &three},
			{ID: "l2", LeaveType: leave.TypeSick, Status: leave.StatusPending, StartDate: "2026-10-20", EndDate: "2026-10-25"},
		},
		Statistics: stats,
	}, nil)

	view, err := svc.MyLeaves(context.Background(), st)
	require.NoError(t, err)

	assert.Equal(t, stats, view.Statistics)
	require.NotEmpty(t, view.Balance)
	assert.Equal(t, leave.TypeBalance{Type: leave.TypeSick, Allowance: 12, Taken: 3, Remaining: 9}, view.Balance[0])
}
