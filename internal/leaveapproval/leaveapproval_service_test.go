package leaveapproval_test

import (
	"context"
	"testing"

	"hris-portal/internal/leave"
	leaveerrors "hris-portal/internal/leave/errors"
	"hris-portal/internal/leaveapproval"
	"hris-portal/internal/leaveapproval/mock"
	"hris-portal/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func records() []leave.Record {
	return []leave.Record{
		{ID: "p1", Email: "a@paarsiv.com", LeaveType: leave.TypeSick, StartDate: "2026-10-20", EndDate: "2026-10-21", Status: leave.StatusPending},
		{ID: "a1", Email: "b@paarsiv.com", LeaveType: leave.TypeAnnual, StartDate: "2025-12-01", EndDate: "2025-12-03", Status: leave.StatusApproved},
		{ID: "r1", Email: "c@paarsiv.com", LeaveType: leave.TypeCasual, StartDate: "2026-02-01", EndDate: "2026-02-01", Status: leave.StatusRejected},
	}
}

func setup(t *testing.T) (*mock.MockGateway, leaveapproval.Service, *store.Store) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	st := store.New("sid-admin")
	t.Cleanup(st.Close)
	return gw, leaveapproval.NewService(gw, nil), st
}

func TestReject_WithoutReasonCallsNothing(t *testing.T) {
	_, svc, st := setup(t)

	for _, reason := range []string{"", "   "} {
		_, err := svc.Reject(context.Background(), st, "p1", reason)
		require.Error(t, err)
		assert.ErrorIs(t, err, leaveerrors.ErrRejectionReasonRequired)
		assert.Equal(t, "Please provide a reason for rejection", err.Error())
	}
}

func TestApprove_ReplacesListWholesale(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	after := records()
	after[0].Status = leave.StatusApproved
	gomock.InOrder(
		gw.EXPECT().All(gomock.Any()).Return(records(), nil),
		gw.EXPECT().UpdateStatus(gomock.Any(), "p1", leaveapproval.UpdateStatusRequest{Status: leave.StatusApproved}).
			Return(leaveapproval.UpdateStatusResult{Leaves: after}, nil),
	)

	rec, err := svc.Approve(ctx, st, "p1")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, rec.Status)

	view, err := svc.All(ctx, st, leaveapproval.Filter{})
	require.NoError(t, err)
	assert.Equal(t, leaveapproval.Counts{Pending: 0, Approved: 2, Rejected: 1}, view.Counts)
}

func TestReject_ReplacesSingleRecord(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	gw.EXPECT().All(gomock.Any()).Return(records(), nil)
	gw.EXPECT().UpdateStatus(gomock.Any(), "p1", leaveapproval.UpdateStatusRequest{Status: leave.StatusRejected, RejectionReason: "busy week"}).
		Return(leaveapproval.UpdateStatusResult{}, nil)

	rec, err := svc.Reject(ctx, st, "p1", "  busy week ")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, rec.Status)
	assert.Equal(t, "busy week", rec.RejectionReason)

	view, err := svc.All(ctx, st, leaveapproval.Filter{Status: leave.StatusRejected})
	require.NoError(t, err)
	require.Len(t, view.Leaves, 2)
}

func TestDecide_TerminalStateRefused(t *testing.T) {
	gw, svc, st := setup(t)

	gw.EXPECT().All(gomock.Any()).Return(records(), nil)

	_, err := svc.Approve(context.Background(), st, "r1")
	assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)

	_, err = svc.Reject(context.Background(), st, "a1", "late")
	assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)
}

func TestDecide_UnknownLeave(t *testing.T) {
	gw, svc, st := setup(t)

	gw.EXPECT().All(gomock.Any()).Return(records(), nil)

	_, err := svc.Approve(context.Background(), st, "missing")
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
}

func TestAll_Filters(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	gw.EXPECT().All(gomock.Any()).Return(records(), nil).Times(2)

	view, err := svc.All(ctx, st, leaveapproval.Filter{Year: 2026})
	require.NoError(t, err)
	assert.Len(t, view.Leaves, 2)

	view, err = svc.All(ctx, st, leaveapproval.Filter{Type: leave.TypeAnnual})
	require.NoError(t, err)
	require.Len(t, view.Leaves, 1)
	assert.Equal(t, "a1", view.Leaves[0].ID)

	view, err = svc.All(ctx, st, leaveapproval.Filter{Status: "all", Refresh: true})
	require.NoError(t, err)
	assert.Len(t, view.Leaves, 3)
}

func mockGateway(ctrl *gomock.Controller) *mock.MockGateway {
	return mock.NewMockGateway(ctrl)
}
