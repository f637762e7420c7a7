package payroll_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hris-portal/internal/gateway"
	"hris-portal/internal/payroll"
	payrollerrors "hris-portal/internal/payroll/errors"
	"hris-portal/internal/payroll/mock"
	"hris-portal/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func earnings() payroll.Earnings {
	return payroll.Earnings{
		BasicWage:          30000,
		HouseRentAllowance: 12000,
		Overtime:           1500,
		Gratuity:           1000,
		SpecialAllowance:   2500,
		PFEmployer:         1800,
		ESIEmployer:        200,
	}
}

func deductions() payroll.Deductions {
	return payroll.Deductions{PFEmployee: 1800, ESIEmployee: 150, Tax: 2500, OtherDeductions: 50}
}

func setup(t *testing.T) (*mock.MockGateway, payroll.Service, *store.Store) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	st := store.New("sid-payroll")
	t.Cleanup(st.Close)
	return gw, payroll.NewService(gw, nil), st
}

func TestCompute(t *testing.T) {
	p := payroll.Compute(earnings(), deductions())
	assert.Equal(t, 49000.0, p.TotalEarnings)
	assert.Equal(t, 4500.0, p.TotalDeductions)
	assert.Equal(t, 44500.0, p.InHandSalary)
	assert.Equal(t, p.TotalEarnings, p.CTC)

	zero := payroll.Compute(payroll.Earnings{}, payroll.Deductions{})
	assert.Equal(t, payroll.Preview{}, zero)
}

func TestMonthNumber(t *testing.T) {
	assert.Equal(t, 10, payroll.MonthNumber("October"))
	assert.Equal(t, 1, payroll.MonthNumber("january"))
	assert.Equal(t, 12, payroll.MonthNumber("12"))
	assert.Equal(t, 0, payroll.MonthNumber("13"))
	assert.Equal(t, 0, payroll.MonthNumber("Smarch"))
	assert.Equal(t, "", payroll.MonthName(0))
}

func TestList_RejectsBadPeriod(t *testing.T) {
	_, svc, st := setup(t)

	_, err := svc.List(context.Background(), st, payroll.Period{Month: 13, Year: 2026}, false)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)

	_, err = svc.List(context.Background(), st, payroll.Period{Month: 1, Year: 1999}, false)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidYear)
}

func TestList_ReloadsOnlyWhenPeriodChanges(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	october := []payroll.Record{
		{EmployeeID: "e1", Name: "Asha", Month: "October", Year: 2026, InHandSalary: 44500},
		{EmployeeID: "e2", Name: "Ravi", Month: "October", Year: 2026},
	}
	gw.EXPECT().List(gomock.Any(), "October", 2026).Return(october, nil).Times(1)
	gw.EXPECT().List(gomock.Any(), "September", 2026).Return([]payroll.Record{}, nil).Times(1)

	view, err := svc.List(ctx, st, payroll.Period{Month: 10, Year: 2026}, false)
	require.NoError(t, err)
	require.Len(t, view.Rows, 2)
	assert.Equal(t, payroll.StatusGenerated, view.Rows[0].PayrollStatus)
	assert.Equal(t, payroll.StatusNotGenerated, view.Rows[1].PayrollStatus)
	assert.Equal(t, 1, view.Generated)
	assert.Equal(t, "October", view.MonthName)

	_, err = svc.List(ctx, st, payroll.Period{Month: 10, Year: 2026}, false)
	require.NoError(t, err)

	view, err = svc.List(ctx, st, payroll.Period{Month: 9, Year: 2026}, false)
	require.NoError(t, err)
	assert.Empty(t, view.Rows)
}

func TestUpdate_SendsComputedPayload(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	gw.EXPECT().List(gomock.Any(), "October", 2026).
		Return([]payroll.Record{{EmployeeID: "e1", Name: "Asha", Month: "October", Year: 2026}}, nil)

	e := earnings()
	e.TotalEarnings = 49000
	d := deductions()
	d.Total = 4500
	want := payroll.UpdatePayload{
		EmployeeID:   "e1",
		Month:        "October",
		Year:         2026,
		Earnings:     e,
		Deductions:   d,
		CTC:          49000,
		InHandSalary: 44500,
		Status:       payroll.StatusPending,
	}
	gw.EXPECT().Update(gomock.Any(), "e1", want).
		Return(payroll.Record{ID: "pay-1", EmployeeID: "e1", Month: "October", Year: 2026, InHandSalary: 44500}, nil)

	_, err := svc.List(ctx, st, payroll.Period{Month: 10, Year: 2026}, false)
	require.NoError(t, err)

	row, err := svc.Update(ctx, st, "e1", payroll.UpdateRequest{Month: 10, Year: 2026, Earnings: earnings(), Deductions: deductions()})
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusGenerated, row.PayrollStatus)

	view, err := svc.List(ctx, st, payroll.Period{Month: 10, Year: 2026}, false)
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "pay-1", view.Rows[0].ID)
	assert.Equal(t, "Asha", view.Rows[0].Name)
	assert.Equal(t, 1, view.Generated)
}

func TestUpdate_InvalidFormCallsNothing(t *testing.T) {
	_, svc, st := setup(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, st, " ", payroll.UpdateRequest{Month: 10, Year: 2026})
	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeRequired)

	_, err = svc.Update(ctx, st, "e1", payroll.UpdateRequest{Month: 0, Year: 2026})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)

	bad := earnings()
	bad.BasicWage = -1
	_, err = svc.Update(ctx, st, "e1", payroll.UpdateRequest{Month: 10, Year: 2026, Earnings: bad})
	require.Error(t, err)
	assert.Equal(t, "Basic Wage must be at least 0", err.Error())
}

func TestMyPayroll_NotFound(t *testing.T) {
	gw, svc, st := setup(t)
	gw.EXPECT().Mine(gomock.Any(), "October", 2026).Return(nil, nil)

	_, err := svc.MyPayroll(context.Background(), st, payroll.Period{Month: 10, Year: 2026}, false)
	assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
}

func TestPayslip_RendersPDF(t *testing.T) {
	gw, svc, st := setup(t)
	rec := payroll.Record{ID: "pay-1", EmployeeID: "e1", Month: "October", Year: 2026,
		Earnings: earnings(), Deductions: deductions(), InHandSalary: 44500}
	gw.EXPECT().Mine(gomock.Any(), "October", 2026).Return(&rec, nil).Times(1)

	ctx := context.Background()
	view, err := svc.MyPayroll(ctx, st, payroll.Period{Month: 10, Year: 2026}, false)
	require.NoError(t, err)
	assert.Equal(t, 44500.0, view.Preview.InHandSalary)

	doc, name, err := svc.Payslip(ctx, st, payroll.Period{Month: 10, Year: 2026}, "Asha")
	require.NoError(t, err)
	assert.Equal(t, "payslip-october-2026.pdf", name)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
}

func TestPayslip_NotGenerated(t *testing.T) {
	gw, svc, st := setup(t)
	gw.EXPECT().Mine(gomock.Any(), "October", 2026).
		Return(&payroll.Record{ID: "pay-1", Month: "October", Year: 2026}, nil)

	_, _, err := svc.Payslip(context.Background(), st, payroll.Period{Month: 10, Year: 2026}, "Asha")
	assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotGenerated)
}

func TestGateway_DecodesListShapes(t *testing.T) {
	bodies := map[string]string{
		"array":  `[{"employeeId":"e1","month":"October","year":2026},{"employeeId":{"_id":"e2","name":"Ravi"},"month":"October","year":2026}]`,
		"single": `{"employeeId":"e1","month":"October","year":2026}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/admin/payroll/get-all-employee-payroll", r.URL.Path)
				assert.Equal(t, "October", r.URL.Query().Get("month"))
				assert.Equal(t, "2026", r.URL.Query().Get("year"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			gw := payroll.NewGateway(gateway.NewTransport(srv.URL, time.Second))
			list, err := gw.List(context.Background(), "October", 2026)
			require.NoError(t, err)
			require.NotEmpty(t, list)
			assert.Equal(t, "e1", list[0].EmployeeID)
			if name == "array" {
				require.Len(t, list, 2)
				assert.Equal(t, "e2", list[1].EmployeeID)
				assert.Equal(t, "Ravi", list[1].Name)
			}
		})
	}
}

func TestGateway_UpdateReadsUpdatedPayroll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/admin/payroll/update-payroll/e1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok","updatedPayroll":{"_id":"pay-1","employeeId":"e1","inHandSalary":44500}}`))
	}))
	defer srv.Close()

	gw := payroll.NewGateway(gateway.NewTransport(srv.URL, time.Second))
	rec, err := gw.Update(context.Background(), "e1", payroll.UpdatePayload{EmployeeID: "e1", Month: "October", Year: 2026})
	require.NoError(t, err)
	assert.Equal(t, "pay-1", rec.ID)
	assert.Equal(t, 44500.0, rec.InHandSalary)
}
