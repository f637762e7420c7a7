package payroll

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hris-portal/internal/events"
	"hris-portal/internal/messaging/kafka"
	payrollerrors "hris-portal/internal/payroll/errors"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/contextutil"
	"hris-portal/internal/store"

	"go.uber.org/zap"
)

const (
	SliceName   = "payroll"
	SliceMine   = "myPayroll"
	minimumYear = 2000
	maximumYear = 2100
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, st *store.Store, p Period, refresh bool) (ListView, error)
	Update(ctx context.Context, st *store.Store, employeeID string, req UpdateRequest) (Row, error)
	MyPayroll(ctx context.Context, st *store.Store, p Period, refresh bool) (PayslipView, error)
	Payslip(ctx context.Context, st *store.Store, p Period, holder string) ([]byte, string, error)
}

type service struct {
	gateway  Gateway
	recorder *kafka.Recorder
	logger   *zap.Logger
}

func NewService(gw Gateway, recorder *kafka.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{gateway: gw, recorder: recorder, logger: l}
}

// monthly is what a payroll slice holds: the records of one period.
type monthly struct {
	Month   int
	Year    int
	Records []Record
}

func adminSlice(st *store.Store) *store.Slice[monthly] {
	return store.Use[monthly](st, SliceName)
}

func mineSlice(st *store.Store) *store.Slice[monthly] {
	return store.Use[monthly](st, SliceMine)
}

// CheckPeriod validates month 1..12 and a sane year.
func CheckPeriod(p Period) error {
	if p.Month < 1 || p.Month > 12 {
		return payrollerrors.ErrInvalidMonth
	}
	if p.Year < minimumYear || p.Year > maximumYear {
		return payrollerrors.ErrInvalidYear
	}
	return nil
}

// Compute derives the totals shown next to the form; no tax rules apply.
func Compute(e Earnings, d Deductions) Preview {
	earned := e.Sum()
	deducted := d.Sum()
	return Preview{
		TotalEarnings:   earned,
		TotalDeductions: deducted,
		InHandSalary:    earned - deducted,
		CTC:             earned,
	}
}

func rowOf(r Record) Row {
	return Row{Record: r, PayrollStatus: r.PayrollStatus()}
}

func listView(snap store.State[monthly]) ListView {
	rows := make([]Row, 0, len(snap.Data.Records))
	generated := 0
	for _, r := range snap.Data.Records {
		row := rowOf(r)
		if row.PayrollStatus == StatusGenerated {
			generated++
		}
		rows = append(rows, row)
	}
	return ListView{
		Status:    snap.Status.String(),
		Error:     snap.ErrorMessage(),
		Month:     snap.Data.Month,
		MonthName: MonthName(snap.Data.Month),
		Year:      snap.Data.Year,
		Rows:      rows,
		Generated: generated,
		UpdatedAt: snap.UpdatedAt,
	}
}

func samePeriod(m monthly, p Period) bool {
	return m.Month == p.Month && m.Year == p.Year
}

func (s *service) List(ctx context.Context, st *store.Store, p Period, refresh bool) (ListView, error) {
	if err := CheckPeriod(p); err != nil {
		return ListView{}, err
	}

	sl := adminSlice(st)
	if !refresh {
		snap, err := sl.Snapshot()
		if err != nil {
			return ListView{}, err
		}
		if snap.Status == store.StatusLoaded && samePeriod(snap.Data, p) {
			return listView(snap), nil
		}
	}

	snap, err := store.Load(ctx, sl, func(ctx context.Context) (monthly, error) {
		records, err := s.gateway.List(ctx, MonthName(p.Month), p.Year)
		if err != nil {
			return monthly{}, err
		}
		return monthly{Month: p.Month, Year: p.Year, Records: records}, nil
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("fetch payroll failed",
			zap.Int("month", p.Month), zap.Int("year", p.Year), zap.Error(err))
		return ListView{}, err
	}
	return listView(snap), nil
}

func (s *service) Update(ctx context.Context, st *store.Store, employeeID string, req UpdateRequest) (Row, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return Row{}, payrollerrors.ErrEmployeeRequired
	}
	p := Period{Month: req.Month, Year: req.Year}
	if err := CheckPeriod(p); err != nil {
		return Row{}, err
	}
	if err := apperror.ValidateStruct(req.Earnings); err != nil {
		return Row{}, err
	}
	if err := apperror.ValidateStruct(req.Deductions); err != nil {
		return Row{}, err
	}

	preview := Compute(req.Earnings, req.Deductions)
	earnings := req.Earnings
	earnings.TotalEarnings = preview.TotalEarnings
	deductions := req.Deductions
	deductions.Total = preview.TotalDeductions

	payload := UpdatePayload{
		EmployeeID:   employeeID,
		Month:        MonthName(p.Month),
		Year:         p.Year,
		Earnings:     earnings,
		Deductions:   deductions,
		CTC:          preview.CTC,
		InHandSalary: preview.InHandSalary,
		Status:       StatusPending,
	}

	updated, err := s.gateway.Update(ctx, employeeID, payload)
	if err != nil {
		log.Error("update payroll failed", zap.String("employee_id", employeeID), zap.Error(err))
		return Row{}, err
	}
	if updated.EmployeeID == "" {
		updated.EmployeeID = employeeID
	}

	if err := adminSlice(st).Update(func(m monthly) monthly {
		if !samePeriod(m, p) {
			return m
		}
		out := make([]Record, 0, len(m.Records)+1)
		replaced := false
		for _, r := range m.Records {
			if r.EmployeeID == employeeID {
				merged := updated
				if merged.Name == "" {
					merged.Name = r.Name
				}
				if merged.Email == "" {
					merged.Email = r.Email
				}
				out = append(out, merged)
				replaced = true
				continue
			}
			out = append(out, r)
		}
		if !replaced {
			out = append(out, updated)
		}
		m.Records = out
		return m
	}); err != nil {
		return Row{}, err
	}

	s.recorder.Record(ctx, events.PayrollTopic, events.TypePayrollUpdated, "payroll", employeeID, events.PayrollUpdatedEvent{
		EventType:    events.TypePayrollUpdated,
		PayrollID:    updated.ID,
		EmployeeID:   employeeID,
		Month:        p.Month,
		Year:         p.Year,
		InHandSalary: preview.InHandSalary,
		UpdatedBy:    contextutil.GetUserID(ctx),
		OccurredAt:   time.Now().UTC(),
	})

	log.Info("payroll updated",
		zap.String("employee_id", employeeID),
		zap.Int("month", p.Month),
		zap.Int("year", p.Year),
	)
	return rowOf(updated), nil
}

func (s *service) MyPayroll(ctx context.Context, st *store.Store, p Period, refresh bool) (PayslipView, error) {
	if err := CheckPeriod(p); err != nil {
		return PayslipView{}, err
	}

	sl := mineSlice(st)
	snap, err := sl.Snapshot()
	if err != nil {
		return PayslipView{}, err
	}
	if refresh || snap.Status != store.StatusLoaded || !samePeriod(snap.Data, p) {
		snap, err = store.Load(ctx, sl, func(ctx context.Context) (monthly, error) {
			rec, err := s.gateway.Mine(ctx, MonthName(p.Month), p.Year)
			if err != nil {
				if apperror.HasCode(err, apperror.CodeNotFound) {
					return monthly{Month: p.Month, Year: p.Year}, nil
				}
				return monthly{}, err
			}
			m := monthly{Month: p.Month, Year: p.Year}
			if rec != nil && (rec.ID != "" || rec.Month != "" || rec.InHandSalary != 0) {
				m.Records = []Record{*rec}
			}
			return m, nil
		})
		if err != nil {
			contextutil.GetLogger(ctx, s.logger).Error("fetch own payroll failed",
				zap.Int("month", p.Month), zap.Int("year", p.Year), zap.Error(err))
			return PayslipView{}, err
		}
	}

	if len(snap.Data.Records) == 0 {
		return PayslipView{}, payrollerrors.ErrPayrollNotFound
	}
	rec := snap.Data.Records[0]
	return PayslipView{Record: rec, Preview: Compute(rec.Earnings, rec.Deductions)}, nil
}

func (s *service) Payslip(ctx context.Context, st *store.Store, p Period, holder string) ([]byte, string, error) {
	view, err := s.MyPayroll(ctx, st, p, false)
	if err != nil {
		return nil, "", err
	}
	if view.InHandSalary <= 0 {
		return nil, "", payrollerrors.ErrPayslipNotGenerated
	}

	if view.Name == "" {
		view.Name = holder
	}
	doc, err := RenderPayslip(view, p)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("render payslip failed", zap.Error(err))
		return nil, "", apperror.ErrInternal
	}
	filename := fmt.Sprintf("payslip-%s-%d.pdf", strings.ToLower(MonthName(p.Month)), p.Year)
	return doc, filename, nil
}
