package attendance

import (
	"context"
	"fmt"
	"sort"

	attendanceerrors "hris-portal/internal/attendance/errors"
	"hris-portal/internal/store"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

var exportHeader = []any{"Date", "Clock In", "Clock Out", "Location", "Effective Hours", "Gross Hours", "Late Arrival", "Early Departure"}

// Export writes the loaded sessions, oldest first, to an xlsx workbook.
func (s *service) Export(ctx context.Context, st *store.Store) ([]byte, error) {
	snap, err := logsSlice(st).Snapshot()
	if err != nil {
		return nil, err
	}
	if snap.Status == store.StatusIdle {
		if _, err := s.FetchLogs(ctx, st); err != nil {
			return nil, err
		}
		if snap, err = logsSlice(st).Snapshot(); err != nil {
			return nil, err
		}
	}
	if len(snap.Data.Sessions) == 0 {
		return nil, attendanceerrors.ErrExportEmpty
	}

	sessions := append([]Session(nil), snap.Data.Sessions...)
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].ClockIn.Before(sessions[j].ClockIn)
	})

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}

	for i, sess := range sessions {
		clockOut := "open"
		if sess.ClockOut != nil {
			clockOut = sess.ClockOut.In(s.loc).Format("15:04")
		}
		row := []any{
			dayKey(sess.ClockIn, s.loc),
			sess.ClockIn.In(s.loc).Format("15:04"),
			clockOut,
			sess.WorkLocation,
			round2(sess.EffectiveHours),
			round2(sess.GrossHours),
			yesNo(sess.IsLateArrival),
			yesNo(sess.IsEarlyDeparture),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write attendance row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
