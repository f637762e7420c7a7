package leave

import (
	"math"
	"time"

	leaveerrors "hris-portal/internal/leave/errors"
)

// ParseDay reads the day part of an API date ("2026-10-17" or a full
// timestamp).
func ParseDay(s string) (time.Time, error) {
	if len(s) >= len(DateLayout) {
		if t, err := time.Parse(DateLayout, s[:len(DateLayout)]); err == nil {
			return t, nil
		}
	}
	return time.Time{}, leaveerrors.ErrInvalidDateFormat
}

// Days is the server duration when present, else the inclusive day span.
func Days(r Record) float64 {
	if r.Duration != nil {
		return *r.Duration
	}
	start, err := ParseDay(r.StartDate)
	if err != nil {
		return 0
	}
	end, err := ParseDay(r.EndDate)
	if err != nil || end.Before(start) {
		return 0
	}
	return math.Round(end.Sub(start).Hours()/24) + 1
}

// ComputeStats derives the per-type balance from approved requests.
// Remaining goes negative when a type is overdrawn, so taken+remaining always
// equals the allowance. Types missing from allowances get DefaultAllowance.
func ComputeStats(leaves []Record, allowances map[string]float64) []TypeBalance {
	taken := make(map[string]float64, len(Types))
	for _, r := range leaves {
		if r.Status != StatusApproved {
			continue
		}
		taken[r.LeaveType] += Days(r)
	}

	out := make([]TypeBalance, 0, len(Types))
	for _, t := range Types {
		allowance, ok := allowances[t]
		if !ok {
			allowance = DefaultAllowance
		}
		out = append(out, TypeBalance{
			Type:      t,
			Allowance: allowance,
			Taken:     taken[t],
			Remaining: allowance - taken[t],
		})
	}
	return out
}
