package attendance

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const dayLayout = "2006-01-02"

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayLayout)
}

// OpenSessions returns the sessions without a clock-out, newest first.
func OpenSessions(sessions []Session) []Session {
	open := make([]Session, 0, 1)
	for _, s := range sessions {
		if s.Open() {
			open = append(open, s)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].ClockIn.After(open[j].ClockIn)
	})
	return open
}

// BuildOverview derives the dashboard values from fetched logs. At most one
// open session is expected; more than one is reported in Conflict and the
// newest is treated as active.
func BuildOverview(logs Logs, now time.Time, loc *time.Location) Overview {
	if loc == nil {
		loc = time.UTC
	}
	today := dayKey(now, loc)

	ov := Overview{
		SessionsPerDay: map[string]int{},
		Summary:        logs.Summary,
		Sessions:       logs.Sessions,
		Chart:          []DayPoint{},
	}
	if ov.Sessions == nil {
		ov.Sessions = []Session{}
	}

	open := OpenSessions(logs.Sessions)
	if len(open) > 0 {
		active := open[0]
		ov.ActiveSession = &active
		ov.OpenSessions = open
	}
	if len(open) > 1 {
		ov.Conflict = fmt.Sprintf(
			"%d open sessions found; the latest one (since %s) is shown as active. Clock out to resolve.",
			len(open), open[0].ClockIn.In(loc).Format("03:04 PM"),
		)
	}

	byDay := map[string][]Session{}
	for _, s := range logs.Sessions {
		k := dayKey(s.ClockIn, loc)
		byDay[k] = append(byDay[k], s)
		if s.IsLateArrival {
			ov.Issues.LateArrivals++
		}
		if s.IsEarlyDeparture {
			ov.Issues.EarlyDepartures++
		}
	}
	if len(logs.Sessions) == 0 {
		ov.Issues.LateArrivals = logs.Summary.TotalLateArrivals
		ov.Issues.EarlyDepartures = logs.Summary.TotalEarlyDepartures
	}

	days := map[string]struct{}{}
	for k, ss := range byDay {
		ov.SessionsPerDay[k] = len(ss)
		days[k] = struct{}{}
	}
	for k, stat := range logs.DailyStats {
		if _, ok := byDay[k]; !ok {
			ov.SessionsPerDay[k] = len(stat.Sessions)
		}
		days[k] = struct{}{}
	}

	ov.TodaySessions = ov.SessionsPerDay[today]
	if stat, ok := logs.DailyStats[today]; ok {
		ov.TodayEffectiveHours = round2(stat.TotalEffectiveHours)
	} else {
		ov.TodayEffectiveHours = round2(sumEffective(byDay[today]))
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		p := DayPoint{Day: k, Sessions: ov.SessionsPerDay[k]}
		if stat, ok := logs.DailyStats[k]; ok {
			p.EffectiveHours = round2(stat.TotalEffectiveHours)
			p.GrossHours = round2(stat.TotalGrossHours)
		} else {
			p.EffectiveHours = round2(sumEffective(byDay[k]))
			p.GrossHours = round2(sumGross(byDay[k]))
		}
		ov.Chart = append(ov.Chart, p)
	}

	if len(keys) > 0 {
		latest := keys[len(keys)-1]
		bucket := byDay[latest]
		if stat, ok := logs.DailyStats[latest]; ok && len(stat.Sessions) > 0 {
			bucket = stat.Sessions
		}
		ov.LocationSplit = splitByLocation(latest, bucket)
	}

	return ov
}

func splitByLocation(day string, sessions []Session) LocationSplit {
	split := LocationSplit{Day: day}
	for _, s := range sessions {
		switch s.WorkLocation {
		case LocationOffice:
			split.Office++
		case LocationWorkFromHome:
			split.WorkFromHome++
		}
	}
	return split
}

func sumEffective(ss []Session) float64 {
	total := 0.0
	for _, s := range ss {
		total += s.EffectiveHours
	}
	return total
}

func sumGross(ss []Session) float64 {
	total := 0.0
	for _, s := range ss {
		total += s.GrossHours
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// upsertSession replaces the session with the same id or appends it.
func upsertSession(sessions []Session, s Session) []Session {
	out := make([]Session, len(sessions), len(sessions)+1)
	copy(out, sessions)
	for i := range out {
		if out[i].ID == s.ID {
			out[i] = s
			return out
		}
	}
	return append(out, s)
}

// BuildDailyReport converts report entries to rows; a day matches at 8 hours.
func BuildDailyReport(entries []DailyReportEntry, loc *time.Location) []DailyReportRow {
	if loc == nil {
		loc = time.UTC
	}
	rows := make([]DailyReportRow, 0, len(entries))
	for _, e := range entries {
		hours := e.TotalWorkingTime / 3600
		status := "Not Matched"
		if hours >= 8 {
			status = "Matched"
		}
		rows = append(rows, DailyReportRow{
			Date:         e.Date,
			CheckInTime:  formatClock(e.CheckInTime, loc),
			CheckOutTime: formatClock(e.CheckOutTime, loc),
			TotalHours:   round2(hours),
			Status:       status,
		})
	}
	return rows
}

func formatClock(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(loc).Format("03:04:05 PM")
}
