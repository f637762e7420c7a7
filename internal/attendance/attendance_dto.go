package attendance

import "time"

const (
	LocationOffice       = "office"
	LocationWorkFromHome = "work_from_home"
)

// Session is one clock-in/clock-out pair as the HR API returns it.
type Session struct {
	ID               string     `json:"_id"`
	ClockIn          time.Time  `json:"clockIn"`
	ClockOut         *time.Time `json:"clockOut"`
	WorkLocation     string     `json:"workLocation"`
	EffectiveHours   float64    `json:"effectiveHours"`
	GrossHours       float64    `json:"grossHours"`
	IsLateArrival    bool       `json:"isLateArrival"`
	IsEarlyDeparture bool       `json:"isEarlyDeparture"`
}

func (s Session) Open() bool {
	return s.ClockOut == nil
}

type DailyStat struct {
	Sessions            []Session `json:"sessions"`
	TotalEffectiveHours float64   `json:"totalEffectiveHours"`
	TotalGrossHours     float64   `json:"totalGrossHours"`
}

type Summary struct {
	TotalDays            int     `json:"totalDays"`
	AvgEffectiveHours    float64 `json:"avgEffectiveHours"`
	AvgGrossHours        float64 `json:"avgGrossHours"`
	TotalOvertime        float64 `json:"totalOvertime"`
	TotalLateArrivals    int     `json:"totalLateArrivals"`
	TotalEarlyDepartures int     `json:"totalEarlyDepartures"`
}

// Logs is the attendance slice payload, replaced wholesale by every fetch.
type Logs struct {
	Sessions   []Session            `json:"sessions"`
	DailyStats map[string]DailyStat `json:"dailyStats"`
	Summary    Summary              `json:"summary"`
}

type ClockInRequest struct {
	WorkLocation string `json:"workLocation" binding:"required,oneof=office work_from_home" validate:"required,oneof=office work_from_home"`
}

type LocationSplit struct {
	Day          string `json:"day,omitempty"`
	Office       int    `json:"office"`
	WorkFromHome int    `json:"workFromHome"`
}

type Issues struct {
	LateArrivals    int `json:"lateArrivals"`
	EarlyDepartures int `json:"earlyDepartures"`
}

type DayPoint struct {
	Day            string  `json:"day"`
	Sessions       int     `json:"sessions"`
	EffectiveHours float64 `json:"effectiveHours"`
	GrossHours     float64 `json:"grossHours"`
}

// Overview is the attendance view model: fetched data plus the values the
// dashboard derives from it.
type Overview struct {
	Status              string         `json:"status"`
	Error               string         `json:"error,omitempty"`
	ActiveSession       *Session       `json:"activeSession,omitempty"`
	OpenSessions        []Session      `json:"openSessions,omitempty"`
	Conflict            string         `json:"conflict,omitempty"`
	TodaySessions       int            `json:"todaySessions"`
	TodayEffectiveHours float64        `json:"todayEffectiveHours"`
	SessionsPerDay      map[string]int `json:"sessionsPerDay"`
	LocationSplit       LocationSplit  `json:"locationSplit"`
	Issues              Issues         `json:"issues"`
	Chart               []DayPoint     `json:"chart"`
	Summary             Summary        `json:"summary"`
	Sessions            []Session      `json:"sessions"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// DailyReportEntry is a row of /api/daily-report. TotalWorkingTime is in seconds.
type DailyReportEntry struct {
	Date             string    `json:"date"`
	CheckInTime      time.Time `json:"checkInTime"`
	CheckOutTime     time.Time `json:"checkOutTime"`
	TotalWorkingTime float64   `json:"totalWorkingTime"`
}

type DailyReportRow struct {
	Date         string  `json:"date"`
	CheckInTime  string  `json:"checkInTime"`
	CheckOutTime string  `json:"checkOutTime"`
	TotalHours   float64 `json:"totalHours"`
	Status       string  `json:"status"`
}
