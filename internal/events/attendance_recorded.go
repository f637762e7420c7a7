package events

import "time"

type AttendanceRecordedEvent struct {
	EventType    string    `json:"event_type"`
	SessionID    string    `json:"session_id"`
	Email        string    `json:"email"`
	WorkLocation string    `json:"work_location,omitempty"`
	At           time.Time `json:"at"`
	OccurredAt   time.Time `json:"occurred_at"`
}
