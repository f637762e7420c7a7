package events

import "time"

type LeaveSubmittedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	Email      string    `json:"email"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LeaveDecidedEvent is published when an admin approves or rejects a request.
// EmployeeEmail is the inbox the notification consumer writes to.
type LeaveDecidedEvent struct {
	EventType       string    `json:"event_type"`
	LeaveID         string    `json:"leave_id"`
	EmployeeName    string    `json:"employee_name"`
	EmployeeEmail   string    `json:"employee_email"`
	LeaveType       string    `json:"leave_type"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	DecidedBy       string    `json:"decided_by"`
	OccurredAt      time.Time `json:"occurred_at"`
}
