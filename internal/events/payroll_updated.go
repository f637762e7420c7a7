package events

import "time"

type PayrollUpdatedEvent struct {
	EventType    string    `json:"event_type"`
	PayrollID    string    `json:"payroll_id"`
	EmployeeID   string    `json:"employee_id"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	InHandSalary float64   `json:"in_hand_salary"`
	UpdatedBy    string    `json:"updated_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
