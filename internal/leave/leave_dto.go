package leave

import "time"

const (
	TypeSick   = "sick"
	TypeAnnual = "annual"
	TypeCasual = "casual"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	DefaultAllowance = 12
	MaxDocumentSize  = 5 * 1024 * 1024

	DateLayout = "2006-01-02"
)

// Types lists the leave types in display order.
var Types = []string{TypeSick, TypeAnnual, TypeCasual}

// Record is a leave request as the HR API returns it. Dates may carry a time
// part; only the day is meaningful.
type Record struct {
	ID              string   `json:"_id"`
	EmployeeName    string   `json:"employeeName,omitempty"`
	Name            string   `json:"name,omitempty"`
	Email           string   `json:"email,omitempty"`
	LeaveType       string   `json:"leaveType"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	ResumptionDate  string   `json:"resumptionDate,omitempty"`
	Duration        *float64 `json:"duration,omitempty"`
	Reason          string   `json:"reason,omitempty"`
	Status          string   `json:"status"`
	RejectionReason string   `json:"rejectionReason,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
}

func (r Record) Pending() bool {
	return r.Status == StatusPending
}

type DocumentMeta struct {
	Name        string `json:"name" validate:"required"`
	Size        int64  `json:"size" validate:"gte=0"`
	ContentType string `json:"contentType,omitempty"`
}

type ApplyRequest struct {
	Name      string        `json:"name" binding:"required" validate:"required"`
	Email     string        `json:"email" binding:"required,email" validate:"required,email"`
	LeaveType string        `json:"leaveType" binding:"required,oneof=sick annual casual" validate:"required,oneof=sick annual casual"`
	StartDate string        `json:"startDate" binding:"required" validate:"required"`
	EndDate   string        `json:"endDate" binding:"required" validate:"required"`
	Reason    string        `json:"reason" binding:"required" validate:"required"`
	Document  *DocumentMeta `json:"document,omitempty" validate:"omitempty"`
}

// Statistics is the server's own summary, shown next to the local balance.
type Statistics struct {
	TotalLeaves     float64            `json:"totalLeaves"`
	RemainingLeaves float64            `json:"remainingLeaves"`
	LeavesByType    map[string]float64 `json:"leavesByType"`
}

// MyLeaves is the employee-leave slice payload.
type MyLeaves struct {
	Leaves     []Record    `json:"leaves"`
	Statistics *Statistics `json:"statistics,omitempty"`
}

type TypeBalance struct {
	Type      string  `json:"type"`
	Allowance float64 `json:"allowance"`
	Taken     float64 `json:"taken"`
	Remaining float64 `json:"remaining"`
}

type MyLeavesView struct {
	Status     string        `json:"status"`
	Error      string        `json:"error,omitempty"`
	Leaves     []Record      `json:"leaves"`
	Statistics *Statistics   `json:"statistics,omitempty"`
	Balance    []TypeBalance `json:"balance"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
