package events

const (
	AttendanceTopic = "hr.portal.attendance.v1"
	LeaveTopic      = "hr.portal.leave.v1"
	PayrollTopic    = "hr.portal.payroll.v1"
)

const (
	TypeClockedIn      = "attendance.clocked_in"
	TypeClockedOut     = "attendance.clocked_out"
	TypeLeaveSubmitted = "leave.submitted"
	TypeLeaveDecided   = "leave.decided"
	TypePayrollUpdated = "payroll.updated"
)
