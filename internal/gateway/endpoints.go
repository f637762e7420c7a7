package gateway

// Upstream HR API prefixes.
const (
	AdminAuthEndpoint          = "/api/v1/admin/auth"
	EmployeeAuthEndpoint       = "/api/v1/employee/auth"
	EmployeeAttendanceEndpoint = "/api/v1/employee/attendance"
	EmployeeLeaveEndpoint      = "/api/v1/employee/leave"
	AdminLeaveEndpoint         = "/api/v1/admin/leave"
	AdminPayrollEndpoint       = "/api/v1/admin/payroll"
	AdminProjectEndpoint       = "/api/v1/admin/project"

	EmployeeSelfEndpoint    = "/api/employees/me"
	AdminEmployeesEndpoint  = "/api/admin/employees"
	EmployeesEndpoint       = "/api/employees"
	EmployeePayrollEndpoint = "/api/payroll/employee"
	DailyReportEndpoint     = "/api/daily-report"
)
