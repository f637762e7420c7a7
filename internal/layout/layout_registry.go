package layout

import (
	"strings"

	"hris-portal/internal/rbac"
	"hris-portal/internal/session"
)

var (
	admin    = []string{session.RoleAdmin}
	employee = []string{session.RoleEmployee}
	everyone = []string{session.RoleAdmin, session.RoleEmployee}
)

var pages = []Page{
	{Path: "/", Name: "Login"},
	{Path: "/login", Name: "Login"},
	{Path: "/register", Name: "Register"},

	{Path: "/dashboard-admin", Name: "Admin Dashboard", Roles: admin},
	{Path: "/dashboard-employee", Name: "Employee Dashboard", Roles: employee},

	{Path: "/add-employee", Name: "Add Employee", Roles: admin},
	{Path: "/employee-list", Name: "Employee List", Roles: admin},
	{Path: "/employees", Name: "Employees", Roles: admin},
	{Path: "/employee/:id", Name: "Employee Details", Roles: admin},

	{Path: "/add-project", Name: "Add Project", Roles: admin},
	{Path: "/projects", Name: "Projects", Roles: everyone},
	{Path: "/projects/:id", Name: "Project Details", Roles: everyone},

	{Path: "/profile-details", Name: "Profile Details", Roles: everyone},
	{Path: "/contact-details", Name: "Contact Details", Roles: everyone},
	{Path: "/next-of-kin-details", Name: "Next of Kin Details", Roles: everyone},
	{Path: "/education-qualifications", Name: "Education Qualifications", Roles: everyone},
	{Path: "/guarantor-details", Name: "Guarantor Details", Roles: everyone},
	{Path: "/family-details", Name: "Family Details", Roles: everyone},
	{Path: "/job-details", Name: "Job Details", Roles: everyone},
	{Path: "/financial-details", Name: "Financial Details", Roles: everyone},

	{Path: "/leave", Name: "Apply Leave", Roles: employee},
	{Path: "/my-leave", Name: "My Leave", Roles: employee},
	{Path: "/leave-management", Name: "Leave Management", Roles: admin},

	{Path: "/attendance", Name: "Attendance", Roles: employee},
	{Path: "/attendance-stats", Name: "Attendance Stats", Roles: employee},
	{Path: "/daily-report", Name: "Daily Report", Roles: everyone},

	{Path: "/employee-payroll", Name: "My Payroll", Roles: employee},
	{Path: "/admin-payroll", Name: "Payroll", Roles: admin},
	{Path: "/add-payroll", Name: "Update Payroll", Roles: admin},
}

var headerless = map[string]bool{
	"/":         true,
	"/login":    true,
	"/register": true,
}

var profilePaths = map[string]bool{
	"/profile-details":          true,
	"/contact-details":          true,
	"/next-of-kin-details":      true,
	"/education-qualifications": true,
	"/guarantor-details":        true,
	"/family-details":           true,
	"/job-details":              true,
	"/financial-details":        true,
}

func ChromeFor(path string) Chrome {
	return Chrome{
		Header:         !headerless[path],
		ProfileSidebar: profilePaths[path],
	}
}

// CleanPath drops the query and fragment and normalizes the leading slash.
func CleanPath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Match finds the page for path. Patterns match segment by segment and the
// :name segments are returned as params.
func Match(path string) (Page, map[string]string, bool) {
	segs := splitPath(CleanPath(path))

	for _, p := range pages {
		pattern := splitPath(p.Path)
		if len(pattern) != len(segs) {
			continue
		}

		var params map[string]string
		matched := true
		for i, seg := range pattern {
			if strings.HasPrefix(seg, ":") {
				if segs[i] == "" {
					matched = false
					break
				}
				if params == nil {
					params = map[string]string{}
				}
				params[seg[1:]] = segs[i]
				continue
			}
			if seg != segs[i] {
				matched = false
				break
			}
		}
		if matched {
			return p, params, true
		}
	}
	return Page{}, nil, false
}

// Policies turns the registry into page guard rules.
func Policies() []rbac.PolicyRow {
	rows := make([]rbac.PolicyRow, 0, len(pages))
	for _, p := range pages {
		if p.Public() {
			rows = append(rows, rbac.PolicyRow{Role: rbac.RoleAnonymous, Resource: p.Path, Action: rbac.ActionView})
			continue
		}
		for _, r := range p.Roles {
			rows = append(rows, rbac.PolicyRow{Role: r, Resource: p.Path, Action: rbac.ActionView})
		}
	}
	return rows
}
