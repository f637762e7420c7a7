package payroll

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

const (
	StatusGenerated    = "Generated"
	StatusNotGenerated = "Not Generated"
	StatusPending      = "Pending"
)

var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns "" outside 1..12.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return Months[m-1]
}

// MonthNumber accepts a month name in any case or a numeric string.
func MonthNumber(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return n
		}
		return 0
	}
	for i, name := range Months {
		if strings.EqualFold(name, s) {
			return i + 1
		}
	}
	return 0
}

type Period struct {
	Month int `form:"month" json:"month"`
	Year  int `form:"year" json:"year"`
}

type Earnings struct {
	BasicWage          float64 `json:"basicWage" validate:"gte=0"`
	HouseRentAllowance float64 `json:"houseRentAllowance" validate:"gte=0"`
	Overtime           float64 `json:"overtime" validate:"gte=0"`
	Gratuity           float64 `json:"gratuity" validate:"gte=0"`
	SpecialAllowance   float64 `json:"specialAllowance" validate:"gte=0"`
	PFEmployer         float64 `json:"pfEmployer" validate:"gte=0"`
	ESIEmployer        float64 `json:"esiEmployer" validate:"gte=0"`
	TotalEarnings      float64 `json:"totalEarnings"`
}

func (e Earnings) Sum() float64 {
	return e.BasicWage + e.HouseRentAllowance + e.Overtime + e.Gratuity +
		e.SpecialAllowance + e.PFEmployer + e.ESIEmployer
}

type Deductions struct {
	PFEmployee      float64 `json:"pfEmployee" validate:"gte=0"`
	ESIEmployee     float64 `json:"esiEmployee" validate:"gte=0"`
	Tax             float64 `json:"tax" validate:"gte=0"`
	OtherDeductions float64 `json:"otherDeductions" validate:"gte=0"`
	Total           float64 `json:"total"`
}

func (d Deductions) Sum() float64 {
	return d.PFEmployee + d.ESIEmployee + d.Tax + d.OtherDeductions
}

// Record is one employee's payroll for a month as the upstream returns it.
type Record struct {
	ID            string     `json:"_id,omitempty"`
	EmployeeID    string     `json:"employeeId"`
	Name          string     `json:"name,omitempty"`
	Email         string     `json:"email,omitempty"`
	Month         string     `json:"month"`
	Year          int        `json:"year"`
	Earnings      Earnings   `json:"earnings"`
	Deductions    Deductions `json:"deductions"`
	CTC           float64    `json:"ctc"`
	InHandSalary  float64    `json:"inHandSalary"`
	TotalEarnings float64    `json:"totalEarnings,omitempty"`
	Leaves        float64    `json:"leaves,omitempty"`
	Status        string     `json:"status,omitempty"`
}

// UnmarshalJSON tolerates employeeId arriving as a populated employee object.
func (r *Record) UnmarshalJSON(b []byte) error {
	type alias Record
	var raw struct {
		alias
		EmployeeID json.RawMessage `json:"employeeId"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = Record(raw.alias)
	r.EmployeeID = ""

	if len(raw.EmployeeID) == 0 || string(raw.EmployeeID) == "null" {
		return nil
	}
	var id string
	if err := json.Unmarshal(raw.EmployeeID, &id); err == nil {
		r.EmployeeID = id
		return nil
	}
	var emp struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(raw.EmployeeID, &emp); err != nil {
		return err
	}
	r.EmployeeID = emp.ID
	if r.Name == "" {
		r.Name = emp.Name
	}
	if r.Email == "" {
		r.Email = emp.Email
	}
	return nil
}

// PayrollStatus is the admin list label.
func (r Record) PayrollStatus() string {
	if r.InHandSalary > 0 {
		return StatusGenerated
	}
	return StatusNotGenerated
}

type UpdateRequest struct {
	Month      int        `json:"month"`
	Year       int        `json:"year"`
	Earnings   Earnings   `json:"earnings"`
	Deductions Deductions `json:"deductions"`
}

// UpdatePayload is the body of update-payroll.
type UpdatePayload struct {
	EmployeeID   string     `json:"employeeId"`
	Month        string     `json:"month"`
	Year         int        `json:"year"`
	Earnings     Earnings   `json:"earnings"`
	Deductions   Deductions `json:"deductions"`
	CTC          float64    `json:"ctc"`
	InHandSalary float64    `json:"inHandSalary"`
	Status       string     `json:"status"`
}

type Preview struct {
	TotalEarnings   float64 `json:"totalEarnings"`
	TotalDeductions float64 `json:"totalDeductions"`
	InHandSalary    float64 `json:"inHandSalary"`
	CTC             float64 `json:"ctc"`
}

type Row struct {
	Record
	PayrollStatus string `json:"payrollStatus"`
}

type ListView struct {
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	Month     int       `json:"month"`
	MonthName string    `json:"monthName"`
	Year      int       `json:"year"`
	Rows      []Row     `json:"rows"`
	Generated int       `json:"generated"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type PayslipView struct {
	Record
	Preview Preview `json:"preview"`
}
