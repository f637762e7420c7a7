package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

type payslipLine struct {
	label  string
	amount float64
}

func money(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}

// RenderPayslip lays out a one page A4 payslip for the record.
func RenderPayslip(v PayslipView, p Period) ([]byte, error) {
	earnings := []payslipLine{
		{"Basic Wage", v.Earnings.BasicWage},
		{"House Rent Allowance", v.Earnings.HouseRentAllowance},
		{"Overtime", v.Earnings.Overtime},
		{"Gratuity", v.Earnings.Gratuity},
		{"Special Allowance", v.Earnings.SpecialAllowance},
		{"PF (Employer)", v.Earnings.PFEmployer},
		{"ESI (Employer)", v.Earnings.ESIEmployer},
	}
	deductions := []payslipLine{
		{"PF (Employee)", v.Deductions.PFEmployee},
		{"ESI (Employee)", v.Deductions.ESIEmployee},
		{"Tax", v.Deductions.Tax},
		{"Other Deductions", v.Deductions.OtherDeductions},
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %s %d", MonthName(p.Month), p.Year), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	if v.Name != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", v.Name))
		pdf.Ln(7)
	}
	if v.Email != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Email: %s", v.Email))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", MonthName(p.Month), p.Year))
	pdf.Ln(12)

	section := func(title string, lines []payslipLine, total float64) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(120, 8, title, "B", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, "Amount", "B", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, l := range lines {
			pdf.CellFormat(120, 7, l.label, "", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, money(l.amount), "", 1, "R", false, 0, "")
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(120, 8, "Total "+title, "T", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, money(total), "T", 1, "R", false, 0, "")
		pdf.Ln(6)
	}
	section("Earnings", earnings, v.Preview.TotalEarnings)
	section("Deductions", deductions, v.Preview.TotalDeductions)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(120, 10, "In-hand Salary", "TB", 0, "L", false, 0, "")
	pdf.CellFormat(60, 10, money(v.Preview.InHandSalary), "TB", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("CTC: %s", money(v.Preview.CTC)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
