package employee

import "net/http"

const (
	SectionContact                    = "contact-details"
	SectionFinancial                  = "financial-details"
	SectionFamily                     = "family-details"
	SectionGuarantor                  = "guarantor-details"
	SectionNextOfKin                  = "next-of-kin-details"
	SectionAcademicRecords            = "academic-records"
	SectionProfessionalQualifications = "professional-qualifications"
	SectionJobDetails                 = "job-details"
)

// section describes how one profile page saves and where its data lives in
// the profile document.
type section struct {
	method string
	form   func() any
	read   func(Employee) any
}

var sections = map[string]section{
	SectionContact: {
		method: http.MethodPost,
		form:   func() any { return &ContactDetails{} },
		read:   func(e Employee) any { return e.ContactDetails },
	},
	SectionFinancial: {
		method: http.MethodPost,
		form:   func() any { return &FinancialDetails{} },
		read:   func(e Employee) any { return e.FinancialDetails },
	},
	SectionFamily: {
		method: http.MethodPut,
		form:   func() any { return &FamilyDetails{} },
		read:   func(e Employee) any { return e.FamilyDetails },
	},
	SectionGuarantor: {
		method: http.MethodPost,
		form:   func() any { return &GuarantorDetails{} },
		read:   func(e Employee) any { return e.GuarantorDetails },
	},
	SectionNextOfKin: {
		method: http.MethodPatch,
		form:   func() any { return &NextOfKinDetails{} },
		read:   func(e Employee) any { return e.NextOfKin },
	},
	SectionAcademicRecords: {
		method: http.MethodPost,
		form:   func() any { return &AcademicRecord{} },
		read:   func(e Employee) any { return nonNil(e.AcademicRecords) },
	},
	SectionProfessionalQualifications: {
		method: http.MethodPost,
		form:   func() any { return &ProfessionalQualification{} },
		read:   func(e Employee) any { return nonNil(e.ProfessionalQualifications) },
	},
	// read-only; uploads are handled by the HR API directly
	SectionJobDetails: {
		read: func(e Employee) any { return nonNil(e.Documents) },
	},
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// NewSectionForm returns an empty form for a writable section.
func NewSectionForm(name string) (any, bool) {
	sec, ok := sections[name]
	if !ok || sec.form == nil {
		return nil, false
	}
	return sec.form(), true
}

func Sections() []string {
	return []string{
		SectionContact,
		SectionFinancial,
		SectionFamily,
		SectionGuarantor,
		SectionNextOfKin,
		SectionAcademicRecords,
		SectionProfessionalQualifications,
		SectionJobDetails,
	}
}
