package employee

import "time"

// Employee is the HR API's employee document. Profile sections are filled in
// by the employee from the profile pages.
type Employee struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Department  string  `json:"department"`
	Manager     string  `json:"manager,omitempty"`
	JobTitle    string  `json:"jobTitle"`
	JobCategory string  `json:"jobCategory"`
	Position    string  `json:"position"`
	Salary      float64 `json:"salary"`
	Active      *bool   `json:"active,omitempty"`

	ContactDetails             *ContactDetails             `json:"contactDetails,omitempty"`
	FinancialDetails           *FinancialDetails           `json:"financialDetails,omitempty"`
	FamilyDetails              *FamilyDetails              `json:"familyDetails,omitempty"`
	GuarantorDetails           *GuarantorDetails           `json:"guarantorDetails,omitempty"`
	NextOfKin                  *NextOfKinDetails           `json:"nextOfKin,omitempty"`
	AcademicRecords            []AcademicRecord            `json:"academicRecords,omitempty"`
	ProfessionalQualifications []ProfessionalQualification `json:"professionalQualifications,omitempty"`
	Documents                  []Document                  `json:"documents,omitempty"`
}

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.Name
	}
	return e.Name + " " + e.LastName
}

type RegisterRequest struct {
	Name        string   `json:"name" validate:"required"`
	LastName    string   `json:"lastName" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password,omitempty"`
	Department  string   `json:"department" validate:"required"`
	Manager     string   `json:"manager,omitempty"`
	JobTitle    string   `json:"jobTitle" validate:"required"`
	JobCategory string   `json:"jobCategory" validate:"required"`
	Position    string   `json:"position" validate:"required"`
	Salary      *float64 `json:"salary" validate:"required"`
}

// UpdateRequest is the admin edit form.
type UpdateRequest struct {
	Name             string            `json:"name" validate:"required"`
	LastName         string            `json:"lastName"`
	Email            string            `json:"email" validate:"required,email"`
	Position         string            `json:"position"`
	Department       string            `json:"department"`
	Salary           *float64          `json:"salary"`
	Active           *bool             `json:"active,omitempty"`
	FinancialDetails *FinancialDetails `json:"financialDetails,omitempty"`
	NextOfKin        *NextOfKinDetails `json:"nextOfKin,omitempty"`
}

// Option feeds the leader and member pickers.
type Option struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	JobTitle string `json:"jobTitle,omitempty"`
}

type ContactDetails struct {
	Phone1        string `json:"phone1" validate:"required"`
	Phone2        string `json:"phone2"`
	PersonalEmail string `json:"personalEmail" validate:"required,email"`
	City          string `json:"city" validate:"required"`
	Address       string `json:"address" validate:"required"`
}

type FinancialDetails struct {
	BankName    string `json:"bankName" validate:"required"`
	IFSC        string `json:"ifsc" validate:"required"`
	AccountNo   string `json:"accountNo" validate:"required"`
	AccountName string `json:"accountName" validate:"required"`
}

type FamilyDetails struct {
	FullName     string `json:"fullName" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
	PhoneNo      string `json:"phoneNo" validate:"required"`
	Address      string `json:"address" validate:"required"`
	Occupation   string `json:"occupation"`
}

type GuarantorDetails struct {
	Name       string `json:"name" validate:"required"`
	Occupation string `json:"occupation"`
	Phone      string `json:"phone" validate:"required"`
}

type NextOfKinDetails struct {
	Name         string `json:"name" validate:"required"`
	Occupation   string `json:"occupation"`
	Phone        string `json:"phone" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
	Address      string `json:"address"`
}

type AcademicRecord struct {
	Institution string `json:"institution" validate:"required"`
	Details     string `json:"details" validate:"required"`
}

type ProfessionalQualification struct {
	Title        string `json:"title" validate:"required"`
	Organization string `json:"organization"`
	Duration     string `json:"duration" validate:"required"`
	Description  string `json:"description"`
}

type Document struct {
	Type       string    `json:"documentType"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type ProfileView struct {
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	Profile   Employee  `json:"profile"`
	Sections  []string  `json:"sections"`
	UpdatedAt time.Time `json:"updatedAt"`
}
