package models

import (
	"time"
)

type Vendor struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	VendorID string `gorm:"type:varchar(20);not null;uniqueIndex"`

	Name          string `gorm:"type:varchar(255);not null"`
	Age           int    `gorm:"not null"`
	Gender        string `gorm:"type:varchar(50)"`
	DateOfBirth   string `gorm:"type:varchar(50);not null"`
	FathersName   string `gorm:"type:varchar(255)"`
	MothersName   string `gorm:"type:varchar(255)"`
	MaritalStatus string `gorm:"type:varchar(50)"`
	Nationality   string `gorm:"type:varchar(100)"`

	Email               string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone               string `gorm:"type:varchar(50);not null"`
	AlternatePhone      string `gorm:"type:varchar(50)"`
	AadhaarLinkedMobile string `gorm:"type:varchar(50)"`

	CurrentAddress   string `gorm:"type:text;not null"`
	CurrentCity      string `gorm:"type:varchar(100)"`
	CurrentState     string `gorm:"type:varchar(100)"`
	CurrentPincode   string `gorm:"type:varchar(20)"`
	PermanentAddress string `gorm:"type:text"`
	PermanentCity    string `gorm:"type:varchar(100)"`
	PermanentState   string `gorm:"type:varchar(100)"`
	PermanentPincode string `gorm:"type:varchar(20)"`
	Country          string `gorm:"type:varchar(100)"`

	PANNumber      string `gorm:"column:pan_number;type:varchar(50)"`
	AadhaarNumber  string `gorm:"type:varchar(50)"`
	PassportNumber string `gorm:"type:varchar(50)"`
	VoterID        string `gorm:"type:varchar(50)"`
	DrivingLicense string `gorm:"type:varchar(50)"`

	BusinessName     string `gorm:"type:varchar(255)"`
	BusinessType     string `gorm:"type:varchar(100)"`
	BusinessCategory string `gorm:"type:varchar(100)"`
	GSTNumber        string `gorm:"column:gst_number;type:varchar(50)"`

	IsStudent           string `gorm:"type:varchar(10)"`
	CollegeID           string `gorm:"type:varchar(100)"`
	StudentLocalAddress string `gorm:"type:text"`

	Occupation    string `gorm:"type:varchar(100)"`
	CompanyName   string `gorm:"type:varchar(255)"`
	AnnualIncome  string `gorm:"type:varchar(100)"`
	SourceOfFunds string `gorm:"type:varchar(100)"`

	IsMinor                string `gorm:"type:varchar(10)"`
	GuardiansName          string `gorm:"type:varchar(255)"`
	GuardiansPAN           string `gorm:"column:guardians_pan;type:varchar(50)"`
	GuardiansAadhaar       string `gorm:"type:varchar(50)"`
	BirthCertificateNumber string `gorm:"type:varchar(100)"`

	IsNRIOCI         string `gorm:"column:is_nri_oci;type:varchar(10)"`
	VisaNumber       string `gorm:"type:varchar(50)"`
	OCICardNumber    string `gorm:"column:oci_card_number;type:varchar(50)"`
	OverseasAddress  string `gorm:"type:text"`
	FATCADeclaration string `gorm:"column:fatca_declaration;type:varchar(10)"`

	BankName      string `gorm:"type:varchar(255)"`
	AccountNumber string `gorm:"type:varchar(50)"`
	IFSCCode      string `gorm:"column:ifsc_code;type:varchar(20)"`

	Notes           string `gorm:"type:text"`
	Status          string `gorm:"type:varchar(20);not null;default:'pending'"`
	RejectionReason string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Vendor) TableName() string {
	return "vendors"
}
