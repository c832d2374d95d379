package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// VendorStatus represents vendor onboarding review status
type VendorStatus string

const (
	VendorStatusPending  VendorStatus = "pending"
	VendorStatusApproved VendorStatus = "approved"
	VendorStatusRejected VendorStatus = "rejected"
)

// Valid reports whether s is a known vendor status
func (s VendorStatus) Valid() bool {
	switch s {
	case VendorStatusPending, VendorStatusApproved, VendorStatusRejected:
		return true
	}
	return false
}

// Vendor represents a vendor KYC record. The VendorID is assigned once at
// registration and never changes.
type Vendor struct {
	VendorID string       `json:"vendorId"`
	Status   VendorStatus `json:"status"`

	// Personal information
	Name          string      `json:"name"`
	Age           int         `json:"age"`
	Gender        null.String `json:"gender,omitempty"`
	DateOfBirth   string      `json:"dateOfBirth"`
	FathersName   null.String `json:"fathersName,omitempty"`
	MothersName   null.String `json:"mothersName,omitempty"`
	MaritalStatus null.String `json:"maritalStatus,omitempty"`
	Nationality   null.String `json:"nationality,omitempty"`

	// Contact information
	Email               string      `json:"email"`
	Phone               string      `json:"phone"`
	AlternatePhone      null.String `json:"alternatePhone,omitempty"`
	AadhaarLinkedMobile null.String `json:"aadhaarLinkedMobile,omitempty"`

	// Address information
	CurrentAddress   string      `json:"currentAddress"`
	CurrentCity      null.String `json:"currentCity,omitempty"`
	CurrentState     null.String `json:"currentState,omitempty"`
	CurrentPincode   null.String `json:"currentPincode,omitempty"`
	PermanentAddress null.String `json:"permanentAddress,omitempty"`
	PermanentCity    null.String `json:"permanentCity,omitempty"`
	PermanentState   null.String `json:"permanentState,omitempty"`
	PermanentPincode null.String `json:"permanentPincode,omitempty"`
	Country          null.String `json:"country,omitempty"`

	// Identity details
	PANNumber      null.String `json:"panNumber,omitempty"`
	AadhaarNumber  null.String `json:"aadhaarNumber,omitempty"`
	PassportNumber null.String `json:"passportNumber,omitempty"`
	VoterID        null.String `json:"voterId,omitempty"`
	DrivingLicense null.String `json:"drivingLicense,omitempty"`

	// Business information
	BusinessName     null.String `json:"businessName,omitempty"`
	BusinessType     null.String `json:"businessType,omitempty"`
	BusinessCategory null.String `json:"businessCategory,omitempty"`
	GSTNumber        null.String `json:"gstNumber,omitempty"`

	// Students
	IsStudent           null.String `json:"isStudent,omitempty"`
	CollegeID           null.String `json:"collegeId,omitempty"`
	StudentLocalAddress null.String `json:"studentLocalAddress,omitempty"`

	// Working professionals
	Occupation    null.String `json:"occupation,omitempty"`
	CompanyName   null.String `json:"companyName,omitempty"`
	AnnualIncome  null.String `json:"annualIncome,omitempty"`
	SourceOfFunds null.String `json:"sourceOfFunds,omitempty"`

	// Minors
	IsMinor                null.String `json:"isMinor,omitempty"`
	GuardiansName          null.String `json:"guardiansName,omitempty"`
	GuardiansPAN           null.String `json:"guardiansPan,omitempty"`
	GuardiansAadhaar       null.String `json:"guardiansAadhaar,omitempty"`
	BirthCertificateNumber null.String `json:"birthCertificateNumber,omitempty"`

	// NRI/OCI
	IsNRIOCI         null.String `json:"isNriOci,omitempty"`
	VisaNumber       null.String `json:"visaNumber,omitempty"`
	OCICardNumber    null.String `json:"ociCardNumber,omitempty"`
	OverseasAddress  null.String `json:"overseasAddress,omitempty"`
	FATCADeclaration null.String `json:"fatcaDeclaration,omitempty"`

	// Bank details
	BankName      null.String `json:"bankName,omitempty"`
	AccountNumber null.String `json:"accountNumber,omitempty"`
	IFSCCode      null.String `json:"ifscCode,omitempty"`

	Notes           null.String `json:"notes,omitempty"`
	RejectionReason null.String `json:"rejectionReason,omitempty"`

	// Documents holds the current slot state, keyed by document type
	Documents map[DocumentType]string `json:"documents,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterVendorInput represents the registration payload
type RegisterVendorInput struct {
	Name          string `json:"name" binding:"required"`
	Age           int    `json:"age" binding:"required"`
	Gender        string `json:"gender,omitempty"`
	DateOfBirth   string `json:"dateOfBirth" binding:"required"`
	FathersName   string `json:"fathersName,omitempty"`
	MothersName   string `json:"mothersName,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`
	Nationality   string `json:"nationality,omitempty"`

	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone" binding:"required"`
	AlternatePhone      string `json:"alternatePhone,omitempty"`
	AadhaarLinkedMobile string `json:"aadhaarLinkedMobile,omitempty"`

	CurrentAddress   string `json:"currentAddress" binding:"required"`
	CurrentCity      string `json:"currentCity,omitempty"`
	CurrentState     string `json:"currentState,omitempty"`
	CurrentPincode   string `json:"currentPincode,omitempty"`
	PermanentAddress string `json:"permanentAddress,omitempty"`
	PermanentCity    string `json:"permanentCity,omitempty"`
	PermanentState   string `json:"permanentState,omitempty"`
	PermanentPincode string `json:"permanentPincode,omitempty"`
	Country          string `json:"country,omitempty"`

	PANNumber      string `json:"panNumber,omitempty"`
	AadhaarNumber  string `json:"aadhaarNumber,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
	VoterID        string `json:"voterId,omitempty"`
	DrivingLicense string `json:"drivingLicense,omitempty"`

	BusinessName     string `json:"businessName,omitempty"`
	BusinessType     string `json:"businessType,omitempty"`
	BusinessCategory string `json:"businessCategory,omitempty"`
	GSTNumber        string `json:"gstNumber,omitempty"`

	IsStudent           string `json:"isStudent,omitempty"`
	CollegeID           string `json:"collegeId,omitempty"`
	StudentLocalAddress string `json:"studentLocalAddress,omitempty"`

	Occupation    string `json:"occupation,omitempty"`
	CompanyName   string `json:"companyName,omitempty"`
	AnnualIncome  string `json:"annualIncome,omitempty"`
	SourceOfFunds string `json:"sourceOfFunds,omitempty"`

	IsMinor                string `json:"isMinor,omitempty"`
	GuardiansName          string `json:"guardiansName,omitempty"`
	GuardiansPAN           string `json:"guardiansPan,omitempty"`
	GuardiansAadhaar       string `json:"guardiansAadhaar,omitempty"`
	BirthCertificateNumber string `json:"birthCertificateNumber,omitempty"`

	IsNRIOCI         string `json:"isNriOci,omitempty"`
	VisaNumber       string `json:"visaNumber,omitempty"`
	OCICardNumber    string `json:"ociCardNumber,omitempty"`
	OverseasAddress  string `json:"overseasAddress,omitempty"`
	FATCADeclaration string `json:"fatcaDeclaration,omitempty"`

	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IFSCCode      string `json:"ifscCode,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// StatusCheckResponse is the public status tracker response
type StatusCheckResponse struct {
	VendorID        string       `json:"vendorId"`
	Name            string       `json:"name"`
	BusinessName    string       `json:"businessName"`
	Status          VendorStatus `json:"status"`
	RejectionReason null.String  `json:"rejectionReason,omitempty"`
	SubmittedAt     time.Time    `json:"submittedAt"`
}

// ReviewInput represents an admin review decision
type ReviewInput struct {
	Status VendorStatus `json:"status" binding:"required"`
	Reason string       `json:"reason,omitempty"`
}

// VendorStats holds dashboard counters by status
type VendorStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
