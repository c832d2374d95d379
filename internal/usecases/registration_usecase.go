package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"vendor-kyc.backend/internal/domain/entities"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
	"vendor-kyc.backend/internal/domain/repositories"
	"vendor-kyc.backend/pkg/vendorid"
)

const (
	// idAllocMaxAttempts caps the insert-with-retry loop on vendor ID
	// collision
	idAllocMaxAttempts = 5
	idAllocBaseBackoff = 25 * time.Millisecond
)

// RegistrationUsecase handles vendor registration
type RegistrationUsecase struct {
	vendorRepo repositories.VendorRepository
	docRepo    repositories.DocumentRepository
	seqRepo    repositories.SequenceRepository
	uow        repositories.UnitOfWork
}

// NewRegistrationUsecase creates a new registration usecase
func NewRegistrationUsecase(
	vendorRepo repositories.VendorRepository,
	docRepo repositories.DocumentRepository,
	seqRepo repositories.SequenceRepository,
	uow repositories.UnitOfWork,
) *RegistrationUsecase {
	return &RegistrationUsecase{
		vendorRepo: vendorRepo,
		docRepo:    docRepo,
		seqRepo:    seqRepo,
		uow:        uow,
	}
}

// Register creates a new vendor record with a freshly allocated vendor ID and
// status pending. Allocation and insert run in one transaction over an
// exclusive counter increment, so concurrent registrations never share an ID.
// A residual unique-constraint collision (legacy rows above the counter) is
// retried with exponential backoff up to a cap.
func (u *RegistrationUsecase) Register(ctx context.Context, input *entities.RegisterVendorInput) (*entities.Vendor, error) {
	if input.Age <= 0 || input.Age > 150 {
		return nil, domainerrors.BadRequest("Invalid age. Age must be between 1 and 150")
	}

	// Fail fast on duplicate email; the unique constraint is the backstop
	// for concurrent registrations.
	if _, err := u.vendorRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.Conflict("Email already registered")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	vendor := vendorFromInput(input)

	backoff := idAllocBaseBackoff
	for attempt := 0; attempt < idAllocMaxAttempts; attempt++ {
		err := u.uow.Do(ctx, func(txCtx context.Context) error {
			seq, err := u.seqRepo.NextVendorSequence(txCtx)
			if err != nil {
				return err
			}
			vendor.VendorID = vendorid.Format(seq)
			return u.vendorRepo.Create(txCtx, vendor)
		})
		if err == nil {
			return vendor, nil
		}
		if !errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, err
		}

		// The constraint that fired may be the email one: a concurrent
		// registration with the same address wins, we report conflict.
		if _, emailErr := u.vendorRepo.GetByEmail(ctx, input.Email); emailErr == nil {
			return nil, domainerrors.Conflict("Email already registered")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return nil, domainerrors.NewAppError(
		409, domainerrors.CodeConflict,
		"Could not allocate a unique vendor ID",
		domainerrors.ErrIDExhausted,
	)
}

// GetVendor returns the full record including populated document slots
func (u *RegistrationUsecase) GetVendor(ctx context.Context, vendorID string) (*entities.Vendor, error) {
	vendor, err := u.vendorRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	docs, err := u.docRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		vendor.Documents = make(map[entities.DocumentType]string, len(docs))
		for _, d := range docs {
			vendor.Documents[d.DocType] = d.FilePath
		}
	}
	return vendor, nil
}

// CheckStatus returns the public status tracker view of a record
func (u *RegistrationUsecase) CheckStatus(ctx context.Context, vendorID string) (*entities.StatusCheckResponse, error) {
	vendor, err := u.vendorRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	businessName := vendor.BusinessName.String
	if businessName == "" {
		businessName = "N/A"
	}

	return &entities.StatusCheckResponse{
		VendorID:        vendor.VendorID,
		Name:            vendor.Name,
		BusinessName:    businessName,
		Status:          vendor.Status,
		RejectionReason: vendor.RejectionReason,
		SubmittedAt:     vendor.CreatedAt,
	}, nil
}

func vendorFromInput(in *entities.RegisterVendorInput) *entities.Vendor {
	nationality := in.Nationality
	if nationality == "" {
		nationality = "Indian"
	}
	country := in.Country
	if country == "" {
		country = "India"
	}

	return &entities.Vendor{
		Status: entities.VendorStatusPending,

		Name:          in.Name,
		Age:           in.Age,
		Gender:        optInput(in.Gender),
		DateOfBirth:   in.DateOfBirth,
		FathersName:   optInput(in.FathersName),
		MothersName:   optInput(in.MothersName),
		MaritalStatus: optInput(in.MaritalStatus),
		Nationality:   optInput(nationality),

		Email:               in.Email,
		Phone:               in.Phone,
		AlternatePhone:      optInput(in.AlternatePhone),
		AadhaarLinkedMobile: optInput(in.AadhaarLinkedMobile),

		CurrentAddress:   in.CurrentAddress,
		CurrentCity:      optInput(in.CurrentCity),
		CurrentState:     optInput(in.CurrentState),
		CurrentPincode:   optInput(in.CurrentPincode),
		PermanentAddress: optInput(in.PermanentAddress),
		PermanentCity:    optInput(in.PermanentCity),
		PermanentState:   optInput(in.PermanentState),
		PermanentPincode: optInput(in.PermanentPincode),
		Country:          optInput(country),

		PANNumber:      optInput(in.PANNumber),
		AadhaarNumber:  optInput(in.AadhaarNumber),
		PassportNumber: optInput(in.PassportNumber),
		VoterID:        optInput(in.VoterID),
		DrivingLicense: optInput(in.DrivingLicense),

		BusinessName:     optInput(in.BusinessName),
		BusinessType:     optInput(in.BusinessType),
		BusinessCategory: optInput(in.BusinessCategory),
		GSTNumber:        optInput(in.GSTNumber),

		IsStudent:           optInput(in.IsStudent),
		CollegeID:           optInput(in.CollegeID),
		StudentLocalAddress: optInput(in.StudentLocalAddress),

		Occupation:    optInput(in.Occupation),
		CompanyName:   optInput(in.CompanyName),
		AnnualIncome:  optInput(in.AnnualIncome),
		SourceOfFunds: optInput(in.SourceOfFunds),

		IsMinor:                optInput(in.IsMinor),
		GuardiansName:          optInput(in.GuardiansName),
		GuardiansPAN:           optInput(in.GuardiansPAN),
		GuardiansAadhaar:       optInput(in.GuardiansAadhaar),
		BirthCertificateNumber: optInput(in.BirthCertificateNumber),

		IsNRIOCI:         optInput(in.IsNRIOCI),
		VisaNumber:       optInput(in.VisaNumber),
		OCICardNumber:    optInput(in.OCICardNumber),
		OverseasAddress:  optInput(in.OverseasAddress),
		FATCADeclaration: optInput(in.FATCADeclaration),

		BankName:      optInput(in.BankName),
		AccountNumber: optInput(in.AccountNumber),
		IFSCCode:      optInput(in.IFSCCode),

		Notes: optInput(in.Notes),
	}
}

func optInput(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
