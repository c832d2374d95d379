package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vendor-kyc.backend/internal/domain/entities"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
	"vendor-kyc.backend/internal/infrastructure/models"
)

// VendorRepository implements vendor record data operations
type VendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// Create creates a new vendor record. A unique-constraint violation on
// vendor_id or email surfaces as ErrAlreadyExists.
func (r *VendorRepository) Create(ctx context.Context, vendor *entities.Vendor) error {
	m := toModel(vendor)
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	vendor.CreatedAt = m.CreatedAt
	vendor.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByVendorID gets a vendor by its assigned identifier
func (r *VendorRepository) GetByVendorID(ctx context.Context, vendorID string) (*entities.Vendor, error) {
	var m models.Vendor
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("vendor_id = ?", vendorID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// GetByVendorIDForUpdate loads a vendor holding a row lock for the remainder
// of the surrounding transaction
func (r *VendorRepository) GetByVendorIDForUpdate(ctx context.Context, vendorID string) (*entities.Vendor, error) {
	var m models.Vendor
	err := GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("vendor_id = ?", vendorID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// GetByEmail gets a vendor by email
func (r *VendorRepository) GetByEmail(ctx context.Context, email string) (*entities.Vendor, error) {
	var m models.Vendor
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// UpdateStatus sets the review status and rejection reason. An empty reason
// clears any stored one.
func (r *VendorRepository) UpdateStatus(ctx context.Context, vendorID string, status entities.VendorStatus, rejectionReason string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Vendor{}).
		Where("vendor_id = ?", vendorID).
		Updates(map[string]interface{}{
			"status":           string(status),
			"rejection_reason": rejectionReason,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Touch refreshes the record's updatedAt timestamp
func (r *VendorRepository) Touch(ctx context.Context, vendorID string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Vendor{}).
		Where("vendor_id = ?", vendorID).
		Update("updated_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists vendors newest first, optionally filtered by status
func (r *VendorRepository) List(ctx context.Context, status entities.VendorStatus, limit, offset int) ([]*entities.Vendor, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Vendor{})
	if status != "" {
		db = db.Where("status = ?", string(status))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.Vendor
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	var vendors []*entities.Vendor
	for _, m := range ms {
		model := m
		vendors = append(vendors, toEntity(&model))
	}
	return vendors, int(total), nil
}

// ListVendorIDs returns every assigned vendor identifier
func (r *VendorRepository) ListVendorIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Vendor{}).Pluck("vendor_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Stats returns dashboard counters by status
func (r *VendorRepository) Stats(ctx context.Context) (*entities.VendorStats, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Vendor{})

	stats := &entities.VendorStats{}
	if err := db.Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	type row struct {
		Status string
		N      int64
	}
	var rows []row
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Vendor{}).
		Select("status, count(*) as n").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, rw := range rows {
		switch entities.VendorStatus(rw.Status) {
		case entities.VendorStatusPending:
			stats.Pending = rw.N
		case entities.VendorStatusApproved:
			stats.Approved = rw.N
		case entities.VendorStatusRejected:
			stats.Rejected = rw.N
		}
	}
	return stats, nil
}

func toModel(v *entities.Vendor) *models.Vendor {
	return &models.Vendor{
		VendorID: v.VendorID,
		Status:   string(v.Status),

		Name:          v.Name,
		Age:           v.Age,
		Gender:        v.Gender.String,
		DateOfBirth:   v.DateOfBirth,
		FathersName:   v.FathersName.String,
		MothersName:   v.MothersName.String,
		MaritalStatus: v.MaritalStatus.String,
		Nationality:   v.Nationality.String,

		Email:               v.Email,
		Phone:               v.Phone,
		AlternatePhone:      v.AlternatePhone.String,
		AadhaarLinkedMobile: v.AadhaarLinkedMobile.String,

		CurrentAddress:   v.CurrentAddress,
		CurrentCity:      v.CurrentCity.String,
		CurrentState:     v.CurrentState.String,
		CurrentPincode:   v.CurrentPincode.String,
		PermanentAddress: v.PermanentAddress.String,
		PermanentCity:    v.PermanentCity.String,
		PermanentState:   v.PermanentState.String,
		PermanentPincode: v.PermanentPincode.String,
		Country:          v.Country.String,

		PANNumber:      v.PANNumber.String,
		AadhaarNumber:  v.AadhaarNumber.String,
		PassportNumber: v.PassportNumber.String,
		VoterID:        v.VoterID.String,
		DrivingLicense: v.DrivingLicense.String,

		BusinessName:     v.BusinessName.String,
		BusinessType:     v.BusinessType.String,
		BusinessCategory: v.BusinessCategory.String,
		GSTNumber:        v.GSTNumber.String,

		IsStudent:           v.IsStudent.String,
		CollegeID:           v.CollegeID.String,
		StudentLocalAddress: v.StudentLocalAddress.String,

		Occupation:    v.Occupation.String,
		CompanyName:   v.CompanyName.String,
		AnnualIncome:  v.AnnualIncome.String,
		SourceOfFunds: v.SourceOfFunds.String,

		IsMinor:                v.IsMinor.String,
		GuardiansName:          v.GuardiansName.String,
		GuardiansPAN:           v.GuardiansPAN.String,
		GuardiansAadhaar:       v.GuardiansAadhaar.String,
		BirthCertificateNumber: v.BirthCertificateNumber.String,

		IsNRIOCI:         v.IsNRIOCI.String,
		VisaNumber:       v.VisaNumber.String,
		OCICardNumber:    v.OCICardNumber.String,
		OverseasAddress:  v.OverseasAddress.String,
		FATCADeclaration: v.FATCADeclaration.String,

		BankName:      v.BankName.String,
		AccountNumber: v.AccountNumber.String,
		IFSCCode:      v.IFSCCode.String,

		Notes:           v.Notes.String,
		RejectionReason: v.RejectionReason.String,
	}
}

func toEntity(m *models.Vendor) *entities.Vendor {
	return &entities.Vendor{
		VendorID: m.VendorID,
		Status:   entities.VendorStatus(m.Status),

		Name:          m.Name,
		Age:           m.Age,
		Gender:        optString(m.Gender),
		DateOfBirth:   m.DateOfBirth,
		FathersName:   optString(m.FathersName),
		MothersName:   optString(m.MothersName),
		MaritalStatus: optString(m.MaritalStatus),
		Nationality:   optString(m.Nationality),

		Email:               m.Email,
		Phone:               m.Phone,
		AlternatePhone:      optString(m.AlternatePhone),
		AadhaarLinkedMobile: optString(m.AadhaarLinkedMobile),

		CurrentAddress:   m.CurrentAddress,
		CurrentCity:      optString(m.CurrentCity),
		CurrentState:     optString(m.CurrentState),
		CurrentPincode:   optString(m.CurrentPincode),
		PermanentAddress: optString(m.PermanentAddress),
		PermanentCity:    optString(m.PermanentCity),
		PermanentState:   optString(m.PermanentState),
		PermanentPincode: optString(m.PermanentPincode),
		Country:          optString(m.Country),

		PANNumber:      optString(m.PANNumber),
		AadhaarNumber:  optString(m.AadhaarNumber),
		PassportNumber: optString(m.PassportNumber),
		VoterID:        optString(m.VoterID),
		DrivingLicense: optString(m.DrivingLicense),

		BusinessName:     optString(m.BusinessName),
		BusinessType:     optString(m.BusinessType),
		BusinessCategory: optString(m.BusinessCategory),
		GSTNumber:        optString(m.GSTNumber),

		IsStudent:           optString(m.IsStudent),
		CollegeID:           optString(m.CollegeID),
		StudentLocalAddress: optString(m.StudentLocalAddress),

		Occupation:    optString(m.Occupation),
		CompanyName:   optString(m.CompanyName),
		AnnualIncome:  optString(m.AnnualIncome),
		SourceOfFunds: optString(m.SourceOfFunds),

		IsMinor:                optString(m.IsMinor),
		GuardiansName:          optString(m.GuardiansName),
		GuardiansPAN:           optString(m.GuardiansPAN),
		GuardiansAadhaar:       optString(m.GuardiansAadhaar),
		BirthCertificateNumber: optString(m.BirthCertificateNumber),

		IsNRIOCI:         optString(m.IsNRIOCI),
		VisaNumber:       optString(m.VisaNumber),
		OCICardNumber:    optString(m.OCICardNumber),
		OverseasAddress:  optString(m.OverseasAddress),
		FATCADeclaration: optString(m.FATCADeclaration),

		BankName:      optString(m.BankName),
		AccountNumber: optString(m.AccountNumber),
		IFSCCode:      optString(m.IFSCCode),

		Notes:           optString(m.Notes),
		RejectionReason: optString(m.RejectionReason),

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func optString(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
