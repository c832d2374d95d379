package usecases_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"vendor-kyc.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(ctx context.Context, vendor *entities.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) GetByVendorID(ctx context.Context, vendorID string) (*entities.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetByVendorIDForUpdate(ctx context.Context, vendorID string) (*entities.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetByEmail(ctx context.Context, email string) (*entities.Vendor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Vendor), args.Error(1)
}

func (m *MockVendorRepository) UpdateStatus(ctx context.Context, vendorID string, status entities.VendorStatus, rejectionReason string) error {
	args := m.Called(ctx, vendorID, status, rejectionReason)
	return args.Error(0)
}

func (m *MockVendorRepository) Touch(ctx context.Context, vendorID string) error {
	args := m.Called(ctx, vendorID)
	return args.Error(0)
}

func (m *MockVendorRepository) List(ctx context.Context, status entities.VendorStatus, limit, offset int) ([]*entities.Vendor, int, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Vendor), args.Int(1), args.Error(2)
}

func (m *MockVendorRepository) ListVendorIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVendorRepository) Stats(ctx context.Context) (*entities.VendorStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VendorStats), args.Error(1)
}

// Mock DocumentRepository
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Upsert(ctx context.Context, doc *entities.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) Clear(ctx context.Context, vendorID string, types []entities.DocumentType) ([]string, error) {
	args := m.Called(ctx, vendorID, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDocumentRepository) Get(ctx context.Context, vendorID string, docType entities.DocumentType) (*entities.Document, error) {
	args := m.Called(ctx, vendorID, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListByVendor(ctx context.Context, vendorID string) ([]*entities.Document, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListAllPaths(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Mock AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Record(ctx context.Context, entry *entities.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListFor(ctx context.Context, vendorID string) ([]*entities.AuditEntry, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AuditEntry), args.Error(1)
}

// Mock AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)
	return args.Error(0)
}

// Mock SequenceRepository
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) NextVendorSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock FileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Write(ctx context.Context, vendorID, filename string, content io.Reader) (string, error) {
	args := m.Called(ctx, vendorID, filename, content)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockFileStore) Exists(ctx context.Context, ref string) bool {
	args := m.Called(ctx, ref)
	return args.Bool(0)
}

func (m *MockFileStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
