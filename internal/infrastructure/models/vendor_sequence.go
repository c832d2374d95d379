package models

// VendorSequence is a single-row counter backing vendor ID allocation.
// The row is incremented under an exclusive lock inside the registration
// transaction.
type VendorSequence struct {
	Name  string `gorm:"type:varchar(50);primaryKey"`
	Value int64  `gorm:"not null"`
}

func (VendorSequence) TableName() string {
	return "vendor_sequences"
}
