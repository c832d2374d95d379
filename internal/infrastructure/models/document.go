package models

import "time"

type VendorDocument struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	VendorID   string `gorm:"type:varchar(20);not null;uniqueIndex:idx_vendor_doc_type;index"`
	DocType    string `gorm:"type:varchar(50);not null;uniqueIndex:idx_vendor_doc_type"`
	FilePath   string `gorm:"type:text;not null"`
	UploadedAt time.Time
}

func (VendorDocument) TableName() string {
	return "vendor_documents"
}
