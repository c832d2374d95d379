package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createVendorTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE vendors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		vendor_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		gender TEXT,
		date_of_birth TEXT NOT NULL,
		fathers_name TEXT,
		mothers_name TEXT,
		marital_status TEXT,
		nationality TEXT,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL,
		alternate_phone TEXT,
		aadhaar_linked_mobile TEXT,
		current_address TEXT NOT NULL,
		current_city TEXT,
		current_state TEXT,
		current_pincode TEXT,
		permanent_address TEXT,
		permanent_city TEXT,
		permanent_state TEXT,
		permanent_pincode TEXT,
		country TEXT,
		pan_number TEXT,
		aadhaar_number TEXT,
		passport_number TEXT,
		voter_id TEXT,
		driving_license TEXT,
		business_name TEXT,
		business_type TEXT,
		business_category TEXT,
		gst_number TEXT,
		is_student TEXT,
		college_id TEXT,
		student_local_address TEXT,
		occupation TEXT,
		company_name TEXT,
		annual_income TEXT,
		source_of_funds TEXT,
		is_minor TEXT,
		guardians_name TEXT,
		guardians_pan TEXT,
		guardians_aadhaar TEXT,
		birth_certificate_number TEXT,
		is_nri_oci TEXT,
		visa_number TEXT,
		oci_card_number TEXT,
		overseas_address TEXT,
		fatca_declaration TEXT,
		bank_name TEXT,
		account_number TEXT,
		ifsc_code TEXT,
		notes TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		rejection_reason TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createDocumentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE vendor_documents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		vendor_id TEXT NOT NULL,
		doc_type TEXT NOT NULL,
		file_path TEXT NOT NULL,
		uploaded_at DATETIME,
		UNIQUE(vendor_id, doc_type)
	);`)
}

func createAuditTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE audit_entries (
		id TEXT PRIMARY KEY,
		vendor_id TEXT NOT NULL,
		action_by TEXT NOT NULL,
		new_status TEXT NOT NULL,
		comment TEXT,
		timestamp DATETIME NOT NULL
	);`)
}

func createAdminTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admins (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSequenceTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE vendor_sequences (
		name TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	);`)
}
