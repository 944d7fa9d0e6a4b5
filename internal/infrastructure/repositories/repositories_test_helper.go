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

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		phone TEXT,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'vendor',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createApplicationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE vendor_applications (
		id TEXT PRIMARY KEY,
		application_id TEXT UNIQUE NOT NULL,
		vendor_id TEXT UNIQUE,
		user_id TEXT,
		owner_name TEXT NOT NULL,
		business_name TEXT NOT NULL,
		business_type TEXT NOT NULL,
		business_description TEXT,
		gender TEXT DEFAULT 'male',
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		pincode TEXT NOT NULL,
		aadhaar_last4 TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		payment_status TEXT NOT NULL DEFAULT 'pending',
		personal_verified BOOLEAN NOT NULL DEFAULT 0,
		personal_verified_by TEXT,
		personal_verified_at DATETIME,
		personal_verify_notes TEXT,
		business_verified BOOLEAN NOT NULL DEFAULT 0,
		business_verified_by TEXT,
		business_verified_at DATETIME,
		business_verify_notes TEXT,
		reviewed_by TEXT,
		reviewed_at DATETIME,
		rejection_reason TEXT,
		lock_version INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createDocumentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE documents (
		id TEXT PRIMARY KEY,
		application_id TEXT NOT NULL,
		document_type TEXT NOT NULL,
		file_path TEXT NOT NULL,
		file_url TEXT,
		verification_status TEXT NOT NULL DEFAULT 'pending',
		remarks TEXT,
		verified_by TEXT,
		verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPaymentTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		application_id TEXT NOT NULL,
		amount INTEGER NOT NULL,
		currency TEXT NOT NULL DEFAULT 'INR',
		gateway_order_id TEXT UNIQUE NOT NULL,
		gateway_payment_id TEXT,
		gateway_signature TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		paid_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE vendor_subscriptions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		application_id TEXT NOT NULL,
		payment_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		activated_at DATETIME NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCertificateTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE certificates (
		id TEXT PRIMARY KEY,
		application_id TEXT NOT NULL,
		certificate_number TEXT UNIQUE NOT NULL,
		certificate_type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		issued_at DATETIME NOT NULL,
		valid_until DATETIME NOT NULL,
		revoked_at DATETIME,
		revoke_reason TEXT,
		download_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAuditLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE audit_logs (
		id TEXT PRIMARY KEY,
		application_id TEXT,
		entity_type TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		actor_id TEXT,
		action TEXT NOT NULL,
		old_values TEXT,
		new_values TEXT,
		created_at DATETIME
	);`)
}
