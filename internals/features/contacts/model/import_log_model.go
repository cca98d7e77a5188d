// internals/features/contacts/model/import_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Satu baris per import run; error details disimpan sebagai JSON (maks 10 contoh)
type ImportLogModel struct {
	ImportLogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:import_log_id" json:"import_log_id"`

	ImportLogJournalID uuid.UUID `gorm:"type:uuid;not null;index;column:import_log_journal_id" json:"import_log_journal_id"`
	ImportLogFilename  string    `gorm:"type:varchar(255);not null;column:import_log_filename" json:"import_log_filename"`

	ImportLogTotal      int `gorm:"not null;column:import_log_total" json:"import_log_total"`
	ImportLogImported   int `gorm:"not null;column:import_log_imported" json:"import_log_imported"`
	ImportLogDuplicates int `gorm:"not null;column:import_log_duplicates" json:"import_log_duplicates"`
	ImportLogErrors     int `gorm:"not null;column:import_log_errors" json:"import_log_errors"`

	ImportLogErrorDetails datatypes.JSON `gorm:"column:import_log_error_details" json:"import_log_error_details,omitempty"`

	ImportLogCreatedAt time.Time `gorm:"column:import_log_created_at;autoCreateTime" json:"import_log_created_at"`
}

func (ImportLogModel) TableName() string { return "contact_import_logs" }
