// internals/features/journals/model/journal_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	bModel "emailcontacts_backend/internals/features/brands/model"

	"github.com/google/uuid"
)

/*
Status journal (sesuai nilai di DB):
- "active"
- "inactive"
*/
type JournalStatus string

const (
	JournalStatusActive   JournalStatus = "active"
	JournalStatusInactive JournalStatus = "inactive"
)

func (s *JournalStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = JournalStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = JournalStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = JournalStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (s JournalStatus) Value() (driver.Value, error) {
	return string(JournalStatus(strings.ToLower(strings.TrimSpace(string(s))))), nil
}

type JournalModel struct {
	// PK
	JournalID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:journal_id" json:"journal_id"`

	// Identitas
	JournalName      string  `gorm:"type:varchar(200);not null;column:journal_name" json:"journal_name"`
	JournalISSN      *string `gorm:"type:varchar(20);column:journal_issn" json:"journal_issn,omitempty"`
	JournalSubject   *string `gorm:"type:varchar(150);column:journal_subject" json:"journal_subject,omitempty"`
	JournalFrequency *string `gorm:"type:varchar(50);column:journal_frequency" json:"journal_frequency,omitempty"`

	// Status
	JournalStatus JournalStatus `gorm:"type:varchar(20);not null;default:'active';column:journal_status" json:"journal_status"`

	// Relasi brand (wajib)
	JournalBrandID uuid.UUID          `gorm:"type:uuid;not null;index;column:journal_brand_id" json:"journal_brand_id"`
	Brand          *bModel.BrandModel `gorm:"foreignKey:JournalBrandID;references:BrandID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"brand,omitempty"`

	// Audit (hard delete)
	JournalCreatedAt time.Time `gorm:"column:journal_created_at;autoCreateTime" json:"journal_created_at"`
}

func (JournalModel) TableName() string { return "journals" }
