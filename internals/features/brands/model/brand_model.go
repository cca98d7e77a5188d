// internals/features/brands/model/brand_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
)

/*
Status brand (sesuai nilai di DB):
- "active"
- "inactive"
*/
type BrandStatus string

const (
	BrandStatusActive   BrandStatus = "active"
	BrandStatusInactive BrandStatus = "inactive"
)

// Pastikan selalu lower-case saat scan/save (aman bila suatu saat sumbernya mixed-case)
func (s *BrandStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = BrandStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = BrandStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = BrandStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (s BrandStatus) Value() (driver.Value, error) {
	return string(BrandStatus(strings.ToLower(strings.TrimSpace(string(s))))), nil
}

type BrandModel struct {
	// PK
	BrandID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:brand_id" json:"brand_id"`

	// Identitas (unik case-insensitive; index LOWER() dibuat di migrasi DB,
	// uniqueIndex di sini jadi jaring pengaman level kolom)
	BrandName string `gorm:"type:varchar(150);not null;uniqueIndex:ux_brands_name;column:brand_name" json:"brand_name"`
	BrandCode string `gorm:"type:varchar(20);not null;uniqueIndex:ux_brands_code;column:brand_code" json:"brand_code"`

	// Status
	BrandStatus BrandStatus `gorm:"type:varchar(20);not null;default:'active';column:brand_status" json:"brand_status"`

	// Audit (hard delete, tanpa deleted_at)
	BrandCreatedAt time.Time  `gorm:"column:brand_created_at;autoCreateTime" json:"brand_created_at"`
	BrandUpdatedAt *time.Time `gorm:"column:brand_updated_at;autoUpdateTime" json:"brand_updated_at,omitempty"`
}

func (BrandModel) TableName() string { return "brands" }
