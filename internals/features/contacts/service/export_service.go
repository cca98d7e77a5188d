// internals/features/contacts/service/export_service.go
package service

import (
	"context"
	"database/sql"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"emailcontacts_backend/internals/constants"
	cModel "emailcontacts_backend/internals/features/contacts/model"
)

// Filter export; semua opsional, di-AND-kan.
// EndDate inklusif sampai akhir hari (tanggal penuh ikut terekspor).
type ExportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	JournalID *uuid.UUID
	BrandID   *uuid.UUID
}

type ExportService struct {
	DB *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{DB: db}
}

func (s *ExportService) buildQuery(ctx context.Context, f ExportFilter) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(&cModel.ContactModel{})

	if f.StartDate != nil {
		q = q.Where("contact_created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		// end-of-day inklusif: < hari berikutnya
		q = q.Where("contact_created_at < ?", f.EndDate.AddDate(0, 0, 1))
	}
	if f.JournalID != nil {
		q = q.Where("contact_journal_id = ?", *f.JournalID)
	}
	if f.BrandID != nil {
		q = q.Joins("JOIN journals ON journals.journal_id = contacts.contact_journal_id").
			Where("journals.journal_brand_id = ?", *f.BrandID)
	}

	return q.Order("contact_created_at DESC")
}

// WriteCSV men-stream hasil query baris per baris ke writer —
// tanpa paginasi, tanpa materialisasi seluruh result set di memori.
// Result set kosong menghasilkan CSV berisi header saja.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer, f ExportFilter) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(constants.ExportColumns); err != nil {
		return err
	}

	rows, err := s.buildQuery(ctx, f).
		Select("contact_name, contact_email, contact_phone, contact_article_title, contact_year").
		Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var (
			name, email  string
			phone, title sql.NullString
			year         sql.NullInt64
		)
		if err := rows.Scan(&name, &email, &phone, &title, &year); err != nil {
			return err
		}

		yearStr := ""
		if year.Valid {
			yearStr = strconv.FormatInt(year.Int64, 10)
		}
		if err := cw.Write([]string{name, email, phone.String, title.String, yearStr}); err != nil {
			return err
		}

		n++
		if n%500 == 0 {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
