// internals/features/home/dashboard/dto/dashboard_dto.go
package dto

import (
	bDTO "emailcontacts_backend/internals/features/brands/dto"
	jDTO "emailcontacts_backend/internals/features/journals/dto"

	"github.com/google/uuid"
)

// Total kontak per brand (dijumlah lewat journal-journalnya)
type BrandCount struct {
	BrandID       uuid.UUID `json:"brand_id"`
	BrandName     string    `json:"brand_name"`
	TotalContacts int64     `json:"total_contacts"`
}

// Bucket per bulan kalender, key "YYYY-MM"
type MonthBucket struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type TopJournal struct {
	JournalID     uuid.UUID `json:"journal_id"`
	JournalName   string    `json:"journal_name"`
	BrandName     string    `json:"brand_name"`
	TotalContacts int64     `json:"total_contacts"`
}

type DashboardResponse struct {
	TotalContacts  int64 `json:"total_contacts"`
	TotalJournals  int64 `json:"total_journals"`
	ActiveJournals int64 `json:"active_journals"`
	NewContacts7D  int64 `json:"new_contacts_7d"`

	// Bulan kalender berjalan vs bulan sebelumnya; 0 kalau bulan lalu kosong
	PercentChange float64 `json:"percent_change"`

	BrandData    []BrandCount  `json:"brand_data"`
	MonthlyTrend []MonthBucket `json:"monthly_trend"`
	TopJournals  []TopJournal  `json:"top_journals"`

	// Listing penuh untuk cache sisi klien (UI di luar scope core)
	Brands   []bDTO.BrandResponse   `json:"brands"`
	Journals []jDTO.JournalResponse `json:"journals"`
}
