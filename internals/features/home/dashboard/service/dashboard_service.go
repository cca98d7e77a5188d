// internals/features/home/dashboard/service/dashboard_service.go
package service

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	bDTO "emailcontacts_backend/internals/features/brands/dto"
	bModel "emailcontacts_backend/internals/features/brands/model"
	cModel "emailcontacts_backend/internals/features/contacts/model"
	dDTO "emailcontacts_backend/internals/features/home/dashboard/dto"
	jDTO "emailcontacts_backend/internals/features/journals/dto"
	jModel "emailcontacts_backend/internals/features/journals/model"
)

type DashboardService struct {
	DB *gorm.DB

	// bisa dioverride di test
	Now func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db, Now: time.Now}
}

// Build menghitung seluruh agregasi dashboard dalam satu pass logis.
// Batas bulan dihitung SEKALI dari now supaya current-month count dan
// percent change memakai boundary yang sama.
func (s *DashboardService) Build(ctx context.Context) (*dDTO.DashboardResponse, error) {
	db := s.DB.WithContext(ctx)
	now := s.Now()

	out := &dDTO.DashboardResponse{}

	if err := db.Model(&cModel.ContactModel{}).Count(&out.TotalContacts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&jModel.JournalModel{}).Count(&out.TotalJournals).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&jModel.JournalModel{}).
		Where("journal_status = ?", jModel.JournalStatusActive).
		Count(&out.ActiveJournals).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&cModel.ContactModel{}).
		Where("contact_created_at >= ?", now.AddDate(0, 0, -7)).
		Count(&out.NewContacts7D).Error; err != nil {
		return nil, err
	}

	// ===== percent change bulan ini vs bulan lalu =====
	currStart := MonthStart(now)
	prevStart := currStart.AddDate(0, -1, 0)

	var currCount, prevCount int64
	if err := db.Model(&cModel.ContactModel{}).
		Where("contact_created_at >= ?", currStart).
		Count(&currCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&cModel.ContactModel{}).
		Where("contact_created_at >= ? AND contact_created_at < ?", prevStart, currStart).
		Count(&prevCount).Error; err != nil {
		return nil, err
	}
	out.PercentChange = PercentChange(currCount, prevCount)

	// ===== total kontak per brand (brand tanpa kontak tetap muncul, 0) =====
	out.BrandData = []dDTO.BrandCount{}
	if err := db.Table("brands").
		Select("brands.brand_id, brands.brand_name, COUNT(contacts.contact_id) AS total_contacts").
		Joins("LEFT JOIN journals ON journals.journal_brand_id = brands.brand_id").
		Joins("LEFT JOIN contacts ON contacts.contact_journal_id = journals.journal_id").
		Group("brands.brand_id, brands.brand_name").
		Order("brands.brand_name ASC").
		Scan(&out.BrandData).Error; err != nil {
		return nil, err
	}

	// ===== trend 6 bulan terakhir (bucket kosong diisi 0) =====
	// Bucket DB dan key Go dihitung sama-sama di UTC; kalau beda timezone,
	// baris dekat batas bulan jatuh ke key yang tidak pernah match
	nowUTC := now.UTC()
	trendStart := MonthStart(nowUTC).AddDate(0, -5, 0)
	var rawTrend []dDTO.MonthBucket
	if err := db.Table("contacts").
		Select("to_char(date_trunc('month', contact_created_at AT TIME ZONE 'UTC'), 'YYYY-MM') AS month, COUNT(*) AS count").
		Where("contact_created_at >= ?", trendStart).
		Group("1").
		Scan(&rawTrend).Error; err != nil {
		return nil, err
	}
	byMonth := make(map[string]int64, len(rawTrend))
	for _, b := range rawTrend {
		byMonth[b.Month] = b.Count
	}
	months := TrailingMonthKeys(nowUTC, 6)
	out.MonthlyTrend = make([]dDTO.MonthBucket, 0, len(months))
	for _, m := range months {
		out.MonthlyTrend = append(out.MonthlyTrend, dDTO.MonthBucket{Month: m, Count: byMonth[m]})
	}

	// ===== top 5 journal; seri dipecah nama ASC biar stabil =====
	out.TopJournals = []dDTO.TopJournal{}
	if err := db.Table("journals").
		Select("journals.journal_id, journals.journal_name, brands.brand_name, COUNT(contacts.contact_id) AS total_contacts").
		Joins("JOIN brands ON brands.brand_id = journals.journal_brand_id").
		Joins("LEFT JOIN contacts ON contacts.contact_journal_id = journals.journal_id").
		Group("journals.journal_id, journals.journal_name, brands.brand_name").
		Order("total_contacts DESC, journals.journal_name ASC").
		Limit(5).
		Scan(&out.TopJournals).Error; err != nil {
		return nil, err
	}

	// ===== listing penuh untuk cache klien =====
	var brands []bModel.BrandModel
	if err := db.Order("brand_name ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	out.Brands = bDTO.NewBrandResponses(brands)

	var journals []jModel.JournalModel
	if err := db.Preload("Brand").Order("journal_name ASC").Find(&journals).Error; err != nil {
		return nil, err
	}
	out.Journals = jDTO.NewJournalResponses(journals)

	return out, nil
}

/* ===================== HELPERS ===================== */

// Awal bulan kalender dari t (jam 00:00, timezone t)
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Perubahan persen bulan ini vs bulan lalu, 1 desimal.
// 0 kalau pembandingnya 0 (hindari div-by-zero / NaN).
func PercentChange(curr, prev int64) float64 {
	if prev == 0 {
		return 0
	}
	pct := (float64(curr-prev) / float64(prev)) * 100
	return math.Round(pct*10) / 10
}

// Key "YYYY-MM" untuk n bulan terakhir termasuk bulan berjalan, urut naik
func TrailingMonthKeys(now time.Time, n int) []string {
	start := MonthStart(now).AddDate(0, -(n - 1), 0)
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, start.AddDate(0, i, 0).Format("2006-01"))
	}
	return keys
}
