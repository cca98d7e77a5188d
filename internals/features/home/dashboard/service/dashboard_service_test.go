package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dDTO "emailcontacts_backend/internals/features/home/dashboard/dto"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gdb, mock
}

func TestDashboardService_Build(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	svc := &DashboardService{DB: db, Now: func() time.Time { return now }}

	currStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	prevStart := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	trendStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	count := func(n int64) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"count"}).AddRow(n)
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts"`).WillReturnRows(count(10))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "journals"`).WillReturnRows(count(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "journals" WHERE journal_status`).
		WithArgs("active").WillReturnRows(count(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts" WHERE contact_created_at >=`).
		WithArgs(now.AddDate(0, 0, -7)).WillReturnRows(count(4))

	// bulan berjalan dan bulan lalu harus memakai boundary yang sama
	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts" WHERE contact_created_at >=`).
		WithArgs(currStart).WillReturnRows(count(6))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts" WHERE contact_created_at >= .+ AND contact_created_at <`).
		WithArgs(prevStart, currStart).WillReturnRows(count(4))

	// brand tanpa kontak tetap muncul lewat LEFT JOIN
	acmeID, emptyID := uuid.New(), uuid.New()
	mock.ExpectQuery(`LEFT JOIN journals ON journals\.journal_brand_id = brands\.brand_id`).
		WillReturnRows(sqlmock.NewRows([]string{"brand_id", "brand_name", "total_contacts"}).
			AddRow(acmeID, "Acme Press", int64(10)).
			AddRow(emptyID, "Belum Ada", int64(0)))

	// trend: bucket DB dihitung di UTC, key Go juga
	mock.ExpectQuery(`to_char\(date_trunc\('month', contact_created_at AT TIME ZONE 'UTC'\), 'YYYY-MM'\)`).
		WithArgs(trendStart).
		WillReturnRows(sqlmock.NewRows([]string{"month", "count"}).
			AddRow("2026-06", int64(1)).
			AddRow("2026-08", int64(6)))

	mock.ExpectQuery(`FROM "journals" JOIN brands ON brands\.brand_id = journals\.journal_brand_id`).
		WillReturnRows(sqlmock.NewRows([]string{"journal_id", "journal_name", "brand_name", "total_contacts"}).
			AddRow(uuid.New(), "Journal A", "Acme Press", int64(10)))

	mock.ExpectQuery(`SELECT \* FROM "brands" ORDER BY brand_name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"brand_id", "brand_name", "brand_code", "brand_status"}))
	mock.ExpectQuery(`SELECT \* FROM "journals" ORDER BY journal_name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"journal_id", "journal_name"}))

	out, err := svc.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), out.TotalContacts)
	assert.Equal(t, int64(3), out.TotalJournals)
	assert.Equal(t, int64(2), out.ActiveJournals)
	assert.Equal(t, int64(4), out.NewContacts7D)
	assert.Equal(t, 50.0, out.PercentChange) // 6 vs 4

	require.Len(t, out.BrandData, 2)
	assert.Equal(t, int64(0), out.BrandData[1].TotalContacts)

	// 6 bucket urut naik, yang tidak ada barisnya diisi 0
	require.Len(t, out.MonthlyTrend, 6)
	assert.Equal(t, dDTO.MonthBucket{Month: "2026-03", Count: 0}, out.MonthlyTrend[0])
	assert.Equal(t, dDTO.MonthBucket{Month: "2026-06", Count: 1}, out.MonthlyTrend[3])
	assert.Equal(t, dDTO.MonthBucket{Month: "2026-08", Count: 6}, out.MonthlyTrend[5])

	require.Len(t, out.TopJournals, 1)
	assert.Equal(t, "Journal A", out.TopJournals[0].JournalName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonthStart(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	in := time.Date(2026, 8, 29, 13, 45, 12, 0, loc)
	got := MonthStart(in)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, loc), got)
}

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name string
		curr int64
		prev int64
		want float64
	}{
		{"bulan lalu kosong → 0, bukan NaN", 10, 0, 0},
		{"dua-duanya kosong", 0, 0, 0},
		{"naik 50%", 15, 10, 50},
		{"turun 50%", 5, 10, -50},
		{"dibulatkan 1 desimal", 1, 3, -66.7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PercentChange(tc.curr, tc.prev))
		})
	}
}

func TestTrailingMonthKeys(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	got := TrailingMonthKeys(now, 6)
	assert.Equal(t, []string{"2026-03", "2026-04", "2026-05", "2026-06", "2026-07", "2026-08"}, got)
}

func TestTrailingMonthKeys_CrossYear(t *testing.T) {
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	got := TrailingMonthKeys(now, 6)
	assert.Equal(t, []string{"2025-08", "2025-09", "2025-10", "2025-11", "2025-12", "2026-01"}, got)
}
