package service

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

func TestParseContactsCSV_HeaderHandling(t *testing.T) {
	t.Run("header case-insensitive dan di-trim", func(t *testing.T) {
		in := " Name , EMAIL ,Phone\nAnn,ANN@X.com,555\n"
		res, err := ParseContactsCSV(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, res.Candidates, 1)
		assert.Equal(t, "Ann", res.Candidates[0].Name)
		assert.Equal(t, "ann@x.com", res.Candidates[0].Email) // email selalu lower-case
		require.NotNil(t, res.Candidates[0].Phone)
		assert.Equal(t, "555", *res.Candidates[0].Phone)
	})

	t.Run("header wajib hilang", func(t *testing.T) {
		in := "name,phone\nAnn,555\n"
		_, err := ParseContactsCSV(strings.NewReader(in))
		var mh *MissingHeadersError
		require.ErrorAs(t, err, &mh)
		assert.Equal(t, []string{"email"}, mh.Missing)
	})

	t.Run("file kosong", func(t *testing.T) {
		_, err := ParseContactsCSV(strings.NewReader(""))
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
	})

	t.Run("CSV rusak", func(t *testing.T) {
		in := "name,email\n\"unclosed,a@x.com\n"
		_, err := ParseContactsCSV(strings.NewReader(in))
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.NotEmpty(t, pe.Details)
	})

	t.Run("beberapa error parse dikumpulkan, bukan cuma yang pertama", func(t *testing.T) {
		in := strings.Join([]string{
			"name,email",
			`an"n,a@x.com`, // bare quote
			`bo"b,b@x.com`, // bare quote lagi
			"Cy,cy@x.com",
		}, "\n") + "\n"
		_, err := ParseContactsCSV(strings.NewReader(in))
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Len(t, pe.Details, 2)
	})
}

func TestParseContactsCSV_YearBounds(t *testing.T) {
	cases := []struct {
		name    string
		year    string
		wantErr bool
	}{
		{"batas bawah diterima", "1900", false},
		{"batas atas diterima", "2100", false},
		{"kosong diterima", "", false},
		{"di bawah batas ditolak", "1899", true},
		{"di atas batas ditolak", "2101", true},
		{"bukan angka ditolak", "abc", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := "name,email,year\nAnn,ann@x.com," + tc.year + "\n"
			res, err := ParseContactsCSV(strings.NewReader(in))
			require.NoError(t, err)
			assert.Equal(t, 1, res.Total)
			if tc.wantErr {
				assert.Equal(t, 1, res.Errors)
				assert.Empty(t, res.Candidates)
			} else {
				assert.Equal(t, 0, res.Errors)
				require.Len(t, res.Candidates, 1)
			}
		})
	}
}

func TestParseContactsCSV_RowIndependence(t *testing.T) {
	// N baris valid + M baris tanpa email → N kandidat dan M error, bukan N+M error
	in := strings.Join([]string{
		"name,email",
		"A,a@x.com",
		"B,b@x.com",
		"C,", // tanpa email
		"D,d@x.com",
		",e@x.com", // tanpa name
	}, "\n") + "\n"

	res, err := ParseContactsCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 2, res.Errors)
	assert.Len(t, res.Candidates, 3)
	assert.Len(t, res.ErrorDetails, 2)
	assert.Contains(t, res.ErrorDetails[0], "baris 4")
}

func TestParseContactsCSV_InFileDuplicates(t *testing.T) {
	in := strings.Join([]string{
		"name,email",
		"Ann,ann@x.com",
		"Ann lagi,ANN@x.com", // email sama setelah lower-case
		"Bob,bob@x.com",
	}, "\n") + "\n"

	res, err := ParseContactsCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Duplicates)
	assert.Len(t, res.Candidates, 2)
}

func TestParseContactsCSV_ErrorDetailsCapped(t *testing.T) {
	var b strings.Builder
	b.WriteString("name,email\n")
	for i := 0; i < 25; i++ {
		b.WriteString(",missing-name@x.com\n")
	}
	res, err := ParseContactsCSV(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, 25, res.Errors)
	assert.Len(t, res.ErrorDetails, 10) // maks 10 contoh
}

const scenarioCSV = "name,email,phone,article_title,year\n" +
	"Ann,ann@x.com,,Paper A,2023\n" +
	"Bob,bob@x.com,555,,\n" +
	",bad@x.com,,,\n" +
	"Cy,cy@x.com,,,1850\n"

func expectImportLogInsert(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contact_import_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"import_log_id"}).AddRow(uuid.New()))
	mock.ExpectCommit()
}

func TestImportService_Import_FirstRun(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &ImportService{DB: db, BatchSize: 1000}
	journalID := uuid.New()

	// dua kandidat masuk semua (RETURNING dua baris)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}).
			AddRow(uuid.New()).AddRow(uuid.New()))
	mock.ExpectCommit()
	expectImportLogInsert(mock)

	sum, err := svc.Import(context.Background(), journalID, strings.NewReader(scenarioCSV), "contacts.csv")
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 2, sum.Imported)
	assert.Equal(t, 0, sum.Duplicates)
	assert.Equal(t, 2, sum.Errors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportService_Import_IdempotentRerun(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &ImportService{DB: db, BatchSize: 1000}
	journalID := uuid.New()

	// re-run file identik: ON CONFLICT DO NOTHING → tidak ada baris kembali
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}))
	mock.ExpectCommit()
	expectImportLogInsert(mock)

	sum, err := svc.Import(context.Background(), journalID, strings.NewReader(scenarioCSV), "contacts.csv")
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 0, sum.Imported)
	assert.Equal(t, 2, sum.Duplicates) // semua kandidat valid jadi duplikat
	assert.Equal(t, 2, sum.Errors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Email sama di journal berbeda bukan duplikat: kunci konflik harus
// komposit (contact_email, contact_journal_id), bukan email saja
func TestImportService_Import_SameEmailDifferentJournals(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &ImportService{DB: db, BatchSize: 1000}

	in := "name,email\nAnn,ann@x.com\n"
	insertSQL := `INSERT INTO "contacts" .+ ON CONFLICT \("contact_email","contact_journal_id"\) DO NOTHING`

	for _, journalID := range []uuid.UUID{uuid.New(), uuid.New()} {
		mock.ExpectBegin()
		mock.ExpectQuery(insertSQL).
			WillReturnRows(sqlmock.NewRows([]string{"contact_id"}).AddRow(uuid.New()))
		mock.ExpectCommit()
		expectImportLogInsert(mock)

		sum, err := svc.Import(context.Background(), journalID, strings.NewReader(in), "contacts.csv")
		require.NoError(t, err)
		assert.Equal(t, 1, sum.Imported)
		assert.Equal(t, 0, sum.Duplicates)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportService_Import_Batching(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &ImportService{DB: db, BatchSize: 2}
	journalID := uuid.New()

	in := strings.Join([]string{
		"name,email",
		"A,a@x.com",
		"B,b@x.com",
		"C,c@x.com",
	}, "\n") + "\n"

	// batch 1: dua baris masuk
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}).
			AddRow(uuid.New()).AddRow(uuid.New()))
	mock.ExpectCommit()
	// batch 2: satu baris, ternyata duplikat di DB
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"contact_id"}))
	mock.ExpectCommit()
	expectImportLogInsert(mock)

	sum, err := svc.Import(context.Background(), journalID, strings.NewReader(in), "contacts.csv")
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 2, sum.Imported)
	assert.Equal(t, 1, sum.Duplicates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportService_Import_CancelledContextStopsBatches(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &ImportService{DB: db, BatchSize: 10}
	journalID := uuid.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // klien sudah putus sebelum batch pertama

	expectImportLogInsert(mock)

	in := "name,email\nA,a@x.com\n"
	sum, err := svc.Import(ctx, journalID, strings.NewReader(in), "contacts.csv")
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Imported)
	assert.NoError(t, mock.ExpectationsWereMet())
}
