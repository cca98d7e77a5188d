// internals/features/contacts/service/import_service.go
package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"emailcontacts_backend/internals/configs"
	"emailcontacts_backend/internals/constants"
	cModel "emailcontacts_backend/internals/features/contacts/model"
)

/* ===================== ERRORS (struktural, gagalkan seluruh request) ===================== */

// Header wajib tidak ada di file
type MissingHeadersError struct {
	Missing []string
}

func (e *MissingHeadersError) Error() string {
	return "header wajib tidak ditemukan: " + strings.Join(e.Missing, ", ")
}

// CSV tidak bisa diparse sama sekali
type ParseError struct {
	Details []string
}

func (e *ParseError) Error() string {
	return "CSV tidak valid: " + strings.Join(e.Details, "; ")
}

/* ===================== PARSE ===================== */

// Baris kandidat: sudah lolos validasi struktural, siap insert dedup-checked
type CandidateRow struct {
	Name         string
	Email        string
	Phone        *string
	ArticleTitle *string
	Year         *int
}

type ParseResult struct {
	Total        int // semua baris data
	Duplicates   int // duplikat email di dalam file yang sama
	Errors       int
	ErrorDetails []string // maks ImportMaxErrorDetails contoh
	Candidates   []CandidateRow
}

// ParseContactsCSV membaca seluruh dokumen dulu (batas upload sudah dijaga
// controller) supaya error struktur ketahuan SEBELUM ada baris yang diproses.
func ParseContactsCSV(r io.Reader) (*ParseResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // toleransi jumlah kolom beda per baris

	// Kumpulkan error struktur per baris (maks ImportMaxErrorDetails),
	// jangan berhenti di error pertama
	var records [][]string
	var parseErrs []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			parseErrs = append(parseErrs, err.Error())
			if len(parseErrs) >= constants.ImportMaxErrorDetails {
				break
			}
			continue
		}
		records = append(records, rec)
	}
	if len(parseErrs) > 0 {
		return nil, &ParseError{Details: parseErrs}
	}
	if len(records) == 0 {
		return nil, &ParseError{Details: []string{"file kosong, tidak ada baris header"}}
	}

	// Header: case-insensitive + trim
	colIdx := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, dup := colIdx[key]; !dup {
			colIdx[key] = i
		}
	}
	var missing []string
	for _, req := range constants.ImportRequiredHeaders {
		if _, ok := colIdx[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingHeadersError{Missing: missing}
	}

	field := func(row []string, name string) string {
		idx, ok := colIdx[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	res := &ParseResult{}
	seen := make(map[string]struct{})

	addError := func(line int, msg string) {
		res.Errors++
		if len(res.ErrorDetails) < constants.ImportMaxErrorDetails {
			res.ErrorDetails = append(res.ErrorDetails, fmt.Sprintf("baris %d: %s", line, msg))
		}
	}

	for i, row := range records[1:] {
		line := i + 2 // header = baris 1
		res.Total++

		name := field(row, "name")
		email := strings.ToLower(field(row, "email"))
		if name == "" || email == "" {
			addError(line, "name atau email kosong")
			continue
		}

		var year *int
		if raw := field(row, "year"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < constants.ContactYearMin || n > constants.ContactYearMax {
				addError(line, fmt.Sprintf("year tidak valid (%s)", raw))
				continue
			}
			year = &n
		}

		// Duplikat di dalam file sendiri (semua baris satu journal)
		if _, dup := seen[email]; dup {
			res.Duplicates++
			continue
		}
		seen[email] = struct{}{}

		res.Candidates = append(res.Candidates, CandidateRow{
			Name:         name,
			Email:        email,
			Phone:        optField(field(row, "phone")),
			ArticleTitle: optField(field(row, "article_title")),
			Year:         year,
		})
	}

	return res, nil
}

func optField(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

/* ===================== IMPORT ===================== */

type ImportSummary struct {
	Total        int      `json:"total"`
	Imported     int      `json:"imported"`
	Duplicates   int      `json:"duplicates"`
	Errors       int      `json:"errors"`
	ErrorDetails []string `json:"errorDetails"`
}

type ImportService struct {
	DB        *gorm.DB
	BatchSize int
}

func NewImportService(db *gorm.DB) *ImportService {
	batch := configs.ImportBatchSize
	if batch < 1 {
		batch = configs.DefaultImportBatchSize
	}
	return &ImportService{DB: db, BatchSize: batch}
}

// Import memproses satu file CSV untuk satu journal.
// Error per-baris TIDAK menggagalkan import; duplikat (email, journal) —
// baik yang sudah ada di DB maupun hasil import paralel — dihitung diam-diam
// lewat ON CONFLICT DO NOTHING (RowsAffected < len(batch) berarti duplikat).
// Batch bersifat independen: batch yang sudah commit tidak di-rollback.
func (s *ImportService) Import(ctx context.Context, journalID uuid.UUID, r io.Reader, filename string) (*ImportSummary, error) {
	pr, err := ParseContactsCSV(r)
	if err != nil {
		return nil, err
	}

	summary := &ImportSummary{
		Total:        pr.Total,
		Duplicates:   pr.Duplicates,
		Errors:       pr.Errors,
		ErrorDetails: pr.ErrorDetails,
	}
	if summary.ErrorDetails == nil {
		summary.ErrorDetails = []string{}
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "contact_email"}, {Name: "contact_journal_id"}},
		DoNothing: true,
	}

	for start := 0; start < len(pr.Candidates); start += s.BatchSize {
		// klien putus/timeout: stop batch berikutnya, yang sudah commit tetap commit
		if ctx.Err() != nil {
			break
		}

		end := start + s.BatchSize
		if end > len(pr.Candidates) {
			end = len(pr.Candidates)
		}

		batch := make([]cModel.ContactModel, 0, end-start)
		for _, cand := range pr.Candidates[start:end] {
			batch = append(batch, cModel.ContactModel{
				ContactName:         cand.Name,
				ContactEmail:        cand.Email,
				ContactPhone:        cand.Phone,
				ContactArticleTitle: cand.ArticleTitle,
				ContactYear:         cand.Year,
				ContactJournalID:    journalID,
			})
		}

		res := s.DB.WithContext(ctx).Clauses(onConflict).Create(&batch)
		if res.Error != nil {
			s.writeLog(journalID, filename, summary)
			return summary, res.Error
		}
		inserted := int(res.RowsAffected)
		summary.Imported += inserted
		summary.Duplicates += len(batch) - inserted
	}

	s.writeLog(journalID, filename, summary)
	return summary, nil
}

// catat hasil run (best effort, jangan gagalkan import karena log)
func (s *ImportService) writeLog(journalID uuid.UUID, filename string, sum *ImportSummary) {
	details, err := json.Marshal(sum.ErrorDetails)
	if err != nil {
		details = []byte("[]")
	}
	logRow := cModel.ImportLogModel{
		ImportLogJournalID:    journalID,
		ImportLogFilename:     filename,
		ImportLogTotal:        sum.Total,
		ImportLogImported:     sum.Imported,
		ImportLogDuplicates:   sum.Duplicates,
		ImportLogErrors:       sum.Errors,
		ImportLogErrorDetails: details,
	}
	if err := s.DB.Create(&logRow).Error; err != nil {
		log.Printf("[WARN] gagal mencatat import log: %v", err)
	}
}
