// internals/features/contacts/controller/contact_import_export_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"emailcontacts_backend/internals/configs"
	"emailcontacts_backend/internals/constants"
	cModel "emailcontacts_backend/internals/features/contacts/model"
	cService "emailcontacts_backend/internals/features/contacts/service"
	jModel "emailcontacts_backend/internals/features/journals/model"
	helper "emailcontacts_backend/internals/helpers"
)

/* ===================== IMPORT ===================== */

// POST /api/a/contacts/import
// multipart: file (CSV) + journal_id
func (h *ContactController) ImportCSV(c *fiber.Ctx) error {
	journalID, err := uuid.Parse(strings.TrimSpace(c.FormValue("journal_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "journal_id tidak valid")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File CSV wajib diunggah (field \"file\")")
	}
	if !constants.IsCSVFile(fh.Filename) {
		return fiber.NewError(fiber.StatusBadRequest, "Tipe file tidak didukung, unggah file .csv")
	}
	if fh.Size > configs.ImportMaxUploadBytes {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("File terlalu besar (maks %d MiB)", configs.ImportMaxUploadBytes>>20))
	}

	// Journal harus ada (sekalian ambil brand untuk response)
	var journal jModel.JournalModel
	err = h.DB.WithContext(c.UserContext()).Preload("Brand").
		First(&journal, "journal_id = ?", journalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Journal tidak ditemukan")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil journal")
	}

	f, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File tidak bisa dibaca")
	}
	defer f.Close()

	summary, err := h.ImportService.Import(c.UserContext(), journalID, f, fh.Filename)
	if err != nil {
		var mh *cService.MissingHeadersError
		if errors.As(err, &mh) {
			return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Header CSV tidak lengkap", mh.Missing)
		}
		var pe *cService.ParseError
		if errors.As(err, &pe) {
			return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "CSV tidak bisa diparse", pe.Details)
		}
		// batch gagal di tengah: yang sudah commit tetap commit
		return fiber.NewError(fiber.StatusInternalServerError, "Import gagal di tengah jalan")
	}

	brandName := ""
	if journal.Brand != nil {
		brandName = journal.Brand.BrandName
	}

	return helper.Success(c, "Import selesai", fiber.Map{
		"journal": fiber.Map{
			"id":    journal.JournalID,
			"name":  journal.JournalName,
			"brand": brandName,
		},
		"summary": summary,
	})
}

// GET /api/a/contacts/import/logs?journal_id=
func (h *ContactController) ImportLogs(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&cModel.ImportLogModel{})
	if raw := strings.TrimSpace(c.Query("journal_id")); raw != "" {
		journalID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "journal_id tidak valid")
		}
		q = q.Where("import_log_journal_id = ?", journalID)
	}

	var logs []cModel.ImportLogModel
	if err := q.Order("import_log_created_at DESC").Limit(50).Find(&logs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat import")
	}

	return helper.Success(c, "OK", logs)
}

/* ===================== EXPORT ===================== */

// GET /api/a/contacts/export?start_date&end_date&journal_id&brand_id
func (h *ContactController) ExportCSV(c *fiber.Ctx) error {
	var filter cService.ExportFilter

	if raw := strings.TrimSpace(c.Query("start_date")); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "start_date harus format YYYY-MM-DD")
		}
		filter.StartDate = &t
	}
	if raw := strings.TrimSpace(c.Query("end_date")); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "end_date harus format YYYY-MM-DD")
		}
		filter.EndDate = &t
	}
	if raw := strings.TrimSpace(c.Query("journal_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "journal_id tidak valid")
		}
		filter.JournalID = &id
	}
	if raw := strings.TrimSpace(c.Query("brand_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "brand_id tidak valid")
		}
		filter.BrandID = &id
	}

	filename := fmt.Sprintf("email-contacts-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	if err := h.ExportService.WriteCSV(c.UserContext(), c.Response().BodyWriter(), filter); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat file export")
	}
	return nil
}
