// internals/features/contacts/controller/contact_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cDTO "emailcontacts_backend/internals/features/contacts/dto"
	cModel "emailcontacts_backend/internals/features/contacts/model"
	cService "emailcontacts_backend/internals/features/contacts/service"
	jModel "emailcontacts_backend/internals/features/journals/model"
	helper "emailcontacts_backend/internals/helpers"
)

type ContactController struct {
	DB            *gorm.DB
	ImportService *cService.ImportService
	ExportService *cService.ExportService
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{
		DB:            db,
		ImportService: cService.NewImportService(db),
		ExportService: cService.NewExportService(db),
	}
}

var validate = validator.New()

/* ===================== CRUD ===================== */

// POST /api/a/contacts
func (h *ContactController) Create(c *fiber.Ctx) error {
	var req cDTO.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.ensureJournalExists(c, req.ContactJournalID); err != nil {
		return err
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Email ini sudah terdaftar sebagai kontak di journal tersebut")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kontak")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kontak berhasil dibuat", cDTO.NewContactResponse(m))
}

// GET /api/a/contacts
func (h *ContactController) List(c *fiber.Ctx) error {
	req, _ := http.NewRequest("GET", "http://local"+c.OriginalURL(), nil)
	p := helper.ParseWith(req, "created_at", "desc", helper.AdminOpts)

	allowedSort := map[string]string{
		"name":       "contact_name",
		"email":      "contact_email",
		"created_at": "contact_created_at",
	}
	orderExpr, err := p.SafeOrderExpr(allowedSort, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	q := h.DB.WithContext(c.UserContext()).Model(&cModel.ContactModel{})
	if raw := strings.TrimSpace(c.Query("journal_id")); raw != "" {
		journalID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "journal_id tidak valid")
		}
		q = q.Where("contact_journal_id = ?", journalID)
	}
	if raw := strings.TrimSpace(c.Query("brand_id")); raw != "" {
		brandID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "brand_id tidak valid")
		}
		q = q.Joins("JOIN journals ON journals.journal_id = contacts.contact_journal_id").
			Where("journals.journal_brand_id = ?", brandID)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("contact_name ILIKE ? OR contact_email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung kontak")
	}

	var items []cModel.ContactModel
	if err := q.Preload("Journal").Preload("Journal.Brand").
		Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kontak")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": cDTO.NewContactResponses(items),
		"meta":  helper.BuildMeta(total, p),
	})
}

// PUT /api/a/contacts/:id
func (h *ContactController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req cDTO.UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findByID(c, id)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)
	m.Journal = nil // jangan ikut ter-save

	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Email ini sudah terdaftar sebagai kontak di journal tersebut")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui kontak")
	}

	return helper.Success(c, "Kontak diperbarui", cDTO.NewContactResponse(m))
}

// DELETE /api/a/contacts/:id
func (h *ContactController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if _, err := h.findByID(c, id); err != nil {
		return err
	}

	if err := h.DB.WithContext(c.UserContext()).
		Delete(&cModel.ContactModel{}, "contact_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kontak")
	}

	return helper.Success(c, "Kontak dihapus", fiber.Map{"contact_id": id})
}

/* ===================== INTERNAL ===================== */

func (h *ContactController) findByID(c *fiber.Ctx, id uuid.UUID) (*cModel.ContactModel, error) {
	var m cModel.ContactModel
	err := h.DB.WithContext(c.UserContext()).
		Preload("Journal").Preload("Journal.Brand").
		First(&m, "contact_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Kontak tidak ditemukan")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kontak")
	}
	return &m, nil
}

func (h *ContactController) ensureJournalExists(c *fiber.Ctx, journalID uuid.UUID) error {
	var n int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&jModel.JournalModel{}).
		Where("journal_id = ?", journalID).
		Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek journal")
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Journal tidak ditemukan")
	}
	return nil
}

// Deteksi unique violation Postgres (kode "23505")
func isUniqueViolation(err error) bool {
	// tanpa import pgx/pgconn biar portable: cek substring
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
