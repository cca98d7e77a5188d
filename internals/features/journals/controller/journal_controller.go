// internals/features/journals/controller/journal_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bModel "emailcontacts_backend/internals/features/brands/model"
	cModel "emailcontacts_backend/internals/features/contacts/model"
	jDTO "emailcontacts_backend/internals/features/journals/dto"
	jModel "emailcontacts_backend/internals/features/journals/model"
	helper "emailcontacts_backend/internals/helpers"
)

type JournalController struct {
	DB *gorm.DB
}

func NewJournalController(db *gorm.DB) *JournalController {
	return &JournalController{DB: db}
}

var validate = validator.New()

/* ===================== HANDLERS ===================== */

// POST /api/a/journals
func (h *JournalController) Create(c *fiber.Ctx) error {
	var req jDTO.CreateJournalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Brand harus ada
	if err := h.ensureBrandExists(c, req.JournalBrandID); err != nil {
		return err
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat journal")
	}

	// muat brand untuk response
	_ = h.DB.WithContext(c.UserContext()).Preload("Brand").
		First(m, "journal_id = ?", m.JournalID).Error

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Journal berhasil dibuat", jDTO.NewJournalResponse(m))
}

// GET /api/a/journals dan /api/public/journals
func (h *JournalController) List(c *fiber.Ctx) error {
	req, _ := http.NewRequest("GET", "http://local"+c.OriginalURL(), nil)
	p := helper.ParseWith(req, "created_at", "desc", helper.AdminOpts)

	allowedSort := map[string]string{
		"name":       "journal_name",
		"created_at": "journal_created_at",
	}
	orderExpr, err := p.SafeOrderExpr(allowedSort, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	q := h.DB.WithContext(c.UserContext()).Model(&jModel.JournalModel{})
	if raw := strings.TrimSpace(c.Query("brand_id")); raw != "" {
		brandID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "brand_id tidak valid")
		}
		q = q.Where("journal_brand_id = ?", brandID)
	}
	if st := strings.ToLower(strings.TrimSpace(c.Query("status"))); st != "" {
		q = q.Where("journal_status = ?", st)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("journal_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung journal")
	}

	var items []jModel.JournalModel
	if err := q.Preload("Brand").Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil journal")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": jDTO.NewJournalResponses(items),
		"meta":  helper.BuildMeta(total, p),
	})
}

// GET /api/a/journals/:id
func (h *JournalController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findByID(c, id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", jDTO.NewJournalResponse(m))
}

// PUT /api/a/journals/:id
func (h *JournalController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req jDTO.UpdateJournalRequest
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

	if req.JournalBrandID != nil && *req.JournalBrandID != m.JournalBrandID {
		if err := h.ensureBrandExists(c, *req.JournalBrandID); err != nil {
			return err
		}
	}
	req.ApplyToModel(m)
	m.Brand = nil // jangan ikut ter-save

	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui journal")
	}

	_ = h.DB.WithContext(c.UserContext()).Preload("Brand").
		First(m, "journal_id = ?", m.JournalID).Error

	return helper.Success(c, "Journal diperbarui", jDTO.NewJournalResponse(m))
}

// DELETE /api/a/journals/:id
// Hapus journal MENGHAPUS kontaknya juga, eksplisit dalam satu transaksi.
func (h *JournalController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if _, err := h.findByID(c, id); err != nil {
		return err
	}

	var removedContacts int64
	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&cModel.ContactModel{}, "contact_journal_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		removedContacts = res.RowsAffected
		return tx.Delete(&jModel.JournalModel{}, "journal_id = ?", id).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus journal")
	}

	return helper.Success(c, "Journal dihapus", fiber.Map{
		"journal_id":       id,
		"removed_contacts": removedContacts,
	})
}

/* ===================== INTERNAL ===================== */

func (h *JournalController) findByID(c *fiber.Ctx, id uuid.UUID) (*jModel.JournalModel, error) {
	var m jModel.JournalModel
	err := h.DB.WithContext(c.UserContext()).Preload("Brand").
		First(&m, "journal_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Journal tidak ditemukan")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil journal")
	}
	return &m, nil
}

func (h *JournalController) ensureBrandExists(c *fiber.Ctx, brandID uuid.UUID) error {
	var n int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&bModel.BrandModel{}).
		Where("brand_id = ?", brandID).
		Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek brand")
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Brand tidak ditemukan")
	}
	return nil
}
