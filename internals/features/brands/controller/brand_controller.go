// internals/features/brands/controller/brand_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bDTO "emailcontacts_backend/internals/features/brands/dto"
	bModel "emailcontacts_backend/internals/features/brands/model"
	jModel "emailcontacts_backend/internals/features/journals/model"
	helper "emailcontacts_backend/internals/helpers"
)

type BrandController struct {
	DB *gorm.DB
}

func NewBrandController(db *gorm.DB) *BrandController {
	return &BrandController{DB: db}
}

var validate = validator.New()

/* ===================== HANDLERS ===================== */

// POST /api/a/brands
func (h *BrandController) Create(c *fiber.Ctx) error {
	var req bDTO.CreateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()

	// Cek unik case-insensitive dulu biar pesannya enak dibaca
	if err := h.ensureNameCodeFree(c, m.BrandName, m.BrandCode, nil); err != nil {
		return err
	}

	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Nama atau kode brand sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat brand")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Brand berhasil dibuat", bDTO.NewBrandResponse(m))
}

// GET /api/a/brands dan /api/public/brands
func (h *BrandController) List(c *fiber.Ctx) error {
	req, _ := http.NewRequest("GET", "http://local"+c.OriginalURL(), nil)
	p := helper.ParseWith(req, "created_at", "desc", helper.AdminOpts)

	allowedSort := map[string]string{
		"name":       "brand_name",
		"code":       "brand_code",
		"created_at": "brand_created_at",
	}
	orderExpr, err := p.SafeOrderExpr(allowedSort, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	q := h.DB.WithContext(c.UserContext()).Model(&bModel.BrandModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("brand_name ILIKE ? OR brand_code ILIKE ?", like, like)
	}
	if st := strings.ToLower(strings.TrimSpace(c.Query("status"))); st != "" {
		q = q.Where("brand_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung brand")
	}

	var items []bModel.BrandModel
	if err := q.Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil brand")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": bDTO.NewBrandResponses(items),
		"meta":  helper.BuildMeta(total, p),
	})
}

// GET /api/a/brands/:id
func (h *BrandController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findByID(c, id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", bDTO.NewBrandResponse(m))
}

// PUT /api/a/brands/:id
func (h *BrandController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req bDTO.UpdateBrandRequest
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

	if err := h.ensureNameCodeFree(c, m.BrandName, m.BrandCode, &id); err != nil {
		return err
	}

	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Nama atau kode brand sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui brand")
	}

	return helper.Success(c, "Brand diperbarui", bDTO.NewBrandResponse(m))
}

// DELETE /api/a/brands/:id
// Kebijakan: tolak hapus selama masih punya journal. Cascade di schema cuma jaring pengaman.
func (h *BrandController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	_, err = h.findByID(c, id)
	if err != nil {
		return err
	}

	var dependents int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&jModel.JournalModel{}).
		Where("journal_brand_id = ?", id).
		Count(&dependents).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek journal terkait")
	}
	if dependents > 0 {
		return fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Brand masih memiliki %d journal. Hapus atau pindahkan journal-nya dulu.", dependents))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Delete(&bModel.BrandModel{}, "brand_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus brand")
	}

	return helper.Success(c, "Brand dihapus", fiber.Map{"brand_id": id})
}

/* ===================== INTERNAL ===================== */

func (h *BrandController) findByID(c *fiber.Ctx, id uuid.UUID) (*bModel.BrandModel, error) {
	var m bModel.BrandModel
	err := h.DB.WithContext(c.UserContext()).First(&m, "brand_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Brand tidak ditemukan")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil brand")
	}
	return &m, nil
}

// cek nama & kode bebas dipakai (case-insensitive); excludeID utk update
func (h *BrandController) ensureNameCodeFree(c *fiber.Ctx, name, code string, excludeID *uuid.UUID) error {
	q := h.DB.WithContext(c.UserContext()).
		Model(&bModel.BrandModel{}).
		Where("LOWER(brand_name) = LOWER(?) OR LOWER(brand_code) = LOWER(?)", name, code)
	if excludeID != nil {
		q = q.Where("brand_id <> ?", *excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek brand")
	}
	if n > 0 {
		return fiber.NewError(fiber.StatusConflict, "Nama atau kode brand sudah dipakai")
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
