package route

import (
	bcontroller "emailcontacts_backend/internals/features/brands/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BrandAdminRoutes(admin fiber.Router, db *gorm.DB) {
	brandCtrl := bcontroller.NewBrandController(db)

	// =========================
	// 🏷️ BRAND (ADMIN AREA)
	// =========================

	// Prefix: /brands
	brands := admin.Group("/brands")

	brands.Post("/", brandCtrl.Create)
	brands.Get("/", brandCtrl.List)
	brands.Get("/:id", brandCtrl.Detail)
	brands.Put("/:id", brandCtrl.Update)
	brands.Delete("/:id", brandCtrl.Delete)
}
