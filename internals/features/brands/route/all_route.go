package route

import (
	bcontroller "emailcontacts_backend/internals/features/brands/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Read-only untuk klien publik (cache sisi klien dashboard)
func BrandAllRoutes(public fiber.Router, db *gorm.DB) {
	brandCtrl := bcontroller.NewBrandController(db)

	brands := public.Group("/brands")
	brands.Get("/", brandCtrl.List)
	brands.Get("/:id", brandCtrl.Detail)
}
