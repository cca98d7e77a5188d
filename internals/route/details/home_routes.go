// file: internals/route/details/home_routes.go
package details

import (
	dashboardRoute "emailcontacts_backend/internals/features/home/dashboard/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func HomeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	dashboardRoute.DashboardAdminRoutes(admin, db)
}
