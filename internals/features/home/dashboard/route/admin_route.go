package route

import (
	dcontroller "emailcontacts_backend/internals/features/home/dashboard/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DashboardAdminRoutes(admin fiber.Router, db *gorm.DB) {
	dashCtrl := dcontroller.NewDashboardController(db)

	// =========================
	// 📊 DASHBOARD (ADMIN AREA)
	// =========================
	admin.Get("/dashboard", dashCtrl.Summary)
}
