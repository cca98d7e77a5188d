package route

import (
	jcontroller "emailcontacts_backend/internals/features/journals/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func JournalAdminRoutes(admin fiber.Router, db *gorm.DB) {
	journalCtrl := jcontroller.NewJournalController(db)

	// =========================
	// 📚 JOURNAL (ADMIN AREA)
	// =========================

	// Prefix: /journals
	journals := admin.Group("/journals")

	journals.Post("/", journalCtrl.Create)
	journals.Get("/", journalCtrl.List)
	journals.Get("/:id", journalCtrl.Detail)
	journals.Put("/:id", journalCtrl.Update)
	journals.Delete("/:id", journalCtrl.Delete)
}
