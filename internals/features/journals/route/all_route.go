package route

import (
	jcontroller "emailcontacts_backend/internals/features/journals/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Read-only untuk klien publik (cache sisi klien dashboard)
func JournalAllRoutes(public fiber.Router, db *gorm.DB) {
	journalCtrl := jcontroller.NewJournalController(db)

	journals := public.Group("/journals")
	journals.Get("/", journalCtrl.List)
	journals.Get("/:id", journalCtrl.Detail)
}
