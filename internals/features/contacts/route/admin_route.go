package route

import (
	ccontroller "emailcontacts_backend/internals/features/contacts/controller"
	middlewares "emailcontacts_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ContactAdminRoutes(admin fiber.Router, db *gorm.DB) {
	contactCtrl := ccontroller.NewContactController(db)

	// =========================
	// 📧 CONTACT (ADMIN AREA)
	// =========================

	// Prefix: /contacts
	contacts := admin.Group("/contacts")

	// Bulk import/export dulu (jangan ketabrak route :id)
	contacts.Post("/import", middlewares.ImportRateLimiter(), contactCtrl.ImportCSV)
	contacts.Get("/import/logs", contactCtrl.ImportLogs)
	contacts.Get("/export", middlewares.ExportRateLimiter(), contactCtrl.ExportCSV)

	// CRUD satuan
	contacts.Post("/", contactCtrl.Create)
	contacts.Get("/", contactCtrl.List)
	contacts.Put("/:id", contactCtrl.Update)
	contacts.Delete("/:id", contactCtrl.Delete)
}
