// file: internals/route/details/directory_routes.go
package details

import (
	brandRoute "emailcontacts_backend/internals/features/brands/route"
	contactRoute "emailcontacts_backend/internals/features/contacts/route"
	journalRoute "emailcontacts_backend/internals/features/journals/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Direktori brand → journal → contact (area admin)
func DirectoryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	brandRoute.BrandAdminRoutes(admin, db)
	journalRoute.JournalAdminRoutes(admin, db)
	contactRoute.ContactAdminRoutes(admin, db)
}

// Listing read-only untuk publik (cache sisi klien)
func DirectoryPublicRoutes(public fiber.Router, db *gorm.DB) {
	brandRoute.BrandAllRoutes(public, db)
	journalRoute.JournalAllRoutes(public, db)
}
