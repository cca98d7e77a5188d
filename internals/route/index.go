// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	routeDetails "emailcontacts_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== GROUPS =====================

	// PUBLIC → read-only listing
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ADMIN → CRUD + import/export + dashboard
	// (layer auth dipasang kolaborator luar; core ini tidak membawa authn/authz)
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Directory routes...")
	routeDetails.DirectoryPublicRoutes(public, db)
	routeDetails.DirectoryAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Dashboard routes...")
	routeDetails.HomeAdminRoutes(admin, db)

	// ❤️ uptime sederhana
	app.Get("/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uptime": time.Since(startTime).String()})
	})
}
