package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "emailcontacts_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar urut: logger → cors → recovery → limiter
func SetupMiddlewares(app *fiber.App) {
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(GlobalRateLimiter())
}
