package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request. Timestamp UTC supaya gampang
// dicocokkan dengan kolom *_created_at di DB.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeZone:   "UTC",
		Format:     "[${time}] ${ip} ${method} ${path} - ${status} - ${latency} ${bytesSent}B\n",
	})
}
