// internals/features/home/dashboard/controller/dashboard_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dService "emailcontacts_backend/internals/features/home/dashboard/service"
	helper "emailcontacts_backend/internals/helpers"
)

type DashboardController struct {
	Service *dService.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{Service: dService.NewDashboardService(db)}
}

// GET /api/a/dashboard
func (h *DashboardController) Summary(c *fiber.Ctx) error {
	resp, err := h.Service.Build(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung statistik dashboard")
	}
	return helper.Success(c, "OK", resp)
}
