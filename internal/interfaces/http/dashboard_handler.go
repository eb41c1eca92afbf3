package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *usecase.StatsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.StatsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Conteos de productos, clientes y ventas, más la facturación total. Se recalcula en cada llamada.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.ComputeStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
