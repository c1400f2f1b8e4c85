package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pro/internal/application/analytics"
)

// ReportHandler expone el dashboard financiero.
type ReportHandler struct {
	uc *analytics.DashboardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard devuelve ventas y margen del día y del mes, productos top y la
// serie de los últimos doce meses.
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext(), GetClubID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
