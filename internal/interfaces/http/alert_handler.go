package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfigueroa/inventario-medico/internal/application/alerts"
)

// AlertHandler expone las alertas derivadas del estado de los medicamentos.
type AlertHandler struct {
	uc *alerts.UseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas vigentes (expirado, por_vencer, bajo_stock)
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  alerts.Alert
// @Router       /api/alertas [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}
