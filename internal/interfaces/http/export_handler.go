package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/mfigueroa/inventario-medico/internal/application/export"
)

// ExportHandler descarga del inventario de una ubicación en CSV.
type ExportHandler struct {
	uc       *export.UseCase
	filename string
}

// NewExportHandler construye el handler. filename es el nombre sugerido de
// descarga, sin extensión.
func NewExportHandler(uc *export.UseCase, filename string) *ExportHandler {
	return &ExportHandler{uc: uc, filename: filename}
}

// CSV godoc
// @Summary      Exportar inventario de la ubicación a CSV
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "CSV con columnas Nombre, Cantidad, Categoría, Fecha Entrada"
// @Router       /api/export/principal [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	data, err := h.uc.CSV()
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", h.filename+".csv"))
	return c.Send(data)
}
