package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mfigueroa/inventario-medico/internal/application/dto"
	"github.com/mfigueroa/inventario-medico/internal/application/stock"
	"github.com/mfigueroa/inventario-medico/internal/domain"
	"github.com/rs/zerolog/log"
)

// StockHandler maneja los insumos de una ubicación. Se monta dos veces:
// una instancia para storage-principal y otra para storage-secundario.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler para una ubicación.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar insumos de la ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/storage-principal [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

// Add godoc
// @Summary      Agregar insumo (fusiona por nombre si ya existe)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "nombre, cantidad >= 1, categoria opcional"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/storage-principal [post]
func (h *StockHandler) Add(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Add(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido y cantidad mínima 1"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update godoc
// @Summary      Editar insumo
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del insumo"
// @Param        body  body  dto.UpdateStockRequest true  "nombre, cantidad >= 0, categoria"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/storage-principal/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido y cantidad no negativa"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un insumo con ese nombre"})
		}
		return internalError(c, err)
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary      Eliminar insumo
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID del insumo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storage-principal/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "insumo eliminado"})
}

// internalError loguea el error real (nunca va al cliente) y responde 500.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error del servidor"})
}
