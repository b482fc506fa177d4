package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mfigueroa/inventario-medico/internal/application/dto"
	"github.com/mfigueroa/inventario-medico/internal/application/medication"
	"github.com/mfigueroa/inventario-medico/internal/domain"
)

// MedicationHandler maneja el registro de medicamentos con lote y expiración.
type MedicationHandler struct {
	uc *medication.UseCase
}

// NewMedicationHandler construye el handler.
func NewMedicationHandler(uc *medication.UseCase) *MedicationHandler {
	return &MedicationHandler{uc: uc}
}

// List godoc
// @Summary      Listar medicamentos
// @Tags         medicamentos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MedicationResponse
// @Router       /api/medicamentos [get]
func (h *MedicationHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Registrar medicamento
// @Tags         medicamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicationRequest  true  "nombre, lote, cantidad >= 1, fecha_expiracion YYYY-MM-DD, stock_minimo"
// @Success      201   {object}  dto.MedicationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/medicamentos [post]
func (h *MedicationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMedicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, lote, cantidad mínima 1 y fecha_expiracion YYYY-MM-DD son requeridos"})
		case errors.Is(err, domain.ErrDuplicateLot):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_LOT", Message: "ya existe un medicamento con ese lote"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update godoc
// @Summary      Editar medicamento
// @Tags         medicamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del medicamento"
// @Param        body  body  dto.UpdateMedicationRequest  true  "campos completos del medicamento"
// @Success      200   {object}  dto.MedicationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medicamentos/{id} [put]
func (h *MedicationHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateMedicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
		case errors.Is(err, domain.ErrDuplicateLot):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_LOT", Message: "ya existe un medicamento con ese lote"})
		}
		return internalError(c, err)
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary      Eliminar medicamento
// @Tags         medicamentos
// @Security     Bearer
// @Param        id  path  string  true  "ID del medicamento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicamentos/{id} [delete]
func (h *MedicationHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "medicamento eliminado"})
}
