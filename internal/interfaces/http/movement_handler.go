package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mfigueroa/inventario-medico/internal/application/dto"
	"github.com/mfigueroa/inventario-medico/internal/application/movement"
	"github.com/mfigueroa/inventario-medico/internal/application/stock"
	"github.com/mfigueroa/inventario-medico/internal/domain"
)

// MovementHandler expone el motor de movimientos: transferencias entre
// almacenes, retiros de medicamentos y la consulta de ambas bitácoras.
type MovementHandler struct {
	uc      *movement.UseCase
	history *movement.History
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.UseCase, history *movement.History) *MovementHandler {
	return &MovementHandler{uc: uc, history: history}
}

// Transfer godoc
// @Summary      Transferir insumo del almacén principal al secundario
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "id del insumo en principal y cantidad > 0"
// @Success      201   {object}  dto.TransferResultResponse
// @Failure      400   {object}  dto.ErrorResponse  "cantidad inválida o insuficiente"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/storage-principal/transfer [post]
func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Transfer(c.UserContext(), in.ID, in.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id y cantidad mayor a cero son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado en el almacén principal"})
		case errors.Is(err, domain.ErrInsufficientQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_QUANTITY", Message: "cantidad insuficiente en el almacén principal"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResultResponse{
		Origin:   stock.ToStockItemResponse(result.Origin),
		Transfer: *movement.ToTransferResponse(result.Transfer),
	})
}

// ListTransfers godoc
// @Summary      Listar transferencias
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransferResponse
// @Router       /api/transferencias [get]
func (h *MovementHandler) ListTransfers(c *fiber.Ctx) error {
	items, err := h.history.ListTransfers()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

// Withdraw godoc
// @Summary      Registrar retiro de medicamento
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawalRequest  true  "medicamento_id, cantidad_retirada > 0, nota opcional"
// @Success      201   {object}  dto.WithdrawalResponse
// @Failure      400   {object}  dto.ErrorResponse  "cantidad inválida o insuficiente"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/retiros_medicamentos [post]
func (h *MovementHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.WithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Withdraw(c.UserContext(), in.MedicationID, in.QuantityWithdrawn, in.Note)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "medicamento_id y cantidad_retirada mayor a cero son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
		case errors.Is(err, domain.ErrInsufficientQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_QUANTITY", Message: "cantidad insuficiente del medicamento"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movement.ToWithdrawalResponse(result.Withdrawal))
}

// ListWithdrawals godoc
// @Summary      Listar retiros de medicamentos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WithdrawalResponse
// @Router       /api/retiros_medicamentos [get]
func (h *MovementHandler) ListWithdrawals(c *fiber.Ctx) error {
	items, err := h.history.ListWithdrawals()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}
