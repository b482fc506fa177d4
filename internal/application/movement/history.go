package movement

import (
	"github.com/mfigueroa/inventario-medico/internal/application/dto"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
)

// History lectura de las bitácoras de movimientos. Solo lista: las bitácoras
// son append-only y se escriben únicamente desde el motor de movimientos.
type History struct {
	transferRepo   repository.TransferRepository
	withdrawalRepo repository.WithdrawalRepository
}

// NewHistory construye el lector de bitácoras.
func NewHistory(transferRepo repository.TransferRepository, withdrawalRepo repository.WithdrawalRepository) *History {
	return &History{transferRepo: transferRepo, withdrawalRepo: withdrawalRepo}
}

// ListTransfers lista las transferencias, más recientes primero.
func (h *History) ListTransfers() ([]dto.TransferResponse, error) {
	list, err := h.transferRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *ToTransferResponse(t))
	}
	return items, nil
}

// ListWithdrawals lista los retiros, más recientes primero.
func (h *History) ListWithdrawals() ([]dto.WithdrawalResponse, error) {
	list, err := h.withdrawalRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WithdrawalResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *ToWithdrawalResponse(w))
	}
	return items, nil
}

// ToTransferResponse convierte la entidad a su representación HTTP.
func ToTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	if t == nil {
		return nil
	}
	return &dto.TransferResponse{
		ID:           t.ID,
		ProductName:  t.ProductName,
		Quantity:     t.Quantity,
		Category:     t.Category,
		TransferDate: t.TransferDate,
	}
}

// ToWithdrawalResponse convierte la entidad a su representación HTTP.
func ToWithdrawalResponse(w *entity.Withdrawal) *dto.WithdrawalResponse {
	if w == nil {
		return nil
	}
	return &dto.WithdrawalResponse{
		ID:                w.ID,
		MedicationID:      w.MedicationID,
		MedicationName:    w.MedicationName,
		Lot:               w.Lot,
		QuantityWithdrawn: w.QuantityWithdrawn,
		Note:              w.Note,
		WithdrawalDate:    w.WithdrawalDate,
	}
}
