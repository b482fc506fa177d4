package movement

import (
	"context"

	"github.com/mfigueroa/inventario-medico/internal/domain"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
	"github.com/mfigueroa/inventario-medico/pkg/config"
)

// UseCase motor de movimientos: transferencias principal → secundario y
// retiros de medicamentos. Cada operación corre completa dentro de una
// transacción (bloqueo de fila con SELECT FOR UPDATE, Commit/Rollback) y
// deja exactamente un registro de auditoría si tiene éxito, cero si falla.
type UseCase struct {
	txRunner    TxRunner
	drainPolicy string
}

// NewUseCase construye el motor. drainPolicy decide qué pasa con la fila del
// principal cuando una transferencia la deja en cero (config.DrainPolicyKeep
// o config.DrainPolicyDelete).
func NewUseCase(txRunner TxRunner, drainPolicy string) *UseCase {
	if drainPolicy != config.DrainPolicyDelete {
		drainPolicy = config.DrainPolicyKeep
	}
	return &UseCase{txRunner: txRunner, drainPolicy: drainPolicy}
}

// TransferResult estado resultante de una transferencia.
// Origin es nil cuando la fila del principal quedó en cero y la política es delete.
type TransferResult struct {
	Origin   *entity.StockItem
	Transfer *entity.Transfer
}

// Transfer mueve cantidad del almacén principal al secundario.
// Secuencia atómica: bloquea la fila de origen, verifica cantidad disponible,
// descuenta en principal, suma (o crea) en secundario por nombre y registra la
// transferencia en la bitácora. Cualquier fallo hace Rollback completo.
func (uc *UseCase) Transfer(ctx context.Context, stockID string, quantity int64) (*TransferResult, error) {
	if stockID == "" || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result TransferResult
	err := uc.txRunner.Run(ctx, func(
		principalRepo repository.StockRepository,
		secundarioRepo repository.StockRepository,
		_ repository.MedicationRepository,
		transferRepo repository.TransferRepository,
		_ repository.WithdrawalRepository,
	) error {
		// Bloquea la fila de origen (SELECT FOR UPDATE): dos transferencias
		// concurrentes sobre el mismo insumo se serializan aquí.
		origin, err := principalRepo.GetByIDForUpdate(stockID)
		if err != nil {
			return err
		}
		if origin == nil {
			return domain.ErrNotFound
		}
		if quantity > origin.Quantity {
			return domain.ErrInsufficientQuantity
		}

		remaining := origin.Quantity - quantity
		if remaining == 0 && uc.drainPolicy == config.DrainPolicyDelete {
			if err := principalRepo.Delete(origin.ID); err != nil {
				return err
			}
			result.Origin = nil
		} else {
			if err := principalRepo.SetQuantity(origin.ID, remaining); err != nil {
				return err
			}
			origin.Quantity = remaining
			result.Origin = origin
		}

		// Suma en secundario por nombre; si no existe se crea con la categoría
		// copiada del principal. Al fusionar, la categoría existente no se toca.
		if _, err := secundarioRepo.AddByName(&entity.StockItem{
			Name:     origin.Name,
			Quantity: quantity,
			Category: origin.Category,
		}); err != nil {
			return err
		}

		transfer := &entity.Transfer{
			ProductName: origin.Name,
			Quantity:    quantity,
			Category:    origin.Category,
		}
		if err := transferRepo.Create(transfer); err != nil {
			return err
		}
		result.Transfer = transfer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// WithdrawalResult estado resultante de un retiro.
type WithdrawalResult struct {
	Medication *entity.Medication
	Withdrawal *entity.Withdrawal
}

// Withdraw descuenta cantidad de un medicamento y registra el retiro.
// El registro copia nombre y lote del medicamento al momento del retiro
// (referencia débil: el historial sobrevive a ediciones y eliminaciones).
func (uc *UseCase) Withdraw(ctx context.Context, medicationID string, quantity int64, note string) (*WithdrawalResult, error) {
	if medicationID == "" || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result WithdrawalResult
	err := uc.txRunner.Run(ctx, func(
		_ repository.StockRepository,
		_ repository.StockRepository,
		medRepo repository.MedicationRepository,
		_ repository.TransferRepository,
		withdrawalRepo repository.WithdrawalRepository,
	) error {
		med, err := medRepo.GetByIDForUpdate(medicationID)
		if err != nil {
			return err
		}
		if med == nil {
			return domain.ErrNotFound
		}
		if quantity > med.Quantity {
			return domain.ErrInsufficientQuantity
		}

		med.Quantity -= quantity
		if err := medRepo.SetQuantity(med.ID, med.Quantity); err != nil {
			return err
		}

		withdrawal := &entity.Withdrawal{
			MedicationID:      med.ID,
			MedicationName:    med.Name,
			Lot:               med.Lot,
			QuantityWithdrawn: quantity,
			Note:              note,
		}
		if err := withdrawalRepo.Create(withdrawal); err != nil {
			return err
		}
		result.Medication = med
		result.Withdrawal = withdrawal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
