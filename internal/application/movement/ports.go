package movement

import (
	"context"

	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: o todos los pasos quedan visibles, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		principalRepo repository.StockRepository,
		secundarioRepo repository.StockRepository,
		medRepo repository.MedicationRepository,
		transferRepo repository.TransferRepository,
		withdrawalRepo repository.WithdrawalRepository,
	) error) error
}
