package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfigueroa/inventario-medico/internal/application/movement"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
)

var _ movement.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Si fn retorna error (o el caller se desconecta antes del Commit), el defer
// hace Rollback y ningún cambio parcial queda visible.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	principalRepo repository.StockRepository,
	secundarioRepo repository.StockRepository,
	medRepo repository.MedicationRepository,
	transferRepo repository.TransferRepository,
	withdrawalRepo repository.WithdrawalRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	principalRepo := NewStockRepository(tx, entity.LocationPrincipal)
	secundarioRepo := NewStockRepository(tx, entity.LocationSecundario)
	medRepo := NewMedicationRepository(tx)
	transferRepo := NewTransferRepository(tx)
	withdrawalRepo := NewWithdrawalRepository(tx)

	if err := fn(principalRepo, secundarioRepo, medRepo, transferRepo, withdrawalRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
