package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo bitácora de transferencias sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lista: las filas nunca se modifican ni se eliminan.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste un registro de transferencia.
func (r *TransferRepo) Create(t *entity.Transfer) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transferencias (id, nombre_producto, cantidad, categoria, fecha_transferencia)
		VALUES ($1, $2, $3, $4, now())
		RETURNING fecha_transferencia`
	err := r.q.QueryRow(context.Background(), query,
		t.ID, t.ProductName, t.Quantity, t.Category,
	).Scan(&t.TransferDate)
	if err != nil {
		return fmt.Errorf("insert transferencia: %w", err)
	}
	return nil
}

// List lista las transferencias, más recientes primero.
func (r *TransferRepo) List() ([]*entity.Transfer, error) {
	query := `
		SELECT id, nombre_producto, cantidad, categoria, fecha_transferencia
		FROM transferencias ORDER BY fecha_transferencia DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transferencias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.ProductName, &t.Quantity, &t.Category, &t.TransferDate); err != nil {
			return nil, fmt.Errorf("scan transferencia: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
