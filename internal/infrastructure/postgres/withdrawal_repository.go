package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
)

var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

// WithdrawalRepo bitácora de retiros de medicamentos sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lista: las filas nunca se modifican ni se eliminan.
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

// Create persiste un registro de retiro. medicamento_id no es foreign key:
// el historial debe sobrevivir si el medicamento se elimina.
func (r *WithdrawalRepo) Create(w *entity.Withdrawal) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	note := (*string)(nil)
	if w.Note != "" {
		note = &w.Note
	}
	query := `
		INSERT INTO retiros_medicamentos (id, medicamento_id, nombre_medicamento, lote, cantidad_retirada, nota, fecha_retiro)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING fecha_retiro`
	err := r.q.QueryRow(context.Background(), query,
		w.ID, w.MedicationID, w.MedicationName, w.Lot, w.QuantityWithdrawn, note,
	).Scan(&w.WithdrawalDate)
	if err != nil {
		return fmt.Errorf("insert retiro: %w", err)
	}
	return nil
}

// List lista los retiros, más recientes primero.
func (r *WithdrawalRepo) List() ([]*entity.Withdrawal, error) {
	query := `
		SELECT id, medicamento_id, nombre_medicamento, lote, cantidad_retirada, nota, fecha_retiro
		FROM retiros_medicamentos ORDER BY fecha_retiro DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list retiros: %w", err)
	}
	defer rows.Close()
	var list []*entity.Withdrawal
	for rows.Next() {
		var w entity.Withdrawal
		var note *string
		if err := rows.Scan(&w.ID, &w.MedicationID, &w.MedicationName, &w.Lot, &w.QuantityWithdrawn, &note, &w.WithdrawalDate); err != nil {
			return nil, fmt.Errorf("scan retiro: %w", err)
		}
		if note != nil {
			w.Note = *note
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
