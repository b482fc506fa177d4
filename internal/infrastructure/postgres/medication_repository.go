package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mfigueroa/inventario-medico/internal/domain"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
)

var _ repository.MedicationRepository = (*MedicationRepo)(nil)

// MedicationRepo implementación de MedicationRepository sobre PostgreSQL (usable con pool o tx).
type MedicationRepo struct {
	q Querier
}

// NewMedicationRepository construye el adaptador de medicamentos. Pasar pool o tx (Querier).
func NewMedicationRepository(q Querier) *MedicationRepo {
	return &MedicationRepo{q: q}
}

// Create persiste un medicamento nuevo. Insert puro: un lote duplicado
// devuelve ErrDuplicateLot, nunca fusiona cantidades.
func (r *MedicationRepo) Create(med *entity.Medication) error {
	if med.ID == "" {
		med.ID = uuid.New().String()
	}
	query := `
		INSERT INTO medicamentos (id, nombre, lote, cantidad, fecha_expiracion, stock_minimo, fecha_entrada)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING fecha_entrada`
	err := r.q.QueryRow(context.Background(), query,
		med.ID, med.Name, med.Lot, med.Quantity, med.ExpirationDate, med.MinimumStock,
	).Scan(&med.EntryDate)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateLot
		}
		return fmt.Errorf("insert medicamento: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID. Devuelve nil si no existe.
func (r *MedicationRepo) GetByID(id string) (*entity.Medication, error) {
	query := `
		SELECT id, nombre, lote, cantidad, fecha_expiracion, stock_minimo, fecha_entrada
		FROM medicamentos WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByIDForUpdate obtiene el medicamento y bloquea la fila para update (SELECT FOR UPDATE).
func (r *MedicationRepo) GetByIDForUpdate(id string) (*entity.Medication, error) {
	query := `
		SELECT id, nombre, lote, cantidad, fecha_expiracion, stock_minimo, fecha_entrada
		FROM medicamentos WHERE id = $1
		FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *MedicationRepo) scanOne(query, id string) (*entity.Medication, error) {
	var m entity.Medication
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Lot, &m.Quantity, &m.ExpirationDate, &m.MinimumStock, &m.EntryDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicamento: %w", err)
	}
	return &m, nil
}

// List lista los medicamentos, más recientes primero.
func (r *MedicationRepo) List() ([]*entity.Medication, error) {
	query := `
		SELECT id, nombre, lote, cantidad, fecha_expiracion, stock_minimo, fecha_entrada
		FROM medicamentos ORDER BY fecha_entrada DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list medicamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Medication
	for rows.Next() {
		var m entity.Medication
		if err := rows.Scan(&m.ID, &m.Name, &m.Lot, &m.Quantity, &m.ExpirationDate, &m.MinimumStock, &m.EntryDate); err != nil {
			return nil, fmt.Errorf("scan medicamento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables. fecha_entrada no se toca.
func (r *MedicationRepo) Update(med *entity.Medication) error {
	query := `
		UPDATE medicamentos SET nombre = $2, lote = $3, cantidad = $4, fecha_expiracion = $5, stock_minimo = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		med.ID, med.Name, med.Lot, med.Quantity, med.ExpirationDate, med.MinimumStock,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateLot
		}
		return fmt.Errorf("update medicamento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetQuantity fija la cantidad del medicamento (usado por el motor de movimientos).
func (r *MedicationRepo) SetQuantity(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE medicamentos SET cantidad = $2 WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("set medicamento quantity: %w", err)
	}
	return nil
}

// Delete elimina un medicamento por ID. Los retiros asociados conservan su
// copia de nombre y lote.
func (r *MedicationRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM medicamentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medicamento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
