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

var _ repository.StockRepository = (*StockRepo)(nil)

// Tablas por ubicación. El nombre de tabla sale de este switch fijo,
// nunca de entrada del usuario.
func stockTable(loc entity.Location) string {
	switch loc {
	case entity.LocationSecundario:
		return "storage_secundario"
	default:
		return "storage_principal"
	}
}

// StockRepo implementación de StockRepository sobre PostgreSQL para una
// ubicación concreta (usable con pool o tx).
type StockRepo struct {
	q     Querier
	table string
}

// NewStockRepository construye el adaptador de stock para la ubicación dada. Pasar pool o tx (Querier).
func NewStockRepository(q Querier, loc entity.Location) *StockRepo {
	return &StockRepo{q: q, table: stockTable(loc)}
}

// AddByName inserta el insumo o suma la cantidad si ya existe uno con ese nombre.
// Una sola escritura condicional: el ON CONFLICT evita la carrera get-then-put.
// La categoría solo se fija al insertar, nunca se sobreescribe al fusionar.
func (r *StockRepo) AddByName(item *entity.StockItem) (*entity.StockItem, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, nombre, cantidad, categoria, fecha_entrada, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (nombre)
		DO UPDATE SET cantidad = %s.cantidad + EXCLUDED.cantidad, updated_at = now()
		RETURNING id, nombre, cantidad, categoria, fecha_entrada, updated_at`, r.table, r.table)
	var out entity.StockItem
	err := r.q.QueryRow(context.Background(), query, item.ID, item.Name, item.Quantity, item.Category).Scan(
		&out.ID, &out.Name, &out.Quantity, &out.Category, &out.EntryDate, &out.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("add stock %s: %w", r.table, err)
	}
	return &out, nil
}

// GetByID obtiene un insumo por ID. Devuelve nil si no existe.
func (r *StockRepo) GetByID(id string) (*entity.StockItem, error) {
	query := fmt.Sprintf(`
		SELECT id, nombre, cantidad, categoria, fecha_entrada, updated_at
		FROM %s WHERE id = $1`, r.table)
	return r.scanOne(query, id)
}

// GetByIDForUpdate obtiene el insumo y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetByIDForUpdate(id string) (*entity.StockItem, error) {
	query := fmt.Sprintf(`
		SELECT id, nombre, cantidad, categoria, fecha_entrada, updated_at
		FROM %s WHERE id = $1
		FOR UPDATE`, r.table)
	return r.scanOne(query, id)
}

// GetByName obtiene un insumo por nombre. Devuelve nil si no existe.
func (r *StockRepo) GetByName(name string) (*entity.StockItem, error) {
	query := fmt.Sprintf(`
		SELECT id, nombre, cantidad, categoria, fecha_entrada, updated_at
		FROM %s WHERE nombre = $1`, r.table)
	return r.scanOne(query, name)
}

func (r *StockRepo) scanOne(query string, arg any) (*entity.StockItem, error) {
	var s entity.StockItem
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Name, &s.Quantity, &s.Category, &s.EntryDate, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock %s: %w", r.table, err)
	}
	return &s, nil
}

// List lista los insumos de la ubicación, más recientes primero.
func (r *StockRepo) List() ([]*entity.StockItem, error) {
	query := fmt.Sprintf(`
		SELECT id, nombre, cantidad, categoria, fecha_entrada, updated_at
		FROM %s ORDER BY fecha_entrada DESC`, r.table)
	return r.scanMany(query)
}

// ListOrderedByName lista los insumos ordenados por nombre (para exportación).
func (r *StockRepo) ListOrderedByName() ([]*entity.StockItem, error) {
	query := fmt.Sprintf(`
		SELECT id, nombre, cantidad, categoria, fecha_entrada, updated_at
		FROM %s ORDER BY nombre`, r.table)
	return r.scanMany(query)
}

func (r *StockRepo) scanMany(query string) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock %s: %w", r.table, err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		var s entity.StockItem
		if err := rows.Scan(&s.ID, &s.Name, &s.Quantity, &s.Category, &s.EntryDate, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza nombre, cantidad y categoría. fecha_entrada no se toca.
func (r *StockRepo) Update(item *entity.StockItem) error {
	query := fmt.Sprintf(`
		UPDATE %s SET nombre = $2, cantidad = $3, categoria = $4, updated_at = now()
		WHERE id = $1`, r.table)
	cmd, err := r.q.Exec(context.Background(), query, item.ID, item.Name, item.Quantity, item.Category)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update stock %s: %w", r.table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetQuantity fija la cantidad de la fila y refresca updated_at.
func (r *StockRepo) SetQuantity(id string, quantity int64) error {
	query := fmt.Sprintf(`UPDATE %s SET cantidad = $2, updated_at = now() WHERE id = $1`, r.table)
	_, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("set stock quantity %s: %w", r.table, err)
	}
	return nil
}

// Delete elimina un insumo por ID.
func (r *StockRepo) Delete(id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)
	cmd, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete stock %s: %w", r.table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
