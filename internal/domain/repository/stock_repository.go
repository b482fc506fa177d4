package repository

import "github.com/mfigueroa/inventario-medico/internal/domain/entity"

// StockRepository define el puerto de almacenamiento para una ubicación
// (principal o secundario). Cada ubicación tiene su propia tabla.
type StockRepository interface {
	// AddByName inserta el insumo o, si ya existe uno con ese nombre, suma la
	// cantidad a la existente y refresca updated_at. Debe ejecutarse como una
	// sola escritura condicional (INSERT ... ON CONFLICT), no como get-then-put.
	AddByName(item *entity.StockItem) (*entity.StockItem, error)
	GetByID(id string) (*entity.StockItem, error)
	// GetByIDForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetByIDForUpdate(id string) (*entity.StockItem, error)
	GetByName(name string) (*entity.StockItem, error)
	List() ([]*entity.StockItem, error)
	ListOrderedByName() ([]*entity.StockItem, error)
	Update(item *entity.StockItem) error
	// SetQuantity fija la cantidad de la fila y refresca updated_at.
	SetQuantity(id string, quantity int64) error
	Delete(id string) error
}
