package repository

import "github.com/mfigueroa/inventario-medico/internal/domain/entity"

// MedicationRepository puerto de persistencia de medicamentos.
// Create es un insert puro: un lote duplicado debe fallar con ErrDuplicateLot,
// nunca fusionar cantidades.
type MedicationRepository interface {
	Create(med *entity.Medication) error
	GetByID(id string) (*entity.Medication, error)
	// GetByIDForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetByIDForUpdate(id string) (*entity.Medication, error)
	List() ([]*entity.Medication, error)
	Update(med *entity.Medication) error
	SetQuantity(id string, quantity int64) error
	Delete(id string) error
}
