package repository

import "github.com/mfigueroa/inventario-medico/internal/domain/entity"

// TransferRepository bitácora append-only de transferencias.
// No existe Update ni Delete: el historial nunca se modifica.
type TransferRepository interface {
	Create(t *entity.Transfer) error
	List() ([]*entity.Transfer, error)
}
