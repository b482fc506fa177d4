package repository

import "github.com/mfigueroa/inventario-medico/internal/domain/entity"

// WithdrawalRepository bitácora append-only de retiros de medicamentos.
type WithdrawalRepository interface {
	Create(w *entity.Withdrawal) error
	List() ([]*entity.Withdrawal, error)
}
