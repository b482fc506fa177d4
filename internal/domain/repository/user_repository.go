package repository

import "github.com/mfigueroa/inventario-medico/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
