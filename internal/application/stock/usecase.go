package stock

import (
	"strings"

	"github.com/mfigueroa/inventario-medico/internal/application/dto"
	"github.com/mfigueroa/inventario-medico/internal/domain"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
)

// UseCase operaciones CRUD sobre los insumos de una ubicación.
// Se construye una instancia por tabla (principal y secundario).
type UseCase struct {
	repo repository.StockRepository
}

// NewUseCase construye el caso de uso para una ubicación.
func NewUseCase(repo repository.StockRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Add agrega un insumo. Si ya existe uno con ese nombre, suma la cantidad a la
// existente (la fusión ocurre en una sola escritura condicional en el store).
func (uc *UseCase) Add(in dto.AddStockRequest) (*dto.StockItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.AddByName(&entity.StockItem{
		Name:     name,
		Quantity: in.Quantity,
		Category: in.Category,
	})
	if err != nil {
		return nil, err
	}
	return ToStockItemResponse(item), nil
}

// List lista los insumos, más recientes primero.
func (uc *UseCase) List() ([]dto.StockItemResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToStockItemResponse(s))
	}
	return items, nil
}

// Update edita nombre, cantidad y categoría de un insumo.
func (uc *UseCase) Update(id string, in dto.UpdateStockRequest) (*dto.StockItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = name
	item.Quantity = in.Quantity
	item.Category = in.Category
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return ToStockItemResponse(updated), nil
}

// Delete elimina un insumo por ID.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ToStockItemResponse convierte la entidad a su representación HTTP.
func ToStockItemResponse(s *entity.StockItem) *dto.StockItemResponse {
	if s == nil {
		return nil
	}
	return &dto.StockItemResponse{
		ID:        s.ID,
		Name:      s.Name,
		Quantity:  s.Quantity,
		Category:  s.Category,
		EntryDate: s.EntryDate,
		UpdatedAt: s.UpdatedAt,
	}
}
