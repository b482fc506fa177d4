package medication

import (
	"strings"
	"time"

	"github.com/mfigueroa/inventario-medico/internal/application/dto"
	"github.com/mfigueroa/inventario-medico/internal/domain"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// UseCase operaciones CRUD sobre medicamentos. La cantidad solo se descuenta
// vía retiros (motor de movimientos); aquí se fija directo solo al editar.
type UseCase struct {
	repo repository.MedicationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.MedicationRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create registra un medicamento nuevo. Insert puro: un lote ya existente
// devuelve ErrDuplicateLot sin tocar la tabla.
func (uc *UseCase) Create(in dto.CreateMedicationRequest) (*dto.MedicationResponse, error) {
	name := strings.TrimSpace(in.Name)
	lot := strings.TrimSpace(in.Lot)
	if name == "" || lot == "" || in.Quantity < 1 || in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	expiration, err := time.Parse(dateLayout, in.ExpirationDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	med := &entity.Medication{
		Name:           name,
		Lot:            lot,
		Quantity:       in.Quantity,
		ExpirationDate: expiration,
		MinimumStock:   in.MinimumStock,
	}
	if err := uc.repo.Create(med); err != nil {
		return nil, err
	}
	return ToMedicationResponse(med), nil
}

// List lista los medicamentos, más recientes primero.
func (uc *UseCase) List() ([]dto.MedicationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MedicationResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMedicationResponse(m))
	}
	return items, nil
}

// Update edita los campos del medicamento, incluida la cantidad.
func (uc *UseCase) Update(id string, in dto.UpdateMedicationRequest) (*dto.MedicationResponse, error) {
	name := strings.TrimSpace(in.Name)
	lot := strings.TrimSpace(in.Lot)
	if name == "" || lot == "" || in.Quantity < 0 || in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	expiration, err := time.Parse(dateLayout, in.ExpirationDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	med, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	med.Name = name
	med.Lot = lot
	med.Quantity = in.Quantity
	med.ExpirationDate = expiration
	med.MinimumStock = in.MinimumStock
	if err := uc.repo.Update(med); err != nil {
		return nil, err
	}
	return ToMedicationResponse(med), nil
}

// Delete elimina un medicamento. Los retiros históricos conservan su copia
// de nombre y lote.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ToMedicationResponse convierte la entidad a su representación HTTP.
func ToMedicationResponse(m *entity.Medication) *dto.MedicationResponse {
	if m == nil {
		return nil
	}
	return &dto.MedicationResponse{
		ID:             m.ID,
		Name:           m.Name,
		Lot:            m.Lot,
		Quantity:       m.Quantity,
		ExpirationDate: m.ExpirationDate.Format(dateLayout),
		MinimumStock:   m.MinimumStock,
		EntryDate:      m.EntryDate,
	}
}
