package alerts

import (
	"time"

	domalerts "github.com/mfigueroa/inventario-medico/internal/domain/alerts"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
)

// UseCase evalúa alertas sobre el estado actual de los medicamentos.
// Sin estado persistido: cada llamada recalcula desde cero.
type UseCase struct {
	repo repository.MedicationRepository
	now  func() time.Time
}

// NewUseCase construye el caso de uso. El reloj es inyectable para tests.
func NewUseCase(repo repository.MedicationRepository, now func() time.Time) *UseCase {
	if now == nil {
		now = time.Now
	}
	return &UseCase{repo: repo, now: now}
}

// List lee los medicamentos y devuelve las alertas vigentes, en el orden
// de los registros de entrada.
func (uc *UseCase) List() ([]domalerts.Alert, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	meds := make([]entity.Medication, 0, len(list))
	for _, m := range list {
		meds = append(meds, *m)
	}
	alerts := domalerts.Evaluate(meds, uc.now())
	if alerts == nil {
		alerts = []domalerts.Alert{}
	}
	return alerts, nil
}
