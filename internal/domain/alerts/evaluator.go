package alerts

import (
	"fmt"
	"time"

	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
)

// Tipos de alerta, en orden de prioridad.
const (
	TypeExpired      = "expirado"
	TypeExpiringSoon = "por_vencer"
	TypeLowStock     = "bajo_stock"
)

// LookaheadDays ventana de aviso para medicamentos próximos a vencer.
const LookaheadDays = 30

// Alert una alerta generada para un medicamento.
type Alert struct {
	Type    string `json:"tipo"`
	Message string `json:"mensaje"`
}

// Evaluate clasifica cada medicamento según la fecha de referencia `today`:
// expirado si ya venció, por_vencer si vence dentro de la ventana de aviso,
// bajo_stock si la cantidad está por debajo del mínimo. Primera condición que
// aplica gana; sin condición no hay alerta. Función pura: el reloj es un
// parámetro explícito y el orden de entrada se conserva.
func Evaluate(meds []entity.Medication, today time.Time) []Alert {
	limit := today.AddDate(0, 0, LookaheadDays)

	var out []Alert
	for _, med := range meds {
		switch {
		case med.ExpirationDate.Before(today):
			out = append(out, Alert{
				Type:    TypeExpired,
				Message: fmt.Sprintf("El medicamento %s lote %s ya está vencido.", med.Name, med.Lot),
			})
		case !med.ExpirationDate.After(limit):
			out = append(out, Alert{
				Type:    TypeExpiringSoon,
				Message: fmt.Sprintf("El medicamento %s lote %s vence pronto (%s).", med.Name, med.Lot, med.ExpirationDate.Format("2006-01-02")),
			})
		case med.Quantity < med.MinimumStock:
			out = append(out, Alert{
				Type:    TypeLowStock,
				Message: fmt.Sprintf("Stock bajo de %s. Quedan %d y el mínimo es %d.", med.Name, med.Quantity, med.MinimumStock),
			})
		}
	}
	return out
}
