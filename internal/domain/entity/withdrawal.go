package entity

import "time"

// Withdrawal es el registro de auditoría de un retiro de medicamento.
// MedicationID es una referencia débil: nombre y lote se copian al momento del
// retiro para que el historial sobreviva si el medicamento se edita o elimina.
type Withdrawal struct {
	ID                string
	MedicationID      string
	MedicationName    string
	Lot               string
	QuantityWithdrawn int64
	Note              string
	WithdrawalDate    time.Time
}
