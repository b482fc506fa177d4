package entity

import "time"

// Transfer es el registro de auditoría de una transferencia principal → secundario.
// Append-only: nunca se modifica ni se elimina.
type Transfer struct {
	ID           string
	ProductName  string
	Quantity     int64
	Category     string
	TransferDate time.Time
}
