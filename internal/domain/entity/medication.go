package entity

import "time"

// Medication representa un medicamento con control de lote y vencimiento.
// Lot es único en toda la tabla (puede repetirse el nombre entre lotes distintos).
type Medication struct {
	ID             string
	Name           string
	Lot            string
	Quantity       int64
	ExpirationDate time.Time
	MinimumStock   int64
	EntryDate      time.Time
}
