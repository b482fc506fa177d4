package entity

import "time"

// Ubicaciones de almacenamiento. Cada una tiene su propia tabla con el mismo esquema.
type Location string

const (
	LocationPrincipal  Location = "principal"
	LocationSecundario Location = "secundario"
)

// StockItem representa un insumo (no medicamento) almacenado en una ubicación.
// Name es único dentro de la tabla de su ubicación; Quantity nunca es negativa.
type StockItem struct {
	ID        string
	Name      string
	Quantity  int64
	Category  string
	EntryDate time.Time // fijado al crear, nunca se actualiza
	UpdatedAt time.Time
}
