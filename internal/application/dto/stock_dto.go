package dto

import "time"

// AddStockRequest body para POST /api/storage-principal.
// Si ya existe un insumo con ese nombre, la cantidad se suma a la existente.
type AddStockRequest struct {
	Name     string `json:"nombre"`
	Quantity int64  `json:"cantidad"`
	Category string `json:"categoria,omitempty"`
}

// UpdateStockRequest body para PUT /api/storage-{principal,secundario}/:id.
type UpdateStockRequest struct {
	Name     string `json:"nombre"`
	Quantity int64  `json:"cantidad"`
	Category string `json:"categoria,omitempty"`
}

// StockItemResponse representación HTTP de un insumo.
type StockItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Quantity  int64     `json:"cantidad"`
	Category  string    `json:"categoria,omitempty"`
	EntryDate time.Time `json:"fecha_entrada"`
	UpdatedAt time.Time `json:"updated_at"`
}
