package dto

import "time"

// CreateMedicationRequest body para POST /api/medicamentos.
// La fecha de expiración va en formato YYYY-MM-DD.
type CreateMedicationRequest struct {
	Name           string `json:"nombre"`
	Lot            string `json:"lote"`
	Quantity       int64  `json:"cantidad"`
	ExpirationDate string `json:"fecha_expiracion"`
	MinimumStock   int64  `json:"stock_minimo"`
}

// UpdateMedicationRequest body para PUT /api/medicamentos/:id.
type UpdateMedicationRequest struct {
	Name           string `json:"nombre"`
	Lot            string `json:"lote"`
	Quantity       int64  `json:"cantidad"`
	ExpirationDate string `json:"fecha_expiracion"`
	MinimumStock   int64  `json:"stock_minimo"`
}

// MedicationResponse representación HTTP de un medicamento.
type MedicationResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"nombre"`
	Lot            string    `json:"lote"`
	Quantity       int64     `json:"cantidad"`
	ExpirationDate string    `json:"fecha_expiracion"`
	MinimumStock   int64     `json:"stock_minimo"`
	EntryDate      time.Time `json:"fecha_entrada"`
}
