package dto

import "time"

// TransferRequest body para POST /api/storage-principal/transfer.
type TransferRequest struct {
	ID       string `json:"id"`
	Quantity int64  `json:"cantidad"`
}

// TransferResponse registro de auditoría de una transferencia.
type TransferResponse struct {
	ID           string    `json:"id"`
	ProductName  string    `json:"nombre_producto"`
	Quantity     int64     `json:"cantidad"`
	Category     string    `json:"categoria,omitempty"`
	TransferDate time.Time `json:"fecha_transferencia"`
}

// TransferResultResponse resultado de una transferencia: el estado del insumo
// de origen (null si la fila se drenó y la política es eliminarla) y el
// registro de auditoría creado.
type TransferResultResponse struct {
	Origin   *StockItemResponse `json:"origen"`
	Transfer TransferResponse   `json:"transferencia"`
}

// WithdrawalRequest body para POST /api/retiros_medicamentos.
type WithdrawalRequest struct {
	MedicationID      string `json:"medicamento_id"`
	QuantityWithdrawn int64  `json:"cantidad_retirada"`
	Note              string `json:"nota,omitempty"`
}

// WithdrawalResponse registro de auditoría de un retiro.
type WithdrawalResponse struct {
	ID                string    `json:"id"`
	MedicationID      string    `json:"medicamento_id"`
	MedicationName    string    `json:"nombre_medicamento"`
	Lot               string    `json:"lote"`
	QuantityWithdrawn int64     `json:"cantidad_retirada"`
	Note              string    `json:"nota,omitempty"`
	WithdrawalDate    time.Time `json:"fecha_retiro"`
}
