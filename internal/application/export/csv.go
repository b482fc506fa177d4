package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
)

// csvHeader columnas del export, en el orden del reporte original.
var csvHeader = []string{"Nombre", "Cantidad", "Categoría", "Fecha Entrada"}

// UseCase exporta el inventario de una ubicación a CSV.
// Formateo puro sobre la salida de list(): sin lógica de negocio.
type UseCase struct {
	repo repository.StockRepository
}

// NewUseCase construye el exportador para una ubicación.
func NewUseCase(repo repository.StockRepository) *UseCase {
	return &UseCase{repo: repo}
}

// CSV devuelve el inventario ordenado por nombre en formato CSV.
func (uc *UseCase) CSV() ([]byte, error) {
	items, err := uc.repo.ListOrderedByName()
	if err != nil {
		return nil, err
	}
	return MarshalCSV(items)
}

// MarshalCSV serializa insumos a filas Nombre,Cantidad,Categoría,Fecha Entrada.
func MarshalCSV(items []*entity.StockItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, item := range items {
		record := []string{
			item.Name,
			fmt.Sprintf("%d", item.Quantity),
			item.Category,
			item.EntryDate.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
