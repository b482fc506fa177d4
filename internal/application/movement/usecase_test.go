package movement_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfigueroa/inventario-medico/internal/application/movement"
	"github.com/mfigueroa/inventario-medico/internal/domain"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/pkg/config"
)

func seedPrincipal(r *fakeTxRunner, name string, quantity int64, category string) *entity.StockItem {
	item := &entity.StockItem{
		ID:        uuid.NewString(),
		Name:      name,
		Quantity:  quantity,
		Category:  category,
		EntryDate: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.state.principal[item.ID] = item
	return item
}

func seedMedication(r *fakeTxRunner, name, lot string, quantity int64) *entity.Medication {
	med := &entity.Medication{
		ID:             uuid.NewString(),
		Name:           name,
		Lot:            lot,
		Quantity:       quantity,
		ExpirationDate: time.Now().AddDate(1, 0, 0),
		MinimumStock:   1,
		EntryDate:      time.Now(),
	}
	r.state.meds[med.ID] = med
	return med
}

func totalQuantity(items map[string]*entity.StockItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencias
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_MueveCantidadYRegistraBitacora(t *testing.T) {
	runner := newFakeTxRunner()
	origin := seedPrincipal(runner, "alcohol", 100, "antiséptico")
	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)

	result, err := uc.Transfer(context.Background(), origin.ID, 30)
	require.NoError(t, err)

	require.NotNil(t, result.Origin)
	assert.Equal(t, int64(70), result.Origin.Quantity, "el principal debe quedar con 70")

	sec, err := (&fakeStockRepo{items: runner.state.secundario}).GetByName("alcohol")
	require.NoError(t, err)
	require.NotNil(t, sec, "el secundario debe tener el insumo")
	assert.Equal(t, int64(30), sec.Quantity)
	assert.Equal(t, "antiséptico", sec.Category, "la categoría se copia al crear en secundario")

	require.Len(t, runner.state.transfers, 1, "una transferencia exitosa deja exactamente un registro")
	assert.Equal(t, "alcohol", runner.state.transfers[0].ProductName)
	assert.Equal(t, int64(30), runner.state.transfers[0].Quantity)
}

func TestTransfer_CantidadInsuficiente_NoCambiaNada(t *testing.T) {
	runner := newFakeTxRunner()
	origin := seedPrincipal(runner, "alcohol", 70, "antiséptico")

	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)
	_, err := uc.Transfer(context.Background(), origin.ID, 80)

	require.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	assert.Equal(t, int64(70), runner.state.principal[origin.ID].Quantity, "el principal no debe cambiar")
	assert.Empty(t, runner.state.secundario, "el secundario no debe cambiar")
	assert.Empty(t, runner.state.transfers, "una transferencia fallida no deja registro")
}

func TestTransfer_InsumoInexistente(t *testing.T) {
	runner := newFakeTxRunner()
	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)

	_, err := uc.Transfer(context.Background(), uuid.NewString(), 10)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, runner.state.transfers)
}

func TestTransfer_CantidadInvalida(t *testing.T) {
	runner := newFakeTxRunner()
	origin := seedPrincipal(runner, "gasas", 10, "")
	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)

	for _, quantity := range []int64{0, -5} {
		_, err := uc.Transfer(context.Background(), origin.ID, quantity)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, runner.state.transfers)
}

// Transferir a un secundario que ya tiene el insumo fusiona por nombre y
// conserva la categoría existente del secundario.
func TestTransfer_FusionaPorNombreEnSecundario(t *testing.T) {
	runner := newFakeTxRunner()
	origin := seedPrincipal(runner, "jeringas", 50, "descartable")
	existing := &entity.StockItem{
		ID:       uuid.NewString(),
		Name:     "jeringas",
		Quantity: 5,
		Category: "insumo-clínico",
	}
	runner.state.secundario[existing.ID] = existing

	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)
	_, err := uc.Transfer(context.Background(), origin.ID, 20)
	require.NoError(t, err)

	require.Len(t, runner.state.secundario, 1, "no debe crearse una fila nueva")
	merged := runner.state.secundario[existing.ID]
	assert.Equal(t, int64(25), merged.Quantity)
	assert.Equal(t, "insumo-clínico", merged.Category, "al fusionar no se sobreescribe la categoría")
}

// Conservación: la suma principal+secundario es la misma antes y después de
// cualquier secuencia de transferencias exitosas.
func TestTransfer_ConservaCantidadTotal(t *testing.T) {
	runner := newFakeTxRunner()
	origin := seedPrincipal(runner, "guantes", 200, "protección")
	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)

	before := totalQuantity(runner.state.principal) + totalQuantity(runner.state.secundario)

	for _, quantity := range []int64{30, 50, 20} {
		_, err := uc.Transfer(context.Background(), origin.ID, quantity)
		require.NoError(t, err)
	}

	after := totalQuantity(runner.state.principal) + totalQuantity(runner.state.secundario)
	assert.Equal(t, before, after, "las transferencias mueven cantidad, nunca la crean ni destruyen")
	assert.Len(t, runner.state.transfers, 3)
}

// ── política de drenado ───────────────────────────────────────────────────────

func TestTransfer_DrenadoConPoliticaKeep_FilaQuedaEnCero(t *testing.T) {
	runner := newFakeTxRunner()
	origin := seedPrincipal(runner, "suero", 40, "")
	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)

	result, err := uc.Transfer(context.Background(), origin.ID, 40)
	require.NoError(t, err)

	require.NotNil(t, result.Origin)
	assert.Equal(t, int64(0), result.Origin.Quantity)
	require.Contains(t, runner.state.principal, origin.ID, "con keep la fila drenada permanece")
	assert.Equal(t, int64(0), runner.state.principal[origin.ID].Quantity)
}

func TestTransfer_DrenadoConPoliticaDelete_FilaSeElimina(t *testing.T) {
	runner := newFakeTxRunner()
	origin := seedPrincipal(runner, "suero", 40, "")
	uc := movement.NewUseCase(runner, config.DrainPolicyDelete)

	result, err := uc.Transfer(context.Background(), origin.ID, 40)
	require.NoError(t, err)

	assert.Nil(t, result.Origin, "con delete el resultado no trae fila de origen")
	assert.NotContains(t, runner.state.principal, origin.ID, "con delete la fila drenada desaparece")

	sec, _ := (&fakeStockRepo{items: runner.state.secundario}).GetByName("suero")
	require.NotNil(t, sec)
	assert.Equal(t, int64(40), sec.Quantity)
	assert.Len(t, runner.state.transfers, 1)
}

// ── flujo completo ────────────────────────────────────────────────────────────

func TestTransfer_FlujoCompleto(t *testing.T) {
	runner := newFakeTxRunner()
	origin := seedPrincipal(runner, "alcohol", 100, "antiséptico")
	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)

	// 100 en principal, transferir 30
	result, err := uc.Transfer(context.Background(), origin.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(70), result.Origin.Quantity)

	sec, _ := (&fakeStockRepo{items: runner.state.secundario}).GetByName("alcohol")
	require.NotNil(t, sec)
	assert.Equal(t, int64(30), sec.Quantity)
	assert.Len(t, runner.state.transfers, 1)

	// intentar 80 con 70 disponibles: rechazo sin cambios
	_, err = uc.Transfer(context.Background(), origin.ID, 80)
	require.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	assert.Equal(t, int64(70), runner.state.principal[origin.ID].Quantity)
	sec, _ = (&fakeStockRepo{items: runner.state.secundario}).GetByName("alcohol")
	assert.Equal(t, int64(30), sec.Quantity)
	assert.Len(t, runner.state.transfers, 1, "el intento fallido no agrega registro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Retiros de medicamentos
// ──────────────────────────────────────────────────────────────────────────────

func TestWithdraw_DescuentaYRegistra(t *testing.T) {
	runner := newFakeTxRunner()
	med := seedMedication(runner, "Amoxicilina", "L-2024-07", 50)
	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)

	result, err := uc.Withdraw(context.Background(), med.ID, 20, "entrega piso 3")
	require.NoError(t, err)

	assert.Equal(t, int64(30), result.Medication.Quantity)
	assert.Equal(t, int64(30), runner.state.meds[med.ID].Quantity)

	require.Len(t, runner.state.withdrawals, 1)
	w := runner.state.withdrawals[0]
	assert.Equal(t, med.ID, w.MedicationID)
	assert.Equal(t, "Amoxicilina", w.MedicationName, "el retiro copia el nombre al momento del retiro")
	assert.Equal(t, "L-2024-07", w.Lot, "el retiro copia el lote al momento del retiro")
	assert.Equal(t, int64(20), w.QuantityWithdrawn)
	assert.Equal(t, "entrega piso 3", w.Note)
}

func TestWithdraw_RetiroTotal_QuedaEnCero(t *testing.T) {
	runner := newFakeTxRunner()
	med := seedMedication(runner, "Ibuprofeno", "L-01", 15)
	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)

	result, err := uc.Withdraw(context.Background(), med.ID, 15, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Medication.Quantity)
}

func TestWithdraw_CantidadInsuficiente_NoCambiaNada(t *testing.T) {
	runner := newFakeTxRunner()
	med := seedMedication(runner, "Ibuprofeno", "L-01", 15)
	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)

	_, err := uc.Withdraw(context.Background(), med.ID, 16, "")
	require.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	assert.Equal(t, int64(15), runner.state.meds[med.ID].Quantity)
	assert.Empty(t, runner.state.withdrawals)
}

func TestWithdraw_MedicamentoInexistente(t *testing.T) {
	runner := newFakeTxRunner()
	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)

	_, err := uc.Withdraw(context.Background(), uuid.NewString(), 5, "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWithdraw_CantidadInvalida(t *testing.T) {
	runner := newFakeTxRunner()
	med := seedMedication(runner, "Losartán", "L-02", 10)
	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)

	for _, quantity := range []int64{0, -1} {
		_, err := uc.Withdraw(context.Background(), med.ID, quantity, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, runner.state.withdrawals)
}

// El historial de retiros conserva su copia de nombre y lote aunque el
// medicamento se edite después (referencia débil).
func TestWithdraw_HistorialSobreviveEdiciones(t *testing.T) {
	runner := newFakeTxRunner()
	med := seedMedication(runner, "Metformina", "L-99", 30)
	uc := movement.NewUseCase(runner, config.DrainPolicyKeep)

	_, err := uc.Withdraw(context.Background(), med.ID, 10, "")
	require.NoError(t, err)

	// edición posterior del medicamento
	runner.state.meds[med.ID].Name = "Metformina 850mg"
	runner.state.meds[med.ID].Lot = "L-100"

	require.Len(t, runner.state.withdrawals, 1)
	assert.Equal(t, "Metformina", runner.state.withdrawals[0].MedicationName)
	assert.Equal(t, "L-99", runner.state.withdrawals[0].Lot)
}
