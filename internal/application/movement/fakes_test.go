package movement_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria. El txRunner falso clona el estado antes de ejecutar el
// callback y solo publica el clon si no hubo error: mismo contrato de
// Commit/Rollback que el runner real sobre PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	principal   map[string]*entity.StockItem
	secundario  map[string]*entity.StockItem
	meds        map[string]*entity.Medication
	transfers   []*entity.Transfer
	withdrawals []*entity.Withdrawal
}

func newMemState() *memState {
	return &memState{
		principal:  map[string]*entity.StockItem{},
		secundario: map[string]*entity.StockItem{},
		meds:       map[string]*entity.Medication{},
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for id, item := range s.principal {
		cp := *item
		c.principal[id] = &cp
	}
	for id, item := range s.secundario {
		cp := *item
		c.secundario[id] = &cp
	}
	for id, m := range s.meds {
		cp := *m
		c.meds[id] = &cp
	}
	for _, t := range s.transfers {
		cp := *t
		c.transfers = append(c.transfers, &cp)
	}
	for _, w := range s.withdrawals {
		cp := *w
		c.withdrawals = append(c.withdrawals, &cp)
	}
	return c
}

type fakeTxRunner struct {
	state *memState
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{state: newMemState()}
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	principalRepo repository.StockRepository,
	secundarioRepo repository.StockRepository,
	medRepo repository.MedicationRepository,
	transferRepo repository.TransferRepository,
	withdrawalRepo repository.WithdrawalRepository,
) error) error {
	tx := r.state.clone()
	err := fn(
		&fakeStockRepo{items: tx.principal},
		&fakeStockRepo{items: tx.secundario},
		&fakeMedicationRepo{state: tx},
		&fakeTransferRepo{state: tx},
		&fakeWithdrawalRepo{state: tx},
	)
	if err != nil {
		return err // rollback: el estado publicado no cambia
	}
	r.state = tx
	return nil
}

// ── stock ─────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	items map[string]*entity.StockItem
}

func (r *fakeStockRepo) AddByName(item *entity.StockItem) (*entity.StockItem, error) {
	for _, existing := range r.items {
		if existing.Name == item.Name {
			existing.Quantity += item.Quantity
			existing.UpdatedAt = time.Now()
			cp := *existing
			return &cp, nil
		}
	}
	created := *item
	created.ID = uuid.NewString()
	created.EntryDate = time.Now()
	created.UpdatedAt = created.EntryDate
	r.items[created.ID] = &created
	cp := created
	return &cp, nil
}

func (r *fakeStockRepo) GetByID(id string) (*entity.StockItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeStockRepo) GetByIDForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *fakeStockRepo) GetByName(name string) (*entity.StockItem, error) {
	for _, item := range r.items {
		if item.Name == name {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) List() ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeStockRepo) ListOrderedByName() ([]*entity.StockItem, error) {
	return r.List()
}

func (r *fakeStockRepo) Update(item *entity.StockItem) error {
	existing, ok := r.items[item.ID]
	if !ok {
		return nil
	}
	existing.Name = item.Name
	existing.Quantity = item.Quantity
	existing.Category = item.Category
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *fakeStockRepo) SetQuantity(id string, quantity int64) error {
	if existing, ok := r.items[id]; ok {
		existing.Quantity = quantity
		existing.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeStockRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// ── medicamentos ──────────────────────────────────────────────────────────────

type fakeMedicationRepo struct {
	state *memState
}

func (r *fakeMedicationRepo) Create(med *entity.Medication) error {
	med.ID = uuid.NewString()
	med.EntryDate = time.Now()
	cp := *med
	r.state.meds[med.ID] = &cp
	return nil
}

func (r *fakeMedicationRepo) GetByID(id string) (*entity.Medication, error) {
	med, ok := r.state.meds[id]
	if !ok {
		return nil, nil
	}
	cp := *med
	return &cp, nil
}

func (r *fakeMedicationRepo) GetByIDForUpdate(id string) (*entity.Medication, error) {
	return r.GetByID(id)
}

func (r *fakeMedicationRepo) List() ([]*entity.Medication, error) {
	out := make([]*entity.Medication, 0, len(r.state.meds))
	for _, med := range r.state.meds {
		cp := *med
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMedicationRepo) Update(med *entity.Medication) error {
	if existing, ok := r.state.meds[med.ID]; ok {
		*existing = *med
	}
	return nil
}

func (r *fakeMedicationRepo) SetQuantity(id string, quantity int64) error {
	if existing, ok := r.state.meds[id]; ok {
		existing.Quantity = quantity
	}
	return nil
}

func (r *fakeMedicationRepo) Delete(id string) error {
	delete(r.state.meds, id)
	return nil
}

// ── bitácoras ─────────────────────────────────────────────────────────────────

type fakeTransferRepo struct {
	state *memState
}

func (r *fakeTransferRepo) Create(t *entity.Transfer) error {
	t.ID = uuid.NewString()
	t.TransferDate = time.Now()
	cp := *t
	r.state.transfers = append(r.state.transfers, &cp)
	return nil
}

func (r *fakeTransferRepo) List() ([]*entity.Transfer, error) {
	out := make([]*entity.Transfer, 0, len(r.state.transfers))
	for _, t := range r.state.transfers {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

type fakeWithdrawalRepo struct {
	state *memState
}

func (r *fakeWithdrawalRepo) Create(w *entity.Withdrawal) error {
	w.ID = uuid.NewString()
	w.WithdrawalDate = time.Now()
	cp := *w
	r.state.withdrawals = append(r.state.withdrawals, &cp)
	return nil
}

func (r *fakeWithdrawalRepo) List() ([]*entity.Withdrawal, error) {
	out := make([]*entity.Withdrawal, 0, len(r.state.withdrawals))
	for _, w := range r.state.withdrawals {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}
