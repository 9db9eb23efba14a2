package usecases

import (
	"context"
	"sort"
	"sync"

	"github.com/phonefix-inc/phonefix/internal/domain/address"
)

// clone copies an address so stored rows never alias what callers hold,
// matching what a database read returns.
func clone(a *address.Address) *address.Address {
	c := *a
	return &c
}

type memoryAddresses struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]*address.Address
	locks  int
}

func newMemoryAddresses() *memoryAddresses {
	return &memoryAddresses{rows: make(map[uint]*address.Address)}
}

func (m *memoryAddresses) Create(ctx context.Context, addr *address.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if err := addr.SetID(m.nextID); err != nil {
		return err
	}
	m.rows[addr.ID()] = clone(addr)
	return nil
}

func (m *memoryAddresses) GetByID(ctx context.Context, id uint) (*address.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return nil, address.ErrAddressNotFound
	}
	return clone(a), nil
}

func (m *memoryAddresses) ListByUser(ctx context.Context, userID string) ([]*address.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*address.Address
	for _, a := range m.rows {
		if a.UserID() == userID {
			out = append(out, clone(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDefault() != out[j].IsDefault() {
			return out[i].IsDefault()
		}
		return out[i].ID() > out[j].ID()
	})
	return out, nil
}

func (m *memoryAddresses) LockByUserAndType(ctx context.Context, userID string, addrType address.Type) ([]*address.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locks++
	var out []*address.Address
	for _, a := range m.rows {
		if a.UserID() == userID && a.Type() == addrType {
			out = append(out, clone(a))
		}
	}
	return out, nil
}

func (m *memoryAddresses) ClearDefaults(ctx context.Context, userID string, addrType address.Type) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.rows {
		if a.UserID() == userID && a.Type() == addrType && a.IsDefault() {
			a.ClearDefault()
		}
	}
	return nil
}

func (m *memoryAddresses) Update(ctx context.Context, addr *address.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[addr.ID()]; !ok {
		return address.ErrAddressNotFound
	}
	m.rows[addr.ID()] = clone(addr)
	return nil
}

func (m *memoryAddresses) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return address.ErrAddressNotFound
	}
	delete(m.rows, id)
	return nil
}

// defaults returns the IDs of default addresses for a user and type.
func (m *memoryAddresses) defaults(userID string, addrType address.Type) []uint {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []uint
	for _, a := range m.rows {
		if a.UserID() == userID && a.Type() == addrType && a.IsDefault() {
			ids = append(ids, a.ID())
		}
	}
	return ids
}

type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// hookTransactor runs before once, ahead of the first transaction it opens.
// It lets a test commit a competing change between a read and a transaction.
type hookTransactor struct {
	before func()
}

func (h *hookTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if h.before != nil {
		hook := h.before
		h.before = nil
		hook()
	}
	return fn(ctx)
}
