package session

import (
	"context"
	"sync"
	"time"

	"pawfect_grooming/model"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// MemoryStore keeps session state in process memory. Values expire after ttl.
type MemoryStore struct {
	values sync.Map
	mu     sync.Mutex
	ttl    time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl}
}

func (m *MemoryStore) load(key string) (any, bool) {
	val, ok := m.values.Load(key)
	if !ok {
		return nil, false
	}
	e := val.(entry)
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		m.values.Delete(key)
		return nil, false
	}
	return e.value, true
}

func (m *MemoryStore) store(key string, value any, ttl time.Duration) {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	m.values.Store(key, e)
}

func (m *MemoryStore) GetDraft(ctx context.Context, userID uint) (*model.BookingDraft, error) {
	val, ok := m.load(draftKey(userID))
	if !ok {
		return nil, nil
	}
	draft := val.(model.BookingDraft)
	return &draft, nil
}

func (m *MemoryStore) SetDraft(ctx context.Context, userID uint, draft *model.BookingDraft) error {
	m.store(draftKey(userID), *draft, m.ttl)
	return nil
}

func (m *MemoryStore) ClearDraft(ctx context.Context, userID uint) error {
	m.values.Delete(draftKey(userID))
	return nil
}

func (m *MemoryStore) GetVoucher(ctx context.Context, userID uint) (*model.VoucherReservation, error) {
	val, ok := m.load(voucherKey(userID))
	if !ok {
		return nil, nil
	}
	reservation := val.(model.VoucherReservation)
	return &reservation, nil
}

func (m *MemoryStore) SetVoucher(ctx context.Context, userID uint, reservation *model.VoucherReservation) error {
	m.store(voucherKey(userID), *reservation, m.ttl)
	return nil
}

func (m *MemoryStore) ClearVoucher(ctx context.Context, userID uint) error {
	m.values.Delete(voucherKey(userID))
	return nil
}

func (m *MemoryStore) LoginAttempts(ctx context.Context, key string) (int, error) {
	val, ok := m.load(attemptKey(key))
	if !ok {
		return 0, nil
	}
	return val.(int), nil
}

func (m *MemoryStore) AddLoginAttempt(ctx context.Context, key string, window time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 1
	if val, ok := m.load(attemptKey(key)); ok {
		count = val.(int) + 1
	}
	m.store(attemptKey(key), count, window)
	return count, nil
}

func (m *MemoryStore) ResetLoginAttempts(ctx context.Context, key string) error {
	m.values.Delete(attemptKey(key))
	return nil
}
