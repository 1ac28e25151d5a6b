package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"pawfect_grooming/model"

	"github.com/rs/zerolog"
)

const retryPrimaryAfter = time.Minute

// FailoverStore serves from primary and switches to fallback while primary errors.
// Primary is retried once a minute.
type FailoverStore struct {
	primary  Store
	fallback Store
	logger   *zerolog.Logger

	isDown    atomic.Bool
	mu        sync.Mutex
	lastCheck time.Time
}

func NewFailoverStore(primary, fallback Store, logger *zerolog.Logger) *FailoverStore {
	return &FailoverStore{primary: primary, fallback: fallback, logger: logger}
}

// usePrimary reports whether the call should go to the primary store.
func (f *FailoverStore) usePrimary() bool {
	if !f.isDown.Load() {
		return true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if time.Since(f.lastCheck) > retryPrimaryAfter {
		f.lastCheck = time.Now()
		return true
	}
	return false
}

func (f *FailoverStore) markDown(err error) {
	if !f.isDown.Swap(true) {
		f.logger.Error().Err(err).Msg("session store primary failed, falling back to memory")
	}
	f.mu.Lock()
	f.lastCheck = time.Now()
	f.mu.Unlock()
}

func (f *FailoverStore) markUp() {
	if f.isDown.Swap(false) {
		f.logger.Info().Msg("session store primary recovered")
	}
}

// IsDown reports whether calls are currently served by the fallback.
func (f *FailoverStore) IsDown() bool {
	return f.isDown.Load()
}

func call[T any](f *FailoverStore, fn func(Store) (T, error)) (T, error) {
	if f.usePrimary() {
		v, err := fn(f.primary)
		if err == nil {
			f.markUp()
			return v, nil
		}
		f.markDown(err)
	}
	return fn(f.fallback)
}

func exec(f *FailoverStore, fn func(Store) error) error {
	_, err := call(f, func(s Store) (struct{}, error) {
		return struct{}{}, fn(s)
	})
	return err
}

func (f *FailoverStore) GetDraft(ctx context.Context, userID uint) (*model.BookingDraft, error) {
	get := func(s Store) (*model.BookingDraft, error) { return s.GetDraft(ctx, userID) }
	return call(f, get)
}

func (f *FailoverStore) SetDraft(ctx context.Context, userID uint, draft *model.BookingDraft) error {
	return exec(f, func(s Store) error { return s.SetDraft(ctx, userID, draft) })
}

func (f *FailoverStore) ClearDraft(ctx context.Context, userID uint) error {
	return exec(f, func(s Store) error { return s.ClearDraft(ctx, userID) })
}

func (f *FailoverStore) GetVoucher(ctx context.Context, userID uint) (*model.VoucherReservation, error) {
	get := func(s Store) (*model.VoucherReservation, error) { return s.GetVoucher(ctx, userID) }
	return call(f, get)
}

func (f *FailoverStore) SetVoucher(ctx context.Context, userID uint, reservation *model.VoucherReservation) error {
	return exec(f, func(s Store) error { return s.SetVoucher(ctx, userID, reservation) })
}

func (f *FailoverStore) ClearVoucher(ctx context.Context, userID uint) error {
	return exec(f, func(s Store) error { return s.ClearVoucher(ctx, userID) })
}

func (f *FailoverStore) LoginAttempts(ctx context.Context, key string) (int, error) {
	get := func(s Store) (int, error) { return s.LoginAttempts(ctx, key) }
	return call(f, get)
}

func (f *FailoverStore) AddLoginAttempt(ctx context.Context, key string, window time.Duration) (int, error) {
	add := func(s Store) (int, error) { return s.AddLoginAttempt(ctx, key, window) }
	return call(f, add)
}

func (f *FailoverStore) ResetLoginAttempts(ctx context.Context, key string) error {
	return exec(f, func(s Store) error { return s.ResetLoginAttempts(ctx, key) })
}
