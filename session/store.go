// Package session keeps per-user checkout state between requests: the booking draft,
// the voucher reserved for a booking and failed login counters.
package session

import (
	"context"
	"time"

	"pawfect_grooming/model"
)

type Store interface {
	GetDraft(ctx context.Context, userID uint) (*model.BookingDraft, error)
	SetDraft(ctx context.Context, userID uint, draft *model.BookingDraft) error
	ClearDraft(ctx context.Context, userID uint) error

	GetVoucher(ctx context.Context, userID uint) (*model.VoucherReservation, error)
	SetVoucher(ctx context.Context, userID uint, reservation *model.VoucherReservation) error
	ClearVoucher(ctx context.Context, userID uint) error

	// LoginAttempts returns the failed logins recorded for key inside the current window.
	LoginAttempts(ctx context.Context, key string) (int, error)
	// AddLoginAttempt records a failure and restarts the window.
	AddLoginAttempt(ctx context.Context, key string, window time.Duration) (int, error)
	ResetLoginAttempts(ctx context.Context, key string) error
}

// Default is the store used by handlers. main replaces it with the Redis-backed failover store.
var Default Store = NewMemoryStore(2 * time.Hour)
