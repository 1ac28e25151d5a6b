package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"pawfect_grooming/config"
	"pawfect_grooming/model"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient creates a Redis client from configuration.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func draftKey(userID uint) string   { return fmt.Sprintf("booking_draft:%d", userID) }
func voucherKey(userID uint) string { return fmt.Sprintf("voucher_reservation:%d", userID) }
func attemptKey(key string) string  { return "login_attempts:" + key }

func (r *RedisStore) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	if r.client == nil {
		return false, fmt.Errorf("redis client is nil")
	}
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	if err := json.Unmarshal([]byte(val), dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *RedisStore) setJSON(ctx context.Context, key string, value any) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}

func (r *RedisStore) del(ctx context.Context, key string) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", key, err)
	}
	return nil
}

func (r *RedisStore) GetDraft(ctx context.Context, userID uint) (*model.BookingDraft, error) {
	var draft model.BookingDraft
	ok, err := r.getJSON(ctx, draftKey(userID), &draft)
	if err != nil || !ok {
		return nil, err
	}
	return &draft, nil
}

func (r *RedisStore) SetDraft(ctx context.Context, userID uint, draft *model.BookingDraft) error {
	return r.setJSON(ctx, draftKey(userID), draft)
}

func (r *RedisStore) ClearDraft(ctx context.Context, userID uint) error {
	return r.del(ctx, draftKey(userID))
}

func (r *RedisStore) GetVoucher(ctx context.Context, userID uint) (*model.VoucherReservation, error) {
	var reservation model.VoucherReservation
	ok, err := r.getJSON(ctx, voucherKey(userID), &reservation)
	if err != nil || !ok {
		return nil, err
	}
	return &reservation, nil
}

func (r *RedisStore) SetVoucher(ctx context.Context, userID uint, reservation *model.VoucherReservation) error {
	return r.setJSON(ctx, voucherKey(userID), reservation)
}

func (r *RedisStore) ClearVoucher(ctx context.Context, userID uint) error {
	return r.del(ctx, voucherKey(userID))
}

func (r *RedisStore) LoginAttempts(ctx context.Context, key string) (int, error) {
	if r.client == nil {
		return 0, fmt.Errorf("redis client is nil")
	}
	val, err := r.client.Get(ctx, attemptKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get login attempts: %w", err)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt login attempts value %q: %w", val, err)
	}
	return n, nil
}

func (r *RedisStore) AddLoginAttempt(ctx context.Context, key string, window time.Duration) (int, error) {
	if r.client == nil {
		return 0, fmt.Errorf("redis client is nil")
	}
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, attemptKey(key))
	pipe.Expire(ctx, attemptKey(key), window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment login attempts: %w", err)
	}
	return int(incr.Val()), nil
}

func (r *RedisStore) ResetLoginAttempts(ctx context.Context, key string) error {
	return r.del(ctx, attemptKey(key))
}

// Ping checks the Redis connection.
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}
