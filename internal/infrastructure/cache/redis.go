package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"skill-matcher/internal/config"
)

var ErrUnavailable = errors.New("redis unavailable")

const refreshKeyPrefix = "session:refresh:"

// Redis keeps refresh-token sessions. When the server cannot be reached at
// startup every operation becomes a no-op and callers fall back to stateless
// token checks.
type Redis struct {
	client *redis.Client
	logger *logrus.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *logrus.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.WithError(err).WithField("addr", cfg.Addr()).Warn("redis unavailable, refresh sessions are stateless")
		}
		_ = client.Close()
		return &Redis{logger: logger}
	}

	return NewRedisFromClient(client, logger)
}

func NewRedisFromClient(client *redis.Client, logger *logrus.Logger) *Redis {
	return &Redis{client: client, logger: logger}
}

func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.WithError(err).Warn("redis command failed, bypassing session store")
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if !r.Available() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

// SaveRefresh records a freshly issued refresh token id for userID.
func (r *Redis) SaveRefresh(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	if !r.Available() {
		return nil
	}
	if err := r.client.Set(ctx, refreshKeyPrefix+tokenID, userID, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// ConsumeRefresh atomically removes a refresh token id and reports whether it
// was still live and bound to userID. Without a server every token is live.
func (r *Redis) ConsumeRefresh(ctx context.Context, tokenID, userID string) (bool, error) {
	if !r.Available() {
		return true, nil
	}
	owner, err := r.client.GetDel(ctx, refreshKeyPrefix+tokenID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	return owner == userID, nil
}

func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}
