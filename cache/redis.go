package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"licencas/config"
	"licencas/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const KEY_PREFIX = "licencas:snapshot:"

// RedisStore guarda o snapshot serializado em JSON, compartilhado entre réplicas.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// NewRedisClient abre o cliente a partir da configuração e confere a conexão.
func NewRedisClient(ctx context.Context, c config.Configuration) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     c.Cache.RedisAddr,
		Password: c.Cache.RedisPassword,
		DB:       c.Cache.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis %s: %w", c.Cache.RedisAddr, err)
	}
	zap.L().Info("[Redis] Connected to Redis", zap.String("addr", c.Cache.RedisAddr), zap.Int("db", c.Cache.RedisDB))
	return rdb, nil
}

func key(session string) string {
	return KEY_PREFIX + session
}

func (r *RedisStore) Get(ctx context.Context, session string) (models.LicenseTable, bool, error) {
	b, err := r.rdb.Get(ctx, key(session)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var table models.LicenseTable
	if err := json.Unmarshal(b, &table); err != nil {
		return nil, false, fmt.Errorf("snapshot corrompido: %w", err)
	}
	if table == nil {
		table = models.LicenseTable{}
	}
	return table, true, nil
}

func (r *RedisStore) Set(ctx context.Context, session string, table models.LicenseTable) error {
	if table == nil {
		table = models.LicenseTable{}
	}
	b, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key(session), b, r.ttl).Err()
}

func (r *RedisStore) Invalidate(ctx context.Context, session string) error {
	return r.rdb.Del(ctx, key(session)).Err()
}
