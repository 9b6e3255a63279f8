package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewRedisClient cria o cliente a partir da configuração e testa a conexão
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar REDIS_URL: %w", err)
	}

	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opt.DB = cfg.DB
	}

	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("erro ao conectar ao Redis: %w", err)
	}

	logrus.WithField("addr", opt.Addr).Info("Conexão com Redis estabelecida com sucesso")
	return rdb, nil
}

// RedisCache compartilha os datasets entre instâncias usando o TTL nativo do Redis
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, source string) (*domain.Dataset, bool, error) {
	data, err := c.rdb.Get(ctx, Key(source)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("erro ao ler dataset do Redis: %w", err)
	}

	dataset := &domain.Dataset{}
	if err := json.Unmarshal(data, dataset); err != nil {
		return nil, false, fmt.Errorf("erro ao deserializar dataset do Redis: %w", err)
	}

	return dataset, true, nil
}

func (c *RedisCache) Set(ctx context.Context, source string, dataset *domain.Dataset) error {
	data, err := json.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("erro ao serializar dataset: %w", err)
	}

	if err := c.rdb.Set(ctx, Key(source), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar dataset no Redis: %w", err)
	}

	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, source string) error {
	if err := c.rdb.Del(ctx, Key(source)).Err(); err != nil {
		return fmt.Errorf("erro ao remover dataset do Redis: %w", err)
	}

	return nil
}
