package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/hbnb-web/internal/models"
)

// PlacesCache — кэш анонимного списка мест.
type PlacesCache interface {
	// Get возвращает список и признак его наличия в кэше.
	Get(ctx context.Context, key string) ([]models.Place, bool, error)
	// Set сохраняет список с TTL.
	Set(ctx context.Context, key string, places []models.Place, ttl time.Duration) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "hbnb:places:".
func NewRedisCache(ctx context.Context, redisURL, prefix string) (PlacesCache, error) {
	const op = "internal/cache/NewRedisCache"

	if prefix == "" {
		prefix = "hbnb:places:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(k string) string { return c.prefix + k }

// Храним как Redis Hash с полями: v (JSON списка), at (unix момента записи).
func (c *redisCache) Get(ctx context.Context, key string) ([]models.Place, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(key)).Result()
	if err != nil {
		return nil, false, err
	}

	raw, ok := m["v"]
	if !ok {
		return nil, false, nil
	}

	var places []models.Place
	if err := json.Unmarshal([]byte(raw), &places); err != nil {
		return nil, false, err
	}

	return places, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, places []models.Place, ttl time.Duration) error {
	if places == nil {
		places = []models.Place{}
	}

	payload, err := json.Marshal(places)
	if err != nil {
		return err
	}

	kv := map[string]string{
		"v":  string(payload),
		"at": strconv.FormatInt(time.Now().Unix(), 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(key), kv)
	pipe.Expire(ctx, c.key(key), ttl)

	_, err = pipe.Exec(ctx)
	return err
}

func (c *redisCache) Close() error { return c.rdb.Close() }

// Noop — кэш-заглушка, когда Redis не сконфигурирован.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]models.Place, bool, error) { return nil, false, nil }

func (Noop) Set(context.Context, string, []models.Place, time.Duration) error { return nil }

func (Noop) Close() error { return nil }
