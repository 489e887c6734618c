package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"selmag/catalogue-service/internal/app/catalogue/entity"
	"selmag/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	serviceName      = "catalogue-service"
	productKeyPrefix = "product"
)

type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient подключается к Redis и проверяет соединение
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func NewRedisProductCache(client *redis.Client, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{client: client, ttl: ttl}
}

func productKey(id int) string {
	return productKeyPrefix + ":" + strconv.Itoa(id)
}

func (r *RedisProductCache) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpGet)
	defer timer.ObserveDuration()

	data, err := r.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheMiss(serviceName, productKeyPrefix)
			return nil, nil
		}
		metrics.RecordRedisError(serviceName, metrics.RedisOpGet)
		return nil, fmt.Errorf("failed to get product from cache: %w", err)
	}

	var product entity.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	metrics.RecordCacheHit(serviceName, productKeyPrefix)
	return &product, nil
}

func (r *RedisProductCache) SetProduct(ctx context.Context, product *entity.Product) error {
	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpSet)
	defer timer.ObserveDuration()

	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	if err := r.client.Set(ctx, productKey(product.ID), data, r.ttl).Err(); err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpSet)
		return fmt.Errorf("failed to set product in cache: %w", err)
	}
	return nil
}

func (r *RedisProductCache) DeleteProduct(ctx context.Context, id int) error {
	timer := metrics.NewRedisTimer(serviceName, metrics.RedisOpDel)
	defer timer.ObserveDuration()

	if err := r.client.Del(ctx, productKey(id)).Err(); err != nil {
		metrics.RecordRedisError(serviceName, metrics.RedisOpDel)
		return fmt.Errorf("failed to delete product from cache: %w", err)
	}
	return nil
}
