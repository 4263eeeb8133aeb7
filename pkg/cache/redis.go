package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache Redis 缓存实现，值按字节串存取
type redisCache struct {
	client *redis.Client
}

// NewRedisCache 创建 Redis 缓存并验证连通性
func NewRedisCache(config RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &redisCache{client: client}, nil
}

// Get 获取缓存值，命中返回 []byte
func (rc *redisCache) Get(ctx context.Context, key string) (interface{}, bool) {
	data, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set 设置缓存值，仅接受字符串或字节串
func (rc *redisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	switch value.(type) {
	case string, []byte:
		return rc.client.Set(ctx, key, value, expiration).Err()
	default:
		return errors.New("redis cache values must be string or []byte")
	}
}

// Delete 删除缓存
func (rc *redisCache) Delete(ctx context.Context, key string) error {
	return rc.client.Del(ctx, key).Err()
}

// Clear 清空当前 DB
func (rc *redisCache) Clear(ctx context.Context) error {
	return rc.client.FlushDB(ctx).Err()
}

// Close 关闭连接
func (rc *redisCache) Close() error {
	return rc.client.Close()
}
