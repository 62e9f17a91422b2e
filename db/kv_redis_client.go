package db

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

// KVRedisClient struct holds the Redis client and context
type KVRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewKVRedisClient initializes a new Redis client wrapper
func NewKVRedisClient(ctx context.Context, client *redis.Client) *KVRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	log.Println("Connected to Redis")

	return &KVRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *KVRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *KVRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

func (r *KVRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *KVRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *KVRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *KVRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
