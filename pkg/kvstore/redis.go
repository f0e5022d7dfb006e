package kvstore

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

type Redis struct {
	client *redis.Client
}

func NewRedis(addr string, password string, db int) (KVStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 2 * time.Second,
		ReadTimeout: time.Second,
	})

	r := Redis{client: rdb}
	if err := r.Ping(); err != nil {
		rdb.Close()
		return nil, err
	}
	return r, nil
}

func (r Redis) Ping() error {
	return r.client.Ping(ctx).Err()
}

func (r Redis) Set(key string, value interface{}, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r Redis) Get(key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r Redis) Delete(key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r Redis) Close() error {
	return r.client.Close()
}
