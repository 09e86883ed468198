package redissvc

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

// Connect dials Redis and verifies the connection with PING.
func Connect(ctx context.Context, addr, password string, db int) (*RedisService, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}

	return NewRedisService(rdb, ctx), nil
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Ctx() context.Context {
	return a.ctx
}

func (a *RedisService) Close() error {
	return a.rdb.Close()
}
