package ban

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/redissvc"
)

const (
	DailyBanLogKey = "ratelimit:banlog:daily"
	strikePrefix   = "ratelimit:strikes:"
	banPrefix      = "ratelimit:ban:"
)

type RedisStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisStore(rs *redissvc.RedisService) *RedisStore {
	return &RedisStore{rdb: rs.Rdb(), ctx: rs.Ctx()}
}

func (s *RedisStore) AddStrike(target string, window time.Duration) (int, error) {
	key := strikePrefix + target
	n, err := s.rdb.Incr(s.ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := s.rdb.Expire(s.ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return int(n), nil
}

func (s *RedisStore) ResetStrikes(target string) error {
	return s.rdb.Del(s.ctx, strikePrefix+target).Err()
}

func (s *RedisStore) Ban(target string, ttl time.Duration) error {
	return s.rdb.Set(s.ctx, banPrefix+target, time.Now().UTC().Format(time.RFC3339), ttl).Err()
}

func (s *RedisStore) IsBanned(target string) (bool, error) {
	n, err := s.rdb.Exists(s.ctx, banPrefix+target).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Unban(target string) (bool, error) {
	n, err := s.rdb.Del(s.ctx, banPrefix+target, strikePrefix+target).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) ActiveBans() ([]string, error) {
	var targets []string
	iter := s.rdb.Scan(s.ctx, 0, banPrefix+"*", 100).Iterator()
	for iter.Next(s.ctx) {
		targets = append(targets, strings.TrimPrefix(iter.Val(), banPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	slices.Sort(targets)
	return targets, nil
}

func (s *RedisStore) AppendLog(entry BanLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.rdb.RPush(s.ctx, DailyBanLogKey, data).Err()
}

func (s *RedisStore) Log() ([]BanLogEntry, error) {
	items, err := s.rdb.LRange(s.ctx, DailyBanLogKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return decodeLog(items), nil
}

func (s *RedisStore) DrainLog() ([]BanLogEntry, error) {
	var items *redis.StringSliceCmd
	_, err := s.rdb.TxPipelined(s.ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(s.ctx, DailyBanLogKey, 0, -1)
		pipe.Del(s.ctx, DailyBanLogKey)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	return decodeLog(items.Val()), nil
}

func decodeLog(items []string) []BanLogEntry {
	logs := make([]BanLogEntry, 0, len(items))
	for _, item := range items {
		var entry BanLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			logs = append(logs, entry)
		}
	}
	return logs
}
