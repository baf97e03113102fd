package sessionservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sushihentaime/blogsite/internal/common"
)

// RedisStore keeps sessions in redis so they survive restarts and can be shared
// between instances.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return rdb, nil
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Establish(ctx context.Context, user User) (*Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := Session{
		User:      user,
		CreatedAt: now,
		Expiry:    now.Add(s.ttl),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}

	err = s.rdb.Set(ctx, common.CacheKeySession(hashToken(token)), data, s.ttl).Err()
	if err != nil {
		return nil, err
	}

	sess.Token = token
	return &sess, nil
}

func (s *RedisStore) Current(ctx context.Context, token string) (*Session, error) {
	if !validToken(token) {
		return nil, ErrSessionNotFound
	}

	data, err := s.rdb.Get(ctx, common.CacheKeySession(hashToken(token))).Bytes()
	if err != nil {
		switch {
		case errors.Is(err, redis.Nil):
			return nil, ErrSessionNotFound
		default:
			return nil, err
		}
	}

	var sess Session
	err = json.Unmarshal(data, &sess)
	if err != nil {
		return nil, err
	}

	sess.Token = token
	return &sess, nil
}

// UpdateDisplayName rewrites the session in place. KEEPTTL preserves the expiry and
// XX refuses to resurrect a session that expired in between.
func (s *RedisStore) UpdateDisplayName(ctx context.Context, token, name string) error {
	sess, err := s.Current(ctx, token)
	if err != nil {
		return err
	}

	sess.User.Name = name

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	err = s.rdb.SetArgs(ctx, common.CacheKeySession(hashToken(token)), data, redis.SetArgs{Mode: "XX", KeepTTL: true}).Err()
	if err != nil {
		switch {
		case errors.Is(err, redis.Nil):
			return ErrSessionNotFound
		default:
			return err
		}
	}

	return nil
}
