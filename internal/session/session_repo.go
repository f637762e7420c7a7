package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "portal:session:"

func Key(id string) string {
	return keyPrefix + id
}

//go:generate mockgen -source=session_repo.go -destination=mock/session_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, s Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type redisRepository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) Repository {
	return &redisRepository{rdb: rdb}
}

func (r *redisRepository) Save(ctx context.Context, s Session, ttl time.Duration) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, Key(s.ID), payload, ttl).Err()
}

func (r *redisRepository) Get(ctx context.Context, id string) (Session, error) {
	val, err := r.rdb.Get(ctx, Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, err
	}

	var s Session
	if err := json.Unmarshal(val, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, Key(id)).Err()
}

func (r *redisRepository) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.rdb.Exists(ctx, Key(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
