package notification

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	inboxPrefix = "portal:inbox:"
	inboxLimit  = 50
)

func InboxKey(email string) string {
	return inboxPrefix + strings.ToLower(email)
}

type Repository interface {
	Push(ctx context.Context, email string, n Notification) error
	List(ctx context.Context, email string) ([]Notification, error)
	Clear(ctx context.Context, email string) error
}

type redisRepository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) Repository {
	return &redisRepository{rdb: rdb}
}

// Push prepends n and trims the inbox to the newest entries.
func (r *redisRepository) Push(ctx context.Context, email string, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	key := InboxKey(email)
	pipe := r.rdb.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, inboxLimit-1)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) List(ctx context.Context, email string) ([]Notification, error) {
	vals, err := r.rdb.LRange(ctx, InboxKey(email), 0, inboxLimit-1).Result()
	if err != nil {
		return nil, err
	}

	out := make([]Notification, 0, len(vals))
	for _, v := range vals {
		var n Notification
		if err := json.Unmarshal([]byte(v), &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *redisRepository) Clear(ctx context.Context, email string) error {
	return r.rdb.Del(ctx, InboxKey(email)).Err()
}
