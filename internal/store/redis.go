package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/viscontie/junk-mail-service/internal/model"
)

// Redis is the Store backed by a Redis instance. Documents are stored as
// JSON under namespaced keys with a set per collection as the index.
// Partial updates are read-modify-write; the collaborator contract is
// last-writer-wins, so no optimistic concurrency check is made.
type Redis struct {
	client    *redis.Client
	namespace string
}

// NewRedis connects to redisURL and verifies the connection with a ping.
func NewRedis(ctx context.Context, redisURL, namespace string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	if namespace == "" {
		namespace = "junkmail"
	}
	return &Redis{client: client, namespace: namespace}, nil
}

// Close releases the underlying connection pool.
func (s *Redis) Close() error { return s.client.Close() }

func (s *Redis) orderKey(id string) string { return s.namespace + ":orders:" + id }
func (s *Redis) orderIndex() string        { return s.namespace + ":orders" }
func (s *Redis) profileKey(uid string) string {
	return s.namespace + ":users:" + uid
}

func (s *Redis) putOrder(ctx context.Context, o model.Order) error {
	b, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.orderKey(o.ID), b, 0)
	pipe.SAdd(ctx, s.orderIndex(), o.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Redis) CreateOrder(ctx context.Context, o model.Order) (string, error) {
	o.ID = uuid.NewString()
	if err := s.putOrder(ctx, o); err != nil {
		return "", err
	}
	return o.ID, nil
}

func (s *Redis) GetOrder(ctx context.Context, id string) (model.Order, error) {
	b, err := s.client.Get(ctx, s.orderKey(id)).Bytes()
	if err == redis.Nil {
		return model.Order{}, ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	var o model.Order
	if err := json.Unmarshal(b, &o); err != nil {
		return model.Order{}, fmt.Errorf("unmarshal order %s: %w", id, err)
	}
	return o, nil
}

func (s *Redis) ListOrders(ctx context.Context) ([]model.Order, error) {
	ids, err := s.client.SMembers(ctx, s.orderIndex()).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.orderKey(id)
	}
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	out := make([]model.Order, 0, len(vals))
	for _, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// Index entry whose document expired or was deleted.
			continue
		}
		var o model.Order
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			return nil, fmt.Errorf("unmarshal order: %w", err)
		}
		out = append(out, o)
	}
	// Most recent first; id breaks timestamp ties since set members come
	// back in arbitrary order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Redis) UpdateOrder(ctx context.Context, id string, p OrderPatch) error {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	applyOrderPatch(&o, p)
	return s.putOrder(ctx, o)
}

func (s *Redis) DeleteOrder(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.orderKey(id))
	pipe.SRem(ctx, s.orderIndex(), id)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Redis) ClearOrders(ctx context.Context) error {
	ids, err := s.client.SMembers(ctx, s.orderIndex()).Result()
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, s.orderKey(id))
	}
	pipe.Del(ctx, s.orderIndex())
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Redis) GetProfile(ctx context.Context, uid string) (model.UserProfile, error) {
	b, err := s.client.Get(ctx, s.profileKey(uid)).Bytes()
	if err == redis.Nil {
		return model.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return model.UserProfile{}, err
	}
	var u model.UserProfile
	if err := json.Unmarshal(b, &u); err != nil {
		return model.UserProfile{}, fmt.Errorf("unmarshal profile %s: %w", uid, err)
	}
	return u, nil
}

func (s *Redis) PutProfile(ctx context.Context, u model.UserProfile) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.client.Set(ctx, s.profileKey(u.UID), b, 0).Err()
}

func (s *Redis) UpdateProfile(ctx context.Context, uid string, p ProfilePatch) error {
	u, err := s.GetProfile(ctx, uid)
	if err != nil {
		return err
	}
	applyProfilePatch(&u, p)
	return s.PutProfile(ctx, u)
}
