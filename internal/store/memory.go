package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/viscontie/junk-mail-service/internal/model"
)

// Memory is the in-process Store used for development and tests. Ids are
// minted locally, standing in for the document store's id assignment.
type Memory struct {
	mu       sync.RWMutex
	orders   map[string]model.Order
	seq      map[string]int
	nextSeq  int
	profiles map[string]model.UserProfile
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		orders:   make(map[string]model.Order),
		seq:      make(map[string]int),
		profiles: make(map[string]model.UserProfile),
	}
}

func (s *Memory) CreateOrder(ctx context.Context, o model.Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = uuid.NewString()
	s.nextSeq++
	s.seq[o.ID] = s.nextSeq
	s.orders[o.ID] = o
	return o.ID, nil
}

func (s *Memory) GetOrder(ctx context.Context, id string) (model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return model.Order{}, ErrNotFound
	}
	return o, nil
}

func (s *Memory) ListOrders(ctx context.Context) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	// Most recent first; insertion order breaks timestamp ties so
	// repeated reads are deterministic.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return s.seq[out[i].ID] < s.seq[out[j].ID]
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Memory) UpdateOrder(ctx context.Context, id string, p OrderPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return ErrNotFound
	}
	applyOrderPatch(&o, p)
	s.orders[id] = o
	return nil
}

func (s *Memory) DeleteOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, id)
	delete(s.seq, id)
	return nil
}

func (s *Memory) ClearOrders(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make(map[string]model.Order)
	s.seq = make(map[string]int)
	return nil
}

func (s *Memory) GetProfile(ctx context.Context, uid string) (model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.profiles[uid]
	if !ok {
		return model.UserProfile{}, ErrNotFound
	}
	return u, nil
}

func (s *Memory) PutProfile(ctx context.Context, u model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[u.UID] = u
	return nil
}

func (s *Memory) UpdateProfile(ctx context.Context, uid string, p ProfilePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.profiles[uid]
	if !ok {
		return ErrNotFound
	}
	applyProfilePatch(&u, p)
	s.profiles[uid] = u
	return nil
}
