package sessionservice

import (
	"context"
	"sync"
	"time"

	"github.com/sushihentaime/blogsite/internal/common"
)

// MemoryStore keeps sessions in process memory. Sessions are lost on restart.
type MemoryStore struct {
	mu  sync.Mutex
	c   *common.Cache
	ttl time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		c:   common.NewCache(ttl, 10*time.Minute),
		ttl: ttl,
	}
}

func (s *MemoryStore) Establish(_ context.Context, user User) (*Session, error) {
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

	s.c.Set(common.CacheKeySession(hashToken(token)), sess, s.ttl)

	sess.Token = token
	return &sess, nil
}

func (s *MemoryStore) Current(_ context.Context, token string) (*Session, error) {
	if !validToken(token) {
		return nil, ErrSessionNotFound
	}

	v, ok := s.c.Get(common.CacheKeySession(hashToken(token)))
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess := v.(Session)
	sess.Token = token
	return &sess, nil
}

// UpdateDisplayName renames the session's user copy and keeps the remaining lifetime.
func (s *MemoryStore) UpdateDisplayName(_ context.Context, token, name string) error {
	if !validToken(token) {
		return ErrSessionNotFound
	}

	key := common.CacheKeySession(hashToken(token))

	s.mu.Lock()
	defer s.mu.Unlock()

	v, expiry, ok := s.c.GetWithExpiration(key)
	if !ok {
		return ErrSessionNotFound
	}

	remaining := time.Until(expiry)
	if remaining <= 0 {
		return ErrSessionNotFound
	}

	sess := v.(Session)
	sess.User.Name = name
	s.c.Set(key, sess, remaining)

	return nil
}
