// Package session keeps the access grants for the repayment ledger.
//
// Grants only live in memory. Restarting the process ends all sessions.
package session

import (
	"container/list"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxSessions is the number of concurrent grants kept before the least
// recently used one is evicted.
const DefaultMaxSessions = 64

// Store holds session tokens with a time to live. Using a token extends
// its lifetime.
type Store struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	now     func() time.Time
	items   map[string]*list.Element
	lru     *list.List
}

type grant struct {
	token     string
	expiresAt time.Time
}

// NewStore creates a session store with the given TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		maxSize: DefaultMaxSessions,
		ttl:     ttl,
		now:     time.Now,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// WithClock sets the clock used to check expiry. It is used in tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.now = now
	return s
}

// Grant creates a new session and returns its token.
func (s *Store) Grant() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := &grant{
		token:     uuid.NewString(),
		expiresAt: s.now().Add(s.ttl),
	}

	elem := s.lru.PushFront(g)
	s.items[g.token] = elem

	if s.lru.Len() > s.maxSize {
		if oldest := s.lru.Back(); oldest != nil {
			s.removeElement(oldest)
		}
	}

	return g.token
}

// Valid reports whether the token belongs to an active session.
func (s *Store) Valid(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[token]
	if !ok {
		return false
	}

	g := elem.Value.(*grant)
	now := s.now()
	if now.After(g.expiresAt) {
		s.removeElement(elem)
		return false
	}

	g.expiresAt = now.Add(s.ttl)
	s.lru.MoveToFront(elem)
	return true
}

// Revoke ends the session. Unknown tokens are ignored.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[token]; ok {
		s.removeElement(elem)
	}
}

// RevokeAll ends all sessions.
func (s *Store) RevokeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*list.Element)
	s.lru.Init()
}

// CleanExpired removes all expired sessions and returns how many were removed.
func (s *Store) CleanExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var expired []*list.Element
	for elem := s.lru.Front(); elem != nil; elem = elem.Next() {
		if now.After(elem.Value.(*grant).expiresAt) {
			expired = append(expired, elem)
		}
	}

	for _, elem := range expired {
		s.removeElement(elem)
	}

	return len(expired)
}

// Len returns the number of sessions, including expired ones not yet cleaned.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

func (s *Store) removeElement(elem *list.Element) {
	delete(s.items, elem.Value.(*grant).token)
	s.lru.Remove(elem)
}
