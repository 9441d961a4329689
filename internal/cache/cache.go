// Package cache provides a small TTL cache with LRU eviction. Views use it
// to hold reference data (the category list) for the duration of a view
// without refetching on every interaction.
package cache

import (
	"container/list"
	"sync"
	"time"
)

type Store[T any] struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
}

type entry[T any] struct {
	key       string
	data      T
	expiresAt time.Time
}

func New[T any](maxSize int, ttl time.Duration) *Store[T] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Store[T]{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Get returns the cached value for key, or false when absent or expired.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	elem, ok := s.items[key]
	if !ok {
		return zero, false
	}
	e := elem.Value.(*entry[T])
	if time.Now().After(e.expiresAt) {
		s.remove(elem)
		return zero, false
	}
	s.lru.MoveToFront(elem)
	return e.data, true
}

// Set stores a value, evicting the least recently used entry when full.
func (s *Store[T]) Set(key string, data T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &entry[T]{key: key, data: data, expiresAt: time.Now().Add(s.ttl)}
	if elem, ok := s.items[key]; ok {
		elem.Value = e
		s.lru.MoveToFront(elem)
		return
	}
	s.items[key] = s.lru.PushFront(e)
	if s.lru.Len() > s.maxSize {
		if oldest := s.lru.Back(); oldest != nil {
			s.remove(oldest)
		}
	}
}

// Delete drops a key if present.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if elem, ok := s.items[key]; ok {
		s.remove(elem)
	}
}

// Len returns the number of live entries, expired ones included until read.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store[T]) remove(elem *list.Element) {
	e := elem.Value.(*entry[T])
	delete(s.items, e.key)
	s.lru.Remove(elem)
}
