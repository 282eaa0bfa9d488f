package storage

import (
	"container/list"
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	key       string
	data      []byte
	expiresAt time.Time // zero means no expiry
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStore is an in-process Store with a capacity bound. When full, the
// least recently used entry is evicted. Each MemoryStore is its own
// namespace. Safe for concurrent use.
type MemoryStore struct {
	capacity int
	mu       sync.Mutex
	items    map[string]*list.Element
	eviction *list.List
	now      func() time.Time
}

// NewMemoryStore creates a memory-backed store. Capacity must be positive,
// otherwise it panics; misconfiguration should fail at startup.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		panic("storage: memory store capacity must be positive")
	}
	return &MemoryStore{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		now:      time.Now,
	}
}

func (s *MemoryStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	entry := &memoryEntry{key: key, data: data}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[key]; ok {
		s.eviction.MoveToFront(elem)
		elem.Value = entry
		return nil
	}

	s.items[key] = s.eviction.PushFront(entry)
	if s.eviction.Len() > s.capacity {
		s.evictOldest()
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string, dest any) error {
	s.mu.Lock()

	elem, ok := s.items[key]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}

	entry := elem.Value.(*memoryEntry)
	if entry.expired(s.now()) {
		s.removeElement(elem)
		s.mu.Unlock()
		return ErrExpired
	}

	s.eviction.MoveToFront(elem)
	data := entry.data
	s.mu.Unlock()

	return json.Unmarshal(data, dest)
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[key]; ok {
		s.removeElement(elem)
	}
	return nil
}

func (s *MemoryStore) Has(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[key]
	if !ok {
		return false, nil
	}
	if elem.Value.(*memoryEntry).expired(s.now()) {
		s.removeElement(elem)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*list.Element)
	s.eviction.Init()
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eviction.Len()
}

// Must be called with the lock held.
func (s *MemoryStore) evictOldest() {
	if elem := s.eviction.Back(); elem != nil {
		s.removeElement(elem)
	}
}

// Must be called with the lock held.
func (s *MemoryStore) removeElement(elem *list.Element) {
	s.eviction.Remove(elem)
	delete(s.items, elem.Value.(*memoryEntry).key)
}
