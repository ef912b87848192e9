package store

import (
	"context"
	"sync"

	"github.com/shelfd/shelfd/pkg/book"
)

// MemoryStore is a thread-safe in-memory implementation of BookStore.
// IDs are assigned from an explicit monotonically increasing counter so
// that concurrent creates never produce duplicates and deleted IDs are
// not reused.
type MemoryStore struct {
	mu     sync.RWMutex
	books  map[int]*book.Book
	nextID int
	seed   []book.Book
}

// NewMemoryStore creates a store pre-populated with the given seed
// records. The ID counter starts one past the highest seed ID.
func NewMemoryStore(seed []book.Book) *MemoryStore {
	s := &MemoryStore{
		seed: append([]book.Book(nil), seed...),
	}
	s.loadSeed()
	return s
}

// loadSeed populates the store from the seed slice. Callers must hold
// the write lock or have exclusive access.
func (s *MemoryStore) loadSeed() {
	s.books = make(map[int]*book.Book, len(s.seed))
	maxID := 0
	for i := range s.seed {
		b := s.seed[i]
		s.books[b.ID] = &b
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	s.nextID = maxID + 1
}

// List returns copies of all books keyed by ID.
func (s *MemoryStore) List(_ context.Context) (map[int]*book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int]*book.Book, len(s.books))
	for id, b := range s.books {
		result[id] = b.Clone()
	}
	return result, nil
}

// Get retrieves a copy of a book by ID. Returns ErrNotFound if absent.
func (s *MemoryStore) Get(_ context.Context, id int) (*book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	return b.Clone(), nil
}

// Create assigns the next ID to b and stores it. The stored record is
// returned; the caller's value is not retained.
func (s *MemoryStore) Create(_ context.Context, b *book.Book) (*book.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := b.Clone()
	stored.ID = s.nextID
	s.nextID++
	s.books[stored.ID] = stored
	return stored.Clone(), nil
}

// Update applies a partial update to an existing book under the write
// lock, so concurrent updates never interleave field writes.
func (s *MemoryStore) Update(_ context.Context, id int, patch book.Patch) (*book.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(existing)
	return existing.Clone(), nil
}

// Delete removes a book by ID. Returns ErrNotFound if absent.
func (s *MemoryStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return ErrNotFound
	}
	delete(s.books, id)
	return nil
}

// Count returns the number of stored books.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// Reset restores the store to its seed state, including the ID counter.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadSeed()
}

// Ensure MemoryStore implements BookStore.
var _ BookStore = (*MemoryStore)(nil)
