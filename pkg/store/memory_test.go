package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfd/shelfd/pkg/book"
)

func testSeed() []book.Book {
	return []book.Book{
		{ID: 1, Title: "1984", Author: "George Orwell", Year: 1949},
		{ID: 2, Title: "Brave New World", Author: "Aldous Huxley", Year: 1932},
	}
}

func TestNewMemoryStore_SeedsRecords(t *testing.T) {
	s := NewMemoryStore(testSeed())

	assert.Equal(t, 2, s.Count())

	b, err := s.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "1984", b.Title)
	assert.Equal(t, "George Orwell", b.Author)
	assert.Equal(t, 1949, b.Year)
}

func TestGet_NotFound(t *testing.T) {
	s := NewMemoryStore(testSeed())

	_, err := s.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(testSeed())

	created, err := s.Create(ctx, &book.Book{Title: "Fahrenheit 451", Author: "Ray Bradbury"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, 3, s.Count())

	next, err := s.Create(ctx, &book.Book{Title: "Animal Farm", Author: "George Orwell"})
	require.NoError(t, err)
	assert.Equal(t, 4, next.ID)
}

func TestCreate_DoesNotReuseDeletedIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(testSeed())

	created, err := s.Create(ctx, &book.Book{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, created.ID))

	next, err := s.Create(ctx, &book.Book{Title: "Hyperion", Author: "Dan Simmons"})
	require.NoError(t, err)
	assert.Greater(t, next.ID, created.ID)
}

func TestCreate_DoesNotRetainCallerValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	in := &book.Book{Title: "Solaris", Author: "Stanislaw Lem"}
	created, err := s.Create(ctx, in)
	require.NoError(t, err)

	in.Title = "mutated"
	stored, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Solaris", stored.Title)
}

func TestUpdate_PartialPreservesOtherFields(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(testSeed())

	title := "Nineteen Eighty-Four"
	updated, err := s.Update(ctx, 1, book.Patch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Nineteen Eighty-Four", updated.Title)
	assert.Equal(t, "George Orwell", updated.Author)
	assert.Equal(t, 1949, updated.Year)
}

func TestUpdate_EmptyStringOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(testSeed())

	empty := ""
	updated, err := s.Update(ctx, 2, book.Patch{Author: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Author)
	assert.Equal(t, "Brave New World", updated.Title)
}

func TestUpdate_NotFound(t *testing.T) {
	title := "x"
	s := NewMemoryStore(testSeed())

	_, err := s.Update(context.Background(), 999, book.Patch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(testSeed())

	require.NoError(t, s.Delete(ctx, 2))
	assert.Equal(t, 1, s.Count())

	_, err := s.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, 2), ErrNotFound)
}

func TestList_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(testSeed())

	books, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)

	books[1].Title = "mutated"
	stored, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "1984", stored.Title)
}

func TestReset_RestoresSeedState(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(testSeed())

	_, err := s.Create(ctx, &book.Book{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, 1))

	s.Reset()

	assert.Equal(t, 2, s.Count())
	b, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "1984", b.Title)

	// The counter restarts from the seed maximum as well.
	created, err := s.Create(ctx, &book.Book{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
}

func TestCreate_ConcurrentIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(testSeed())

	const n = 50
	ids := make(chan int, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := s.Create(ctx, &book.Book{Title: "t", Author: "a"})
			assert.NoError(t, err)
			ids <- created.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate ID %d", id)
		seen[id] = true
	}
	assert.Equal(t, 2+n, s.Count())
}
