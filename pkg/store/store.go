// Package store provides storage abstractions for book records.
package store

import (
	"context"
	"errors"

	"github.com/shelfd/shelfd/pkg/book"
)

// Common errors
var (
	ErrNotFound = errors.New("not found")
)

// BookStore defines the interface for storing and retrieving book records.
// Implementations must serialize all mutating operations so that ID
// assignment and partial updates are atomic.
type BookStore interface {
	// List returns all books keyed by ID. The returned records are copies.
	List(ctx context.Context) (map[int]*book.Book, error)

	// Get retrieves a book by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id int) (*book.Book, error)

	// Create stores a new book, assigning it the next free ID, and
	// returns the stored record.
	Create(ctx context.Context, b *book.Book) (*book.Book, error)

	// Update applies a partial update to an existing book and returns
	// the updated record. Returns ErrNotFound if absent.
	Update(ctx context.Context, id int, patch book.Patch) (*book.Book, error)

	// Delete removes a book by ID. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id int) error

	// Count returns the number of stored books.
	Count() int

	// Reset restores the store to its seed state.
	Reset()
}
