// Package book defines the book record managed by shelfd.
package book

// Book is a single record in the catalog. Year is optional and omitted
// from JSON output when zero.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year,omitempty"`
}

// Clone returns a copy of the book.
func (b *Book) Clone() *Book {
	c := *b
	return &c
}

// Patch describes a partial update to a book. Nil fields are left
// unchanged; a non-nil pointer to an empty string still counts as a
// supplied value and overwrites the existing one.
type Patch struct {
	Title  *string
	Author *string
	Year   *int
}

// Apply overwrites the supplied fields on b.
func (p Patch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
}
