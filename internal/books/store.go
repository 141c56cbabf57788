// ABOUTME: Collection synchronizer for the in-memory book list
// ABOUTME: Mediates CRUD against the server and keeps local state consistent

package books

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/rantiputri/booktrack/internal/api"
)

// ErrMissingID is returned when a delete is attempted without an id.
// The request never reaches the server.
var ErrMissingID = errors.New("book id is required")

// ErrInvalidPages is returned when a page count is not a non-negative base-10 number
var ErrInvalidPages = errors.New("total pages must be a non-negative number")

// ParsePages converts user-entered page-count text to an integer.
// Non-numeric or negative input is rejected before submission.
func ParsePages(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, ErrInvalidPages
	}
	return n, nil
}

// Store owns the in-memory book collection. It is the only writer to the
// collection; consumers read snapshots via Books. Order follows the server's
// last listing, adjusted by successful mutations.
type Store struct {
	c *api.Client

	mu             sync.Mutex
	books          []api.Book
	pendingDeletes map[string]struct{}
}

// NewStore creates a collection store backed by the given gateway
func NewStore(c *api.Client) *Store {
	return &Store{
		c:              c,
		pendingDeletes: make(map[string]struct{}),
	}
}

// Books returns a snapshot of the current collection
func (s *Store) Books() []api.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]api.Book, len(s.books))
	copy(snapshot, s.books)
	return snapshot
}

// LoadAll replaces the entire collection with the server's current listing.
// A failed fetch leaves the previous collection in place.
func (s *Store) LoadAll(ctx context.Context) ([]api.Book, error) {
	books, err := s.c.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.books = books
	s.mu.Unlock()

	return s.Books(), nil
}

// LoadOne fetches a single record by id without touching the collection.
// Used to populate edit forms.
func (s *Store) LoadOne(ctx context.Context, id string) (*api.Book, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	return s.c.GetBook(ctx, id)
}

// Create submits a draft. The created record joins the collection on the
// next LoadAll rather than being inserted locally.
func (s *Store) Create(ctx context.Context, draft *api.Draft) (*api.Book, error) {
	return s.c.CreateBook(ctx, draft)
}

// Update submits a full replacement of the record's editable fields. On
// success the local copy, if present, is refreshed in place.
func (s *Store) Update(ctx context.Context, id string, draft *api.Draft) (*api.Book, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	book, err := s.c.UpdateBook(ctx, id, draft)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.books {
		if s.books[i].ID == id {
			s.books[i] = *book
			break
		}
	}
	s.mu.Unlock()

	return book, nil
}

// Delete requests removal from the server. The local entry is removed only
// after the server confirms; a failed delete leaves the collection untouched.
// A second delete for the same id while one is in flight resolves as a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}

	s.mu.Lock()
	if _, inFlight := s.pendingDeletes[id]; inFlight {
		s.mu.Unlock()
		return nil
	}
	s.pendingDeletes[id] = struct{}{}
	s.mu.Unlock()

	err := s.c.DeleteBook(ctx, id)

	s.mu.Lock()
	delete(s.pendingDeletes, id)
	if err == nil {
		kept := s.books[:0]
		for _, b := range s.books {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		s.books = kept
	}
	s.mu.Unlock()

	return err
}
