package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// NotFoundError reports an identifier absent from the current state.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("book %q not found in catalog", e.ID)
}

// Service is the remote side of the store: the full-list fetch.
type Service interface {
	ListMyBooks(ctx context.Context) ([]Book, error)
}

// Store owns the in-memory book list for the session. The full set is
// fetched once and mutated locally as records are created, replaced,
// and removed; the view engine only ever reads from it.
type Store struct {
	svc Service

	mu     sync.Mutex
	books  []Book
	loaded bool
	gen    uint64
}

// NewStore creates an empty store backed by svc.
func NewStore(svc Service) *Store {
	return &Store{svc: svc}
}

// LoadAll fetches the full book list on first call; later calls return
// the cached list. Use Reload to force a re-fetch.
func (s *Store) LoadAll(ctx context.Context) ([]Book, error) {
	s.mu.Lock()
	if s.loaded {
		defer s.mu.Unlock()
		return s.snapshot(), nil
	}
	s.mu.Unlock()
	return s.Reload(ctx)
}

// Reload re-fetches the full list. If a newer reload completed while
// this one was in flight, the stale response is discarded and the
// fresher state is returned instead.
func (s *Store) Reload(ctx context.Context) ([]Book, error) {
	s.mu.Lock()
	s.gen++
	g := s.gen
	s.mu.Unlock()

	books, err := s.svc.ListMyBooks(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if g != s.gen {
		// A later reload already applied; keep its result.
		return s.snapshot(), nil
	}
	s.books = books
	s.loaded = true
	return s.snapshot(), nil
}

// Books returns a copy of the current list.
func (s *Store) Books() []Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Add prepends a record: import results are most-recent-first.
func (s *Store) Add(book Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = append([]Book{book}, s.books...)
}

// Replace swaps the record with the given identifier.
func (s *Store) Replace(id string, book Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.books {
		if s.books[i].ID == id {
			s.books[i] = book
			return nil
		}
	}
	return NotFoundError{ID: id}
}

// Remove deletes the record with the given identifier.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.books {
		if s.books[i].ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return nil
		}
	}
	return NotFoundError{ID: id}
}

// ByID returns the record with the given identifier, or a NotFoundError.
func (s *Store) ByID(id string) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.books {
		if s.books[i].ID == id {
			return s.books[i], nil
		}
	}
	return Book{}, NotFoundError{ID: id}
}

// Authors returns the sorted distinct non-empty author names.
func (s *Store) Authors() []string {
	return s.distinct(func(b Book) string { return b.Author })
}

// Publishers returns the sorted distinct non-empty publisher names.
func (s *Store) Publishers() []string {
	return s.distinct(func(b Book) string { return b.Publisher })
}

func (s *Store) distinct(field func(Book) string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	var out []string
	for _, b := range s.books {
		v := field(b)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// snapshot copies the list; callers hold s.mu.
func (s *Store) snapshot() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}
