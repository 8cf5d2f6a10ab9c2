package importer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bookloft/biblioctl/internal/api"
	"github.com/bookloft/biblioctl/internal/catalog"
	"github.com/bookloft/biblioctl/internal/cover"
)

// State is the workflow's position in Idle → Submitting → {Success, Failure}.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateFailure
)

// Service is the slice of the backend the workflow needs.
type Service interface {
	ImportByISBN(ctx context.Context, isbn, language string) (catalog.Book, error)
	UpdateBook(ctx context.Context, id string, book catalog.Book) error
	GetBook(ctx context.Context, id string) (catalog.Book, error)
}

// Workflow imports a book by ISBN: the server creates the record from
// an external lookup, and if it came back with a raw-bytes cover the
// record is immediately re-submitted with the cover as base64, since
// the create and update paths accept different encodings.
type Workflow struct {
	svc   Service
	store *catalog.Store
	log   *zap.Logger
	poll  RetryPolicy
	state State
}

// New creates a Workflow in the Idle state.
func New(svc Service, store *catalog.Store, logger *zap.Logger) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workflow{
		svc:   svc,
		store: store,
		log:   logger,
		poll:  RetryPolicy{Attempts: 5, Delay: 300 * time.Millisecond},
	}
}

// State returns the current workflow state.
func (w *Workflow) State() State { return w.state }

// Import runs the full workflow for one ISBN. On success the new
// record is prepended to the store and its identifier returned, so
// the caller can show the detail view. An empty identifier with a nil
// error means the server broke the id precondition: the record was
// stored but there is nothing to navigate to.
func (w *Workflow) Import(ctx context.Context, isbn, language string) (string, error) {
	if isbn == "" {
		return "", api.ValidationError{Field: "isbn", Reason: "must not be empty"}
	}
	w.state = StateSubmitting

	book, err := w.svc.ImportByISBN(ctx, isbn, language)
	if err != nil {
		w.state = StateFailure
		return "", err
	}

	// Reconcile a raw-bytes cover into the canonical base64 form.
	// The update is only issued after the create resolved; the two
	// steps never race.
	if book.Cover.Kind() == cover.KindBytes && book.ID != "" {
		book.Cover = book.Cover.AsBase64()
		if err := w.svc.UpdateBook(ctx, book.ID, book); err != nil {
			w.state = StateFailure
			return "", err
		}
	}

	if book.ID == "" {
		// Server-assigned identifiers are a precondition; a record
		// without one is kept but navigation is abandoned.
		w.log.Error("import returned record without identifier",
			zap.String("isbn", isbn))
		w.store.Add(book)
		w.state = StateSuccess
		return "", nil
	}

	// The record can lag behind the import response; give the server
	// a short, bounded window and proceed regardless of the outcome.
	if err := w.poll.Do(ctx, func(ctx context.Context) error {
		_, err := w.svc.GetBook(ctx, book.ID)
		return err
	}); err != nil {
		w.log.Debug("imported record not yet readable", zap.String("id", book.ID), zap.Error(err))
	}

	w.store.Add(book)
	w.state = StateSuccess
	return book.ID, nil
}
