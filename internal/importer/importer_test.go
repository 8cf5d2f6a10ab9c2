package importer

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/bookloft/biblioctl/internal/api"
	"github.com/bookloft/biblioctl/internal/catalog"
	"github.com/bookloft/biblioctl/internal/cover"
)

// fakeBackend records workflow calls.
type fakeBackend struct {
	importResult catalog.Book
	importErr    error
	updateErr    error
	updated      []catalog.Book
	getErrs      []error // popped per GetBook call; empty = success
	getCalls     int
}

func (f *fakeBackend) ImportByISBN(ctx context.Context, isbn, language string) (catalog.Book, error) {
	if f.importErr != nil {
		return catalog.Book{}, f.importErr
	}
	return f.importResult, nil
}

func (f *fakeBackend) UpdateBook(ctx context.Context, id string, book catalog.Book) error {
	f.updated = append(f.updated, book)
	return f.updateErr
}

func (f *fakeBackend) GetBook(ctx context.Context, id string) (catalog.Book, error) {
	f.getCalls++
	if len(f.getErrs) > 0 {
		err := f.getErrs[0]
		f.getErrs = f.getErrs[1:]
		if err != nil {
			return catalog.Book{}, err
		}
	}
	return f.importResult, nil
}

type staticList []catalog.Book

func (s staticList) ListMyBooks(ctx context.Context) ([]catalog.Book, error) {
	return s, nil
}

func newWorkflow(be *fakeBackend) (*Workflow, *catalog.Store) {
	store := catalog.NewStore(staticList{})
	_, _ = store.LoadAll(context.Background())
	w := New(be, store, nil)
	w.poll = RetryPolicy{Attempts: 3, Delay: time.Millisecond}
	return w, store
}

func bigCover(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestImport_BytesCoverReconciled(t *testing.T) {
	be := &fakeBackend{importResult: catalog.Book{
		ID:     "b-42",
		Title:  "La Sombra del Viento",
		Author: "Carlos Ruiz Zafón",
		ISBN:   "9788498381498",
		Cover:  cover.Bytes(bigCover(5000)),
	}}
	w, store := newWorkflow(be)

	id, err := w.Import(context.Background(), "9788498381498", "es")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if id != "b-42" {
		t.Errorf("id = %q, want b-42", id)
	}
	if w.State() != StateSuccess {
		t.Errorf("state = %v, want StateSuccess", w.State())
	}

	// The second round-trip carried the cover as base64 text.
	if len(be.updated) != 1 {
		t.Fatalf("expected 1 update, got %d", len(be.updated))
	}
	if be.updated[0].Cover.Kind() != cover.KindBase64 {
		t.Errorf("updated cover kind = %v, want KindBase64", be.updated[0].Cover.Kind())
	}

	// The new record is first in the store.
	books := store.Books()
	if len(books) == 0 || books[0].ID != "b-42" {
		t.Errorf("store first element = %v", books)
	}
	if books[0].Cover.Kind() != cover.KindBase64 {
		t.Errorf("stored cover kind = %v, want KindBase64", books[0].Cover.Kind())
	}
}

func TestImport_URLCoverNotReconciled(t *testing.T) {
	be := &fakeBackend{importResult: catalog.Book{
		ID: "b-1", Title: "T", Author: "A",
		Cover: cover.URL("https://covers.test/x.jpg"),
	}}
	w, _ := newWorkflow(be)
	if _, err := w.Import(context.Background(), "9781234567897", ""); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(be.updated) != 0 {
		t.Errorf("unexpected update round-trip for URL cover")
	}
}

func TestImport_EmptyISBN(t *testing.T) {
	w, _ := newWorkflow(&fakeBackend{})
	_, err := w.Import(context.Background(), "", "")
	var ve api.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if w.State() != StateIdle {
		t.Errorf("state = %v, validation must not transition", w.State())
	}
}

func TestImport_LookupFailure(t *testing.T) {
	be := &fakeBackend{importErr: errors.New("no such isbn")}
	w, store := newWorkflow(be)
	if _, err := w.Import(context.Background(), "9781234567897", ""); err == nil {
		t.Fatal("expected error")
	}
	if w.State() != StateFailure {
		t.Errorf("state = %v, want StateFailure", w.State())
	}
	if len(store.Books()) != 0 {
		t.Error("failed import must not touch the store")
	}
}

func TestImport_MissingIdentifier(t *testing.T) {
	be := &fakeBackend{importResult: catalog.Book{Title: "T", Author: "A"}}
	w, store := newWorkflow(be)
	id, err := w.Import(context.Background(), "9781234567897", "")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if id != "" {
		t.Errorf("id = %q, want empty (no navigation target)", id)
	}
	if len(store.Books()) != 1 {
		t.Error("record without identifier should still be kept")
	}
}

func TestImport_PollRetriesThenProceeds(t *testing.T) {
	be := &fakeBackend{
		importResult: catalog.Book{ID: "b-1", Title: "T", Author: "A"},
		getErrs:      []error{errors.New("not yet"), errors.New("not yet")},
	}
	w, _ := newWorkflow(be)
	id, err := w.Import(context.Background(), "9781234567897", "")
	if err != nil || id != "b-1" {
		t.Fatalf("Import = %q, %v", id, err)
	}
	if be.getCalls != 3 {
		t.Errorf("getCalls = %d, want 3", be.getCalls)
	}
}

func TestImport_PollExhaustionStillSucceeds(t *testing.T) {
	be := &fakeBackend{
		importResult: catalog.Book{ID: "b-1", Title: "T", Author: "A"},
		getErrs:      []error{errors.New("e"), errors.New("e"), errors.New("e")},
	}
	w, store := newWorkflow(be)
	id, err := w.Import(context.Background(), "9781234567897", "")
	if err != nil || id != "b-1" {
		t.Fatalf("Import = %q, %v — poll exhaustion must not fail the import", id, err)
	}
	if len(store.Books()) != 1 {
		t.Error("record missing from store")
	}
}

// --- barcode scan filtering ---

func TestExtractISBN(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"9788498381498", "9788498381498", true},
		{"979-8-6024-0545-3", "9798602405453", true},
		{" 978 84 9838 149 8 ", "9788498381498", true},
		{"1234567890123", "", false}, // wrong prefix
		{"97884983814", "", false},   // too short
		{"hello world", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ExtractISBN(tt.line)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ExtractISBN(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestReadScans_FiltersAndStops(t *testing.T) {
	input := "garbage\n9788498381498\nalso garbage\n9798602405453\n9780306406157\n"
	var seen []string
	err := ReadScans(strings.NewReader(input), func(isbn string) error {
		seen = append(seen, isbn)
		if len(seen) == 2 {
			return io.EOF
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ReadScans: %v", err)
	}
	if len(seen) != 2 || seen[0] != "9788498381498" || seen[1] != "9798602405453" {
		t.Errorf("seen = %v", seen)
	}
}
