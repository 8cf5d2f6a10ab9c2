package catalog

import (
	"sort"
	"strings"
)

// Filter is the set of ANDed criteria applied to the book list.
// Title, author, and publisher match as diacritic-insensitive
// substrings; ISBN is a raw substring; status is an exact code.
type Filter struct {
	Title     string
	Author    string
	Publisher string
	ISBN      string
	Status    *Status
}

// IsZero reports whether no criterion is set.
func (f Filter) IsZero() bool {
	return f.Title == "" && f.Author == "" && f.Publisher == "" &&
		f.ISBN == "" && f.Status == nil
}

// Matches reports whether a single record passes all criteria.
func (f Filter) Matches(b Book) bool {
	if !containsNormalized(b.Title, f.Title) {
		return false
	}
	if !containsNormalized(b.Author, f.Author) {
		return false
	}
	if !containsNormalized(b.Publisher, f.Publisher) {
		return false
	}
	if f.ISBN != "" && !strings.Contains(b.ISBN, f.ISBN) {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	return true
}

// Sortable field names.
const (
	FieldTitle           = "title"
	FieldAuthor          = "author"
	FieldPublisher       = "publisher"
	FieldSeries          = "series"
	FieldStatus          = "status"
	FieldISBN            = "isbn"
	FieldPublicationDate = "publicationDate"
	FieldAddedDate       = "addedDate"
	FieldPageCount       = "pageCount"
)

// SortKey orders one field in one direction.
type SortKey struct {
	Field string
	Desc  bool
}

// SortSpec is an ordered key sequence; each key breaks ties left by
// the one before it.
type SortSpec []SortKey

// Toggle cycles a field through ascending, descending, and removed.
// A field not yet present is appended ascending.
func (s SortSpec) Toggle(field string) SortSpec {
	for i, k := range s {
		if k.Field != field {
			continue
		}
		if !k.Desc {
			out := make(SortSpec, len(s))
			copy(out, s)
			out[i].Desc = true
			return out
		}
		return append(append(SortSpec{}, s[:i]...), s[i+1:]...)
	}
	return append(append(SortSpec{}, s...), SortKey{Field: field})
}

// View filters and orders books without mutating the input. Filtering
// and sorting are independent: an empty spec keeps the incoming order,
// an empty filter keeps every record.
func View(books []Book, f Filter, spec SortSpec) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	if len(spec) == 0 {
		return out
	}
	// Stability is load-bearing: records equal under every key keep
	// their original relative order.
	sort.SliceStable(out, func(i, j int) bool {
		for _, k := range spec {
			c := compareField(out[i], out[j], k.Field)
			if c == 0 {
				continue
			}
			if k.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return out
}

func compareField(a, b Book, field string) int {
	switch field {
	case FieldStatus:
		return int(a.Status) - int(b.Status)
	case FieldPageCount:
		return a.PageCount - b.PageCount
	case FieldISBN:
		return strings.Compare(a.ISBN, b.ISBN)
	default:
		return strings.Compare(Normalize(stringField(a, field)), Normalize(stringField(b, field)))
	}
}

func stringField(b Book, field string) string {
	switch field {
	case FieldTitle:
		return b.Title
	case FieldAuthor:
		return b.Author
	case FieldPublisher:
		return b.Publisher
	case FieldSeries:
		return b.Series
	case FieldPublicationDate:
		return b.PublicationDate
	case FieldAddedDate:
		return b.AddedDate
	default:
		return ""
	}
}
