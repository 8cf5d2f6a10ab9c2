package app

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bookloft/biblioctl/internal/catalog"
	"github.com/bookloft/biblioctl/internal/util"
)

// loadBooks ensures an authenticated session and a populated catalog.
func loadBooks(cmd *cobra.Command) ([]catalog.Book, error) {
	if err := requireSession(); err != nil {
		return nil, err
	}
	books, err := store.LoadAll(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return books, nil
}

// findBook resolves an argument to a single book. Exact ID wins, then
// unique ID prefix, then unique exact ISBN.
func findBook(cmd *cobra.Command, arg string) (catalog.Book, error) {
	books, err := loadBooks(cmd)
	if err != nil {
		return catalog.Book{}, err
	}

	if b, err := store.ByID(arg); err == nil {
		return b, nil
	}

	var matches []catalog.Book
	for _, b := range books {
		if strings.HasPrefix(b.ID, arg) || (arg != "" && b.ISBN == arg) {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 0:
		return catalog.Book{}, fmt.Errorf("no book matches %q", arg)
	case 1:
		return matches[0], nil
	default:
		for _, m := range matches {
			fmt.Printf("  %s  %s — %s\n", m.ID, m.Title, m.Author)
		}
		return catalog.Book{}, fmt.Errorf("%q is ambiguous (%d matches)", arg, len(matches))
	}
}

// statusFilter turns a --status flag value into filter criteria.
// Empty means no status restriction.
func statusFilter(label string) (*catalog.Status, error) {
	if label == "" {
		return nil, nil
	}
	switch label {
	case "unread", "reading", "read", "abandoned":
		st := catalog.ParseStatus(label)
		return &st, nil
	default:
		return nil, fmt.Errorf("unknown status %q (unread, reading, read, abandoned)", label)
	}
}

// parseSortSpec builds sort keys from repeated --sort values like
// "author" or "pageCount:desc".
func parseSortSpec(values []string) (catalog.SortSpec, error) {
	valid := map[string]string{
		"title":     catalog.FieldTitle,
		"author":    catalog.FieldAuthor,
		"publisher": catalog.FieldPublisher,
		"series":    catalog.FieldSeries,
		"status":    catalog.FieldStatus,
		"pages":     catalog.FieldPageCount,
		"pagecount": catalog.FieldPageCount,
		"isbn":      catalog.FieldISBN,
		"published": catalog.FieldPublicationDate,
		"added":     catalog.FieldAddedDate,
	}
	var spec catalog.SortSpec
	for _, v := range values {
		name, dir, _ := strings.Cut(v, ":")
		field, found := valid[strings.ToLower(name)]
		if !found {
			return nil, fmt.Errorf("unknown sort field %q", name)
		}
		spec = append(spec, catalog.SortKey{Field: field, Desc: dir == "desc"})
	}
	return spec, nil
}

// printBookTable writes a fixed-width listing.
func printBookTable(books []catalog.Book) {
	if len(books) == 0 {
		fmt.Println("No books.")
		return
	}
	header("%-12s  %-44s  %-26s  %s", "ID", "TITLE", "AUTHOR", "STATUS")
	for _, b := range books {
		fmt.Printf("%-12s  %-44s  %-26s  %s\n",
			util.TruncateText(b.ID, 12),
			util.TruncateText(b.Title, 44),
			util.TruncateText(b.Author, 26),
			statusColor(b.Status))
	}
}

func statusColor(s catalog.Status) string {
	label := s.Label()
	switch s {
	case catalog.StatusRead:
		return color.GreenString(label)
	case catalog.StatusReading:
		return color.CyanString(label)
	case catalog.StatusAbandoned:
		return color.YellowString(label)
	default:
		return label
	}
}
