package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookloft/biblioctl/internal/catalog"
)

// bookFlags binds the editable fields of a record to command flags.
type bookFlags struct {
	title     string
	author    string
	series    string
	publisher string
	genre     string
	isbn      string
	published string
	pages     int
	started   string
	finished  string
	status    string
	lentTo    string
	summary   string
	language  string
	country   string
}

func (f *bookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Title")
	cmd.Flags().StringVar(&f.author, "author", "", "Author")
	cmd.Flags().StringVar(&f.series, "series", "", "Series name")
	cmd.Flags().StringVar(&f.publisher, "publisher", "", "Publisher")
	cmd.Flags().StringVar(&f.genre, "genre", "", "Genre")
	cmd.Flags().StringVar(&f.isbn, "isbn", "", "ISBN-13")
	cmd.Flags().StringVar(&f.published, "published", "", "Publication date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.pages, "pages", 0, "Page count")
	cmd.Flags().StringVar(&f.started, "started", "", "Date reading started")
	cmd.Flags().StringVar(&f.finished, "finished", "", "Date reading finished")
	cmd.Flags().StringVar(&f.status, "status", "", "Status (unread, reading, read, abandoned)")
	cmd.Flags().StringVar(&f.lentTo, "lent-to", "", "Who the copy is lent to")
	cmd.Flags().StringVar(&f.summary, "summary", "", "Summary text")
	cmd.Flags().StringVar(&f.language, "language", "", "Language code")
	cmd.Flags().StringVar(&f.country, "country", "", "Country code")
}

// apply copies every flag the user set onto the record.
func (f *bookFlags) apply(cmd *cobra.Command, b *catalog.Book) error {
	set := cmd.Flags().Changed
	if set("title") {
		b.Title = f.title
	}
	if set("author") {
		b.Author = f.author
	}
	if set("series") {
		b.Series = f.series
	}
	if set("publisher") {
		b.Publisher = f.publisher
	}
	if set("genre") {
		b.Genre = f.genre
	}
	if set("isbn") {
		b.ISBN = f.isbn
	}
	if set("published") {
		b.PublicationDate = f.published
	}
	if set("pages") {
		b.PageCount = f.pages
	}
	if set("started") {
		b.StartDate = f.started
	}
	if set("finished") {
		b.EndDate = f.finished
	}
	if set("status") {
		st, err := statusFilter(f.status)
		if err != nil {
			return err
		}
		if st != nil {
			b.Status = *st
		}
	}
	if set("lent-to") {
		b.LentTo = f.lentTo
	}
	if set("summary") {
		b.Summary = f.summary
	}
	if set("language") {
		b.Language = f.language
	}
	if set("country") {
		b.Country = f.country
	}
	return nil
}

func newAddCmd() *cobra.Command {
	var flags bookFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book by hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadBooks(cmd); err != nil {
				return err
			}

			var b catalog.Book
			if err := flags.apply(cmd, &b); err != nil {
				return err
			}
			if b.Title == "" || b.Author == "" {
				return fmt.Errorf("--title and --author are required")
			}

			created, err := client.CreateBook(cmd.Context(), b)
			if err != nil {
				return fmt.Errorf("creating book: %w", err)
			}
			store.Add(created)
			ok("Added %q (%s)", created.Title, created.ID)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
