package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookloft/biblioctl/internal/catalog"
)

func newListCmd() *cobra.Command {
	var (
		title     string
		author    string
		publisher string
		isbn      string
		status    string
		sortBy    []string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List books in your library",
		Long: `List books, optionally filtered and sorted.

Text filters are accent-insensitive substrings, so --author garcia
matches García. Repeat --sort to break ties, e.g.
--sort author --sort title, and append :desc to reverse a key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := loadBooks(cmd)
			if err != nil {
				return err
			}

			st, err := statusFilter(status)
			if err != nil {
				return err
			}
			spec, err := parseSortSpec(sortBy)
			if err != nil {
				return err
			}

			view := catalog.View(books, catalog.Filter{
				Title:     title,
				Author:    author,
				Publisher: publisher,
				ISBN:      isbn,
				Status:    st,
			}, spec)

			printBookTable(view)
			if len(view) < len(books) {
				fmt.Printf("\n%d of %d books\n", len(view), len(books))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Filter by title substring")
	cmd.Flags().StringVar(&author, "author", "", "Filter by author substring")
	cmd.Flags().StringVar(&publisher, "publisher", "", "Filter by publisher substring")
	cmd.Flags().StringVar(&isbn, "isbn", "", "Filter by ISBN substring")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (unread, reading, read, abandoned)")
	cmd.Flags().StringArrayVar(&sortBy, "sort", nil, "Sort key, repeatable (e.g. author, pages:desc)")
	return cmd
}
