package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bookloft/biblioctl/internal/catalog"
)

func newShowCmd() *cobra.Command {
	var showCover bool

	cmd := &cobra.Command{
		Use:     "show <id|isbn>",
		Aliases: []string{"info"},
		Short:   "Show full details for one book",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := findBook(cmd, args[0])
			if err != nil {
				return err
			}
			printBookDetails(b, showCover)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showCover, "cover", false, "Include the resolved cover URL")
	return cmd
}

func printBookDetails(b catalog.Book, showCover bool) {
	header("%s", b.Title)
	field := func(label, value string) {
		if value != "" {
			fmt.Printf("  %-12s %s\n", color.WhiteString(label), value)
		}
	}
	field("Author", b.Author)
	field("Series", b.Series)
	field("Publisher", b.Publisher)
	field("Genre", b.Genre)
	field("ISBN", b.ISBN)
	field("Published", b.PublicationDate)
	if b.PageCount > 0 {
		field("Pages", fmt.Sprintf("%d", b.PageCount))
	}
	field("Language", b.Language)
	field("Country", b.Country)
	field("Status", statusColor(b.Status))
	field("Started", b.StartDate)
	field("Finished", b.EndDate)
	field("Lent to", b.LentTo)
	field("Added", b.AddedDate)
	field("ID", b.ID)
	if showCover {
		field("Cover", b.Cover.DisplayURL())
	}
	if b.Summary != "" {
		fmt.Printf("\n%s\n", b.Summary)
	}
}
