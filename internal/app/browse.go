package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookloft/biblioctl/internal/tui"
	"github.com/bookloft/biblioctl/internal/util"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the library interactively",
		Long: `Open a full-screen browser over your catalog. Type / to filter
(plain words match titles; author: publisher: isbn: status: target
other fields), t/a/p/s to toggle sort keys, enter for details.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !util.IsTTY() {
				return fmt.Errorf("browse needs an interactive terminal")
			}
			books, err := loadBooks(cmd)
			if err != nil {
				return err
			}

			selected, err := tui.Run(books)
			if err != nil {
				return err
			}
			if selected != nil {
				printBookDetails(*selected, true)
			}
			return nil
		},
	}
}
