package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bookloft/biblioctl/internal/importer"
	"github.com/bookloft/biblioctl/internal/util"
)

func newSearchCmd() *cobra.Command {
	var (
		author   string
		language string
		pick     bool
	)

	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Search Google Books for candidates to import",
		Long: `Search by title (and optionally author) when you don't have an
ISBN at hand. With --pick, choose a result to import directly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			if language == "" {
				language = cfg.Defaults.Language
			}

			candidates, err := client.SearchMetadata(cmd.Context(), args[0], author, language)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			if len(candidates) == 0 {
				fmt.Println("No results.")
				return nil
			}

			header("%-3s %-44s %-24s %-14s", "#", "TITLE", "AUTHOR", "ISBN")
			for i, c := range candidates {
				isbn := c.ISBN
				if isbn == "" {
					isbn = "-"
				}
				fmt.Printf("%-3d %-44s %-24s %-14s\n", i+1,
					util.TruncateText(c.Title, 44),
					util.TruncateText(c.Author, 24),
					isbn)
			}

			if !pick {
				return nil
			}

			answer, err := promptLine("Import which # (empty to cancel)")
			if err != nil {
				return err
			}
			if answer == "" {
				return nil
			}
			n, err := strconv.Atoi(answer)
			if err != nil || n < 1 || n > len(candidates) {
				return fmt.Errorf("invalid selection %q", answer)
			}
			chosen := candidates[n-1]
			if chosen.ISBN == "" {
				return fmt.Errorf("result %d has no ISBN; it cannot be imported", n)
			}

			if _, err := loadBooks(cmd); err != nil {
				return err
			}
			wf := importer.New(client, store, logger)
			if _, err := wf.Import(cmd.Context(), chosen.ISBN, language); err != nil {
				return fmt.Errorf("importing %s: %w", chosen.ISBN, err)
			}
			ok("Imported %q", chosen.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Restrict results to this author")
	cmd.Flags().StringVar(&language, "lang", "", "Metadata language (e.g. en, es)")
	cmd.Flags().BoolVar(&pick, "pick", false, "Choose a result to import")
	return cmd
}
