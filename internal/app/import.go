package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bookloft/biblioctl/internal/importer"
)

func newImportCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "import <isbn>",
		Short: "Import a book by ISBN from Google Books",
		Long: `Look up an ISBN on Google Books through the library server and
add the result to your catalog. The metadata language defaults to the
configured one (defaults.language).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadBooks(cmd); err != nil {
				return err
			}
			if language == "" {
				language = cfg.Defaults.Language
			}

			wf := importer.New(client, store, logger)
			id, err := wf.Import(cmd.Context(), args[0], language)
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}

			b := store.Books()[0]
			if id == "" {
				warn("Server returned no identifier; record kept locally until next reload")
			}
			ok("Imported %q by %s", b.Title, b.Author)
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "lang", "", "Metadata language (e.g. en, es)")
	return cmd
}

func newScanCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Import books from barcode scans on stdin",
		Long: `Read lines from stdin, keep the ones that are ISBN-13 barcodes
(978/979 prefixes), and import each one. Wire a USB barcode scanner to
your terminal and scan away; end with Ctrl-D.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadBooks(cmd); err != nil {
				return err
			}
			if language == "" {
				language = cfg.Defaults.Language
			}

			wf := importer.New(client, store, logger)
			imported := 0
			scanErr := importer.ReadScans(os.Stdin, func(isbn string) error {
				if _, err := wf.Import(cmd.Context(), isbn, language); err != nil {
					warn("%s: %v", isbn, err)
					return nil
				}
				b := store.Books()[0]
				ok("%s — %q by %s", isbn, b.Title, b.Author)
				imported++
				return nil
			})
			if scanErr != nil {
				return scanErr
			}
			header("Imported %d book(s)", imported)
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "lang", "", "Metadata language (e.g. en, es)")
	return cmd
}
