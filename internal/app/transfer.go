package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bookloft/biblioctl/internal/util"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the library as CSV",
		Long: `Download the server's CSV export. Writes to stdout unless --out
is given, so it pipes cleanly into other tools.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			data, err := client.ExportCSV(cmd.Context())
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if out == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := util.WriteFileAtomic(out, data); err != nil {
				return err
			}
			ok("Exported %d bytes to %s", len(data), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newImportCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-csv <file>",
		Short: "Bulk-load books from a CSV file",
		Long: `Upload a CSV file to the server. Rows with a new ISBN are added,
rows matching an existing book update it, malformed rows are skipped.
The accepted format is the same one 'biblioctl export' produces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			counts, err := client.ImportCSV(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			ok("Added %d, updated %d, skipped %d", counts.Added, counts.Updated, counts.Skipped)
			if counts.Skipped > 0 {
				warn("Skipped rows are usually missing a title or author")
			}

			// Local snapshot is stale after a bulk change.
			if _, err := store.Reload(cmd.Context()); err != nil {
				warn("Reload failed: %v", err)
			}
			return nil
		},
	}
}
