package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge duplicate author or publisher spellings",
		Long: `Rename every occurrence of an author or publisher across the
whole library. Useful after imports leave variants like "J.R.R.
Tolkien" and "J. R. R. Tolkien" behind.`,
	}
	cmd.AddCommand(newMergeFieldCmd("author"), newMergeFieldCmd("publisher"))
	return cmd
}

func newMergeFieldCmd(field string) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   field + " <old> <new>",
		Short: fmt.Sprintf("Merge one %s name into another", field),
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := loadBooks(cmd)
			if err != nil {
				return err
			}

			if list || len(args) == 0 {
				var names []string
				if field == "author" {
					names = store.Authors()
				} else {
					names = store.Publishers()
				}
				header("Distinct %ss:", field)
				for _, n := range names {
					fmt.Printf("  %s\n", n)
				}
				if len(args) == 0 {
					return nil
				}
			}
			if len(args) != 2 {
				return fmt.Errorf("need <old> and <new> values")
			}

			oldV, newV := args[0], args[1]
			affected := 0
			for _, b := range books {
				if (field == "author" && b.Author == oldV) ||
					(field == "publisher" && b.Publisher == oldV) {
					affected++
				}
			}
			if affected == 0 {
				warn("No books have %s %q; nothing to merge", field, oldV)
				return nil
			}

			if field == "author" {
				err = client.MergeAuthor(cmd.Context(), oldV, newV)
			} else {
				err = client.MergePublisher(cmd.Context(), oldV, newV)
			}
			if err != nil {
				return fmt.Errorf("merge: %w", err)
			}

			// The rename happened server-side; pull the whole catalog
			// again rather than guessing which rows changed.
			if _, err := store.Reload(cmd.Context()); err != nil {
				return fmt.Errorf("reloading catalog: %w", err)
			}
			ok("Merged %q into %q (%d book(s))", oldV, newV, affected)
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List current values first")
	return cmd
}
