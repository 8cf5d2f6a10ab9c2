package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id|isbn>",
		Aliases: []string{"delete"},
		Short:   "Remove a book from the library",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := findBook(cmd, args[0])
			if err != nil {
				return err
			}

			if !yes {
				answer, err := promptLine(fmt.Sprintf("Delete %q by %s? (y/N)", b.Title, b.Author))
				if err != nil {
					return err
				}
				if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
					warn("Cancelled")
					return nil
				}
			}

			if err := client.DeleteBook(cmd.Context(), b.ID); err != nil {
				return fmt.Errorf("deleting book: %w", err)
			}
			if err := store.Remove(b.ID); err != nil {
				return err
			}
			ok("Removed %q", b.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
